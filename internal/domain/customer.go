package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerStatus representa a situação comercial de um cliente,
// derivada da data do último faturamento registrado.
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusBlocked  CustomerStatus = "blocked"
	CustomerStatusInactive CustomerStatus = "inactive"
)

// ZoneUnknown é o rótulo usado para agrupar clientes sem zona definida.
// O nome vem do vocabulário do produto e é mantido na língua original.
const ZoneUnknown = "Sconosciuta"

type Customer struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Zone         string    `json:"zone"`
	Phone        *string   `json:"phone"`
	RegisteredAt time.Time `json:"registered_at"`
	Blocked      bool      `json:"blocked"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UpdateCustomerRequest struct {
	ID           int        `json:"id"`
	Name         *string    `json:"name"`
	Zone         *string    `json:"zone"`
	Phone        *string    `json:"phone"`
	RegisteredAt *time.Time `json:"registered_at"`
}

// CustomerCard é a visão detalhada de um cliente, com os indicadores
// calculados a partir do histórico de faturamento.
type CustomerCard struct {
	Customer         Customer        `json:"customer"`
	Status           CustomerStatus  `json:"status"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	CurrentMonth     decimal.Decimal `json:"current_month"`
	PreviousMonth    decimal.Decimal `json:"previous_month"`
	PercentVariation *float64        `json:"percent_variation"`
	History          []MonthlyTotal  `json:"history"`
	Products         []LinkedProduct `json:"products"`
	ActivityLog      []ActivityEntry `json:"activity_log"`
}

// ActivityEntry é uma linha do registro de atividades de um cliente.
type ActivityEntry struct {
	ID         int       `json:"id"`
	CustomerID int       `json:"customer_id"`
	Action     string    `json:"action"`
	Detail     string    `json:"detail"`
	CreatedAt  time.Time `json:"created_at"`
}

const (
	ActivityProductAdded   = "product_added"
	ActivityProductRemoved = "product_removed"
	ActivityRevenueUpdated = "revenue_updated"
	ActivityStatusChanged  = "status_changed"
)
