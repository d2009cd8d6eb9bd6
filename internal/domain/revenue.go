package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RevenueEntry é o total faturado por um cliente em um mês específico.
// A combinação (customer_id, year, month) é única no banco.
type RevenueEntry struct {
	ID         int             `json:"id"`
	CustomerID int             `json:"customer_id"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// MonthlyTotal é o faturamento agregado de um período mensal.
type MonthlyTotal struct {
	Month int             `json:"month"`
	Year  int             `json:"year"`
	Total decimal.Decimal `json:"total"`
}

// Period formata o período no formato mm-yyyy usado nas respostas da API.
func (m MonthlyTotal) Period() string {
	return fmt.Sprintf("%02d-%04d", m.Month, m.Year)
}

// ZoneTotal é o faturamento agregado de uma zona.
type ZoneTotal struct {
	Zone  string          `json:"zone"`
	Total decimal.Decimal `json:"total"`
}

// CustomerRevenue é uma linha da listagem de faturamento por cliente.
type CustomerRevenue struct {
	CustomerID   int             `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Zone         string          `json:"zone"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	Amount       decimal.Decimal `json:"amount"`
}
