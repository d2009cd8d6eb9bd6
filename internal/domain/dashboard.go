package domain

import "github.com/shopspring/decimal"

// DashboardSummary é o painel inicial do sistema, ancorado no último
// mês calendário completo.
type DashboardSummary struct {
	ReferencePeriod  string                 `json:"reference_period"`
	CurrentTotal     decimal.Decimal        `json:"current_total"`
	PreviousTotal    decimal.Decimal        `json:"previous_total"`
	PercentVariation *float64               `json:"percent_variation"`
	NewCustomers     int                    `json:"new_customers"`
	StatusCounts     map[CustomerStatus]int `json:"status_counts"`
	ProductsAdded    int                    `json:"products_added"`
	ProductsRemoved  int                    `json:"products_removed"`
	RevenueSeries    []MonthlyTotal         `json:"revenue_series"`
	ZoneBreakdown    []ZoneTotal            `json:"zone_breakdown"`
	Notifications    []Notification         `json:"notifications"`
}

// Notification é um aviso dinâmico exibido no painel.
type Notification struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	CustomerID int    `json:"customer_id,omitempty"`
}

const (
	NotificationRevenueMissing   = "revenue_missing"
	NotificationInactiveCustomer = "inactive_customer"
)
