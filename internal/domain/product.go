package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Product struct {
	ID           int       `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	CategoryID   int       `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CategoryGroup agrupa os produtos de uma categoria para a listagem do catálogo.
type CategoryGroup struct {
	Category Category  `json:"category"`
	Products []Product `json:"products"`
}

// LinkedProduct é um produto vinculado a um cliente, com a marcação de
// "trabalhado" e os preços praticados para aquele cliente.
type LinkedProduct struct {
	ProductID    int              `json:"product_id"`
	ProductName  string           `json:"product_name"`
	Code         string           `json:"code"`
	Worked       bool             `json:"worked"`
	CurrentPrice *decimal.Decimal `json:"current_price"`
	OfferPrice   *decimal.Decimal `json:"offer_price"`
	LinkedAt     time.Time        `json:"linked_at"`
}

// RemovedProduct é a linha de auditoria gravada quando um produto é
// desvinculado de um cliente.
type RemovedProduct struct {
	ID          int       `json:"id"`
	CustomerID  int       `json:"customer_id"`
	ProductID   int       `json:"product_id"`
	ProductName string    `json:"product_name"`
	RemovedAt   time.Time `json:"removed_at"`
}

// ProductCustomer é um cliente que trabalha um determinado produto.
type ProductCustomer struct {
	CustomerID   int              `json:"customer_id"`
	CustomerName string           `json:"customer_name"`
	Zone         string           `json:"zone"`
	Phone        *string          `json:"phone"`
	Worked       bool             `json:"worked"`
	CurrentPrice *decimal.Decimal `json:"current_price"`
	OfferPrice   *decimal.Decimal `json:"offer_price"`
}
