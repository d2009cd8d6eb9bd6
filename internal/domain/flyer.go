package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Flyer é um volantino: um encarte com título, imagem de fundo e um
// layout de canvas serializado como JSON.
type Flyer struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Background string          `json:"background"`
	Layout     json.RawMessage `json:"layout"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// FlyerProduct é um produto disponível para composição de volantini.
// A exclusão é lógica: produtos deletados podem ser reativados quando
// voltam a ser referenciados por um layout.
type FlyerProduct struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Deleted   bool            `json:"deleted"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// FlashPromo é uma promo lampo: uma arte avulsa de oferta relâmpago.
type FlashPromo struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Image      string          `json:"image"`
	Background string          `json:"background"`
	Layout     json.RawMessage `json:"layout"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
