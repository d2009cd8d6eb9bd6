package domain

import "github.com/shopspring/decimal"

// OfferLine é uma linha extraída de um texto de oferta no formato
// "CODIGO descrição ... PREÇO".
type OfferLine struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// OfferMatch é uma linha de oferta casada com um produto do catálogo.
type OfferMatch struct {
	Line     OfferLine `json:"line"`
	Product  Product   `json:"product"`
	Distance int       `json:"distance"`
}

// OfferImportResult é o resultado do processamento de um texto de oferta.
type OfferImportResult struct {
	Matched   []OfferMatch `json:"matched"`
	Unmatched []OfferLine  `json:"unmatched"`
}

// OfferBroadcastResult resume o envio de uma oferta por WhatsApp.
type OfferBroadcastResult struct {
	Recipients int `json:"recipients"`
	Sent       int `json:"sent"`
	Failed     int `json:"failed"`
}
