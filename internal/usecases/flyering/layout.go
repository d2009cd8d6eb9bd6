package flyering

import (
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/backoffice-api/internal/domain"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	gridColumns = 3
	gridRows    = 3

	cellWidth  = 200
	cellHeight = 240

	gridOriginX = 50
	gridOriginY = 50

	columnSpacing = 250
	rowSpacing    = 280
)

// canvasObject é um elemento do layout serializado do volantino. O
// formato segue o canvas usado pelo editor do front.
type canvasObject struct {
	Type      string  `json:"type"`
	Left      int     `json:"left"`
	Top       int     `json:"top"`
	Width     int     `json:"width,omitempty"`
	Height    int     `json:"height,omitempty"`
	Text      string  `json:"text,omitempty"`
	Src       string  `json:"src,omitempty"`
	ProductID int     `json:"product_id,omitempty"`
	FontSize  float64 `json:"fontSize,omitempty"`
}

type canvasLayout struct {
	Objects []canvasObject `json:"objects"`
}

// BuildGridLayout monta o layout padrão de volantino: uma grade 3x3 com
// até nove produtos, cada célula com a imagem, o nome e o preço.
func BuildGridLayout(products []domain.FlyerProduct) json.RawMessage {
	layout := canvasLayout{Objects: make([]canvasObject, 0, gridColumns*gridRows*3)}

	for i, product := range products {
		if i >= gridColumns*gridRows {
			break
		}

		col := i % gridColumns
		row := i / gridColumns

		x := gridOriginX + col*columnSpacing
		y := gridOriginY + row*rowSpacing

		layout.Objects = append(layout.Objects,
			canvasObject{
				Type:      "image",
				Left:      x,
				Top:       y,
				Width:     cellWidth,
				Height:    cellHeight,
				Src:       product.Image,
				ProductID: product.ID,
			},
			canvasObject{
				Type:      "text",
				Left:      x,
				Top:       y + cellHeight + 5,
				Text:      product.Name,
				ProductID: product.ID,
				FontSize:  16,
			},
			canvasObject{
				Type:      "text",
				Left:      x,
				Top:       y + cellHeight + 25,
				Text:      "€ " + product.Price.StringFixed(2),
				ProductID: product.ID,
				FontSize:  20,
			},
		)
	}

	raw, err := jsonCodec.Marshal(layout)
	if err != nil {
		return json.RawMessage(`{"objects":[]}`)
	}

	return raw
}

// NormalizeLayout aceita tanto o envelope {"objects": [...]} quanto uma
// lista solta de objetos, e devolve sempre o envelope. Entradas
// inválidas viram um layout vazio.
func NormalizeLayout(raw json.RawMessage) json.RawMessage {
	empty := json.RawMessage(`{"objects":[]}`)

	if len(raw) == 0 {
		return empty
	}

	var envelope canvasLayout
	if err := jsonCodec.Unmarshal(raw, &envelope); err == nil && envelope.Objects != nil {
		return raw
	}

	var objects []canvasObject
	if err := jsonCodec.Unmarshal(raw, &objects); err == nil {
		normalized, err := jsonCodec.Marshal(canvasLayout{Objects: objects})
		if err != nil {
			return empty
		}
		return normalized
	}

	return empty
}

// ReferencedProductIDs extrai os IDs de produtos referenciados por um
// layout, sem duplicatas e na ordem de aparição.
func ReferencedProductIDs(raw json.RawMessage) []int {
	var envelope canvasLayout
	if err := jsonCodec.Unmarshal(NormalizeLayout(raw), &envelope); err != nil {
		return nil
	}

	seen := make(map[int]bool)
	ids := make([]int, 0)
	for _, object := range envelope.Objects {
		if object.ProductID == 0 || seen[object.ProductID] {
			continue
		}
		seen[object.ProductID] = true
		ids = append(ids, object.ProductID)
	}

	return ids
}
