package flyering

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/backoffice-api/internal/domain"
)

func decodeLayout(t *testing.T, raw json.RawMessage) canvasLayout {
	t.Helper()

	var layout canvasLayout
	require.NoError(t, json.Unmarshal(raw, &layout))
	return layout
}

func TestBuildGridLayout(t *testing.T) {
	products := []domain.FlyerProduct{
		{ID: 1, Name: "Occhiale sole", Price: decimal.NewFromInt(49), Image: "sole.png"},
		{ID: 2, Name: "Lente blu", Price: decimal.NewFromFloat(19.90), Image: "blu.png"},
		{ID: 3, Name: "Montatura", Price: decimal.NewFromInt(89), Image: "mont.png"},
		{ID: 4, Name: "Occhiale vista", Price: decimal.NewFromInt(120), Image: "vista.png"},
	}

	layout := decodeLayout(t, BuildGridLayout(products))

	// Cada produto gera imagem, nome e preço.
	require.Len(t, layout.Objects, 12)

	// Primeiro produto na origem da grade.
	assert.Equal(t, "image", layout.Objects[0].Type)
	assert.Equal(t, 50, layout.Objects[0].Left)
	assert.Equal(t, 50, layout.Objects[0].Top)
	assert.Equal(t, 200, layout.Objects[0].Width)
	assert.Equal(t, 240, layout.Objects[0].Height)
	assert.Equal(t, 1, layout.Objects[0].ProductID)

	// Terceiro produto na terceira coluna da primeira linha.
	assert.Equal(t, 50+2*250, layout.Objects[6].Left)
	assert.Equal(t, 50, layout.Objects[6].Top)

	// Quarto produto abre a segunda linha.
	assert.Equal(t, 50, layout.Objects[9].Left)
	assert.Equal(t, 50+280, layout.Objects[9].Top)

	// O preço é formatado com o símbolo do euro.
	assert.Equal(t, "€ 19.90", layout.Objects[5].Text)
}

func TestBuildGridLayoutCapsAtNineProducts(t *testing.T) {
	products := make([]domain.FlyerProduct, 12)
	for i := range products {
		products[i] = domain.FlyerProduct{ID: i + 1, Name: "Prodotto", Price: decimal.NewFromInt(10)}
	}

	layout := decodeLayout(t, BuildGridLayout(products))
	assert.Len(t, layout.Objects, 27)
}

func TestBuildGridLayoutEmpty(t *testing.T) {
	layout := decodeLayout(t, BuildGridLayout(nil))
	assert.Empty(t, layout.Objects)
}

func TestNormalizeLayout(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{
			name:     "Envelope já normalizado",
			input:    `{"objects":[{"type":"text","left":10,"top":10}]}`,
			expected: 1,
		},
		{
			name:     "Lista solta de objetos",
			input:    `[{"type":"text","left":10,"top":10},{"type":"image","left":20,"top":20}]`,
			expected: 2,
		},
		{
			name:     "JSON inválido vira layout vazio",
			input:    `{invalid`,
			expected: 0,
		},
		{
			name:     "Entrada vazia vira layout vazio",
			input:    ``,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := decodeLayout(t, NormalizeLayout(json.RawMessage(tt.input)))
			assert.Len(t, layout.Objects, tt.expected)
		})
	}
}

func TestReferencedProductIDs(t *testing.T) {
	raw := json.RawMessage(`{"objects":[
		{"type":"image","product_id":3},
		{"type":"text","product_id":3},
		{"type":"image","product_id":7},
		{"type":"text"}
	]}`)

	ids := ReferencedProductIDs(raw)
	assert.Equal(t, []int{3, 7}, ids)
}

func TestReferencedProductIDsInvalidLayout(t *testing.T) {
	assert.Empty(t, ReferencedProductIDs(json.RawMessage(`{broken`)))
}
