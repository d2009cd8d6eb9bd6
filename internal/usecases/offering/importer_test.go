package offering

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOfferText(t *testing.T) {
	text := `
LP-100 Lente progressiva 19,90
lm-200 Lente monofocale € 9.50

riga senza prezzo
MT300 Montatura acciaio 89
`

	lines := ParseOfferText(text)
	require.Len(t, lines, 3)

	assert.Equal(t, "LP-100", lines[0].Code)
	assert.Equal(t, "Lente progressiva", lines[0].Description)
	assert.True(t, lines[0].Price.Equal(decimal.NewFromFloat(19.90)))

	// Código em minúsculas é normalizado e o símbolo do euro é aceito.
	assert.Equal(t, "LM-200", lines[1].Code)
	assert.True(t, lines[1].Price.Equal(decimal.NewFromFloat(9.50)))

	assert.Equal(t, "MT300", lines[2].Code)
	assert.True(t, lines[2].Price.Equal(decimal.NewFromInt(89)))
}

func TestParseOfferTextEmpty(t *testing.T) {
	assert.Empty(t, ParseOfferText(""))
	assert.Empty(t, ParseOfferText("solo testo senza formato"))
}

func TestCodeDistance(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{name: "Códigos iguais", a: "LP100", b: "LP100", expected: 0},
		{name: "Um caractere trocado", a: "LP100", b: "LP109", expected: 1},
		{name: "Um caractere a mais", a: "LP100", b: "LP1000", expected: 1},
		{name: "Um caractere a menos", a: "LP100", b: "LP10", expected: 1},
		{name: "Códigos diferentes", a: "LP100", b: "MT300", expected: 4},
		{name: "Primeiro vazio", a: "", b: "LP", expected: 2},
		{name: "Segundo vazio", a: "LP", b: "", expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, codeDistance(tt.a, tt.b))
		})
	}
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "LP100", normalizeCode("lp-100"))
	assert.Equal(t, "LP100", normalizeCode(" LP 100 "))
	assert.Equal(t, "LP100", normalizeCode("LP.1_0/0"))
}
