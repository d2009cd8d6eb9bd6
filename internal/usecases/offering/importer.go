package offering

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/backoffice-api/internal/domain"
)

// offerLinePattern reconhece linhas no formato "CODIGO descrição PREÇO".
// O preço aceita vírgula ou ponto como separador decimal e um símbolo
// de euro opcional.
var offerLinePattern = regexp.MustCompile(`^\s*([A-Za-z0-9][A-Za-z0-9\-._/]*)\s+(.+?)\s+€?\s*(\d+(?:[.,]\d{1,2})?)\s*€?\s*$`)

// ParseOfferText extrai as linhas de oferta de um texto colado pelo
// usuário. Linhas que não seguem o formato são ignoradas.
func ParseOfferText(text string) []domain.OfferLine {
	lines := make([]domain.OfferLine, 0)

	for _, raw := range strings.Split(text, "\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		groups := offerLinePattern.FindStringSubmatch(raw)
		if groups == nil {
			continue
		}

		price, err := decimal.NewFromString(strings.ReplaceAll(groups[3], ",", "."))
		if err != nil {
			continue
		}

		lines = append(lines, domain.OfferLine{
			Code:        strings.ToUpper(groups[1]),
			Description: strings.TrimSpace(groups[2]),
			Price:       price,
		})
	}

	return lines
}
