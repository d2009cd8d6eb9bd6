package reporting

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/backoffice-api/internal/domain"
)

// PercentVariation calcula a variação percentual entre dois totais.
// Quando a base de comparação é zero a variação é indefinida e o
// retorno é nil, nunca um valor inventado.
func PercentVariation(current, previous decimal.Decimal) *float64 {
	if previous.IsZero() {
		return nil
	}

	variation, _ := current.Sub(previous).
		Div(previous).
		Mul(decimal.NewFromInt(100)).
		Float64()

	return &variation
}

// MonthlySeries materializa uma série mensal contínua de exatamente
// window entradas, terminando no último mês calendário completo
// anterior à data de referência. Meses sem faturamento entram zerados.
// O resultado é ordenado do mês mais antigo para o mais recente.
func MonthlySeries(totals []domain.MonthlyTotal, reference time.Time, window int) []domain.MonthlyTotal {
	if window <= 0 {
		return []domain.MonthlyTotal{}
	}

	totalsByPeriod := make(map[string]decimal.Decimal, len(totals))
	for _, t := range totals {
		totalsByPeriod[t.Period()] = t.Total
	}

	// Último mês completo: o mês anterior ao da data de referência.
	anchor := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -1, 0)

	series := make([]domain.MonthlyTotal, window)
	for i := window - 1; i >= 0; i-- {
		entry := domain.MonthlyTotal{
			Month: int(anchor.Month()),
			Year:  anchor.Year(),
			Total: decimal.Zero,
		}

		if total, ok := totalsByPeriod[entry.Period()]; ok {
			entry.Total = total
		}

		series[i] = entry
		anchor = anchor.AddDate(0, -1, 0)
	}

	return series
}

// ZoneBreakdown normaliza os rótulos de zona de um agregado por zona.
// Zonas nulas, vazias ou compostas apenas por espaços são somadas em
// um único grupo "Sconosciuta". O resultado sai em ordem alfabética.
func ZoneBreakdown(rows []domain.ZoneTotal) []domain.ZoneTotal {
	totalsByZone := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		zone := strings.TrimSpace(row.Zone)
		if zone == "" {
			zone = domain.ZoneUnknown
		}
		totalsByZone[zone] = totalsByZone[zone].Add(row.Total)
	}

	breakdown := make([]domain.ZoneTotal, 0, len(totalsByZone))
	for zone, total := range totalsByZone {
		breakdown = append(breakdown, domain.ZoneTotal{Zone: zone, Total: total})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].Zone < breakdown[j].Zone
	})

	return breakdown
}
