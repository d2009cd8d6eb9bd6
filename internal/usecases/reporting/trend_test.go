package reporting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/backoffice-api/internal/domain"
)

func TestPercentVariation(t *testing.T) {
	tests := []struct {
		name     string
		current  decimal.Decimal
		previous decimal.Decimal
		expected *float64
	}{
		{
			name:     "Base zero - variação indefinida",
			current:  decimal.NewFromInt(1500),
			previous: decimal.Zero,
			expected: nil,
		},
		{
			name:     "Crescimento de 50 por cento",
			current:  decimal.NewFromInt(150),
			previous: decimal.NewFromInt(100),
			expected: floatPtr(50),
		},
		{
			name:     "Queda de 25 por cento",
			current:  decimal.NewFromInt(75),
			previous: decimal.NewFromInt(100),
			expected: floatPtr(-25),
		},
		{
			name:     "Sem mudança - variação zero",
			current:  decimal.NewFromInt(200),
			previous: decimal.NewFromInt(200),
			expected: floatPtr(0),
		},
		{
			name:     "Queda total - menos 100 por cento",
			current:  decimal.Zero,
			previous: decimal.NewFromInt(320),
			expected: floatPtr(-100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentVariation(tt.current, tt.previous)

			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.InDelta(t, *tt.expected, *got, 0.0001)
		})
	}
}

func TestPercentVariationIsNotRounded(t *testing.T) {
	got := PercentVariation(decimal.NewFromInt(100), decimal.NewFromInt(3))
	require.NotNil(t, got)
	// (100-3)/3*100 = 3233.333...
	assert.InDelta(t, 3233.3333, *got, 0.001)
}

func TestMonthlySeries(t *testing.T) {
	reference := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	totals := []domain.MonthlyTotal{
		{Month: 5, Year: 2024, Total: decimal.NewFromInt(500)},
		{Month: 3, Year: 2024, Total: decimal.NewFromInt(300)},
		{Month: 12, Year: 2023, Total: decimal.NewFromInt(120)},
	}

	series := MonthlySeries(totals, reference, 6)

	require.Len(t, series, 6)

	// A série termina no último mês completo (maio de 2024) e começa
	// seis meses antes (dezembro de 2023), sem buracos.
	assert.Equal(t, "12-2023", series[0].Period())
	assert.Equal(t, "01-2024", series[1].Period())
	assert.Equal(t, "02-2024", series[2].Period())
	assert.Equal(t, "03-2024", series[3].Period())
	assert.Equal(t, "04-2024", series[4].Period())
	assert.Equal(t, "05-2024", series[5].Period())

	// Meses sem lançamento entram zerados.
	assert.True(t, series[0].Total.Equal(decimal.NewFromInt(120)))
	assert.True(t, series[1].Total.IsZero())
	assert.True(t, series[2].Total.IsZero())
	assert.True(t, series[3].Total.Equal(decimal.NewFromInt(300)))
	assert.True(t, series[4].Total.IsZero())
	assert.True(t, series[5].Total.Equal(decimal.NewFromInt(500)))
}

func TestMonthlySeriesExcludesCurrentMonth(t *testing.T) {
	// Lançamentos do mês corrente (ainda incompleto) ficam fora da série.
	reference := time.Date(2024, 6, 30, 23, 59, 0, 0, time.UTC)

	totals := []domain.MonthlyTotal{
		{Month: 6, Year: 2024, Total: decimal.NewFromInt(999)},
		{Month: 5, Year: 2024, Total: decimal.NewFromInt(500)},
	}

	series := MonthlySeries(totals, reference, 3)

	require.Len(t, series, 3)
	assert.Equal(t, "05-2024", series[2].Period())
	assert.True(t, series[2].Total.Equal(decimal.NewFromInt(500)))
}

func TestMonthlySeriesEmptyLedger(t *testing.T) {
	reference := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	series := MonthlySeries(nil, reference, 12)

	require.Len(t, series, 12)
	assert.Equal(t, "01-2023", series[0].Period())
	assert.Equal(t, "12-2023", series[11].Period())
	for _, entry := range series {
		assert.True(t, entry.Total.IsZero())
	}
}

func TestMonthlySeriesCrossesYearBoundary(t *testing.T) {
	reference := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	series := MonthlySeries(nil, reference, 4)

	require.Len(t, series, 4)
	assert.Equal(t, "10-2023", series[0].Period())
	assert.Equal(t, "11-2023", series[1].Period())
	assert.Equal(t, "12-2023", series[2].Period())
	assert.Equal(t, "01-2024", series[3].Period())
}

func TestMonthlySeriesWindowNonPositive(t *testing.T) {
	reference := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, MonthlySeries(nil, reference, 0))
	assert.Empty(t, MonthlySeries(nil, reference, -3))
}

func TestZoneBreakdown(t *testing.T) {
	rows := []domain.ZoneTotal{
		{Zone: "Nord", Total: decimal.NewFromInt(100)},
		{Zone: "", Total: decimal.NewFromInt(40)},
		{Zone: "   ", Total: decimal.NewFromInt(10)},
		{Zone: "Centro", Total: decimal.NewFromInt(70)},
		{Zone: "Sconosciuta", Total: decimal.NewFromInt(5)},
	}

	breakdown := ZoneBreakdown(rows)

	require.Len(t, breakdown, 3)

	// Ordem alfabética e rótulos nulos somados no grupo Sconosciuta.
	assert.Equal(t, "Centro", breakdown[0].Zone)
	assert.Equal(t, "Nord", breakdown[1].Zone)
	assert.Equal(t, domain.ZoneUnknown, breakdown[2].Zone)

	assert.True(t, breakdown[0].Total.Equal(decimal.NewFromInt(70)))
	assert.True(t, breakdown[1].Total.Equal(decimal.NewFromInt(100)))
	assert.True(t, breakdown[2].Total.Equal(decimal.NewFromInt(55)))
}

func TestZoneBreakdownEmpty(t *testing.T) {
	assert.Empty(t, ZoneBreakdown(nil))
}

func floatPtr(f float64) *float64 {
	return &f
}
