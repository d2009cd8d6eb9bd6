package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/backoffice-api/internal/domain"
)

func TestClassify(t *testing.T) {
	today := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	datePtr := func(year int, month time.Month, day int) *time.Time {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		return &d
	}

	tests := []struct {
		name       string
		mostRecent *time.Time
		expected   domain.CustomerStatus
	}{
		{
			name:       "Sem histórico de faturamento - inativo",
			mostRecent: nil,
			expected:   domain.CustomerStatusInactive,
		},
		{
			name:       "Faturamento no mesmo dia - ativo",
			mostRecent: datePtr(2024, 6, 15),
			expected:   domain.CustomerStatusActive,
		},
		{
			name:       "Exatamente 60 dias - ainda ativo",
			mostRecent: datePtr(2024, 4, 16),
			expected:   domain.CustomerStatusActive,
		},
		{
			name:       "61 dias - entra na faixa de bloqueio",
			mostRecent: datePtr(2024, 4, 15),
			expected:   domain.CustomerStatusBlocked,
		},
		{
			name:       "Exatamente 91 dias - ainda bloqueado",
			mostRecent: datePtr(2024, 3, 16),
			expected:   domain.CustomerStatusBlocked,
		},
		{
			name:       "92 dias - inativo",
			mostRecent: datePtr(2024, 3, 15),
			expected:   domain.CustomerStatusInactive,
		},
		{
			name:       "Data no futuro - tratada como ativo",
			mostRecent: datePtr(2024, 7, 1),
			expected:   domain.CustomerStatusActive,
		},
		{
			name:       "Histórico muito antigo - inativo",
			mostRecent: datePtr(2020, 1, 1),
			expected:   domain.CustomerStatusInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.mostRecent, today))
		})
	}
}

func TestClassifyIgnoresTimeOfDay(t *testing.T) {
	// O horário não pode mudar a contagem de dias: 23h59 do mesmo dia
	// conta como zero dias decorridos.
	mostRecent := time.Date(2024, 6, 15, 23, 59, 59, 0, time.UTC)
	today := time.Date(2024, 6, 15, 0, 0, 1, 0, time.UTC)

	assert.Equal(t, domain.CustomerStatusActive, Classify(&mostRecent, today))
}

func TestClassifyBoundaryIsStableAcrossHours(t *testing.T) {
	// A transição de 60 para 61 dias depende apenas da data de calendário.
	mostRecent := time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC)

	day60 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	day61 := time.Date(2024, 3, 2, 23, 0, 0, 0, time.UTC)

	assert.Equal(t, domain.CustomerStatusActive, Classify(&mostRecent, day60))
	assert.Equal(t, domain.CustomerStatusBlocked, Classify(&mostRecent, day61))
}
