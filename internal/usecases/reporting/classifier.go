package reporting

import (
	"time"

	"github.com/vfg2006/backoffice-api/internal/domain"
)

// Limites, em dias corridos, das faixas de classificação de clientes.
const (
	activeMaxDays  = 60
	blockedMaxDays = 91
)

// Classify deriva a situação de um cliente a partir da data do último
// faturamento registrado. Clientes sem histórico são inativos. Até 60
// dias o cliente é ativo, de 61 a 91 dias é bloqueado e acima disso é
// inativo. Datas no futuro contam como zero dias decorridos.
func Classify(mostRecent *time.Time, today time.Time) domain.CustomerStatus {
	if mostRecent == nil {
		return domain.CustomerStatusInactive
	}

	days := daysBetween(*mostRecent, today)
	if days < 0 {
		days = 0
	}

	switch {
	case days <= activeMaxDays:
		return domain.CustomerStatusActive
	case days <= blockedMaxDays:
		return domain.CustomerStatusBlocked
	default:
		return domain.CustomerStatusInactive
	}
}

// daysBetween calcula a diferença em dias de calendário entre duas datas,
// ignorando o horário.
func daysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}
