package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backoffice-api/infrastructure/repository"
	"github.com/vfg2006/backoffice-api/internal/config"
	"github.com/vfg2006/backoffice-api/internal/domain"
)

// Reporter expõe o painel e as operações de faturamento.
type Reporter interface {
	Dashboard() (*domain.DashboardSummary, error)
	RevenueSeries(window int) ([]domain.MonthlyTotal, error)
	RevenueByZone() ([]domain.ZoneTotal, error)
	RecordRevenue(entry *domain.RevenueEntry) error
	BulkCorrectRevenues(ctx context.Context, entries []*domain.RevenueEntry) error
	ListRevenues(month, year int, zone string) ([]domain.CustomerRevenue, error)
}

type Service struct {
	revenueRepo  repository.RevenueRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	activityRepo repository.ActivityRepository
	cfg          *config.Config
	now          func() time.Time
}

func NewService(
	revenueRepo repository.RevenueRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	activityRepo repository.ActivityRepository,
	cfg *config.Config,
) Reporter {
	return &Service{
		revenueRepo:  revenueRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		activityRepo: activityRepo,
		cfg:          cfg,
		now:          time.Now,
	}
}

// Dashboard monta o painel inicial, ancorado no último mês calendário
// completo anterior à data atual.
func (s *Service) Dashboard() (*domain.DashboardSummary, error) {
	reference := s.now()
	window := s.cfg.App.DashboardSeriesMonths

	totals, err := s.revenueRepo.MonthlyTotalsLastN(window + 1)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar totais mensais: %w", err)
	}

	series := MonthlySeries(totals, reference, window)

	current := series[len(series)-1]
	previous := domain.MonthlyTotal{}
	if len(series) > 1 {
		previous = series[len(series)-2]
	}

	summary := &domain.DashboardSummary{
		ReferencePeriod:  current.Period(),
		CurrentTotal:     current.Total,
		PreviousTotal:    previous.Total,
		PercentVariation: PercentVariation(current.Total, previous.Total),
		RevenueSeries:    series,
	}

	zones, err := s.revenueRepo.TotalsByZone()
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar totais por zona: %w", err)
	}
	summary.ZoneBreakdown = ZoneBreakdown(zones)

	newCustomers, err := s.customerRepo.CountRegisteredSince(reference.AddDate(0, 0, -30))
	if err != nil {
		return nil, fmt.Errorf("erro ao contar clientes novos: %w", err)
	}
	summary.NewCustomers = newCustomers

	monthStart := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, time.UTC)
	added, removed, err := s.productRepo.CountLinksSince(monthStart)
	if err != nil {
		return nil, fmt.Errorf("erro ao contar movimentação de produtos: %w", err)
	}
	summary.ProductsAdded = added
	summary.ProductsRemoved = removed

	counts, notifications, err := s.customerStatusOverview(reference)
	if err != nil {
		return nil, fmt.Errorf("erro ao classificar clientes: %w", err)
	}
	summary.StatusCounts = counts
	summary.Notifications = notifications

	return summary, nil
}

// customerStatusOverview classifica todos os clientes e deriva os avisos
// do painel: ativos com faturamento em atraso e inativos a verificar.
func (s *Service) customerStatusOverview(reference time.Time) (map[domain.CustomerStatus]int, []domain.Notification, error) {
	customers, err := s.customerRepo.ListCustomers("")
	if err != nil {
		return nil, nil, err
	}

	counts := map[domain.CustomerStatus]int{
		domain.CustomerStatusActive:   0,
		domain.CustomerStatusBlocked:  0,
		domain.CustomerStatusInactive: 0,
	}
	notifications := make([]domain.Notification, 0)

	// Um cliente ativo está em dia quando o último lançamento cobre o
	// último mês completo.
	expected := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)

	for _, customer := range customers {
		mostRecent, err := s.revenueRepo.MostRecentEntryDate(customer.ID)
		if err != nil {
			logrus.WithError(err).Warnf("Erro ao consultar último lançamento do cliente %d", customer.ID)
			continue
		}

		status := Classify(mostRecent, reference)
		counts[status]++

		switch status {
		case domain.CustomerStatusActive:
			if mostRecent != nil && mostRecent.Before(expected) {
				notifications = append(notifications, domain.Notification{
					Type:       domain.NotificationRevenueMissing,
					Message:    fmt.Sprintf("Cliente %s está sem faturamento lançado para %02d-%04d", customer.Name, int(expected.Month()), expected.Year()),
					CustomerID: customer.ID,
				})
			}
		case domain.CustomerStatusInactive:
			notifications = append(notifications, domain.Notification{
				Type:       domain.NotificationInactiveCustomer,
				Message:    fmt.Sprintf("Cliente %s está inativo, verificar situação", customer.Name),
				CustomerID: customer.ID,
			})
		}
	}

	return counts, notifications, nil
}

// RevenueSeries retorna a série mensal contínua usada nos gráficos.
func (s *Service) RevenueSeries(window int) ([]domain.MonthlyTotal, error) {
	if window <= 0 {
		window = s.cfg.App.DashboardSeriesMonths
	}

	totals, err := s.revenueRepo.MonthlyTotalsLastN(window + 1)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar totais mensais: %w", err)
	}

	return MonthlySeries(totals, s.now(), window), nil
}

func (s *Service) RevenueByZone() ([]domain.ZoneTotal, error) {
	zones, err := s.revenueRepo.TotalsByZone()
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar totais por zona: %w", err)
	}

	return ZoneBreakdown(zones), nil
}

// RecordRevenue grava o faturamento mensal de um cliente. Reenvios para
// o mesmo período substituem o valor anterior.
func (s *Service) RecordRevenue(entry *domain.RevenueEntry) error {
	if entry.Month < 1 || entry.Month > 12 {
		return fmt.Errorf("mês inválido: %d", entry.Month)
	}

	if entry.Amount.IsNegative() {
		return fmt.Errorf("valor de faturamento não pode ser negativo")
	}

	customer, err := s.customerRepo.GetCustomerByID(entry.CustomerID)
	if err != nil {
		return fmt.Errorf("erro ao consultar cliente: %w", err)
	}
	if customer == nil {
		return fmt.Errorf("cliente não encontrado: %d", entry.CustomerID)
	}

	if err := s.revenueRepo.SaveOrUpdate(entry); err != nil {
		return err
	}

	logErr := s.activityRepo.Log(&domain.ActivityEntry{
		CustomerID: entry.CustomerID,
		Action:     domain.ActivityRevenueUpdated,
		Detail:     fmt.Sprintf("Faturamento de %02d-%04d atualizado para %s", entry.Month, entry.Year, entry.Amount.StringFixed(2)),
	})
	if logErr != nil {
		logrus.WithError(logErr).Warnf("Erro ao registrar atividade do cliente %d", entry.CustomerID)
	}

	return nil
}

// BulkCorrectRevenues aplica uma correção em lote de lançamentos em uma
// única transação.
func (s *Service) BulkCorrectRevenues(ctx context.Context, entries []*domain.RevenueEntry) error {
	for _, entry := range entries {
		if entry.Month < 1 || entry.Month > 12 {
			return fmt.Errorf("mês inválido no lançamento do cliente %d: %d", entry.CustomerID, entry.Month)
		}
		if entry.Amount.IsNegative() {
			return fmt.Errorf("valor negativo no lançamento do cliente %d", entry.CustomerID)
		}
	}

	return s.revenueRepo.BulkSaveOrUpdate(ctx, entries)
}

func (s *Service) ListRevenues(month, year int, zone string) ([]domain.CustomerRevenue, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("mês inválido: %d", month)
	}

	return s.revenueRepo.ListByPeriod(month, year, zone)
}
