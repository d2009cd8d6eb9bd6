package customering

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backoffice-api/infrastructure/repository"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"github.com/vfg2006/backoffice-api/internal/usecases/reporting"
)

const activityLogLimit = 50

// Service expõe o cadastro de clientes e a ficha detalhada com os
// indicadores de faturamento.
type Service interface {
	CreateCustomer(customer *domain.Customer) (*domain.Customer, error)
	UpdateCustomer(req *domain.UpdateCustomerRequest) error
	GetCustomer(customerID int) (*domain.Customer, error)
	GetCustomerCard(customerID int) (*domain.CustomerCard, error)
	ListCustomers(zone string) ([]*domain.Customer, error)
	DeleteCustomer(customerID int) error
	ListZones() ([]string, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
	revenueRepo  repository.RevenueRepository
	productRepo  repository.ProductRepository
	activityRepo repository.ActivityRepository
	now          func() time.Time
}

func NewService(
	customerRepo repository.CustomerRepository,
	revenueRepo repository.RevenueRepository,
	productRepo repository.ProductRepository,
	activityRepo repository.ActivityRepository,
) Service {
	return &customerService{
		customerRepo: customerRepo,
		revenueRepo:  revenueRepo,
		productRepo:  productRepo,
		activityRepo: activityRepo,
		now:          time.Now,
	}
}

func (s *customerService) CreateCustomer(customer *domain.Customer) (*domain.Customer, error) {
	if customer.Name == "" {
		return nil, fmt.Errorf("nome do cliente é obrigatório")
	}

	if customer.RegisteredAt.IsZero() {
		customer.RegisteredAt = s.now()
	}

	created, err := s.customerRepo.CreateCustomer(customer)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente: %w", err)
	}

	return created, nil
}

func (s *customerService) UpdateCustomer(req *domain.UpdateCustomerRequest) error {
	existing, err := s.customerRepo.GetCustomerByID(req.ID)
	if err != nil {
		return fmt.Errorf("erro ao consultar cliente: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("cliente não encontrado: %d", req.ID)
	}

	customer := &domain.Customer{ID: req.ID}

	if req.Name != nil {
		customer.Name = *req.Name
	}

	if req.Zone != nil {
		customer.Zone = *req.Zone
	}

	if req.Phone != nil {
		customer.Phone = req.Phone
	}

	if req.RegisteredAt != nil {
		customer.RegisteredAt = *req.RegisteredAt
	}

	return s.customerRepo.UpdateCustomer(customer)
}

func (s *customerService) GetCustomer(customerID int) (*domain.Customer, error) {
	return s.customerRepo.GetCustomerByID(customerID)
}

// GetCustomerCard monta a ficha do cliente: situação comercial,
// indicadores de faturamento, produtos vinculados e atividades recentes.
func (s *customerService) GetCustomerCard(customerID int) (*domain.CustomerCard, error) {
	customer, err := s.customerRepo.GetCustomerByID(customerID)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar cliente: %w", err)
	}
	if customer == nil {
		return nil, nil
	}

	reference := s.now()

	mostRecent, err := s.revenueRepo.MostRecentEntryDate(customerID)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar último lançamento: %w", err)
	}

	card := &domain.CustomerCard{
		Customer: *customer,
		Status:   reporting.Classify(mostRecent, reference),
	}

	total, err := s.revenueRepo.TotalByCustomer(customerID)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar faturamento acumulado: %w", err)
	}
	card.TotalRevenue = total

	// Os indicadores mensais comparam o último mês completo com o
	// anterior a ele.
	currentPeriod := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	previousPeriod := currentPeriod.AddDate(0, -1, 0)

	current, err := s.revenueRepo.TotalForPeriod(customerID, int(currentPeriod.Month()), currentPeriod.Year())
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar faturamento do mês: %w", err)
	}
	card.CurrentMonth = current

	previous, err := s.revenueRepo.TotalForPeriod(customerID, int(previousPeriod.Month()), previousPeriod.Year())
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar faturamento do mês anterior: %w", err)
	}
	card.PreviousMonth = previous

	card.PercentVariation = reporting.PercentVariation(current, previous)

	history, err := s.revenueRepo.HistoryByCustomer(customerID)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar histórico: %w", err)
	}
	card.History = history

	products, err := s.productRepo.ListProductsByCustomer(customerID)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar produtos do cliente: %w", err)
	}
	card.Products = products

	activities, err := s.activityRepo.ListByCustomer(customerID, activityLogLimit)
	if err != nil {
		logrus.WithError(err).Warnf("Erro ao consultar atividades do cliente %d", customerID)
	} else {
		card.ActivityLog = activities
	}

	return card, nil
}

func (s *customerService) ListCustomers(zone string) ([]*domain.Customer, error) {
	return s.customerRepo.ListCustomers(zone)
}

// DeleteCustomer exclui o cliente e todo o seu histórico de faturamento.
func (s *customerService) DeleteCustomer(customerID int) error {
	customer, err := s.customerRepo.GetCustomerByID(customerID)
	if err != nil {
		return fmt.Errorf("erro ao consultar cliente: %w", err)
	}
	if customer == nil {
		return fmt.Errorf("cliente não encontrado: %d", customerID)
	}

	if err := s.revenueRepo.DeleteByCustomer(customerID); err != nil {
		return fmt.Errorf("erro ao apagar faturamento do cliente: %w", err)
	}

	if err := s.customerRepo.DeleteCustomer(customerID); err != nil {
		return fmt.Errorf("erro ao excluir cliente: %w", err)
	}

	logrus.Infof("Cliente %d (%s) excluído com o histórico de faturamento", customerID, customer.Name)

	return nil
}

func (s *customerService) ListZones() ([]string, error) {
	return s.customerRepo.ListZones()
}
