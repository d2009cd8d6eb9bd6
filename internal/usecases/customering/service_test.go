package customering

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/backoffice-api/infrastructure/repository/mocks"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*customerService, *mocks.MockCustomerRepository, *mocks.MockRevenueRepository, *mocks.MockProductRepository, *mocks.MockActivityRepository) {
	ctrl := gomock.NewController(t)

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	revenueRepo := mocks.NewMockRevenueRepository(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)
	activityRepo := mocks.NewMockActivityRepository(ctrl)

	service := &customerService{
		customerRepo: customerRepo,
		revenueRepo:  revenueRepo,
		productRepo:  productRepo,
		activityRepo: activityRepo,
		now: func() time.Time {
			return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
		},
	}

	return service, customerRepo, revenueRepo, productRepo, activityRepo
}

func TestCreateCustomer(t *testing.T) {
	service, customerRepo, _, _, _ := newTestService(t)

	customer := &domain.Customer{Name: "Ottica Rossi", Zone: "Nord"}

	customerRepo.EXPECT().CreateCustomer(customer).DoAndReturn(func(c *domain.Customer) (*domain.Customer, error) {
		c.ID = 1
		return c, nil
	})

	created, err := service.CreateCustomer(customer)
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	// Sem data informada, a data de cadastro é a data atual.
	assert.Equal(t, time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC), created.RegisteredAt)
}

func TestCreateCustomerRequiresName(t *testing.T) {
	service, _, _, _, _ := newTestService(t)

	_, err := service.CreateCustomer(&domain.Customer{Zone: "Nord"})
	assert.Error(t, err)
}

func TestUpdateCustomerNotFound(t *testing.T) {
	service, customerRepo, _, _, _ := newTestService(t)

	customerRepo.EXPECT().GetCustomerByID(99).Return(nil, nil)

	name := "Ottica Rossi"
	err := service.UpdateCustomer(&domain.UpdateCustomerRequest{ID: 99, Name: &name})
	assert.Error(t, err)
}

func TestUpdateCustomerPartialFields(t *testing.T) {
	service, customerRepo, _, _, _ := newTestService(t)

	customerRepo.EXPECT().GetCustomerByID(1).Return(&domain.Customer{ID: 1, Name: "Ottica Rossi"}, nil)

	zone := "Sud"
	customerRepo.EXPECT().UpdateCustomer(gomock.Any()).DoAndReturn(func(c *domain.Customer) error {
		assert.Equal(t, 1, c.ID)
		assert.Equal(t, "Sud", c.Zone)
		assert.Empty(t, c.Name)
		return nil
	})

	err := service.UpdateCustomer(&domain.UpdateCustomerRequest{ID: 1, Zone: &zone})
	assert.NoError(t, err)
}

func TestGetCustomerCard(t *testing.T) {
	service, customerRepo, revenueRepo, productRepo, activityRepo := newTestService(t)

	customer := &domain.Customer{ID: 1, Name: "Ottica Rossi", Zone: "Nord"}
	recente := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	customerRepo.EXPECT().GetCustomerByID(1).Return(customer, nil)
	revenueRepo.EXPECT().MostRecentEntryDate(1).Return(&recente, nil)
	revenueRepo.EXPECT().TotalByCustomer(1).Return(decimal.NewFromInt(10000), nil)

	// Último mês completo (maio) e o anterior (abril).
	revenueRepo.EXPECT().TotalForPeriod(1, 5, 2024).Return(decimal.NewFromInt(1500), nil)
	revenueRepo.EXPECT().TotalForPeriod(1, 4, 2024).Return(decimal.NewFromInt(1000), nil)

	revenueRepo.EXPECT().HistoryByCustomer(1).Return([]domain.MonthlyTotal{
		{Month: 4, Year: 2024, Total: decimal.NewFromInt(1000)},
		{Month: 5, Year: 2024, Total: decimal.NewFromInt(1500)},
	}, nil)

	productRepo.EXPECT().ListProductsByCustomer(1).Return([]domain.LinkedProduct{
		{ProductID: 3, ProductName: "Lente progressiva", Worked: true},
	}, nil)

	activityRepo.EXPECT().ListByCustomer(1, activityLogLimit).Return([]domain.ActivityEntry{
		{ID: 1, CustomerID: 1, Action: domain.ActivityRevenueUpdated},
	}, nil)

	card, err := service.GetCustomerCard(1)
	require.NoError(t, err)
	require.NotNil(t, card)

	assert.Equal(t, domain.CustomerStatusActive, card.Status)
	assert.True(t, card.TotalRevenue.Equal(decimal.NewFromInt(10000)))
	assert.True(t, card.CurrentMonth.Equal(decimal.NewFromInt(1500)))
	assert.True(t, card.PreviousMonth.Equal(decimal.NewFromInt(1000)))

	require.NotNil(t, card.PercentVariation)
	assert.InDelta(t, 50, *card.PercentVariation, 0.0001)

	assert.Len(t, card.History, 2)
	assert.Len(t, card.Products, 1)
	assert.Len(t, card.ActivityLog, 1)
}

func TestGetCustomerCardWithoutHistory(t *testing.T) {
	service, customerRepo, revenueRepo, productRepo, activityRepo := newTestService(t)

	customerRepo.EXPECT().GetCustomerByID(2).Return(&domain.Customer{ID: 2, Name: "Ottica Bianchi"}, nil)
	revenueRepo.EXPECT().MostRecentEntryDate(2).Return(nil, nil)
	revenueRepo.EXPECT().TotalByCustomer(2).Return(decimal.Zero, nil)
	revenueRepo.EXPECT().TotalForPeriod(2, 5, 2024).Return(decimal.Zero, nil)
	revenueRepo.EXPECT().TotalForPeriod(2, 4, 2024).Return(decimal.Zero, nil)
	revenueRepo.EXPECT().HistoryByCustomer(2).Return([]domain.MonthlyTotal{}, nil)
	productRepo.EXPECT().ListProductsByCustomer(2).Return([]domain.LinkedProduct{}, nil)
	activityRepo.EXPECT().ListByCustomer(2, activityLogLimit).Return([]domain.ActivityEntry{}, nil)

	card, err := service.GetCustomerCard(2)
	require.NoError(t, err)

	assert.Equal(t, domain.CustomerStatusInactive, card.Status)
	assert.Nil(t, card.PercentVariation)
	assert.True(t, card.TotalRevenue.IsZero())
}

func TestGetCustomerCardNotFound(t *testing.T) {
	service, customerRepo, _, _, _ := newTestService(t)

	customerRepo.EXPECT().GetCustomerByID(99).Return(nil, nil)

	card, err := service.GetCustomerCard(99)
	assert.NoError(t, err)
	assert.Nil(t, card)
}

func TestDeleteCustomerRemovesLedger(t *testing.T) {
	service, customerRepo, revenueRepo, _, _ := newTestService(t)

	customerRepo.EXPECT().GetCustomerByID(1).Return(&domain.Customer{ID: 1, Name: "Ottica Rossi"}, nil)
	revenueRepo.EXPECT().DeleteByCustomer(1).Return(nil)
	customerRepo.EXPECT().DeleteCustomer(1).Return(nil)

	err := service.DeleteCustomer(1)
	assert.NoError(t, err)
}

func TestDeleteCustomerNotFound(t *testing.T) {
	service, customerRepo, _, _, _ := newTestService(t)

	customerRepo.EXPECT().GetCustomerByID(99).Return(nil, nil)

	err := service.DeleteCustomer(99)
	assert.Error(t, err)
}

func TestDeleteCustomerLedgerFailureAborts(t *testing.T) {
	service, customerRepo, revenueRepo, _, _ := newTestService(t)

	customerRepo.EXPECT().GetCustomerByID(1).Return(&domain.Customer{ID: 1}, nil)
	revenueRepo.EXPECT().DeleteByCustomer(1).Return(errors.New("deadlock"))

	err := service.DeleteCustomer(1)
	assert.Error(t, err)
}

func TestListZones(t *testing.T) {
	service, customerRepo, _, _, _ := newTestService(t)

	customerRepo.EXPECT().ListZones().Return([]string{"Centro", "Nord", "Sud"}, nil)

	zones, err := service.ListZones()
	require.NoError(t, err)
	assert.Equal(t, []string{"Centro", "Nord", "Sud"}, zones)
}
