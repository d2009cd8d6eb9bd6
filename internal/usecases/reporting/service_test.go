package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/backoffice-api/infrastructure/repository/mocks"
	"github.com/vfg2006/backoffice-api/internal/config"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockRevenueRepository, *mocks.MockCustomerRepository, *mocks.MockProductRepository, *mocks.MockActivityRepository) {
	ctrl := gomock.NewController(t)

	revenueRepo := mocks.NewMockRevenueRepository(ctrl)
	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)
	activityRepo := mocks.NewMockActivityRepository(ctrl)

	cfg := &config.Config{}
	cfg.App.DashboardSeriesMonths = 12

	service := &Service{
		revenueRepo:  revenueRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		activityRepo: activityRepo,
		cfg:          cfg,
		now: func() time.Time {
			return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
		},
	}

	return service, revenueRepo, customerRepo, productRepo, activityRepo
}

func TestDashboard(t *testing.T) {
	service, revenueRepo, customerRepo, productRepo, _ := newTestService(t)

	revenueRepo.EXPECT().MonthlyTotalsLastN(13).Return([]domain.MonthlyTotal{
		{Month: 4, Year: 2024, Total: decimal.NewFromInt(1000)},
		{Month: 5, Year: 2024, Total: decimal.NewFromInt(1500)},
	}, nil)

	revenueRepo.EXPECT().TotalsByZone().Return([]domain.ZoneTotal{
		{Zone: "Nord", Total: decimal.NewFromInt(2500)},
	}, nil)

	customerRepo.EXPECT().CountRegisteredSince(gomock.Any()).Return(2, nil)
	productRepo.EXPECT().CountLinksSince(gomock.Any()).Return(5, 1, nil)

	recente := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	antigo := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)

	customerRepo.EXPECT().ListCustomers("").Return([]*domain.Customer{
		{ID: 1, Name: "Ottica Rossi"},
		{ID: 2, Name: "Ottica Bianchi"},
	}, nil)
	revenueRepo.EXPECT().MostRecentEntryDate(1).Return(&recente, nil)
	revenueRepo.EXPECT().MostRecentEntryDate(2).Return(&antigo, nil)

	summary, err := service.Dashboard()
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, "05-2024", summary.ReferencePeriod)
	assert.True(t, summary.CurrentTotal.Equal(decimal.NewFromInt(1500)))
	assert.True(t, summary.PreviousTotal.Equal(decimal.NewFromInt(1000)))

	require.NotNil(t, summary.PercentVariation)
	assert.InDelta(t, 50, *summary.PercentVariation, 0.0001)

	assert.Len(t, summary.RevenueSeries, 12)
	assert.Equal(t, 2, summary.NewCustomers)
	assert.Equal(t, 5, summary.ProductsAdded)
	assert.Equal(t, 1, summary.ProductsRemoved)

	assert.Equal(t, 1, summary.StatusCounts[domain.CustomerStatusActive])
	assert.Equal(t, 0, summary.StatusCounts[domain.CustomerStatusBlocked])
	assert.Equal(t, 1, summary.StatusCounts[domain.CustomerStatusInactive])

	// O cliente inativo gera um aviso no painel.
	require.Len(t, summary.Notifications, 1)
	assert.Equal(t, domain.NotificationInactiveCustomer, summary.Notifications[0].Type)
	assert.Equal(t, 2, summary.Notifications[0].CustomerID)
}

func TestDashboardNotifiesMissingRevenue(t *testing.T) {
	service, revenueRepo, customerRepo, productRepo, _ := newTestService(t)

	service.now = func() time.Time {
		return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	}

	revenueRepo.EXPECT().MonthlyTotalsLastN(13).Return(nil, nil)
	revenueRepo.EXPECT().TotalsByZone().Return(nil, nil)
	customerRepo.EXPECT().CountRegisteredSince(gomock.Any()).Return(0, nil)
	productRepo.EXPECT().CountLinksSince(gomock.Any()).Return(0, 0, nil)

	// Último lançamento em janeiro: 59 dias depois o cliente ainda é
	// ativo, mas falta o faturamento de fevereiro (último mês completo).
	atrasado := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	customerRepo.EXPECT().ListCustomers("").Return([]*domain.Customer{
		{ID: 7, Name: "Ottica Verdi"},
	}, nil)
	revenueRepo.EXPECT().MostRecentEntryDate(7).Return(&atrasado, nil)

	summary, err := service.Dashboard()
	require.NoError(t, err)

	assert.Equal(t, 1, summary.StatusCounts[domain.CustomerStatusActive])
	require.Len(t, summary.Notifications, 1)
	assert.Equal(t, domain.NotificationRevenueMissing, summary.Notifications[0].Type)
	assert.Equal(t, 7, summary.Notifications[0].CustomerID)
}

func TestDashboardRepositoryError(t *testing.T) {
	service, revenueRepo, _, _, _ := newTestService(t)

	revenueRepo.EXPECT().MonthlyTotalsLastN(13).Return(nil, errors.New("connection refused"))

	summary, err := service.Dashboard()
	assert.Error(t, err)
	assert.Nil(t, summary)
}

func TestRevenueSeriesDefaultWindow(t *testing.T) {
	service, revenueRepo, _, _, _ := newTestService(t)

	revenueRepo.EXPECT().MonthlyTotalsLastN(13).Return(nil, nil)

	series, err := service.RevenueSeries(0)
	require.NoError(t, err)
	assert.Len(t, series, 12)
}

func TestRecordRevenue(t *testing.T) {
	service, revenueRepo, customerRepo, _, activityRepo := newTestService(t)

	entry := &domain.RevenueEntry{
		CustomerID: 1,
		Month:      5,
		Year:       2024,
		Amount:     decimal.NewFromInt(1200),
	}

	customerRepo.EXPECT().GetCustomerByID(1).Return(&domain.Customer{ID: 1, Name: "Ottica Rossi"}, nil)
	revenueRepo.EXPECT().SaveOrUpdate(entry).Return(nil)
	activityRepo.EXPECT().Log(gomock.Any()).Return(nil)

	err := service.RecordRevenue(entry)
	assert.NoError(t, err)
}

func TestRecordRevenueInvalidMonth(t *testing.T) {
	service, _, _, _, _ := newTestService(t)

	err := service.RecordRevenue(&domain.RevenueEntry{CustomerID: 1, Month: 13, Year: 2024})
	assert.Error(t, err)
}

func TestRecordRevenueNegativeAmount(t *testing.T) {
	service, _, _, _, _ := newTestService(t)

	err := service.RecordRevenue(&domain.RevenueEntry{
		CustomerID: 1,
		Month:      5,
		Year:       2024,
		Amount:     decimal.NewFromInt(-10),
	})
	assert.Error(t, err)
}

func TestRecordRevenueCustomerNotFound(t *testing.T) {
	service, _, customerRepo, _, _ := newTestService(t)

	customerRepo.EXPECT().GetCustomerByID(99).Return(nil, nil)

	err := service.RecordRevenue(&domain.RevenueEntry{
		CustomerID: 99,
		Month:      5,
		Year:       2024,
		Amount:     decimal.NewFromInt(100),
	})
	assert.Error(t, err)
}

func TestRecordRevenueActivityLogFailureIsNotFatal(t *testing.T) {
	service, revenueRepo, customerRepo, _, activityRepo := newTestService(t)

	entry := &domain.RevenueEntry{
		CustomerID: 1,
		Month:      5,
		Year:       2024,
		Amount:     decimal.NewFromInt(800),
	}

	customerRepo.EXPECT().GetCustomerByID(1).Return(&domain.Customer{ID: 1}, nil)
	revenueRepo.EXPECT().SaveOrUpdate(entry).Return(nil)
	activityRepo.EXPECT().Log(gomock.Any()).Return(errors.New("tabela indisponível"))

	// O lançamento vale mesmo quando o registro de atividade falha.
	err := service.RecordRevenue(entry)
	assert.NoError(t, err)
}

func TestBulkCorrectRevenues(t *testing.T) {
	service, revenueRepo, _, _, _ := newTestService(t)

	entries := []*domain.RevenueEntry{
		{CustomerID: 1, Month: 4, Year: 2024, Amount: decimal.NewFromInt(100)},
		{CustomerID: 2, Month: 4, Year: 2024, Amount: decimal.NewFromInt(200)},
	}

	revenueRepo.EXPECT().BulkSaveOrUpdate(gomock.Any(), entries).Return(nil)

	err := service.BulkCorrectRevenues(context.Background(), entries)
	assert.NoError(t, err)
}

func TestBulkCorrectRevenuesValidatesAllEntries(t *testing.T) {
	service, _, _, _, _ := newTestService(t)

	entries := []*domain.RevenueEntry{
		{CustomerID: 1, Month: 4, Year: 2024, Amount: decimal.NewFromInt(100)},
		{CustomerID: 2, Month: 0, Year: 2024, Amount: decimal.NewFromInt(200)},
	}

	err := service.BulkCorrectRevenues(context.Background(), entries)
	assert.Error(t, err)
}

func TestListRevenuesInvalidMonth(t *testing.T) {
	service, _, _, _, _ := newTestService(t)

	_, err := service.ListRevenues(0, 2024, "")
	assert.Error(t, err)
}
