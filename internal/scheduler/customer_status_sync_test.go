package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/backoffice-api/infrastructure/repository/mocks"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(t *testing.T) (*CustomerStatusSyncService, *mocks.MockCustomerRepository, *mocks.MockRevenueRepository, *mocks.MockActivityRepository) {
	ctrl := gomock.NewController(t)

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	revenueRepo := mocks.NewMockRevenueRepository(ctrl)
	activityRepo := mocks.NewMockActivityRepository(ctrl)

	service := &CustomerStatusSyncService{
		config: CustomerStatusSyncConfig{
			CronSchedule:      "0 2 * * *",
			MaxConcurrentJobs: 2,
			SyncEnabled:       true,
		},
		customerRepo: customerRepo,
		revenueRepo:  revenueRepo,
		activityRepo: activityRepo,
		now: func() time.Time {
			return time.Date(2024, 6, 15, 2, 0, 0, 0, time.UTC)
		},
	}

	return service, customerRepo, revenueRepo, activityRepo
}

func TestSyncCustomerStatusesBlocksStaleCustomer(t *testing.T) {
	service, customerRepo, revenueRepo, activityRepo := newTestSyncService(t)

	// Último lançamento há mais de 60 dias: o cliente entra na faixa de
	// bloqueio e a flag precisa ser persistida.
	atrasado := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	customerRepo.EXPECT().ListCustomers("").Return([]*domain.Customer{
		{ID: 1, Name: "Ottica Rossi", Blocked: false},
	}, nil)
	revenueRepo.EXPECT().MostRecentEntryDate(1).Return(&atrasado, nil)
	customerRepo.EXPECT().SetBlocked(1, true).Return(nil)
	activityRepo.EXPECT().Log(gomock.Any()).DoAndReturn(func(entry *domain.ActivityEntry) error {
		assert.Equal(t, domain.ActivityStatusChanged, entry.Action)
		assert.Equal(t, 1, entry.CustomerID)
		return nil
	})

	service.syncCustomerStatuses()
}

func TestSyncCustomerStatusesUnblocksRecoveredCustomer(t *testing.T) {
	service, customerRepo, revenueRepo, activityRepo := newTestSyncService(t)

	recente := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	customerRepo.EXPECT().ListCustomers("").Return([]*domain.Customer{
		{ID: 2, Name: "Ottica Bianchi", Blocked: true},
	}, nil)
	revenueRepo.EXPECT().MostRecentEntryDate(2).Return(&recente, nil)
	customerRepo.EXPECT().SetBlocked(2, false).Return(nil)
	activityRepo.EXPECT().Log(gomock.Any()).Return(nil)

	service.syncCustomerStatuses()
}

func TestSyncCustomerStatusesSkipsUnchanged(t *testing.T) {
	service, customerRepo, revenueRepo, _ := newTestSyncService(t)

	recente := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// Cliente ativo e não bloqueado: nada a persistir.
	customerRepo.EXPECT().ListCustomers("").Return([]*domain.Customer{
		{ID: 3, Name: "Ottica Verdi", Blocked: false},
	}, nil)
	revenueRepo.EXPECT().MostRecentEntryDate(3).Return(&recente, nil)

	service.syncCustomerStatuses()
}

func TestSyncCustomerStatusesInactiveIsNotBlocked(t *testing.T) {
	service, customerRepo, revenueRepo, activityRepo := newTestSyncService(t)

	// Cliente inativo há muito tempo que estava bloqueado: a flag de
	// bloqueio é removida, inatividade não é bloqueio.
	antigo := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	customerRepo.EXPECT().ListCustomers("").Return([]*domain.Customer{
		{ID: 4, Name: "Ottica Neri", Blocked: true},
	}, nil)
	revenueRepo.EXPECT().MostRecentEntryDate(4).Return(&antigo, nil)
	customerRepo.EXPECT().SetBlocked(4, false).Return(nil)
	activityRepo.EXPECT().Log(gomock.Any()).Return(nil)

	service.syncCustomerStatuses()
}

func TestSyncCustomerStatusesListError(t *testing.T) {
	service, customerRepo, _, _ := newTestSyncService(t)

	customerRepo.EXPECT().ListCustomers("").Return(nil, errors.New("connection refused"))

	service.syncCustomerStatuses()
}

func TestSyncCustomerStatusesEntryDateErrorContinues(t *testing.T) {
	service, customerRepo, revenueRepo, _ := newTestSyncService(t)

	recente := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	customerRepo.EXPECT().ListCustomers("").Return([]*domain.Customer{
		{ID: 1, Name: "Ottica Rossi"},
		{ID: 2, Name: "Ottica Bianchi"},
	}, nil)
	revenueRepo.EXPECT().MostRecentEntryDate(1).Return(nil, errors.New("timeout"))
	revenueRepo.EXPECT().MostRecentEntryDate(2).Return(&recente, nil)

	// A falha em um cliente não impede o processamento dos demais.
	service.syncCustomerStatuses()
}

func TestGetStatus(t *testing.T) {
	service, _, _, _ := newTestSyncService(t)

	status := service.GetStatus()

	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "0 2 * * *", status["sync_cron"])
	assert.Equal(t, true, status["sync_enabled"])
}
