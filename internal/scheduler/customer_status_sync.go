package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backoffice-api/infrastructure/repository"
	"github.com/vfg2006/backoffice-api/internal/config"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"github.com/vfg2006/backoffice-api/internal/usecases/reporting"
)

// CustomerStatusSyncConfig representa a configuração do agendador de status de clientes
type CustomerStatusSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// CustomerStatusSyncService reavalia diariamente a situação comercial
// de cada cliente e persiste a flag de bloqueio derivada do último
// faturamento.
type CustomerStatusSyncService struct {
	scheduler           *gocron.Scheduler
	config              CustomerStatusSyncConfig
	appConfig           *config.Config
	customerRepo        repository.CustomerRepository
	revenueRepo         repository.RevenueRepository
	activityRepo        repository.ActivityRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	now                 func() time.Time
}

// NewCustomerStatusSyncService cria uma nova instância do serviço de sincronização de status
func NewCustomerStatusSyncService(
	customerRepo repository.CustomerRepository,
	revenueRepo repository.RevenueRepository,
	activityRepo repository.ActivityRepository,
	appConfig *config.Config,
) *CustomerStatusSyncService {
	// Criar a configuração com base na config global
	statusConfig := CustomerStatusSyncConfig{
		CronSchedule:      appConfig.StatusSync.CronSchedule,
		MaxConcurrentJobs: appConfig.StatusSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.StatusSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       statusConfig.CronSchedule,
		"max_concurrent_jobs": statusConfig.MaxConcurrentJobs,
		"sync_enabled":        statusConfig.SyncEnabled,
	}).Info("Configuração do agendador de status de clientes carregada")

	return &CustomerStatusSyncService{
		scheduler:    scheduler,
		config:       statusConfig,
		appConfig:    appConfig,
		customerRepo: customerRepo,
		revenueRepo:  revenueRepo,
		activityRepo: activityRepo,
		syncRunning:  false,
		now:          time.Now,
	}
}

// Start inicia o agendador
func (s *CustomerStatusSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de status de clientes desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de status de clientes")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncCustomerStatuses()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de status de clientes: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de status de clientes")
		s.scheduler.Stop()
	}()

	return nil
}

// syncCustomerStatuses reclassifica todos os clientes
func (s *CustomerStatusSyncService) syncCustomerStatuses() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de status já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := s.now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de status de todos os clientes")

	customers, err := s.customerRepo.ListCustomers("")
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar clientes para sincronização de status")
		return
	}

	if len(customers) == 0 {
		logrus.Info("Nenhum cliente encontrado para sincronização de status")
		return
	}

	s.processCustomers(customers, startTime)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"customers": len(customers),
	}).Info("Sincronização de status de clientes concluída")

	s.lastSyncCompletedAt = s.now()
}

// processCustomers reclassifica os clientes com limite de concorrência
func (s *CustomerStatusSyncService) processCustomers(customers []*domain.Customer, reference time.Time) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, customer := range customers {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(customer *domain.Customer) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			if err := s.processCustomerStatus(customer, reference); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"customer_id":   customer.ID,
					"customer_name": customer.Name,
				}).Error("Erro ao processar status do cliente")
			}
		}(customer)
	}

	wg.Wait()
}

// processCustomerStatus reclassifica um cliente e persiste a flag de
// bloqueio quando ela muda
func (s *CustomerStatusSyncService) processCustomerStatus(customer *domain.Customer, reference time.Time) error {
	mostRecent, err := s.revenueRepo.MostRecentEntryDate(customer.ID)
	if err != nil {
		return fmt.Errorf("erro ao consultar último lançamento: %w", err)
	}

	status := reporting.Classify(mostRecent, reference)
	blocked := status == domain.CustomerStatusBlocked

	if blocked == customer.Blocked {
		return nil
	}

	if err := s.customerRepo.SetBlocked(customer.ID, blocked); err != nil {
		return fmt.Errorf("erro ao atualizar flag de bloqueio: %w", err)
	}

	detail := fmt.Sprintf("Situação alterada para %s", status)
	logErr := s.activityRepo.Log(&domain.ActivityEntry{
		CustomerID: customer.ID,
		Action:     domain.ActivityStatusChanged,
		Detail:     detail,
	})
	if logErr != nil {
		logrus.WithError(logErr).Warnf("Erro ao registrar mudança de status do cliente %d", customer.ID)
	}

	logrus.WithFields(logrus.Fields{
		"customer_id":   customer.ID,
		"customer_name": customer.Name,
		"status":        status,
		"blocked":       blocked,
	}).Info("Status do cliente atualizado")

	return nil
}

// TriggerManualSync inicia manualmente uma sincronização de status
func (s *CustomerStatusSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de status já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de status de clientes")
	go s.syncCustomerStatuses()
}

// GetStatus retorna o status atual da sincronização
func (s *CustomerStatusSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
