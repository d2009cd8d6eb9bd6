package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backoffice-api/infrastructure/database/postgres"
	"github.com/vfg2006/backoffice-api/infrastructure/integrator/whatsapp"
	"github.com/vfg2006/backoffice-api/infrastructure/integrator/whatsapp/whatsappclient"
	"github.com/vfg2006/backoffice-api/infrastructure/repository"
	"github.com/vfg2006/backoffice-api/internal/api"
	"github.com/vfg2006/backoffice-api/internal/config"
	"github.com/vfg2006/backoffice-api/internal/scheduler"
	"github.com/vfg2006/backoffice-api/internal/usecases/authenticating"
	"github.com/vfg2006/backoffice-api/internal/usecases/cataloging"
	"github.com/vfg2006/backoffice-api/internal/usecases/customering"
	"github.com/vfg2006/backoffice-api/internal/usecases/flyering"
	"github.com/vfg2006/backoffice-api/internal/usecases/offering"
	"github.com/vfg2006/backoffice-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	customerRepo := repository.NewCustomerRepository(pgConn)
	revenueRepo := repository.NewRevenueRepository(pgConn)
	categoryRepo := repository.NewCategoryRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	activityRepo := repository.NewActivityRepository(pgConn)
	flyerRepo := repository.NewFlyerRepository(pgConn)
	promoRepo := repository.NewFlashPromoRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	renderClient := config.NewRenderClient(cfg)
	tokenManager := whatsappclient.NewTokenManager(cfg, renderClient)
	go tokenManager.StartAutoRefresh()
	defer tokenManager.StopAutoRefresh()

	whatsappClient := whatsappclient.NewClient(cfg, tokenManager)
	notifier := whatsapp.New(cfg, whatsappClient)

	reportingService := reporting.NewService(revenueRepo, customerRepo, productRepo, activityRepo, cfg)
	customerService := customering.NewService(customerRepo, revenueRepo, productRepo, activityRepo)
	catalogService := cataloging.NewService(categoryRepo, productRepo, customerRepo, activityRepo)
	flyerService := flyering.NewService(flyerRepo, promoRepo)
	offerService := offering.NewService(productRepo, customerRepo, notifier, cfg)

	// Agendador diário que reclassifica a situação comercial dos clientes
	statusSyncService := scheduler.NewCustomerStatusSyncService(
		customerRepo,
		revenueRepo,
		activityRepo,
		cfg,
	)

	if err := statusSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de status de clientes")
	} else {
		logrus.Info("Agendador de status de clientes iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		reportingService,
		customerService,
		catalogService,
		flyerService,
		offerService,
		statusSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
