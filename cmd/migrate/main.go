package main

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backoffice-api/infrastructure/migration"
	"github.com/vfg2006/backoffice-api/internal/config"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("Iniciando migração do banco de dados")

	if err := migration.Run(cfg.Database.DSN); err != nil {
		logrus.WithError(err).Fatal("Erro ao executar migrações")
	}

	logrus.Info("Migrações aplicadas com sucesso")
}
