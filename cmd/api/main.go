package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/googleads/gadsclient"
	"github.com/vfg2006/campaign-manager-api/infrastructure/repository"
	"github.com/vfg2006/campaign-manager-api/internal/api"
	"github.com/vfg2006/campaign-manager-api/internal/config"
	"github.com/vfg2006/campaign-manager-api/internal/scheduler"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/validating"
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

	campaignRepo := repository.NewCampaignRepository(pgConn)

	tokenManager := gadsclient.NewTokenManager(cfg)
	adsClient := gadsclient.NewClient(cfg, tokenManager)
	adsIntegrator := googleads.New(cfg, adsClient)

	if adsIntegrator.IsConfigured() {
		logrus.Info("Integração com o Google Ads configurada")
	} else {
		logrus.Warn("Integração com o Google Ads não configurada. Publicação de campanhas indisponível")
	}

	validator := validating.NewService(validating.DefaultCatalog())

	campaignService := campaigning.NewService(campaignRepo, adsIntegrator, validator)

	// Inicializa o agendador de republicação de campanhas com erro passageiro
	publishRetryService := scheduler.NewPublishRetryService(campaignRepo, campaignService, cfg)

	if err := publishRetryService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de republicação de campanhas")
	} else {
		logrus.Info("Agendador de republicação de campanhas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		campaignService,
		pgConn,
		adsIntegrator,
		publishRetryService,
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
