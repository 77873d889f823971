package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/flux-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/flux-sync-api/infrastructure/integrator/meta"
	"github.com/vfg2006/flux-sync-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/flux-sync-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/flux-sync-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/flux-sync-api/infrastructure/repository"
	"github.com/vfg2006/flux-sync-api/internal/api"
	"github.com/vfg2006/flux-sync-api/internal/config"
	"github.com/vfg2006/flux-sync-api/internal/scheduler"
	"github.com/vfg2006/flux-sync-api/internal/usecases/syncing"
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

	fluxRepo := repository.NewFluxRepository(pgConn)

	// Fábricas de clientes vinculados a credenciais: cada flux recebe
	// instâncias próprias, nada de credencial compartilhada entre tenants
	newExtractor := func(accessToken string) syncing.Extractor {
		return meta.New(cfg, metaclient.NewClient(cfg, accessToken))
	}

	newWriter := func(refreshToken string) syncing.Writer {
		return sheets.New(cfg, sheetsclient.NewClient(cfg, refreshToken))
	}

	syncService := syncing.NewService(cfg, fluxRepo, newExtractor, newWriter)

	// Inicializa o agendador de sincronização de fluxes
	fluxSyncService := scheduler.NewFluxSyncService(syncService, cfg)

	// Inicia o agendador em background
	if err := fluxSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de fluxes")
	} else {
		logrus.Info("Agendador de sincronização de fluxes iniciado com sucesso")
	}

	server, err := api.New(cfg, fluxSyncService)
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
