package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-analytics-api/infrastructure/integrator/marketplace"
	"github.com/vfg2006/seller-analytics-api/infrastructure/integrator/marketplace/mpclient"
	"github.com/vfg2006/seller-analytics-api/infrastructure/repository"
	"github.com/vfg2006/seller-analytics-api/internal/api"
	"github.com/vfg2006/seller-analytics-api/internal/api/handler"
	"github.com/vfg2006/seller-analytics-api/internal/config"
	"github.com/vfg2006/seller-analytics-api/internal/scheduler"
	"github.com/vfg2006/seller-analytics-api/internal/usecases/account"
	"github.com/vfg2006/seller-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/seller-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/seller-analytics-api/internal/usecases/syncing"
	"github.com/vfg2006/seller-analytics-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	workspaceRepo := repository.NewWorkspaceRepository(pgConn)
	cardRepo := repository.NewCardRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	analyticsRepo := repository.NewAnalyticsRepository(pgConn)
	warehouseRepo := repository.NewWarehouseRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	mpClient := mpclient.NewClient(cfg)
	integrator := marketplace.New(mpClient)

	syncer := syncing.NewAnalyticsSyncer(integrator, workspaceRepo, cardRepo, campaignRepo, analyticsRepo)
	metrics := scheduler.NewMetrics()

	analyticsSyncService := scheduler.NewAnalyticsSyncService(workspaceRepo, syncer, metrics, cfg)
	warehouseSyncService := scheduler.NewWarehouseSyncService(workspaceRepo, warehouseRepo, integrator, metrics, cfg)
	manualSyncService := scheduler.NewManualSyncService(accountRepo, workspaceRepo, syncer, metrics, cfg)

	if err := analyticsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de estatísticas")
	} else {
		logrus.Info("Agendador de estatísticas iniciado com sucesso")
	}

	if err := warehouseSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de armazéns")
	} else {
		logrus.Info("Agendador de armazéns iniciado com sucesso")
	}

	accountService := account.NewService(accountRepo, workspaceRepo)
	reportService := reporting.NewService(
		analyticsRepo,
		reporting.NewValidator(cfg.Reporting.MaxPeriods, cfg.Reporting.MaxPeriodDays),
	)

	server, err := api.New(cfg, api.Services{
		Accounts:      accountService,
		Reports:       reportService,
		Authenticator: authenticator,
		ManualSync:    manualSyncService,
		CronJobs: handler.CronJobServices{
			AnalyticsSyncService: analyticsSyncService,
			WarehouseSyncService: warehouseSyncService,
		},
		MetricsHandler: metrics.Handler(),
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
