package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-analytics-api/infrastructure/integrator/marketplace"
	"github.com/vfg2006/seller-analytics-api/infrastructure/repository"
	"github.com/vfg2006/seller-analytics-api/internal/config"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
	"github.com/vfg2006/seller-analytics-api/internal/usecases/syncing"
	"github.com/vfg2006/seller-analytics-api/pkg/log"
	"github.com/vfg2006/seller-analytics-api/pkg/utils"
)

type WarehouseSyncConfig struct {
	CronSchedule string
	Workers      int
	QueueSize    int
	AccountRole  int
	SyncEnabled  bool
}

// WarehouseSyncService atualiza diariamente a lista de armazéns de cada workspace
type WarehouseSyncService struct {
	scheduler     *gocron.Scheduler
	config        WarehouseSyncConfig
	workspaceRepo repository.WorkspaceRepository
	warehouseRepo repository.WarehouseRepository
	integrator    marketplace.Integrator
	metrics       *Metrics
	now           func() time.Time
	state         jobState
}

func NewWarehouseSyncService(
	workspaceRepo repository.WorkspaceRepository,
	warehouseRepo repository.WarehouseRepository,
	integrator marketplace.Integrator,
	metrics *Metrics,
	appConfig *config.Config,
) *WarehouseSyncService {
	syncConfig := WarehouseSyncConfig{
		CronSchedule: appConfig.WarehouseSync.CronSchedule,
		Workers:      appConfig.WarehouseSync.Workers,
		QueueSize:    appConfig.WarehouseSync.QueueSize,
		AccountRole:  appConfig.WarehouseSync.AccountRole,
		SyncEnabled:  appConfig.WarehouseSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"workers":       syncConfig.Workers,
		"queue_size":    syncConfig.QueueSize,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de armazéns carregada")

	return &WarehouseSyncService{
		scheduler:     gocron.NewScheduler(time.Local),
		config:        syncConfig,
		workspaceRepo: workspaceRepo,
		warehouseRepo: warehouseRepo,
		integrator:    integrator,
		metrics:       metrics,
		now:           time.Now,
	}
}

func (s *WarehouseSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de armazéns desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de armazéns")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunScheduledWarehouseSync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de armazéns: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de armazéns")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *WarehouseSyncService) RunScheduledWarehouseSync(ctx context.Context) domain.RunSummary {
	if !s.state.tryAcquire() {
		logrus.WithField(log.FieldJob, domain.SyncJobWarehouses).Info("Sincronização de armazéns já em andamento, ignorando")
		return domain.RunSummary{Job: domain.SyncJobWarehouses}
	}

	summary := s.run(ctx)
	s.state.release(summary)
	return summary
}

func (s *WarehouseSyncService) TriggerRun(ctx context.Context) error {
	if !s.state.tryAcquire() {
		return ErrSyncAlreadyRunning
	}

	runCtx := context.WithoutCancel(ctx)
	go func() {
		summary := s.run(runCtx)
		s.state.release(summary)
	}()

	return nil
}

func (s *WarehouseSyncService) run(ctx context.Context) domain.RunSummary {
	ctx = log.WithRunID(ctx, utils.NewRunID())
	logger := log.ForJob(ctx, string(domain.SyncJobWarehouses))

	summary := domain.RunSummary{
		Job:       domain.SyncJobWarehouses,
		StartedAt: s.now(),
	}

	workspaces, err := s.workspaceRepo.ListEligible(ctx, s.config.AccountRole)
	if err != nil {
		logger.WithError(err).Error("Erro ao listar workspaces para sincronização de armazéns")
		summary.FinishedAt = s.now()
		return summary
	}

	if len(workspaces) == 0 {
		logger.Info("Nenhum workspace elegível para sincronização de armazéns")
		summary.FinishedAt = s.now()
		return summary
	}

	logger.WithField("workspaces", len(workspaces)).Info("Iniciando sincronização de armazéns")

	pool := NewPool(s.config.Workers, s.config.QueueSize)
	dispatch(ctx, domain.SyncJobWarehouses, pool, s.metrics, workspaces, s.syncWarehouses, &summary)

	summary.FinishedAt = s.now()
	s.metrics.ObserveRun(summary)

	logger.WithFields(log.Fields{
		"processed":   summary.Processed,
		"succeeded":   summary.Succeeded,
		"failed":      summary.Failed,
		"skipped":     summary.Skipped,
		"duration_ms": summary.Duration().Milliseconds(),
	}).Info("Sincronização de armazéns concluída")

	return summary
}

// syncWarehouses ignora workspaces com chave em branco sem contar como falha
func (s *WarehouseSyncService) syncWarehouses(ctx context.Context, ws *domain.Workspace) (domain.SyncOutcome, error) {
	if !ws.HasAPIKey() {
		log.ForWorkspace(ctx, string(domain.SyncJobWarehouses), ws.ID).Debug("Workspace sem chave de API, ignorado")
		return domain.SyncOutcomeSkipped, nil
	}

	warehouses, err := s.integrator.GetWarehouses(ctx, *ws.APIKey)
	if err != nil {
		return domain.SyncOutcomeFailed, syncing.NewTransientError(ws.ID, syncing.StageWarehouses, err)
	}

	if err := s.warehouseRepo.Upsert(ctx, ws.ID, warehouses); err != nil {
		return domain.SyncOutcomeFailed, syncing.NewTransientError(ws.ID, syncing.StageStore, err)
	}

	return domain.SyncOutcomeSucceeded, nil
}

func (s *WarehouseSyncService) GetStatus() map[string]any {
	running, last := s.state.snapshot()
	return map[string]any{
		"sync_enabled": s.config.SyncEnabled,
		"sync_cron":    s.config.CronSchedule,
		"workers":      s.config.Workers,
		"queue_size":   s.config.QueueSize,
		"running":      running,
		"last_run":     last,
	}
}
