package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-analytics-api/infrastructure/repository"
	"github.com/vfg2006/seller-analytics-api/internal/config"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
	"github.com/vfg2006/seller-analytics-api/internal/usecases/syncing"
	"github.com/vfg2006/seller-analytics-api/pkg/log"
	"github.com/vfg2006/seller-analytics-api/pkg/utils"
)

// AnalyticsSyncConfig representa a configuração do agendador de estatísticas
type AnalyticsSyncConfig struct {
	CronSchedule string
	LookbackDays int
	Workers      int
	QueueSize    int
	AccountRole  int
	SyncEnabled  bool
}

// AnalyticsSyncService agenda e executa a sincronização diária de cartões, campanhas e estatísticas
type AnalyticsSyncService struct {
	scheduler     *gocron.Scheduler
	config        AnalyticsSyncConfig
	workspaceRepo repository.WorkspaceRepository
	syncer        syncing.WorkspaceSyncer
	metrics       *Metrics
	now           func() time.Time
	state         jobState
}

func NewAnalyticsSyncService(
	workspaceRepo repository.WorkspaceRepository,
	syncer syncing.WorkspaceSyncer,
	metrics *Metrics,
	appConfig *config.Config,
) *AnalyticsSyncService {
	syncConfig := AnalyticsSyncConfig{
		CronSchedule: appConfig.AnalyticsSync.CronSchedule,
		LookbackDays: appConfig.AnalyticsSync.LookbackDays,
		Workers:      appConfig.AnalyticsSync.Workers,
		QueueSize:    appConfig.AnalyticsSync.QueueSize,
		AccountRole:  appConfig.AnalyticsSync.AccountRole,
		SyncEnabled:  appConfig.AnalyticsSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"workers":       syncConfig.Workers,
		"queue_size":    syncConfig.QueueSize,
		"account_role":  syncConfig.AccountRole,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de estatísticas carregada")

	return &AnalyticsSyncService{
		scheduler:     gocron.NewScheduler(time.Local),
		config:        syncConfig,
		workspaceRepo: workspaceRepo,
		syncer:        syncer,
		metrics:       metrics,
		now:           time.Now,
	}
}

// Start inicia o agendador
func (s *AnalyticsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de estatísticas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de estatísticas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunScheduledAnalyticsSync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de estatísticas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de estatísticas")
		s.scheduler.Stop()
	}()

	return nil
}

// RunScheduledAnalyticsSync sincroniza todos os workspaces elegíveis. Execuções sobrepostas são ignoradas.
func (s *AnalyticsSyncService) RunScheduledAnalyticsSync(ctx context.Context) domain.RunSummary {
	if !s.state.tryAcquire() {
		logrus.WithField(log.FieldJob, domain.SyncJobAnalytics).Info("Sincronização de estatísticas já em andamento, ignorando")
		return domain.RunSummary{Job: domain.SyncJobAnalytics}
	}

	summary := s.run(ctx)
	s.state.release(summary)
	return summary
}

// TriggerRun dispara a execução em segundo plano (rota administrativa)
func (s *AnalyticsSyncService) TriggerRun(ctx context.Context) error {
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

func (s *AnalyticsSyncService) run(ctx context.Context) domain.RunSummary {
	ctx = log.WithRunID(ctx, utils.NewRunID())
	logger := log.ForJob(ctx, string(domain.SyncJobAnalytics))

	now := s.now()
	summary := domain.RunSummary{
		Job:       domain.SyncJobAnalytics,
		Window:    domain.TrailingWindow(now, s.config.LookbackDays),
		StartedAt: now,
	}

	workspaces, err := s.workspaceRepo.ListEligible(ctx, s.config.AccountRole)
	if err != nil {
		logger.WithError(err).Error("Erro ao listar workspaces para sincronização de estatísticas")
		summary.FinishedAt = s.now()
		return summary
	}

	if len(workspaces) == 0 {
		logger.Info("Nenhum workspace elegível para sincronização de estatísticas")
		summary.FinishedAt = s.now()
		return summary
	}

	logger.WithFields(log.Fields{
		"workspaces": len(workspaces),
		"date_from":  summary.Window.From.Format(time.DateOnly),
		"date_to":    summary.Window.To.Format(time.DateOnly),
	}).Info("Iniciando sincronização de estatísticas")

	pool := NewPool(s.config.Workers, s.config.QueueSize)
	dispatch(ctx, domain.SyncJobAnalytics, pool, s.metrics, workspaces, func(ctx context.Context, ws *domain.Workspace) (domain.SyncOutcome, error) {
		if err := s.syncer.SyncWorkspaceAnalytics(ctx, ws, summary.Window); err != nil {
			return domain.SyncOutcomeFailed, err
		}
		return domain.SyncOutcomeSucceeded, nil
	}, &summary)

	summary.FinishedAt = s.now()
	s.metrics.ObserveRun(summary)

	logger.WithFields(log.Fields{
		"processed":   summary.Processed,
		"succeeded":   summary.Succeeded,
		"failed":      summary.Failed,
		"duration_ms": summary.Duration().Milliseconds(),
	}).Info("Sincronização de estatísticas concluída")

	return summary
}

// GetStatus retorna o status atual do agendador
func (s *AnalyticsSyncService) GetStatus() map[string]any {
	running, last := s.state.snapshot()
	return map[string]any{
		"sync_enabled":  s.config.SyncEnabled,
		"sync_cron":     s.config.CronSchedule,
		"lookback_days": s.config.LookbackDays,
		"workers":       s.config.Workers,
		"queue_size":    s.config.QueueSize,
		"running":       running,
		"last_run":      last,
	}
}
