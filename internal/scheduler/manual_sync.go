package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/seller-analytics-api/infrastructure/repository"
	"github.com/vfg2006/seller-analytics-api/internal/config"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
	"github.com/vfg2006/seller-analytics-api/internal/usecases/syncing"
	"github.com/vfg2006/seller-analytics-api/pkg/log"
)

// Resultados da atualização manual usados nas métricas
const (
	manualOutcomeSucceeded   = "succeeded"
	manualOutcomeRateLimited = "rate_limited"
	manualOutcomeFailed      = "failed"
	manualOutcomeRejected    = "rejected"
)

// ManualSyncService atende a atualização sob demanda de um workspace
type ManualSyncService struct {
	accountRepo   repository.AccountRepository
	workspaceRepo repository.WorkspaceRepository
	syncer        syncing.WorkspaceSyncer
	metrics       *Metrics
	minInterval   time.Duration
	lookbackDays  int
	now           func() time.Time
}

func NewManualSyncService(
	accountRepo repository.AccountRepository,
	workspaceRepo repository.WorkspaceRepository,
	syncer syncing.WorkspaceSyncer,
	metrics *Metrics,
	appConfig *config.Config,
) *ManualSyncService {
	return &ManualSyncService{
		accountRepo:   accountRepo,
		workspaceRepo: workspaceRepo,
		syncer:        syncer,
		metrics:       metrics,
		minInterval:   appConfig.ManualSync.MinInterval,
		lookbackDays:  appConfig.AnalyticsSync.LookbackDays,
		now:           time.Now,
	}
}

// TriggerManualSync atualiza o workspace padrão da conta
func (s *ManualSyncService) TriggerManualSync(ctx context.Context, accountID string) error {
	acc, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("erro ao buscar conta %s: %w", accountID, err)
	}
	if acc == nil {
		s.metrics.ObserveManual(manualOutcomeRejected)
		return syncing.ErrAccountNotFound
	}

	ws, err := s.workspaceRepo.GetDefaultByAccountID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("erro ao buscar workspace padrão da conta %s: %w", accountID, err)
	}
	if ws == nil {
		s.metrics.ObserveManual(manualOutcomeRejected)
		return syncing.ErrWorkspaceNotFound
	}

	return s.trigger(ctx, ws)
}

func (s *ManualSyncService) TriggerManualSyncForWorkspace(ctx context.Context, workspaceID string) error {
	ws, err := s.workspaceRepo.GetByID(ctx, workspaceID)
	if err != nil {
		return fmt.Errorf("erro ao buscar workspace %s: %w", workspaceID, err)
	}
	if ws == nil {
		s.metrics.ObserveManual(manualOutcomeRejected)
		return syncing.ErrWorkspaceNotFound
	}

	return s.trigger(ctx, ws)
}

// trigger separa o claim (update condicional dos timestamps observados) da sincronização.
// Se a sincronização falhar, o claim é desfeito.
func (s *ManualSyncService) trigger(ctx context.Context, ws *domain.Workspace) (err error) {
	logger := log.ForWorkspace(ctx, string(domain.SyncJobManual), ws.ID)

	if !ws.HasAPIKey() {
		s.metrics.ObserveManual(manualOutcomeRejected)
		return syncing.ErrWorkspaceWithoutAPIKey
	}

	now := s.now()
	if err := syncing.CheckInterval(ws.LastDataUpdateAt, ws.LastDataUpdateRequestedAt, now, s.minInterval); err != nil {
		s.metrics.ObserveManual(manualOutcomeRateLimited)
		logger.WithError(err).Info("Atualização manual recusada pelo intervalo mínimo")
		return err
	}

	claimed, err := s.workspaceRepo.ClaimDataUpdate(ctx, ws, now)
	if err != nil {
		s.metrics.ObserveManual(manualOutcomeFailed)
		return fmt.Errorf("erro ao registrar solicitação de atualização: %w", err)
	}
	if !claimed {
		// outra requisição registrou a solicitação entre a leitura e o update
		s.metrics.ObserveManual(manualOutcomeRateLimited)
		logger.Info("Atualização manual concorrente detectada")
		return syncing.NewRateLimitError(int((s.interval() + time.Hour - 1) / time.Hour))
	}

	defer func() {
		if r := recover(); r != nil {
			err = syncing.UnexpectedError(r)
			logger.WithError(err).Error("Panic na atualização manual")
		}
		if err != nil {
			s.metrics.ObserveManual(manualOutcomeFailed)
			s.releaseClaim(ctx, ws, now)
			return
		}
		s.metrics.ObserveManual(manualOutcomeSucceeded)
	}()

	window := domain.TrailingWindow(now, s.lookbackDays)
	logger.WithFields(log.Fields{
		"date_from": window.From.Format(time.DateOnly),
		"date_to":   window.To.Format(time.DateOnly),
	}).Info("Iniciando atualização manual")

	if err := s.syncer.SyncWorkspaceAnalytics(ctx, ws, window); err != nil {
		var transient *syncing.TransientSyncError
		if errors.As(err, &transient) {
			logger.WithField(log.FieldStage, transient.Stage).WithError(err).Warn("Falha na atualização manual")
		} else {
			logger.WithError(err).Error("Falha na atualização manual")
		}
		return err
	}

	return nil
}

func (s *ManualSyncService) releaseClaim(ctx context.Context, ws *domain.Workspace, claimedAt time.Time) {
	// a requisição pode ter sido cancelada; o claim precisa ser desfeito mesmo assim
	releaseCtx := context.WithoutCancel(ctx)
	if err := s.workspaceRepo.ReleaseDataUpdateClaim(releaseCtx, ws.ID, claimedAt, ws.LastDataUpdateRequestedAt); err != nil {
		log.ForWorkspace(ctx, string(domain.SyncJobManual), ws.ID).WithError(err).Error("Erro ao desfazer solicitação de atualização")
	}
}

func (s *ManualSyncService) interval() time.Duration {
	if s.minInterval <= 0 {
		return syncing.DefaultMinInterval
	}
	return s.minInterval
}
