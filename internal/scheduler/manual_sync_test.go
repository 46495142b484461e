package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
	"github.com/vfg2006/seller-analytics-api/internal/usecases/syncing"
	syncmocks "github.com/vfg2006/seller-analytics-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

type manualMocks struct {
	accounts   *mocks.MockAccountRepository
	workspaces *mocks.MockWorkspaceRepository
	syncer     *syncmocks.MockWorkspaceSyncer
}

func newManualService(t *testing.T) (*ManualSyncService, manualMocks) {
	ctrl := gomock.NewController(t)
	m := manualMocks{
		accounts:   mocks.NewMockAccountRepository(ctrl),
		workspaces: mocks.NewMockWorkspaceRepository(ctrl),
		syncer:     syncmocks.NewMockWorkspaceSyncer(ctrl),
	}

	service := &ManualSyncService{
		accountRepo:   m.accounts,
		workspaceRepo: m.workspaces,
		syncer:        m.syncer,
		metrics:       NewMetrics(),
		minInterval:   6 * time.Hour,
		lookbackDays:  14,
		now:           func() time.Time { return fixedNow },
	}

	return service, m
}

func TestManualSyncService_RejectsRecentUpdate(t *testing.T) {
	service, m := newManualService(t)

	lastUpdate := fixedNow.Add(-2 * time.Hour)
	ws := workspace("ws-1")
	ws.LastDataUpdateAt = &lastUpdate

	m.accounts.EXPECT().GetByID(gomock.Any(), "acc-ws-1").Return(&domain.Account{ID: "acc-ws-1", Active: true}, nil)
	m.workspaces.EXPECT().GetDefaultByAccountID(gomock.Any(), "acc-ws-1").Return(ws, nil)

	err := service.TriggerManualSync(context.Background(), "acc-ws-1")

	var rateLimitErr *syncing.RateLimitError
	require.ErrorAs(t, err, &rateLimitErr)
	assert.Equal(t, 4, rateLimitErr.RemainingHours)
	assert.Equal(t, "часа", rateLimitErr.Unit)
	assert.ErrorIs(t, err, syncing.ErrTooFrequent)
}

func TestManualSyncService_FirstSync(t *testing.T) {
	service, m := newManualService(t)
	ws := workspace("ws-1")

	gomock.InOrder(
		m.workspaces.EXPECT().GetByID(gomock.Any(), "ws-1").Return(ws, nil),
		m.workspaces.EXPECT().ClaimDataUpdate(gomock.Any(), ws, fixedNow).Return(true, nil),
		m.syncer.EXPECT().SyncWorkspaceAnalytics(gomock.Any(), ws, domain.TrailingWindow(fixedNow, 14)).Return(nil),
	)

	require.NoError(t, service.TriggerManualSyncForWorkspace(context.Background(), "ws-1"))
}

func TestManualSyncService_ConcurrentClaim(t *testing.T) {
	service, m := newManualService(t)
	ws := workspace("ws-1")

	m.workspaces.EXPECT().GetByID(gomock.Any(), "ws-1").Return(ws, nil)
	m.workspaces.EXPECT().ClaimDataUpdate(gomock.Any(), ws, fixedNow).Return(false, nil)

	err := service.TriggerManualSyncForWorkspace(context.Background(), "ws-1")

	var rateLimitErr *syncing.RateLimitError
	require.ErrorAs(t, err, &rateLimitErr)
	assert.Equal(t, 6, rateLimitErr.RemainingHours)
	assert.Equal(t, "часов", rateLimitErr.Unit)
}

func TestManualSyncService_ReleasesClaimOnFailure(t *testing.T) {
	service, m := newManualService(t)

	requestedAt := fixedNow.Add(-7 * time.Hour)
	ws := workspace("ws-1")
	ws.LastDataUpdateRequestedAt = &requestedAt

	syncErr := syncing.NewTransientError("ws-1", syncing.StageFunnel, errors.New("timeout"))

	gomock.InOrder(
		m.workspaces.EXPECT().GetByID(gomock.Any(), "ws-1").Return(ws, nil),
		m.workspaces.EXPECT().ClaimDataUpdate(gomock.Any(), ws, fixedNow).Return(true, nil),
		m.syncer.EXPECT().SyncWorkspaceAnalytics(gomock.Any(), ws, gomock.Any()).Return(syncErr),
		m.workspaces.EXPECT().ReleaseDataUpdateClaim(gomock.Any(), "ws-1", fixedNow, &requestedAt).Return(nil),
	)

	err := service.TriggerManualSyncForWorkspace(context.Background(), "ws-1")

	assert.Same(t, syncErr, err)
}

func TestManualSyncService_ReleasesClaimOnPanic(t *testing.T) {
	service, m := newManualService(t)
	ws := workspace("ws-1")

	m.workspaces.EXPECT().GetByID(gomock.Any(), "ws-1").Return(ws, nil)
	m.workspaces.EXPECT().ClaimDataUpdate(gomock.Any(), ws, fixedNow).Return(true, nil)
	m.syncer.EXPECT().SyncWorkspaceAnalytics(gomock.Any(), ws, gomock.Any()).
		DoAndReturn(func(context.Context, *domain.Workspace, domain.DateRange) error {
			panic("unexpected nil")
		})
	m.workspaces.EXPECT().ReleaseDataUpdateClaim(gomock.Any(), "ws-1", fixedNow, nil).Return(nil)

	err := service.TriggerManualSyncForWorkspace(context.Background(), "ws-1")

	assert.ErrorIs(t, err, syncing.ErrUnexpected)
}

func TestManualSyncService_Resolution(t *testing.T) {
	t.Run("conta inexistente", func(t *testing.T) {
		service, m := newManualService(t)
		m.accounts.EXPECT().GetByID(gomock.Any(), "acc-404").Return(nil, nil)

		assert.ErrorIs(t, service.TriggerManualSync(context.Background(), "acc-404"), syncing.ErrAccountNotFound)
	})

	t.Run("conta sem workspace", func(t *testing.T) {
		service, m := newManualService(t)
		m.accounts.EXPECT().GetByID(gomock.Any(), "acc-1").Return(&domain.Account{ID: "acc-1", Active: true}, nil)
		m.workspaces.EXPECT().GetDefaultByAccountID(gomock.Any(), "acc-1").Return(nil, nil)

		assert.ErrorIs(t, service.TriggerManualSync(context.Background(), "acc-1"), syncing.ErrWorkspaceNotFound)
	})

	t.Run("workspace inexistente", func(t *testing.T) {
		service, m := newManualService(t)
		m.workspaces.EXPECT().GetByID(gomock.Any(), "ws-404").Return(nil, nil)

		assert.ErrorIs(t, service.TriggerManualSyncForWorkspace(context.Background(), "ws-404"), syncing.ErrWorkspaceNotFound)
	})

	t.Run("workspace sem chave", func(t *testing.T) {
		service, m := newManualService(t)
		m.workspaces.EXPECT().GetByID(gomock.Any(), "ws-1").Return(&domain.Workspace{ID: "ws-1"}, nil)

		assert.ErrorIs(t, service.TriggerManualSyncForWorkspace(context.Background(), "ws-1"), syncing.ErrWorkspaceWithoutAPIKey)
	})

	t.Run("erro no banco", func(t *testing.T) {
		service, m := newManualService(t)
		m.workspaces.EXPECT().GetByID(gomock.Any(), "ws-1").Return(nil, errors.New("connection refused"))

		err := service.TriggerManualSyncForWorkspace(context.Background(), "ws-1")
		assert.ErrorContains(t, err, "connection refused")
	})
}
