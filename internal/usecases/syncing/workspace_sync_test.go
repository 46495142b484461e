package syncing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mpmocks "github.com/vfg2006/seller-analytics-api/infrastructure/integrator/marketplace/mocks"
	"github.com/vfg2006/seller-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type syncerMocks struct {
	integrator *mpmocks.MockIntegrator
	workspaces *mocks.MockWorkspaceRepository
	cards      *mocks.MockCardRepository
	campaigns  *mocks.MockCampaignRepository
	analytics  *mocks.MockAnalyticsRepository
}

func newTestSyncer(t *testing.T, now time.Time) (*AnalyticsSyncer, syncerMocks) {
	ctrl := gomock.NewController(t)

	m := syncerMocks{
		integrator: mpmocks.NewMockIntegrator(ctrl),
		workspaces: mocks.NewMockWorkspaceRepository(ctrl),
		cards:      mocks.NewMockCardRepository(ctrl),
		campaigns:  mocks.NewMockCampaignRepository(ctrl),
		analytics:  mocks.NewMockAnalyticsRepository(ctrl),
	}

	syncer := NewAnalyticsSyncer(m.integrator, m.workspaces, m.cards, m.campaigns, m.analytics)
	syncer.now = func() time.Time { return now }

	return syncer, m
}

func testWindow() domain.DateRange {
	return domain.DateRange{
		From: time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local),
		To:   time.Date(2024, 5, 14, 0, 0, 0, 0, time.Local),
	}
}

func workspaceWithKey(id string) *domain.Workspace {
	key := "key-" + id
	return &domain.Workspace{ID: id, AccountID: "acc-" + id, APIKey: &key}
}

func TestAnalyticsSyncer_SyncWorkspaceAnalytics(t *testing.T) {
	now := time.Date(2024, 5, 15, 1, 30, 0, 0, time.Local)
	day := time.Date(2024, 5, 2, 0, 0, 0, 0, time.Local)
	window := testWindow()
	ws := workspaceWithKey("ws-1")

	syncer, m := newTestSyncer(t, now)

	cards := []domain.Card{{ArticleID: 11}, {ArticleID: 12}}
	campaigns := []domain.Campaign{
		{ExternalID: 1, Status: domain.CampaignStatusActive},
		{ExternalID: 2, Status: domain.CampaignStatusReady},
		{ExternalID: 3, Status: domain.CampaignStatusCompleted},
	}

	gomock.InOrder(
		m.integrator.EXPECT().GetCards(gomock.Any(), "key-ws-1").Return(cards, nil),
		m.cards.EXPECT().Upsert(gomock.Any(), "ws-1", cards).Return(nil),
		m.integrator.EXPECT().GetCampaigns(gomock.Any(), "key-ws-1").Return(campaigns, nil),
		m.campaigns.EXPECT().Upsert(gomock.Any(), "ws-1", campaigns).Return(nil),
		m.integrator.EXPECT().GetFunnelStats(gomock.Any(), "key-ws-1", []int64{11, 12}, window).
			Return([]domain.MetricRow{{ArticleID: 11, Date: day, Transitions: 10, Orders: 1}}, nil),
		m.integrator.EXPECT().GetAdvertStats(gomock.Any(), "key-ws-1", []int64{1, 3}, window).
			Return([]domain.MetricRow{{ArticleID: 11, Date: day, Views: 100, Clicks: 5, Costs: 50}}, nil),
		m.analytics.EXPECT().UpsertDailyStats(gomock.Any(), "ws-1", []domain.MetricRow{{
			ArticleID:   11,
			Date:        day,
			Transitions: 10,
			Orders:      1,
			Views:       100,
			Clicks:      5,
			Costs:       50,
		}}).Return(nil),
		m.workspaces.EXPECT().MarkDataUpdated(gomock.Any(), "ws-1", now).Return(nil),
	)

	err := syncer.SyncWorkspaceAnalytics(context.Background(), ws, window)

	require.NoError(t, err)
}

func TestAnalyticsSyncer_WithoutAPIKey(t *testing.T) {
	syncer, _ := newTestSyncer(t, time.Now())

	blank := "   "
	err := syncer.SyncWorkspaceAnalytics(context.Background(), &domain.Workspace{ID: "ws-1", APIKey: &blank}, testWindow())

	assert.ErrorIs(t, err, ErrWorkspaceWithoutAPIKey)
}

func TestAnalyticsSyncer_StageFailures(t *testing.T) {
	upstream := errors.New("upstream unavailable")

	tests := []struct {
		name      string
		setup     func(m syncerMocks)
		wantStage string
	}{
		{
			name: "cards",
			setup: func(m syncerMocks) {
				m.integrator.EXPECT().GetCards(gomock.Any(), gomock.Any()).Return(nil, upstream)
			},
			wantStage: StageCards,
		},
		{
			name: "campaigns",
			setup: func(m syncerMocks) {
				m.integrator.EXPECT().GetCards(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.cards.EXPECT().Upsert(gomock.Any(), "ws-1", gomock.Any()).Return(nil)
				m.integrator.EXPECT().GetCampaigns(gomock.Any(), gomock.Any()).Return(nil, upstream)
			},
			wantStage: StageCampaigns,
		},
		{
			name: "funnel",
			setup: func(m syncerMocks) {
				m.integrator.EXPECT().GetCards(gomock.Any(), gomock.Any()).Return([]domain.Card{{ArticleID: 1}}, nil)
				m.cards.EXPECT().Upsert(gomock.Any(), "ws-1", gomock.Any()).Return(nil)
				m.integrator.EXPECT().GetCampaigns(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.campaigns.EXPECT().Upsert(gomock.Any(), "ws-1", gomock.Any()).Return(nil)
				m.integrator.EXPECT().GetFunnelStats(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, upstream)
			},
			wantStage: StageFunnel,
		},
		{
			name: "store",
			setup: func(m syncerMocks) {
				m.integrator.EXPECT().GetCards(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.cards.EXPECT().Upsert(gomock.Any(), "ws-1", gomock.Any()).Return(upstream)
			},
			wantStage: StageStore,
		},
		{
			name: "mark updated",
			setup: func(m syncerMocks) {
				m.integrator.EXPECT().GetCards(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.cards.EXPECT().Upsert(gomock.Any(), "ws-1", gomock.Any()).Return(nil)
				m.integrator.EXPECT().GetCampaigns(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.campaigns.EXPECT().Upsert(gomock.Any(), "ws-1", gomock.Any()).Return(nil)
				m.analytics.EXPECT().UpsertDailyStats(gomock.Any(), "ws-1", gomock.Len(0)).Return(nil)
				m.workspaces.EXPECT().MarkDataUpdated(gomock.Any(), "ws-1", gomock.Any()).Return(upstream)
			},
			wantStage: StageMarkUpdated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			syncer, m := newTestSyncer(t, time.Now())
			tt.setup(m)

			err := syncer.SyncWorkspaceAnalytics(context.Background(), workspaceWithKey("ws-1"), testWindow())

			var transient *TransientSyncError
			require.ErrorAs(t, err, &transient)
			assert.Equal(t, tt.wantStage, transient.Stage)
			assert.Equal(t, "ws-1", transient.WorkspaceID)
			assert.ErrorIs(t, err, upstream)
		})
	}
}

func TestMergeRows(t *testing.T) {
	window := domain.DateRange{
		From: time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local),
		To:   time.Date(2024, 5, 2, 0, 0, 0, 0, time.Local),
	}
	first := time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)
	second := time.Date(2024, 5, 2, 0, 0, 0, 0, time.Local)
	outside := time.Date(2024, 5, 3, 0, 0, 0, 0, time.Local)

	funnel := []domain.MetricRow{
		{ArticleID: 2, Date: second, Transitions: 4},
		{ArticleID: 1, Date: first, Transitions: 7, Cart: 2},
		{ArticleID: 1, Date: outside, Transitions: 99},
	}
	adverts := []domain.MetricRow{
		{ArticleID: 1, Date: first.Add(3 * time.Hour), Views: 50, Clicks: 2, Costs: 12.5},
	}

	rows := MergeRows(window, funnel, adverts)

	require.Len(t, rows, 2)
	assert.Equal(t, domain.MetricRow{ArticleID: 1, Date: first, Transitions: 7, Cart: 2, Views: 50, Clicks: 2, Costs: 12.5}, rows[0])
	assert.Equal(t, int64(2), rows[1].ArticleID)
	assert.True(t, rows[1].Date.Equal(second))
}
