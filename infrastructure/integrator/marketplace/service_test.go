package marketplace

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mpdomain "github.com/vfg2006/seller-analytics-api/infrastructure/integrator/marketplace/domain"
	"github.com/vfg2006/seller-analytics-api/infrastructure/integrator/marketplace/mocks"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestMarketplaceService_GetCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	changed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	client.EXPECT().GetAdverts(gomock.Any(), "key-1").Return([]mpdomain.Advert{
		{AdvertID: 1, Name: "Busca", Status: 9, Type: 6, NmIDs: []int64{11}, ChangeTime: changed},
		{AdvertID: 2, Name: "Status novo", Status: 42, Type: 6},
		{AdvertID: 3, Name: "Tipo novo", Status: 11, Type: 99},
		{AdvertID: 4, Name: "Auto", Status: 11, Type: 8},
	}, nil)

	campaigns, err := New(client).GetCampaigns(context.Background(), "key-1")

	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.Equal(t, domain.CampaignStatusActive, campaigns[0].Status)
	assert.Equal(t, domain.CampaignTypeSearch, campaigns[0].Type)
	require.NotNil(t, campaigns[0].ChangedAt)
	assert.True(t, changed.Equal(*campaigns[0].ChangedAt))
	assert.Equal(t, int64(4), campaigns[1].ExternalID)
	assert.Equal(t, domain.CampaignStatusPaused, campaigns[1].Status)
	assert.Nil(t, campaigns[1].ChangedAt)
}

func TestMarketplaceService_GetCards_Paginates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)

	firstPage := make([]mpdomain.Card, cardsPageSize)
	for i := range firstPage {
		firstPage[i] = mpdomain.Card{NmID: int64(i + 1)}
	}
	cursorTime := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	gomock.InOrder(
		client.EXPECT().GetCards(gomock.Any(), "key-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req mpdomain.CardsRequest) (*mpdomain.CardsResponse, error) {
				assert.Zero(t, req.Settings.Cursor.NmID)
				return &mpdomain.CardsResponse{
					Cards:  firstPage,
					Cursor: mpdomain.CardsCursor{NmID: 100, UpdatedAt: &cursorTime, Total: cardsPageSize},
				}, nil
			}),
		client.EXPECT().GetCards(gomock.Any(), "key-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req mpdomain.CardsRequest) (*mpdomain.CardsResponse, error) {
				assert.Equal(t, int64(100), req.Settings.Cursor.NmID)
				return &mpdomain.CardsResponse{
					Cards:  []mpdomain.Card{{NmID: 101}},
					Cursor: mpdomain.CardsCursor{NmID: 101, Total: 1},
				}, nil
			}),
	)

	cards, err := New(client).GetCards(context.Background(), "key-1")

	require.NoError(t, err)
	assert.Len(t, cards, cardsPageSize+1)
	assert.Equal(t, int64(101), cards[len(cards)-1].ArticleID)
}

func TestMarketplaceService_GetFunnelStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	window := domain.DateRange{
		From: time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local),
		To:   time.Date(2024, 5, 14, 0, 0, 0, 0, time.Local),
	}

	articleIDs := make([]int64, funnelArticlesPerReq+5)
	for i := range articleIDs {
		articleIDs[i] = int64(i + 1)
	}

	client.EXPECT().GetFunnelHistory(gomock.Any(), "key-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req mpdomain.FunnelRequest) (*mpdomain.FunnelResponse, error) {
			assert.Equal(t, "2024-05-01", req.Period.Begin)
			assert.Equal(t, "2024-05-14", req.Period.End)
			if len(req.NmIDs) == funnelArticlesPerReq {
				return &mpdomain.FunnelResponse{Data: []mpdomain.FunnelCard{{
					NmID:    1,
					History: []mpdomain.FunnelDay{{Dt: "2024-05-02", OpenCardCount: 10, AddToCartCount: 3, OrdersCount: 1, OrdersSumRub: 990}},
				}}}, nil
			}
			return &mpdomain.FunnelResponse{}, nil
		}).Times(2)

	rows, err := New(client).GetFunnelStats(context.Background(), "key-1", articleIDs, window)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.MetricRow{
		ArticleID:    1,
		Date:         time.Date(2024, 5, 2, 0, 0, 0, 0, time.Local),
		Transitions:  10,
		Cart:         3,
		Orders:       1,
		OrdersAmount: 990,
	}, rows[0])
}

func TestMarketplaceService_GetAdvertStats_MergesCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	day := time.Date(2024, 5, 2, 0, 0, 0, 0, time.Local)

	client.EXPECT().GetAdvertStats(gomock.Any(), "key-1", gomock.Len(2)).Return([]mpdomain.AdvertStats{
		{AdvertID: 1, Days: []mpdomain.AdvertStatsDay{{Date: day, Nms: []mpdomain.AdvertStatsNm{{NmID: 11, Views: 100, Clicks: 5, Sum: 50}}}}},
		{AdvertID: 2, Days: []mpdomain.AdvertStatsDay{{Date: day, Nms: []mpdomain.AdvertStatsNm{{NmID: 11, Views: 20, Clicks: 1, Sum: 7.5}}}}},
	}, nil)

	rows, err := New(client).GetAdvertStats(context.Background(), "key-1", []int64{1, 2}, domain.DateRange{From: day, To: day})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(120), rows[0].Views)
	assert.Equal(t, int64(6), rows[0].Clicks)
	assert.InDelta(t, 57.5, rows[0].Costs, 0.0001)
}

func TestMarketplaceService_GetAdvertStats_KeepsAPICalendarDay(t *testing.T) {
	previous := time.Local
	time.Local = time.UTC
	t.Cleanup(func() { time.Local = previous })

	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	moscow := time.FixedZone("MSK", 3*60*60)
	apiDay := time.Date(2024, 5, 2, 0, 0, 0, 0, moscow)
	window := domain.DateRange{
		From: time.Date(2024, 5, 2, 0, 0, 0, 0, time.Local),
		To:   time.Date(2024, 5, 3, 0, 0, 0, 0, time.Local),
	}

	client.EXPECT().GetAdvertStats(gomock.Any(), "key-1", gomock.Len(1)).Return([]mpdomain.AdvertStats{
		{AdvertID: 1, Days: []mpdomain.AdvertStatsDay{{Date: apiDay, Nms: []mpdomain.AdvertStatsNm{{NmID: 11, Views: 40, Clicks: 2, Sum: 10}}}}},
	}, nil)

	rows, err := New(client).GetAdvertStats(context.Background(), "key-1", []int64{1}, window)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-05-02", rows[0].Date.Format(time.DateOnly))
	assert.True(t, rows[0].Date.Equal(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)))
	assert.True(t, window.Contains(rows[0].Date))
}

func TestMarketplaceService_GetWarehouses_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().GetWarehouses(gomock.Any(), "key-1").Return(nil, mpdomain.ErrUnauthorized)

	_, err := New(client).GetWarehouses(context.Background(), "key-1")

	assert.True(t, errors.Is(err, mpdomain.ErrUnauthorized))
	assert.ErrorContains(t, err, "erro ao listar armazéns")
}
