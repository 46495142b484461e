package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
	"github.com/vfg2006/seller-analytics-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockAnalyticsRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAnalyticsRepository(ctrl)

	svc := NewService(repo, NewValidator(DefaultMaxPeriods, DefaultMaxPeriodDays))
	svc.now = func() time.Time { return time.Date(2024, 5, 15, 12, 0, 0, 0, time.Local) }

	return svc, repo
}

func TestService_Aggregate_LoadsUnionRange(t *testing.T) {
	svc, repo := newTestService(t)

	periods := []domain.Period{
		{ID: "p1", From: utils.MustParseDate("2024-05-12"), To: utils.MustParseDate("2024-05-13")},
		{ID: "p2", From: utils.MustParseDate("2024-05-09"), To: utils.MustParseDate("2024-05-10")},
	}

	repo.EXPECT().
		LoadMetricRows(gomock.Any(), "ws-1", nil, []int64{5}, domain.DateRange{
			From: utils.MustParseDate("2024-05-09"),
			To:   utils.MustParseDate("2024-05-13"),
		}).
		Return([]domain.MetricRow{{ArticleID: 1, Date: utils.MustParseDate("2024-05-12"), Orders: 3}}, nil)

	rollup, err := svc.Aggregate(context.Background(), "ws-1", periods, []int64{5})

	require.NoError(t, err)
	orders := rollup.Metrics[domain.MetricOrders]
	assert.InDelta(t, 3, *orders[0].Value, 0.0001)
	assert.Nil(t, orders[1].Value)
}

func TestService_Aggregate_InvalidPeriod(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Aggregate(context.Background(), "ws-1", []domain.Period{
		{ID: "p1", From: utils.MustParseDate("2024-05-14"), To: utils.MustParseDate("2024-05-16")},
	}, nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, RulePeriodInFuture, validationErr.Rule)
}

func TestService_MetricSeries(t *testing.T) {
	periods := []domain.Period{{ID: "p1", From: utils.MustParseDate("2024-05-12"), To: utils.MustParseDate("2024-05-13")}}

	t.Run("métrica desconhecida", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.MetricSeries(context.Background(), "ws-1", "roi", periods, nil)

		assert.ErrorIs(t, err, ErrUnknownMetric)
	})

	t.Run("erro do repositório", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().LoadMetricRows(gomock.Any(), "ws-1", []int64{1}, nil, gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := svc.MetricSeries(context.Background(), "ws-1", "ctr", periods, []int64{1})

		assert.ErrorContains(t, err, "timeout")
	})

	t.Run("série por artigo", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().LoadMetricRows(gomock.Any(), "ws-1", []int64{1}, nil, gomock.Any()).Return([]domain.MetricRow{
			{ArticleID: 1, Date: utils.MustParseDate("2024-05-12"), Views: 200, Clicks: 4},
		}, nil)

		series, err := svc.MetricSeries(context.Background(), "ws-1", "ctr", periods, []int64{1})

		require.NoError(t, err)
		require.Len(t, series, 1)
		assert.InDelta(t, 2, *series[0].Points[0].Value, 0.0001)
	})
}
