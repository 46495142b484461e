package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/seller-analytics-api/infrastructure/repository"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
)

var ErrUnknownMetric = errors.New("unknown metric key")

// ReportService expõe os relatórios comparativos por período
type ReportService interface {
	Aggregate(ctx context.Context, workspaceID string, periods []domain.Period, excludedArticleIDs []int64) (*domain.PeriodRollup, error)
	MetricSeries(ctx context.Context, workspaceID string, metricKey string, periods []domain.Period, articleIDs []int64) ([]domain.ArticleSeries, error)
}

type Service struct {
	analyticsRepository repository.AnalyticsRepository
	validator           Validator
	now                 func() time.Time
}

func NewService(analyticsRepository repository.AnalyticsRepository, validator Validator) *Service {
	return &Service{
		analyticsRepository: analyticsRepository,
		validator:           validator,
		now:                 time.Now,
	}
}

func (s *Service) Aggregate(ctx context.Context, workspaceID string, periods []domain.Period, excludedArticleIDs []int64) (*domain.PeriodRollup, error) {
	if err := s.validator.ValidatePeriods(periods, s.now()); err != nil {
		return nil, err
	}

	rows, err := s.loadRows(ctx, workspaceID, periods, nil, excludedArticleIDs)
	if err != nil {
		return nil, err
	}

	rollup := Aggregate(periods, rows)
	return &rollup, nil
}

func (s *Service) MetricSeries(ctx context.Context, workspaceID string, metricKey string, periods []domain.Period, articleIDs []int64) ([]domain.ArticleSeries, error) {
	key, err := domain.ParseMetricKey(metricKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, metricKey)
	}

	if err := s.validator.ValidatePeriods(periods, s.now()); err != nil {
		return nil, err
	}

	rows, err := s.loadRows(ctx, workspaceID, periods, articleIDs, nil)
	if err != nil {
		return nil, err
	}

	return MetricSeries(key, periods, articleIDs, rows), nil
}

// loadRows faz uma única consulta cobrindo a união de todos os períodos
func (s *Service) loadRows(ctx context.Context, workspaceID string, periods []domain.Period, articleIDs, excluded []int64) ([]domain.MetricRow, error) {
	ranges := make([]domain.DateRange, 0, len(periods))
	for _, p := range periods {
		ranges = append(ranges, p.Range())
	}

	rows, err := s.analyticsRepository.LoadMetricRows(ctx, workspaceID, articleIDs, excluded, domain.Union(ranges...))
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar estatísticas do workspace %s: %w", workspaceID, err)
	}

	return rows, nil
}
