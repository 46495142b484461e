package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/seller-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
)

const (
	dailyStatsTable = "article_daily_stats s"
)

type AnalyticsRepository interface {
	// UpsertDailyStats sobrescreve as linhas (artigo, dia) recebidas
	UpsertDailyStats(ctx context.Context, workspaceID string, rows []domain.MetricRow) error
	// LoadMetricRows carrega as linhas do intervalo. articleIDs vazio significa todos os artigos;
	// excluded remove artigos do resultado.
	LoadMetricRows(ctx context.Context, workspaceID string, articleIDs, excluded []int64, dateRange domain.DateRange) ([]domain.MetricRow, error)
}

type analyticsRepository struct {
	conn *postgres.Connection
}

func NewAnalyticsRepository(conn *postgres.Connection) AnalyticsRepository {
	return &analyticsRepository{
		conn: conn,
	}
}

func (r *analyticsRepository) UpsertDailyStats(ctx context.Context, workspaceID string, rows []domain.MetricRow) error {
	if len(rows) == 0 {
		return nil
	}

	now := time.Now()

	return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		for _, batch := range chunks(rows, upsertChunkSize) {
			query := squirrel.StatementBuilder.
				Insert("article_daily_stats").
				Columns(
					"workspace_id", "article_id", "date",
					"transitions", "cart", "orders", "orders_amount",
					"views", "clicks", "costs", "updated_at",
				).
				PlaceholderFormat(squirrel.Dollar)

			for _, row := range batch {
				query = query.Values(
					workspaceID,
					row.ArticleID,
					row.Date.Format(dateLayout),
					row.Transitions,
					row.Cart,
					row.Orders,
					row.OrdersAmount,
					row.Views,
					row.Clicks,
					row.Costs,
					now,
				)
			}

			query = query.Suffix(`
				ON CONFLICT (workspace_id, article_id, date) DO UPDATE SET
					transitions = EXCLUDED.transitions,
					cart = EXCLUDED.cart,
					orders = EXCLUDED.orders,
					orders_amount = EXCLUDED.orders_amount,
					views = EXCLUDED.views,
					clicks = EXCLUDED.clicks,
					costs = EXCLUDED.costs,
					updated_at = EXCLUDED.updated_at
			`)

			sqlQuery, args, err := query.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := q.ExecContext(ctx, sqlQuery, args...); err != nil {
				return wrapExecError(err)
			}
		}
		return nil
	})
}

func (r *analyticsRepository) LoadMetricRows(
	ctx context.Context,
	workspaceID string,
	articleIDs, excluded []int64,
	dateRange domain.DateRange,
) ([]domain.MetricRow, error) {
	builder := squirrel.
		Select("s.article_id, s.date, s.transitions, s.cart, s.orders, s.orders_amount, s.views, s.clicks, s.costs").
		From(dailyStatsTable).
		Where(squirrel.Eq{"s.workspace_id": workspaceID}).
		Where(squirrel.GtOrEq{"s.date": dateRange.From.Format(dateLayout)}).
		Where(squirrel.LtOrEq{"s.date": dateRange.To.Format(dateLayout)}).
		OrderBy("s.date ASC", "s.article_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(articleIDs) > 0 {
		builder = builder.Where(squirrel.Eq{"s.article_id": articleIDs})
	}
	if len(excluded) > 0 {
		builder = builder.Where(squirrel.NotEq{"s.article_id": excluded})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]domain.MetricRow, 0)
	for rows.Next() {
		var row domain.MetricRow
		if err := rows.Scan(
			&row.ArticleID,
			&row.Date,
			&row.Transitions,
			&row.Cart,
			&row.Orders,
			&row.OrdersAmount,
			&row.Views,
			&row.Clicks,
			&row.Costs,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear linha de métricas: %w", err)
		}
		row.Date = time.Date(row.Date.Year(), row.Date.Month(), row.Date.Day(), 0, 0, 0, 0, time.Local)
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}
