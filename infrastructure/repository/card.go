package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/seller-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
)

type CardRepository interface {
	Upsert(ctx context.Context, workspaceID string, cards []domain.Card) error
}

type cardRepository struct {
	conn *postgres.Connection
}

func NewCardRepository(conn *postgres.Connection) CardRepository {
	return &cardRepository{
		conn: conn,
	}
}

func (r *cardRepository) Upsert(ctx context.Context, workspaceID string, cards []domain.Card) error {
	if len(cards) == 0 {
		return nil
	}

	now := time.Now()

	return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		for _, batch := range chunks(cards, upsertChunkSize) {
			query := squirrel.StatementBuilder.
				Insert("cards").
				Columns("workspace_id", "article_id", "vendor_code", "title", "brand", "subject", "card_updated_at", "synced_at").
				PlaceholderFormat(squirrel.Dollar)

			for _, card := range batch {
				query = query.Values(
					workspaceID,
					card.ArticleID,
					card.VendorCode,
					card.Title,
					card.Brand,
					card.Subject,
					card.UpdatedAt,
					now,
				)
			}

			query = query.Suffix(`
				ON CONFLICT (workspace_id, article_id) DO UPDATE SET
					vendor_code = EXCLUDED.vendor_code,
					title = EXCLUDED.title,
					brand = EXCLUDED.brand,
					subject = EXCLUDED.subject,
					card_updated_at = EXCLUDED.card_updated_at,
					synced_at = EXCLUDED.synced_at
			`)

			sqlQuery, args, err := query.ToSql()
			if err != nil {
				return fmt.Errorf("failed to build query: %w", err)
			}

			if _, err := q.ExecContext(ctx, sqlQuery, args...); err != nil {
				return wrapExecError(err)
			}
		}
		return nil
	})
}
