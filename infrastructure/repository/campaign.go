package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/seller-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
)

type CampaignRepository interface {
	Upsert(ctx context.Context, workspaceID string, campaigns []domain.Campaign) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) Upsert(ctx context.Context, workspaceID string, campaigns []domain.Campaign) error {
	if len(campaigns) == 0 {
		return nil
	}

	now := time.Now()

	return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		for _, batch := range chunks(campaigns, upsertChunkSize) {
			query := squirrel.StatementBuilder.
				Insert("campaigns").
				Columns("workspace_id", "external_id", "name", "status", "type", "article_ids", "changed_at", "synced_at").
				PlaceholderFormat(squirrel.Dollar)

			for _, c := range batch {
				query = query.Values(
					workspaceID,
					c.ExternalID,
					c.Name,
					string(c.Status),
					string(c.Type),
					pq.Array(c.ArticleIDs),
					c.ChangedAt,
					now,
				)
			}

			query = query.Suffix(`
				ON CONFLICT (workspace_id, external_id) DO UPDATE SET
					name = EXCLUDED.name,
					status = EXCLUDED.status,
					type = EXCLUDED.type,
					article_ids = EXCLUDED.article_ids,
					changed_at = EXCLUDED.changed_at,
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
