package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/seller-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
)

type WarehouseRepository interface {
	// Upsert grava a lista de armazéns do workspace; armazéns ausentes da lista são marcados como inativos.
	// Lista vazia não altera nada.
	Upsert(ctx context.Context, workspaceID string, warehouses []domain.Warehouse) error
}

type warehouseRepository struct {
	conn *postgres.Connection
}

func NewWarehouseRepository(conn *postgres.Connection) WarehouseRepository {
	return &warehouseRepository{
		conn: conn,
	}
}

func (r *warehouseRepository) Upsert(ctx context.Context, workspaceID string, warehouses []domain.Warehouse) error {
	if len(warehouses) == 0 {
		return nil
	}

	now := time.Now()

	return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		ids := make([]int64, 0, len(warehouses))

		for _, batch := range chunks(warehouses, upsertChunkSize) {
			query := squirrel.StatementBuilder.
				Insert("warehouses").
				Columns("workspace_id", "external_id", "name", "address", "city", "is_active", "synced_at").
				PlaceholderFormat(squirrel.Dollar)

			for _, wh := range batch {
				query = query.Values(workspaceID, wh.ExternalID, wh.Name, wh.Address, wh.City, wh.IsActive, now)
				ids = append(ids, wh.ExternalID)
			}

			query = query.Suffix(`
				ON CONFLICT (workspace_id, external_id) DO UPDATE SET
					name = EXCLUDED.name,
					address = EXCLUDED.address,
					city = EXCLUDED.city,
					is_active = EXCLUDED.is_active,
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

		sqlQuery, args, err := squirrel.
			Update("warehouses").
			Set("is_active", false).
			Set("synced_at", now).
			Where(squirrel.Eq{"workspace_id": workspaceID, "is_active": true}).
			Where(squirrel.NotEq{"external_id": ids}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := q.ExecContext(ctx, sqlQuery, args...); err != nil {
			return wrapExecError(err)
		}

		return nil
	})
}
