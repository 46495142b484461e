package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/seller-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
)

const (
	workspacesTable = "workspaces w"

	workspaceColumns = "w.id, w.account_id, w.name, w.api_key, w.api_key_valid, w.api_key_validated_at, " +
		"w.is_default, w.last_data_update_at, w.last_data_update_requested_at, w.created_at"
)

type WorkspaceRepository interface {
	// ListEligible retorna, ordenados por id, os workspaces com chave de API cuja conta está ativa e tem a role informada
	ListEligible(ctx context.Context, roleID int) ([]*domain.Workspace, error)
	GetByID(ctx context.Context, workspaceID string) (*domain.Workspace, error)
	GetDefaultByAccountID(ctx context.Context, accountID string) (*domain.Workspace, error)
	// ClaimDataUpdate grava last_data_update_requested_at = now somente se os timestamps ainda forem os observados.
	// Retorna false quando outra requisição alterou o workspace antes.
	ClaimDataUpdate(ctx context.Context, ws *domain.Workspace, now time.Time) (bool, error)
	// ReleaseDataUpdateClaim desfaz um claim que ainda não foi sobrescrito
	ReleaseDataUpdateClaim(ctx context.Context, workspaceID string, claimedAt time.Time, previous *time.Time) error
	MarkDataUpdated(ctx context.Context, workspaceID string, at time.Time) error
}

type workspaceRepository struct {
	conn *postgres.Connection
}

func NewWorkspaceRepository(conn *postgres.Connection) WorkspaceRepository {
	return &workspaceRepository{
		conn: conn,
	}
}

func (r *workspaceRepository) ListEligible(ctx context.Context, roleID int) ([]*domain.Workspace, error) {
	query, args, err := squirrel.
		Select(workspaceColumns).
		From(workspacesTable).
		Join("accounts a ON a.id = w.account_id").
		Where("w.api_key IS NOT NULL").
		Where(squirrel.Eq{"a.active": true, "a.role_id": roleID}).
		OrderBy("w.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar workspaces elegíveis: %w", err)
	}
	defer rows.Close()

	workspaces := make([]*domain.Workspace, 0)
	for rows.Next() {
		ws, err := scanWorkspace(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao deserializar workspace: %w", err)
		}
		workspaces = append(workspaces, ws)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return workspaces, nil
}

func (r *workspaceRepository) GetByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	return r.getOne(ctx, squirrel.
		Select(workspaceColumns).
		From(workspacesTable).
		Where(squirrel.Eq{"w.id": workspaceID}))
}

// GetDefaultByAccountID prioriza o workspace marcado como padrão e, na falta dele, o mais antigo
func (r *workspaceRepository) GetDefaultByAccountID(ctx context.Context, accountID string) (*domain.Workspace, error) {
	return r.getOne(ctx, squirrel.
		Select(workspaceColumns).
		From(workspacesTable).
		Where(squirrel.Eq{"w.account_id": accountID}).
		OrderBy("w.is_default DESC", "w.created_at ASC").
		Limit(1))
}

func (r *workspaceRepository) getOne(ctx context.Context, builder squirrel.SelectBuilder) (*domain.Workspace, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	ws, err := scanWorkspace(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar workspace: %w", err)
	}

	return ws, nil
}

func (r *workspaceRepository) ClaimDataUpdate(ctx context.Context, ws *domain.Workspace, now time.Time) (bool, error) {
	query, args, err := squirrel.
		Update("workspaces").
		Set("last_data_update_requested_at", now).
		Where(squirrel.Eq{"id": ws.ID}).
		Where(squirrel.Expr("last_data_update_requested_at IS NOT DISTINCT FROM ?", ws.LastDataUpdateRequestedAt)).
		Where(squirrel.Expr("last_data_update_at IS NOT DISTINCT FROM ?", ws.LastDataUpdateAt)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, wrapExecError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error getting rows affected: %w", err)
	}

	return rowsAffected == 1, nil
}

func (r *workspaceRepository) ReleaseDataUpdateClaim(ctx context.Context, workspaceID string, claimedAt time.Time, previous *time.Time) error {
	query, args, err := squirrel.
		Update("workspaces").
		Set("last_data_update_requested_at", previous).
		Where(squirrel.Eq{"id": workspaceID, "last_data_update_requested_at": claimedAt}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (r *workspaceRepository) MarkDataUpdated(ctx context.Context, workspaceID string, at time.Time) error {
	query, args, err := squirrel.
		Update("workspaces").
		Set("last_data_update_at", at).
		Where(squirrel.Eq{"id": workspaceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapExecError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("workspace not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanWorkspace(row scanner) (*domain.Workspace, error) {
	ws := &domain.Workspace{}
	var (
		apiKey                    sql.NullString
		apiKeyValidatedAt         sql.NullTime
		lastDataUpdateAt          sql.NullTime
		lastDataUpdateRequestedAt sql.NullTime
	)

	if err := row.Scan(
		&ws.ID,
		&ws.AccountID,
		&ws.Name,
		&apiKey,
		&ws.APIKeyValid,
		&apiKeyValidatedAt,
		&ws.IsDefault,
		&lastDataUpdateAt,
		&lastDataUpdateRequestedAt,
		&ws.CreatedAt,
	); err != nil {
		return nil, err
	}

	if apiKey.Valid {
		ws.APIKey = &apiKey.String
	}
	ws.APIKeyValidatedAt = nullTime(apiKeyValidatedAt)
	ws.LastDataUpdateAt = nullTime(lastDataUpdateAt)
	ws.LastDataUpdateRequestedAt = nullTime(lastDataUpdateRequestedAt)

	return ws, nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
