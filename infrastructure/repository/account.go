package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/seller-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
)

const (
	accountsTable = "accounts a"
)

type AccountRepository interface {
	GetByID(ctx context.Context, accountID string) (*domain.Account, error)
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

// GetByID retorna nil, nil quando a conta não existe
func (a *accountRepository) GetByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query, args, err := squirrel.
		Select("a.id, a.active, a.role_id").
		From(accountsTable).
		Where(squirrel.Eq{"a.id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	acc := &domain.Account{}
	err = a.conn.QueryRowContext(ctx, query, args...).Scan(&acc.ID, &acc.Active, &acc.RoleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar conta: %w", err)
	}

	return acc, nil
}
