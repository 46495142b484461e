package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
)

func TestCardRepository_Upsert(t *testing.T) {
	conn, mock := newMockConn(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cards (workspace_id,article_id,vendor_code,title,brand,subject,card_updated_at,synced_at)")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewCardRepository(conn).Upsert(context.Background(), "ws-1", []domain.Card{{ArticleID: 11, VendorCode: "SKU-11"}})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepository_Upsert(t *testing.T) {
	conn, mock := newMockConn(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (workspace_id, external_id) DO UPDATE SET")).
		WithArgs("ws-1", int64(900), "Busca", "ACTIVE", "SEARCH", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewCampaignRepository(conn).Upsert(context.Background(), "ws-1", []domain.Campaign{{
		ExternalID: 900,
		Name:       "Busca",
		Status:     domain.CampaignStatusActive,
		Type:       domain.CampaignTypeSearch,
		ArticleIDs: []int64{11, 12},
	}})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWarehouseRepository_Upsert(t *testing.T) {
	t.Run("lista vazia é no-op", func(t *testing.T) {
		conn, mock := newMockConn(t)

		assert.NoError(t, NewWarehouseRepository(conn).Upsert(context.Background(), "ws-1", nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("grava e desativa ausentes", func(t *testing.T) {
		conn, mock := newMockConn(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO warehouses")).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE warehouses SET is_active = $1, synced_at = $2 WHERE is_active = $3 AND workspace_id = $4 AND external_id NOT IN ($5,$6)")).
			WithArgs(false, sqlmock.AnyArg(), true, "ws-1", int64(1), int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := NewWarehouseRepository(conn).Upsert(context.Background(), "ws-1", []domain.Warehouse{
			{ExternalID: 1, Name: "Koledino", IsActive: true},
			{ExternalID: 2, Name: "Kazan", IsActive: true},
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAccountRepository_GetByID(t *testing.T) {
	conn, mock := newMockConn(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT a.id, a.active, a.role_id FROM accounts a WHERE a.id = $1")).
		WithArgs("acc-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "active", "role_id"}).AddRow("acc-1", true, domain.RoleSeller))

	acc, err := NewAccountRepository(conn).GetByID(context.Background(), "acc-1")

	require.NoError(t, err)
	assert.Equal(t, &domain.Account{ID: "acc-1", Active: true, RoleID: domain.RoleSeller}, acc)
	assert.NoError(t, mock.ExpectationsWereMet())
}
