package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/listingdesk/backoffice/internal/logger"
	"github.com/listingdesk/backoffice/internal/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserAndTenantLookupsAreBatched(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	db := postgres.NewFromSQL(conn, logger.NewNopLogger())
	users := NewUserRepository(db, logger.NewNopLogger())
	tenants := NewTenantRepository(db, logger.NewNopLogger())

	tenantID, alice, bob := uuid.New(), uuid.New(), uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT id, name, email, tenant_id, created_at FROM users WHERE id = ANY\(\$1::uuid\[\]\)`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "tenant_id", "created_at"}).
			AddRow(alice.String(), "Alice", "alice@example.com", tenantID.String(), now).
			AddRow(bob.String(), "Bob", "bob@example.com", nil, now))

	got, err := users.ListByIDs(context.Background(), []uuid.UUID{alice, bob, uuid.New()})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Alice", got[0].Name)
	assert.Equal(t, tenantID, *got[0].TenantID)
	assert.Nil(t, got[1].TenantID)

	mock.ExpectQuery(`SELECT id, name, created_at FROM tenants WHERE id = ANY\(\$1::uuid\[\]\)`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).AddRow(tenantID.String(), "Northwind", now))

	ts, err := tenants.ListByIDs(context.Background(), []uuid.UUID{tenantID})
	require.NoError(t, err)
	require.Len(t, ts, 1)
	assert.Equal(t, "Northwind", ts[0].Name)

	// empty input issues no query
	none, err := users.ListByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, none)

	assert.NoError(t, mock.ExpectationsWereMet())
}
