package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	ierr "github.com/listingdesk/backoffice/internal/errors"
	"github.com/listingdesk/backoffice/internal/logger"
	"github.com/listingdesk/backoffice/internal/postgres"
	"github.com/listingdesk/backoffice/internal/query"
)

type expiryStore struct {
	db     *postgres.DB
	table  Table
	logger *logger.Logger
}

// NewExpiryStore returns the expiry store of a table with a duration_days column
func NewExpiryStore(db *postgres.DB, table Table, logger *logger.Logger) query.ExpiryStore {
	return &expiryStore{db: db, table: table, logger: logger}
}

func (s *expiryStore) FindExpired(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	stmt := fmt.Sprintf(`
		SELECT id FROM %s
		WHERE active = true
		  AND deleted = false
		  AND created_at + make_interval(days => duration_days) < $1`, pq.QuoteIdentifier(s.table.Name))

	var ids []uuid.UUID
	if err := s.db.GetQuerier(ctx).SelectContext(ctx, &ids, stmt, now); err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Failed to find expired %s records", s.table.Entity).
			Mark(ierr.ErrDatabase)
	}
	return ids, nil
}

// Deactivate flips every id in one statement. Rows another writer already
// deactivated are left as they are.
func (s *expiryStore) Deactivate(ctx context.Context, ids []uuid.UUID, now time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	stmt := fmt.Sprintf(`
		UPDATE %s
		SET active = false, updated_at = $1
		WHERE id = ANY($2::uuid[])
		  AND active = true`, pq.QuoteIdentifier(s.table.Name))

	idArray := pq.Array(identifierStrings(ids))

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		result, err := s.db.GetQuerier(ctx).ExecContext(ctx, stmt, now, idArray)
		if err != nil {
			return ierr.WithError(err).
				WithHintf("Failed to deactivate expired %s records", s.table.Entity).
				Mark(ierr.ErrDatabase)
		}

		affected, _ := result.RowsAffected()
		s.logger.Debugw("deactivated expired records",
			"entity", s.table.Entity,
			"requested", len(ids),
			"affected", affected,
		)
		return nil
	})
}
