package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/listingdesk/backoffice/internal/domain/user"
	ierr "github.com/listingdesk/backoffice/internal/errors"
	"github.com/listingdesk/backoffice/internal/logger"
	"github.com/listingdesk/backoffice/internal/postgres"
)

type userRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewUserRepository(db *postgres.DB, logger *logger.Logger) user.Repository {
	return &userRepository{db: db, logger: logger}
}

func (r *userRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*user.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT id, name, email, tenant_id, created_at FROM users WHERE id = ANY($1::uuid[])`

	var users []*user.User
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &users, query, pq.Array(identifierStrings(ids))); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to look up users").
			Mark(ierr.ErrDatabase)
	}
	return users, nil
}
