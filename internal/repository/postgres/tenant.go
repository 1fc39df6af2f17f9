package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/listingdesk/backoffice/internal/domain/tenant"
	ierr "github.com/listingdesk/backoffice/internal/errors"
	"github.com/listingdesk/backoffice/internal/logger"
	"github.com/listingdesk/backoffice/internal/postgres"
	"github.com/samber/lo"
)

type tenantRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewTenantRepository(db *postgres.DB, logger *logger.Logger) tenant.Repository {
	return &tenantRepository{db: db, logger: logger}
}

func (r *tenantRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*tenant.Tenant, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT id, name, created_at FROM tenants WHERE id = ANY($1::uuid[])`

	var tenants []*tenant.Tenant
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &tenants, query, pq.Array(identifierStrings(ids))); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to look up tenants").
			Mark(ierr.ErrDatabase)
	}
	return tenants, nil
}

func identifierStrings(ids []uuid.UUID) []string {
	return lo.Map(ids, func(id uuid.UUID, _ int) string { return id.String() })
}
