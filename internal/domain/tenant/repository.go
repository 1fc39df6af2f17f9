package tenant

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// ListByIDs returns the tenants among ids that exist, in no particular order
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*Tenant, error)
}
