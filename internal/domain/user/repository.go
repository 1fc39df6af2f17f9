package user

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// ListByIDs returns the users among ids that exist, in no particular order
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*User, error)
}
