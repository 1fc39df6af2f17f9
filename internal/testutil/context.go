package testutil

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/listingdesk/backoffice/internal/query"
	"github.com/listingdesk/backoffice/internal/types"
)

// SetupContext returns a context carrying a request id and no scope
func SetupContext() context.Context {
	ctx := context.Background()
	ctx = types.SetRequestID(ctx, types.GenerateUUID())
	return ctx
}

// ScopedContext returns a context restricted to tenant and, when set, to owner
func ScopedContext(tenant uuid.UUID, owner *uuid.UUID) context.Context {
	ctx := types.SetTenantID(SetupContext(), tenant.String())
	if owner != nil {
		ctx = types.SetOwnerID(ctx, owner.String())
	}
	return ctx
}

// FixedClock returns a clock that always reports now
func FixedClock(now time.Time) query.Clock {
	return func() time.Time { return now }
}
