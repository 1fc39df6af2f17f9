// Package directory resolves user and tenant identities for enrichment.
package directory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/listingdesk/backoffice/internal/cache"
	"github.com/listingdesk/backoffice/internal/config"
	"github.com/listingdesk/backoffice/internal/domain/tenant"
	"github.com/listingdesk/backoffice/internal/domain/user"
	"github.com/listingdesk/backoffice/internal/logger"
	"github.com/listingdesk/backoffice/internal/query"
	"github.com/samber/lo"
)

// CachedDirectory is a read-through query.Directory. Ids already cached are
// served locally and all misses go to the repository in a single call, so one
// Users or Tenants call never costs more than one round-trip.
type CachedDirectory struct {
	users   user.Repository
	tenants tenant.Repository
	cache   cache.Cache
	ttl     time.Duration
	logger  *logger.Logger
}

var _ query.Directory = (*CachedDirectory)(nil)

func NewCachedDirectory(
	users user.Repository,
	tenants tenant.Repository,
	c cache.Cache,
	cfg *config.Configuration,
	logger *logger.Logger,
) *CachedDirectory {
	return &CachedDirectory{
		users:   users,
		tenants: tenants,
		cache:   c,
		ttl:     cfg.Cache.DirectoryTTL,
		logger:  logger,
	}
}

func (d *CachedDirectory) Users(ctx context.Context, ids []uuid.UUID) ([]query.DirectoryUser, error) {
	return readThrough(ctx, d, cache.PrefixUser, ids,
		func(ctx context.Context, missing []uuid.UUID) ([]query.DirectoryUser, error) {
			found, err := d.users.ListByIDs(ctx, missing)
			if err != nil {
				return nil, err
			}
			return lo.Map(found, func(u *user.User, _ int) query.DirectoryUser {
				return query.DirectoryUser{ID: u.ID, Name: u.Name, TenantID: u.TenantID}
			}), nil
		},
		func(u query.DirectoryUser) uuid.UUID { return u.ID },
	)
}

func (d *CachedDirectory) Tenants(ctx context.Context, ids []uuid.UUID) ([]query.DirectoryTenant, error) {
	return readThrough(ctx, d, cache.PrefixTenant, ids,
		func(ctx context.Context, missing []uuid.UUID) ([]query.DirectoryTenant, error) {
			found, err := d.tenants.ListByIDs(ctx, missing)
			if err != nil {
				return nil, err
			}
			return lo.Map(found, func(t *tenant.Tenant, _ int) query.DirectoryTenant {
				return query.DirectoryTenant{ID: t.ID, Name: t.Name}
			}), nil
		},
		func(t query.DirectoryTenant) uuid.UUID { return t.ID },
	)
}

func readThrough[V any](
	ctx context.Context,
	d *CachedDirectory,
	prefix string,
	ids []uuid.UUID,
	fetch func(context.Context, []uuid.UUID) ([]V, error),
	idOf func(V) uuid.UUID,
) ([]V, error) {
	ids = lo.Uniq(ids)
	if len(ids) == 0 {
		return nil, nil
	}

	result := make([]V, 0, len(ids))
	missing := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if cached, ok := d.cache.Get(ctx, cache.GenerateKey(prefix, id)); ok {
			if v, ok := cached.(V); ok {
				result = append(result, v)
				continue
			}
		}
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return result, nil
	}

	d.logger.Debugw("directory cache miss", "prefix", prefix, "hits", len(result), "misses", len(missing))

	fetched, err := fetch(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, v := range fetched {
		d.cache.Set(ctx, cache.GenerateKey(prefix, idOf(v)), v, d.ttl)
	}
	return append(result, fetched...), nil
}
