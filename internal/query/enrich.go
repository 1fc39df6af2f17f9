package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/listingdesk/backoffice/internal/types"
	"github.com/samber/lo"
)

// DirectoryUser is a user as the directory knows it
type DirectoryUser struct {
	ID       uuid.UUID  `db:"id"`
	Name     string     `db:"name"`
	TenantID *uuid.UUID `db:"tenant_id"`
}

// DirectoryTenant is a tenant as the directory knows it
type DirectoryTenant struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
}

// Directory resolves identities in batches. Ids it does not know are left
// out of the result rather than reported as errors.
type Directory interface {
	Users(ctx context.Context, ids []uuid.UUID) ([]DirectoryUser, error)
	Tenants(ctx context.Context, ids []uuid.UUID) ([]DirectoryTenant, error)
}

// UserDetail is the per request view of one identity
type UserDetail struct {
	ID         uuid.UUID
	Name       string
	TenantName *string
}

// Enricher joins display names onto a page of records with at most one user
// and one tenant lookup, whatever the page size.
type Enricher struct {
	directory Directory
}

func NewEnricher(directory Directory) *Enricher {
	return &Enricher{directory: directory}
}

// Enrich sets the display names of every record. Unknown identities leave
// the matching name nil.
func (e *Enricher) Enrich(ctx context.Context, records []types.Record) error {
	if len(records) == 0 {
		return nil
	}

	users, err := e.lookupUsers(ctx, records)
	if err != nil {
		return err
	}

	tenants, err := e.lookupTenants(ctx, records, users)
	if err != nil {
		return err
	}

	details := make(map[uuid.UUID]UserDetail, len(users))
	for _, u := range users {
		detail := UserDetail{ID: u.ID, Name: u.Name}
		if u.TenantID != nil {
			if name, ok := tenants[*u.TenantID]; ok {
				detail.TenantName = lo.ToPtr(name)
			}
		}
		details[u.ID] = detail
	}

	for _, r := range records {
		r.SetDisplayNames(displayNames(r, details, tenants))
	}
	return nil
}

func (e *Enricher) lookupUsers(ctx context.Context, records []types.Record) ([]DirectoryUser, error) {
	ids := make([]uuid.UUID, 0, len(records)*3)
	for _, r := range records {
		if owner := r.OwnerIdentity(); owner != nil {
			ids = append(ids, *owner)
		}
		if creator := r.CreatorIdentity(); creator != uuid.Nil {
			ids = append(ids, creator)
		}
		if modifier := r.ModifierIdentity(); modifier != nil {
			ids = append(ids, *modifier)
		}
	}

	ids = lo.Uniq(ids)
	if len(ids) == 0 {
		return nil, nil
	}

	directoryLookupsTotal.WithLabelValues("users").Inc()
	return e.directory.Users(ctx, ids)
}

func (e *Enricher) lookupTenants(ctx context.Context, records []types.Record, users []DirectoryUser) (map[uuid.UUID]string, error) {
	ids := make([]uuid.UUID, 0, len(records)+len(users))
	for _, r := range records {
		if tenant := r.TenantIdentity(); tenant != nil {
			ids = append(ids, *tenant)
		}
	}
	for _, u := range users {
		if u.TenantID != nil {
			ids = append(ids, *u.TenantID)
		}
	}

	ids = lo.Uniq(ids)
	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	directoryLookupsTotal.WithLabelValues("tenants").Inc()
	tenants, err := e.directory.Tenants(ctx, ids)
	if err != nil {
		return nil, err
	}
	return lo.SliceToMap(tenants, func(t DirectoryTenant) (uuid.UUID, string) {
		return t.ID, t.Name
	}), nil
}

// displayNames resolves the names of one record. The tenant name comes from the
// record's own tenant and falls back to the tenant of its owner.
func displayNames(r types.Record, users map[uuid.UUID]UserDetail, tenants map[uuid.UUID]string) types.DisplayNames {
	userName := func(id *uuid.UUID) *string {
		if id == nil {
			return nil
		}
		if u, ok := users[*id]; ok {
			return lo.ToPtr(u.Name)
		}
		return nil
	}

	var names types.DisplayNames
	names.OwnerName = userName(r.OwnerIdentity())
	names.CreatorName = userName(lo.ToPtr(r.CreatorIdentity()))
	names.ModifierName = userName(r.ModifierIdentity())

	if tenant := r.TenantIdentity(); tenant != nil {
		if name, ok := tenants[*tenant]; ok {
			names.TenantName = lo.ToPtr(name)
		}
	}
	if names.TenantName == nil && r.OwnerIdentity() != nil {
		if owner, ok := users[*r.OwnerIdentity()]; ok {
			names.TenantName = owner.TenantName
		}
	}
	return names
}
