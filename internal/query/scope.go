package query

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/listingdesk/backoffice/internal/types"
)

const (
	ColumnOwnerUserID = "owner_user_id"
	ColumnTenantID    = "tenant_id"
	ColumnActive      = "active"
	ColumnDeleted     = "deleted"
	ColumnCreatedAt   = "created_at"
	ColumnID          = "id"
)

// AuthScope is the pair of identities a request is restricted to.
// A nil identity leaves that dimension unrestricted.
type AuthScope struct {
	Owner  *uuid.UUID
	Tenant *uuid.UUID
}

// ResolveScope picks each identity from the request parameters when they
// parse, falling back to the caller context. Malformed values resolve to unset.
func ResolveScope(ctx context.Context, params types.ScopeParams) AuthScope {
	return AuthScope{
		Owner:  firstIdentifier(params.OwnerUserID, types.GetOwnerID(ctx)),
		Tenant: firstIdentifier(params.TenantID, types.GetTenantID(ctx)),
	}
}

// Unrestricted reports whether neither identity is set
func (s AuthScope) Unrestricted() bool {
	return s.Owner == nil && s.Tenant == nil
}

func firstIdentifier(candidates ...string) *uuid.UUID {
	for _, raw := range candidates {
		if id := types.ParseOptionalIdentifier(raw); id != nil {
			return id
		}
	}
	return nil
}

// ScopePredicates returns the predicates restricting records to scope
func ScopePredicates[T types.OwnedRecord](scope AuthScope) []Predicate[T] {
	var preds []Predicate[T]
	if scope.Owner != nil {
		preds = append(preds, EqualID(ColumnOwnerUserID, *scope.Owner, func(r T) *uuid.UUID { return r.OwnerIdentity() }))
	}
	if scope.Tenant != nil {
		preds = append(preds, EqualID(ColumnTenantID, *scope.Tenant, func(r T) *uuid.UUID { return r.TenantIdentity() }))
	}
	return preds
}

// Visible matches records that are active and not deleted
func Visible[T types.Record]() Predicate[T] {
	return Predicate[T]{
		SQL: func() *sql.Predicate {
			return sql.And(sql.EQ(ColumnActive, true), sql.EQ(ColumnDeleted, false))
		},
		Match: func(r T) bool { return r.Visible() },
	}
}

// ByID matches the record with the given identity
func ByID[T types.Record](id uuid.UUID) Predicate[T] {
	return Predicate[T]{
		SQL:   func() *sql.Predicate { return sql.EQ(ColumnID, id) },
		Match: func(r T) bool { return r.Identity() == id },
	}
}

// NewestFirst orders records by creation time, latest first
func NewestFirst[T types.Record]() Ordering[T] {
	return Desc(ColumnCreatedAt, func(a, b T) int {
		return a.CreatedTime().Compare(b.CreatedTime())
	})
}
