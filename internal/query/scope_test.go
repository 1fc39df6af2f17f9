package query

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/listingdesk/backoffice/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveScope(t *testing.T) {
	ctxTenant, ctxOwner := uuid.New(), uuid.New()
	reqTenant, reqOwner := uuid.New(), uuid.New()

	scoped := types.SetOwnerID(types.SetTenantID(context.Background(), ctxTenant.String()), ctxOwner.String())

	tests := []struct {
		name       string
		ctx        context.Context
		params     types.ScopeParams
		wantOwner  *uuid.UUID
		wantTenant *uuid.UUID
	}{
		{"nothing_set", context.Background(), types.ScopeParams{}, nil, nil},
		{"context_only", scoped, types.ScopeParams{}, &ctxOwner, &ctxTenant},
		{"request_wins", scoped, types.ScopeParams{OwnerUserID: reqOwner.String(), TenantID: reqTenant.String()}, &reqOwner, &reqTenant},
		{"request_partial", scoped, types.ScopeParams{TenantID: reqTenant.String()}, &ctxOwner, &reqTenant},
		{"malformed_request_falls_back", scoped, types.ScopeParams{TenantID: "acme"}, &ctxOwner, &ctxTenant},
		{"malformed_context_is_unset", types.SetTenantID(context.Background(), "tenant-1"), types.ScopeParams{}, nil, nil},
		{"acting_user_is_not_scope", types.SetUserID(context.Background(), uuid.NewString()), types.ScopeParams{}, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := ResolveScope(tt.ctx, tt.params)
			assert.Equal(t, tt.wantOwner, scope.Owner)
			assert.Equal(t, tt.wantTenant, scope.Tenant)
		})
	}
}

func TestScopePredicates(t *testing.T) {
	tenant, owner := uuid.New(), uuid.New()

	assert.Empty(t, ScopePredicates[*types.BaseModel](AuthScope{}))
	assert.True(t, AuthScope{}.Unrestricted())

	preds := ScopePredicates[*types.BaseModel](AuthScope{Owner: &owner, Tenant: &tenant})
	require.Len(t, preds, 2)
	match := And(preds...).Match

	assert.True(t, match(&types.BaseModel{OwnerUserID: &owner, TenantID: &tenant}))
	assert.False(t, match(&types.BaseModel{OwnerUserID: &owner}))
	assert.False(t, match(&types.BaseModel{OwnerUserID: &tenant, TenantID: &tenant}))

	query, args := render(And(preds...).SQL())
	assert.Contains(t, query, `"owner_user_id" = $1`)
	assert.Contains(t, query, `"tenant_id" = $2`)
	assert.Equal(t, []any{owner, tenant}, args)
}
