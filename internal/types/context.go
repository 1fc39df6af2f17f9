package types

import (
	"context"
)

// ContextKey is a type for the keys of values stored in the context
type ContextKey string

const (
	CtxRequestID     ContextKey = "ctx_request_id"
	CtxTenantID      ContextKey = "ctx_tenant_id"
	CtxUserID        ContextKey = "ctx_user_id"
	CtxOwnerID       ContextKey = "ctx_owner_id" // owner scope claim, unset for unrestricted callers
	CtxDBTransaction ContextKey = "ctx_db_transaction"
)

// GetUserID returns the acting user. It is recorded as the modifier of writes
// and is not used for scoping reads.
func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(CtxUserID).(string); ok {
		return userID
	}
	return ""
}

func GetTenantID(ctx context.Context) string {
	if tenantID, ok := ctx.Value(CtxTenantID).(string); ok {
		return tenantID
	}
	return ""
}

// GetOwnerID returns the owner the caller is restricted to, if any
func GetOwnerID(ctx context.Context) string {
	if ownerID, ok := ctx.Value(CtxOwnerID).(string); ok {
		return ownerID
	}
	return ""
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(CtxRequestID).(string); ok {
		return requestID
	}
	return ""
}

// SetTenantID sets the tenant ID in the context
func SetTenantID(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, CtxTenantID, tenantID)
}

// SetUserID sets the user ID in the context
func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, CtxUserID, userID)
}

// SetOwnerID sets the owner scope in the context
func SetOwnerID(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, CtxOwnerID, ownerID)
}

// SetRequestID sets the request ID in the context
func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, CtxRequestID, requestID)
}
