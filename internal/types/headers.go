package types

const (
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"

	// Identity headers honoured only when token auth is disabled
	HeaderUserID   = "X-User-ID"
	HeaderTenantID = "X-Tenant-ID"
	HeaderOwnerID  = "X-Owner-ID"
)
