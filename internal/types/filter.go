package types

import (
	"strconv"
	"strings"
)

// ScopeParams are the identities a request may pin explicitly.
// They take precedence over the caller context when they parse.
type ScopeParams struct {
	OwnerUserID string `json:"ownerUserId,omitempty" form:"ownerUserId"`
	TenantID    string `json:"tenantId,omitempty" form:"tenantId"`
}

// QueryFilter holds the parameters shared by every list request
type QueryFilter struct {
	Page   *int    `json:"page,omitempty" form:"page"`
	Size   *int    `json:"size,omitempty" form:"size"`
	Filter *string `json:"filter,omitempty" form:"filter"`

	ScopeParams
}

// NewDefaultQueryFilter returns the first page with the default size and no filter
func NewDefaultQueryFilter() *QueryFilter {
	return &QueryFilter{}
}

// GetWindow returns the coerced page window
func (f *QueryFilter) GetWindow() PageWindow {
	if f == nil {
		return NewPageWindow(nil, nil)
	}
	return NewPageWindow(f.Page, f.Size)
}

// GetFilter returns the free-text filter expression, empty when absent
func (f *QueryFilter) GetFilter() string {
	if f == nil || f.Filter == nil {
		return ""
	}
	return *f.Filter
}

// GetScope returns the explicit scope parameters
func (f *QueryFilter) GetScope() ScopeParams {
	if f == nil {
		return ScopeParams{}
	}
	return f.ScopeParams
}

// ParseOptionalInt parses a structured filter value. ok is false when the
// value is absent or not an integer, in which case the filter is skipped.
func ParseOptionalInt(raw *string) (int, bool) {
	if raw == nil {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(*raw))
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseOptionalBool is ParseOptionalInt for boolean values
func ParseOptionalBool(raw *string) (bool, bool) {
	if raw == nil {
		return false, false
	}
	v, err := strconv.ParseBool(strings.TrimSpace(*raw))
	if err != nil {
		return false, false
	}
	return v, true
}
