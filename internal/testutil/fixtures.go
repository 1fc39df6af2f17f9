package testutil

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/listingdesk/backoffice/internal/types"
)

// RecordOption customises a fixture BaseModel
type RecordOption func(*types.BaseModel)

func WithTenant(id uuid.UUID) RecordOption {
	return func(m *types.BaseModel) { m.TenantID = &id }
}

func WithOwner(id uuid.UUID) RecordOption {
	return func(m *types.BaseModel) { m.OwnerUserID = &id }
}

func WithCreator(id uuid.UUID) RecordOption {
	return func(m *types.BaseModel) { m.CreatedBy = id }
}

func WithModifier(id uuid.UUID) RecordOption {
	return func(m *types.BaseModel) { m.UpdatedBy = &id }
}

func WithCreatedAt(t time.Time) RecordOption {
	return func(m *types.BaseModel) {
		m.CreatedAt = t
		m.UpdatedAt = t
	}
}

func Inactive() RecordOption {
	return func(m *types.BaseModel) { m.Active = false }
}

func Deleted() RecordOption {
	return func(m *types.BaseModel) { m.Deleted = true }
}

// NewBaseModel returns an active record created now with a fresh id
func NewBaseModel(opts ...RecordOption) types.BaseModel {
	m := types.GetDefaultBaseModel(context.Background())
	for _, opt := range opts {
		opt(&m)
	}
	return m
}
