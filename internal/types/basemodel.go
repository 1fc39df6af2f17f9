package types

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// BaseModel carries the columns every persisted record shares.
// Any changes to this model should be reflected in the database schema by running migrations
type BaseModel struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	OwnerUserID *uuid.UUID `db:"owner_user_id" json:"ownerUserId"`
	TenantID    *uuid.UUID `db:"tenant_id" json:"tenantId"`
	CreatedBy   uuid.UUID  `db:"created_by" json:"createdBy"`
	UpdatedBy   *uuid.UUID `db:"updated_by" json:"updatedBy"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
	Active      bool       `db:"active" json:"active"`
	Deleted     bool       `db:"deleted" json:"deleted"`

	DisplayNames `db:"-"`
}

// DisplayNames are resolved per request from the directory and never persisted.
// A nil name means the identity is unset or could not be resolved.
type DisplayNames struct {
	OwnerName    *string `db:"-" json:"ownerName"`
	TenantName   *string `db:"-" json:"tenantName"`
	CreatorName  *string `db:"-" json:"creatorName"`
	ModifierName *string `db:"-" json:"modifierName"`
}

// OwnedRecord exposes the identities a record is scoped by
type OwnedRecord interface {
	OwnerIdentity() *uuid.UUID
	TenantIdentity() *uuid.UUID
}

// AuditedRecord exposes the identities that wrote a record
type AuditedRecord interface {
	CreatorIdentity() uuid.UUID
	ModifierIdentity() *uuid.UUID
}

// Record is the capability set the query engine needs from a record shape
type Record interface {
	OwnedRecord
	AuditedRecord
	Identity() uuid.UUID
	CreatedTime() time.Time
	Visible() bool
	SetDisplayNames(names DisplayNames)
}

// TimeBounded is implemented by records that expire durationDays after creation
type TimeBounded interface {
	Record
	ExpiresAt() time.Time
	Expired(now time.Time) bool
	Deactivate(at time.Time)
}

func (m *BaseModel) Identity() uuid.UUID { return m.ID }

func (m *BaseModel) OwnerIdentity() *uuid.UUID { return m.OwnerUserID }

func (m *BaseModel) TenantIdentity() *uuid.UUID { return m.TenantID }

func (m *BaseModel) CreatorIdentity() uuid.UUID { return m.CreatedBy }

func (m *BaseModel) ModifierIdentity() *uuid.UUID { return m.UpdatedBy }

func (m *BaseModel) CreatedTime() time.Time { return m.CreatedAt }

func (m *BaseModel) SetDisplayNames(n DisplayNames) { m.DisplayNames = n }

// Visible reports whether default list and detail queries may return the record
func (m *BaseModel) Visible() bool {
	return m.Active && !m.Deleted
}

// Deactivate hides the record from default queries as of at
func (m *BaseModel) Deactivate(at time.Time) {
	m.Active = false
	m.UpdatedAt = at
}

// TimeBoundedModel is a BaseModel with a lifetime in days
type TimeBoundedModel struct {
	BaseModel
	DurationDays int `db:"duration_days" json:"durationDays"`
}

// ExpiresAt is the instant after which the record must be observed inactive
func (m *TimeBoundedModel) ExpiresAt() time.Time {
	return m.CreatedAt.AddDate(0, 0, m.DurationDays)
}

// Expired reports whether the lifetime elapsed strictly before now
func (m *TimeBoundedModel) Expired(now time.Time) bool {
	return m.ExpiresAt().Before(now)
}

// GetDefaultBaseModel returns a visible BaseModel attributed to the caller in ctx
func GetDefaultBaseModel(ctx context.Context) BaseModel {
	now := time.Now().UTC()
	return BaseModel{
		ID:          GenerateID(),
		TenantID:    ParseOptionalIdentifier(GetTenantID(ctx)),
		OwnerUserID: ParseOptionalIdentifier(GetOwnerID(ctx)),
		CreatedBy:   lo.FromPtr(ParseOptionalIdentifier(GetUserID(ctx))),
		CreatedAt:   now,
		UpdatedAt:   now,
		Active:      true,
	}
}
