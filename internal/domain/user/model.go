package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an identity that can own, create or modify records
type User struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	Email     string     `db:"email" json:"email"`
	TenantID  *uuid.UUID `db:"tenant_id" json:"tenantId"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
}
