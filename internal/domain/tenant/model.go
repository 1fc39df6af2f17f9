package tenant

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is an organisation records and users belong to
type Tenant struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
