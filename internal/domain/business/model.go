package business

import (
	"github.com/listingdesk/backoffice/internal/query"
	"github.com/listingdesk/backoffice/internal/types"
)

const Entity = "business"

// Status values of a business listing
const (
	StatusDraft     = 0
	StatusListed    = 1
	StatusSuspended = 2
)

// Business is a listed company
type Business struct {
	// Name is the display name of the business
	Name string `db:"name" json:"name"`

	// Category is the directory category the business is listed under
	Category string `db:"category" json:"category"`

	City  string `db:"city" json:"city"`
	Phone string `db:"phone" json:"phone"`

	// Status is one of the Status constants
	Status int `db:"status" json:"status"`

	// Verified is set once the listing was checked by an admin
	Verified bool `db:"verified" json:"verified"`

	types.BaseModel
}

// Fields is the filterable field table of a business
var Fields = query.NewFieldSet(append(query.RecordFields[*Business](),
	query.String("Name", "name", func(b *Business) string { return b.Name }),
	query.String("Category", "category", func(b *Business) string { return b.Category }),
	query.String("City", "city", func(b *Business) string { return b.City }),
	query.String("Phone", "phone", func(b *Business) string { return b.Phone }),
	query.Int("Status", "status", func(b *Business) int { return b.Status }),
	query.Bool("Verified", "verified", func(b *Business) bool { return b.Verified }),
)...)
