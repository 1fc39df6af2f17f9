package review

import (
	"github.com/google/uuid"
	"github.com/listingdesk/backoffice/internal/query"
	"github.com/listingdesk/backoffice/internal/types"
)

const Entity = "review"

// Moderation states of a review
const (
	StatusPending  = 0
	StatusApproved = 1
	StatusRejected = 2
)

// Review is a customer rating left on a business
type Review struct {
	BusinessID uuid.UUID `db:"business_id" json:"businessId"`
	Rating     int       `db:"rating" json:"rating"`
	Comment    string    `db:"comment" json:"comment"`
	Status     int       `db:"status" json:"status"`

	types.BaseModel
}

var Fields = query.NewFieldSet(append(query.RecordFields[*Review](),
	query.Identifier("BusinessId", "business_id", func(r *Review) *uuid.UUID { return &r.BusinessID }),
	query.Int("Rating", "rating", func(r *Review) int { return r.Rating }),
	query.String("Comment", "comment", func(r *Review) string { return r.Comment }),
	query.Int("Status", "status", func(r *Review) int { return r.Status }),
)...)
