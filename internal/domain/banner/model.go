package banner

import (
	"cmp"

	"github.com/listingdesk/backoffice/internal/query"
	"github.com/listingdesk/backoffice/internal/types"
)

const Entity = "banner"

// Banner is a promotional placement that runs for DurationDays after creation
type Banner struct {
	Title     string `db:"title" json:"title"`
	Placement string `db:"placement" json:"placement"`
	ImageURL  string `db:"image_url" json:"imageUrl"`
	LinkURL   string `db:"link_url" json:"linkUrl"`

	// Priority orders banners within a placement, highest first
	Priority int `db:"priority" json:"priority"`

	types.TimeBoundedModel
}

var Fields = query.NewFieldSet(append(query.RecordFields[*Banner](),
	query.String("Title", "title", func(b *Banner) string { return b.Title }),
	query.String("Placement", "placement", func(b *Banner) string { return b.Placement }),
	query.String("LinkUrl", "link_url", func(b *Banner) string { return b.LinkURL }),
	query.Int("Priority", "priority", func(b *Banner) int { return b.Priority }),
	query.Int("DurationDays", "duration_days", func(b *Banner) int { return b.DurationDays }),
)...)

// Ordering puts the highest priority first and the newest first among equals
var Ordering = []query.Ordering[*Banner]{
	query.Desc("priority", func(a, b *Banner) int { return cmp.Compare(a.Priority, b.Priority) }),
	query.NewestFirst[*Banner](),
}
