package article

import (
	"github.com/listingdesk/backoffice/internal/query"
	"github.com/listingdesk/backoffice/internal/types"
)

const Entity = "article"

type Article struct {
	Title     string `db:"title" json:"title"`
	Slug      string `db:"slug" json:"slug"`
	Author    string `db:"author" json:"author"`
	Summary   string `db:"summary" json:"summary"`
	Published bool   `db:"published" json:"published"`
	ViewCount int    `db:"view_count" json:"viewCount"`

	types.BaseModel
}

var Fields = query.NewFieldSet(append(query.RecordFields[*Article](),
	query.String("Title", "title", func(a *Article) string { return a.Title }),
	query.String("Slug", "slug", func(a *Article) string { return a.Slug }),
	query.String("Author", "author", func(a *Article) string { return a.Author }),
	query.String("Summary", "summary", func(a *Article) string { return a.Summary }),
	query.Bool("Published", "published", func(a *Article) bool { return a.Published }),
	query.Int("ViewCount", "view_count", func(a *Article) int { return a.ViewCount }),
)...)
