package article

import (
	"cmp"

	"github.com/listingdesk/backoffice/internal/query"
	"github.com/listingdesk/backoffice/internal/types"
)

type Filter struct {
	types.QueryFilter

	Author    *string `json:"author,omitempty" form:"author"`
	Published *string `json:"published,omitempty" form:"published"`
	MinViews  *string `json:"minViews,omitempty" form:"minViews"`
}

func (f *Filter) GetQueryFilter() *types.QueryFilter {
	return &f.QueryFilter
}

// Predicates skips published and view count values that do not parse
func (f *Filter) Predicates() []query.Predicate[*Article] {
	var preds []query.Predicate[*Article]
	if f.Author != nil {
		preds = append(preds, query.Equal("author", *f.Author, func(a *Article) string { return a.Author }))
	}
	if published, ok := types.ParseOptionalBool(f.Published); ok {
		preds = append(preds, query.Equal("published", published, func(a *Article) bool { return a.Published }))
	}
	if views, ok := types.ParseOptionalInt(f.MinViews); ok {
		preds = append(preds, query.AtLeast("view_count", views, cmp.Compare[int], func(a *Article) int { return a.ViewCount }))
	}
	return preds
}
