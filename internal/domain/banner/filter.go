package banner

import (
	"cmp"

	"github.com/listingdesk/backoffice/internal/query"
	"github.com/listingdesk/backoffice/internal/types"
)

type Filter struct {
	types.QueryFilter

	Placement   *string `json:"placement,omitempty" form:"placement"`
	MinPriority *string `json:"minPriority,omitempty" form:"minPriority"`
}

func (f *Filter) GetQueryFilter() *types.QueryFilter {
	return &f.QueryFilter
}

func (f *Filter) Predicates() []query.Predicate[*Banner] {
	var preds []query.Predicate[*Banner]
	if f.Placement != nil {
		preds = append(preds, query.Equal("placement", *f.Placement, func(b *Banner) string { return b.Placement }))
	}
	if priority, ok := types.ParseOptionalInt(f.MinPriority); ok {
		preds = append(preds, query.AtLeast("priority", priority, cmp.Compare[int], func(b *Banner) int { return b.Priority }))
	}
	return preds
}
