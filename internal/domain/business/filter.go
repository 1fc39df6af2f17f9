package business

import (
	"github.com/listingdesk/backoffice/internal/query"
	"github.com/listingdesk/backoffice/internal/types"
)

// Filter is the list request of businesses
type Filter struct {
	types.QueryFilter

	Category *string `json:"category,omitempty" form:"category"`
	City     *string `json:"city,omitempty" form:"city"`
	Status   *string `json:"status,omitempty" form:"status"`
	Verified *string `json:"verified,omitempty" form:"verified"`
}

func (f *Filter) GetQueryFilter() *types.QueryFilter {
	return &f.QueryFilter
}

// Predicates skips status and verified values that do not parse
func (f *Filter) Predicates() []query.Predicate[*Business] {
	var preds []query.Predicate[*Business]
	if f.Category != nil {
		preds = append(preds, query.Equal("category", *f.Category, func(b *Business) string { return b.Category }))
	}
	if f.City != nil {
		preds = append(preds, query.Equal("city", *f.City, func(b *Business) string { return b.City }))
	}
	if status, ok := types.ParseOptionalInt(f.Status); ok {
		preds = append(preds, query.Equal("status", status, func(b *Business) int { return b.Status }))
	}
	if verified, ok := types.ParseOptionalBool(f.Verified); ok {
		preds = append(preds, query.Equal("verified", verified, func(b *Business) bool { return b.Verified }))
	}
	return preds
}
