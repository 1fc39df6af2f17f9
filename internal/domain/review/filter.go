package review

import (
	"cmp"

	"github.com/google/uuid"
	"github.com/listingdesk/backoffice/internal/query"
	"github.com/listingdesk/backoffice/internal/types"
)

type Filter struct {
	types.QueryFilter

	BusinessID *string `json:"businessId,omitempty" form:"businessId"`
	MinRating  *string `json:"minRating,omitempty" form:"minRating"`
	Status     *string `json:"status,omitempty" form:"status"`
}

func (f *Filter) GetQueryFilter() *types.QueryFilter {
	return &f.QueryFilter
}

// Predicates ignores values that do not parse
func (f *Filter) Predicates() []query.Predicate[*Review] {
	var preds []query.Predicate[*Review]
	if f.BusinessID != nil {
		if id := types.ParseOptionalIdentifier(*f.BusinessID); id != nil {
			preds = append(preds, query.EqualID("business_id", *id, func(r *Review) *uuid.UUID { return &r.BusinessID }))
		}
	}
	if rating, ok := types.ParseOptionalInt(f.MinRating); ok {
		preds = append(preds, query.AtLeast("rating", rating, cmp.Compare[int], func(r *Review) int { return r.Rating }))
	}
	if status, ok := types.ParseOptionalInt(f.Status); ok {
		preds = append(preds, query.Equal("status", status, func(r *Review) int { return r.Status }))
	}
	return preds
}
