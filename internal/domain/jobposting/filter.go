package jobposting

import (
	"github.com/listingdesk/backoffice/internal/query"
	"github.com/listingdesk/backoffice/internal/types"
	"github.com/shopspring/decimal"
)

type Filter struct {
	types.QueryFilter

	Location       *string `json:"location,omitempty" form:"location"`
	EmploymentType *string `json:"employmentType,omitempty" form:"employmentType"`
	MinSalary      *string `json:"minSalary,omitempty" form:"minSalary"`
	MaxSalary      *string `json:"maxSalary,omitempty" form:"maxSalary"`
}

func (f *Filter) GetQueryFilter() *types.QueryFilter {
	return &f.QueryFilter
}

// Predicates skips salary bounds that are not valid decimals
func (f *Filter) Predicates() []query.Predicate[*JobPosting] {
	salary := func(j *JobPosting) decimal.Decimal { return j.Salary }

	var preds []query.Predicate[*JobPosting]
	if f.Location != nil {
		preds = append(preds, query.Equal("location", *f.Location, func(j *JobPosting) string { return j.Location }))
	}
	if f.EmploymentType != nil {
		preds = append(preds, query.Equal("employment_type", *f.EmploymentType, func(j *JobPosting) string { return j.EmploymentType }))
	}
	if lower, ok := parseDecimal(f.MinSalary); ok {
		preds = append(preds, query.AtLeast("salary", lower, decimal.Decimal.Cmp, salary))
	}
	if upper, ok := parseDecimal(f.MaxSalary); ok {
		preds = append(preds, query.AtMost("salary", upper, decimal.Decimal.Cmp, salary))
	}
	return preds
}

func parseDecimal(raw *string) (decimal.Decimal, bool) {
	if raw == nil {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(*raw)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
