package jobposting

import (
	"github.com/listingdesk/backoffice/internal/query"
	"github.com/listingdesk/backoffice/internal/types"
	"github.com/shopspring/decimal"
)

const Entity = "job_posting"

// Employment types
const (
	EmploymentFullTime = "full_time"
	EmploymentPartTime = "part_time"
	EmploymentContract = "contract"
)

// JobPosting is an opening that stays listed for DurationDays after creation
type JobPosting struct {
	Title          string          `db:"title" json:"title"`
	Company        string          `db:"company" json:"company"`
	Location       string          `db:"location" json:"location"`
	EmploymentType string          `db:"employment_type" json:"employmentType"`
	Salary         decimal.Decimal `db:"salary" json:"salary"`

	types.TimeBoundedModel
}

var Fields = query.NewFieldSet(append(query.RecordFields[*JobPosting](),
	query.String("Title", "title", func(j *JobPosting) string { return j.Title }),
	query.String("Company", "company", func(j *JobPosting) string { return j.Company }),
	query.String("Location", "location", func(j *JobPosting) string { return j.Location }),
	query.String("EmploymentType", "employment_type", func(j *JobPosting) string { return j.EmploymentType }),
	query.Decimal("Salary", "salary", func(j *JobPosting) decimal.Decimal { return j.Salary }),
	query.Int("DurationDays", "duration_days", func(j *JobPosting) int { return j.DurationDays }),
)...)
