package service

import (
	"github.com/listingdesk/backoffice/internal/domain/article"
	"github.com/listingdesk/backoffice/internal/domain/banner"
	"github.com/listingdesk/backoffice/internal/domain/business"
	"github.com/listingdesk/backoffice/internal/domain/jobposting"
	"github.com/listingdesk/backoffice/internal/domain/review"
	"github.com/listingdesk/backoffice/internal/query"
)

// Engines holds one query engine per record shape together with the sweepers
// of the time-bounded shapes
type Engines struct {
	Businesses  *query.Engine[*business.Business]
	Articles    *query.Engine[*article.Article]
	Banners     *query.Engine[*banner.Banner]
	JobPostings *query.Engine[*jobposting.JobPosting]
	Reviews     *query.Engine[*review.Review]

	sweepers []*query.Sweeper
}

func NewEngines(params ServiceParams) *Engines {
	clock := params.Clock
	if clock == nil {
		clock = query.SystemClock
	}

	bannerSweeper := query.NewSweeper(banner.Entity, params.Stores.BannerExpiry, clock, params.Logger)
	jobPostingSweeper := query.NewSweeper(jobposting.Entity, params.Stores.JobPostingExpiry, clock, params.Logger)

	return &Engines{
		Businesses: query.NewEngine(query.Source[*business.Business]{
			Entity: business.Entity,
			Store:  params.Stores.Businesses,
			Fields: business.Fields,
		}, params.Directory, params.Reporter, params.Logger),

		Articles: query.NewEngine(query.Source[*article.Article]{
			Entity: article.Entity,
			Store:  params.Stores.Articles,
			Fields: article.Fields,
		}, params.Directory, params.Reporter, params.Logger),

		// expired records are deactivated before every read, even when the
		// background runner is enabled
		Banners: query.NewEngine(query.Source[*banner.Banner]{
			Entity:   banner.Entity,
			Store:    params.Stores.Banners,
			Fields:   banner.Fields,
			Ordering: banner.Ordering,
			PreSteps: []query.PreStep{bannerSweeper},
		}, params.Directory, params.Reporter, params.Logger),

		JobPostings: query.NewEngine(query.Source[*jobposting.JobPosting]{
			Entity:   jobposting.Entity,
			Store:    params.Stores.JobPostings,
			Fields:   jobposting.Fields,
			PreSteps: []query.PreStep{jobPostingSweeper},
		}, params.Directory, params.Reporter, params.Logger),

		Reviews: query.NewEngine(query.Source[*review.Review]{
			Entity: review.Entity,
			Store:  params.Stores.Reviews,
			Fields: review.Fields,
		}, params.Directory, params.Reporter, params.Logger),

		sweepers: []*query.Sweeper{bannerSweeper, jobPostingSweeper},
	}
}

// Sweepers returns the expiration sweepers of every time-bounded shape
func (e *Engines) Sweepers() []*query.Sweeper {
	return e.sweepers
}
