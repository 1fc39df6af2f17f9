package service

import (
	"testing"
	"time"

	"github.com/listingdesk/backoffice/internal/domain/banner"
	"github.com/listingdesk/backoffice/internal/domain/business"
	"github.com/listingdesk/backoffice/internal/domain/jobposting"
	"github.com/listingdesk/backoffice/internal/repository"
	"github.com/listingdesk/backoffice/internal/testutil"
	"github.com/listingdesk/backoffice/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type EnginesSuite struct {
	testutil.BaseQueryTestSuite
	engines *Engines
}

func TestEngines(t *testing.T) {
	suite.Run(t, new(EnginesSuite))
}

func (s *EnginesSuite) SetupTest() {
	s.BaseQueryTestSuite.SetupTest()
	stores := s.GetStores()

	s.engines = NewEngines(NewServiceParams(
		s.GetLogger(),
		s.GetConfig(),
		repository.Stores{
			Businesses:       stores.Businesses,
			Articles:         stores.Articles,
			Banners:          stores.Banners,
			BannerExpiry:     stores.Banners,
			JobPostings:      stores.JobPostings,
			JobPostingExpiry: stores.JobPostings,
			Reviews:          stores.Reviews,
		},
		s.GetDirectory(),
		testutil.FixedClock(s.GetNow()),
		s.GetReporter(),
	))
}

func (s *EnginesSuite) timeBounded(createdAt time.Time, days int) types.TimeBoundedModel {
	return types.TimeBoundedModel{
		BaseModel:    testutil.NewBaseModel(testutil.WithCreatedAt(createdAt)),
		DurationDays: days,
	}
}

func (s *EnginesSuite) TestSweepersCoverTimeBoundedShapes() {
	entities := make([]string, 0, len(s.engines.Sweepers()))
	for _, sw := range s.engines.Sweepers() {
		entities = append(entities, sw.Entity())
	}
	s.ElementsMatch([]string{banner.Entity, jobposting.Entity}, entities)
}

func (s *EnginesSuite) TestBannerListSweepsAndOrdersByPriority() {
	now := s.GetNow()
	s.GetStores().Banners.Create(
		&banner.Banner{Title: "expired", Priority: 9, TimeBoundedModel: s.timeBounded(now.AddDate(0, 0, -10), 7)},
		&banner.Banner{Title: "low", Priority: 1, TimeBoundedModel: s.timeBounded(now.Add(-time.Hour), 7)},
		&banner.Banner{Title: "high", Priority: 5, TimeBoundedModel: s.timeBounded(now.Add(-2*time.Hour), 7)},
	)

	resp := s.engines.Banners.List(s.GetContext(), &banner.Filter{})
	s.Require().True(resp.Status)
	s.Equal(2, resp.Data.TotalCount)
	s.Require().Len(resp.Data.Items, 2)
	s.Equal("high", resp.Data.Items[0].Title)
	s.Equal("low", resp.Data.Items[1].Title)
	s.Len(s.GetStores().Banners.Deactivations(), 1)
}

func (s *EnginesSuite) TestJobPostingGetSweepsFirst() {
	job := &jobposting.JobPosting{
		Title:            "Welder",
		Salary:           decimal.NewFromInt(52000),
		TimeBoundedModel: s.timeBounded(s.GetNow().AddDate(0, 0, -31), 30),
	}
	s.GetStores().JobPostings.Create(job)

	resp := s.engines.JobPostings.Get(s.GetContext(), job.ID.String(), types.ScopeParams{})
	s.False(resp.Status)
	s.Equal("Not found", resp.Title)
}

func (s *EnginesSuite) TestBusinessesHaveNoPreSteps() {
	s.GetStores().Businesses.Create(&business.Business{Name: "Acme", BaseModel: testutil.NewBaseModel()})

	resp := s.engines.Businesses.List(s.GetContext(), &business.Filter{})
	s.Require().True(resp.Status)
	s.Equal(1, resp.Data.TotalCount)
	s.Empty(s.GetStores().Businesses.Deactivations())
}
