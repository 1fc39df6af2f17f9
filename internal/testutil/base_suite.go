package testutil

import (
	"context"
	"time"

	"github.com/listingdesk/backoffice/internal/config"
	"github.com/listingdesk/backoffice/internal/domain/article"
	"github.com/listingdesk/backoffice/internal/domain/banner"
	"github.com/listingdesk/backoffice/internal/domain/business"
	"github.com/listingdesk/backoffice/internal/domain/jobposting"
	"github.com/listingdesk/backoffice/internal/domain/review"
	"github.com/listingdesk/backoffice/internal/logger"
	"github.com/listingdesk/backoffice/internal/types"
	"github.com/stretchr/testify/suite"
)

// Stores holds the in-memory record stores for testing
type Stores struct {
	Businesses  *InMemoryRecordStore[business.Business, *business.Business]
	Articles    *InMemoryRecordStore[article.Article, *article.Article]
	Banners     *InMemoryRecordStore[banner.Banner, *banner.Banner]
	JobPostings *InMemoryRecordStore[jobposting.JobPosting, *jobposting.JobPosting]
	Reviews     *InMemoryRecordStore[review.Review, *review.Review]
}

// BaseQueryTestSuite provides common functionality for suites exercising the query engine
type BaseQueryTestSuite struct {
	suite.Suite
	ctx       context.Context
	stores    Stores
	directory *InMemoryDirectory
	reporter  *InMemoryReporter
	logger    *logger.Logger
	config    *config.Configuration
	now       time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseQueryTestSuite) SetupSuite() {
	s.config = config.GetDefaultConfig()
	s.config.Logging.Level = types.LogLevelInfo
	s.logger = NewTestLogger()
}

// SetupTest is called before each test
func (s *BaseQueryTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.now = time.Now().UTC().Truncate(time.Second)
	s.directory = NewInMemoryDirectory()
	s.reporter = NewInMemoryReporter()
	s.stores = Stores{
		Businesses:  NewInMemoryRecordStore[business.Business](),
		Articles:    NewInMemoryRecordStore[article.Article](),
		Banners:     NewInMemoryRecordStore[banner.Banner](),
		JobPostings: NewInMemoryRecordStore[jobposting.JobPosting](),
		Reviews:     NewInMemoryRecordStore[review.Review](),
	}
}

// TearDownTest is called after each test
func (s *BaseQueryTestSuite) TearDownTest() {
	s.stores.Businesses.Clear()
	s.stores.Articles.Clear()
	s.stores.Banners.Clear()
	s.stores.JobPostings.Clear()
	s.stores.Reviews.Clear()
}

// GetContext returns the test context
func (s *BaseQueryTestSuite) GetContext() context.Context {
	return s.ctx
}

// SetContext replaces the test context
func (s *BaseQueryTestSuite) SetContext(ctx context.Context) {
	s.ctx = ctx
}

// GetConfig returns the test configuration
func (s *BaseQueryTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test stores
func (s *BaseQueryTestSuite) GetStores() Stores {
	return s.stores
}

// GetDirectory returns the lookup counting directory
func (s *BaseQueryTestSuite) GetDirectory() *InMemoryDirectory {
	return s.directory
}

// GetReporter returns the error reporter the engines capture failures into
func (s *BaseQueryTestSuite) GetReporter() *InMemoryReporter {
	return s.reporter
}

// GetLogger returns the test logger
func (s *BaseQueryTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the current test time
func (s *BaseQueryTestSuite) GetNow() time.Time {
	return s.now
}
