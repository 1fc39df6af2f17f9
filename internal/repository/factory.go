package repository

import (
	"github.com/listingdesk/backoffice/internal/domain/article"
	"github.com/listingdesk/backoffice/internal/domain/banner"
	"github.com/listingdesk/backoffice/internal/domain/business"
	"github.com/listingdesk/backoffice/internal/domain/jobposting"
	"github.com/listingdesk/backoffice/internal/domain/review"
	"github.com/listingdesk/backoffice/internal/domain/tenant"
	"github.com/listingdesk/backoffice/internal/domain/user"
	"github.com/listingdesk/backoffice/internal/logger"
	"github.com/listingdesk/backoffice/internal/postgres"
	"github.com/listingdesk/backoffice/internal/query"
	postgresRepo "github.com/listingdesk/backoffice/internal/repository/postgres"
)

// Stores groups the record stores of every shape the back office reads.
// Time-bounded shapes also carry the store their sweeper deactivates through.
type Stores struct {
	Businesses       query.Store[*business.Business]
	Articles         query.Store[*article.Article]
	Banners          query.Store[*banner.Banner]
	BannerExpiry     query.ExpiryStore
	JobPostings      query.Store[*jobposting.JobPosting]
	JobPostingExpiry query.ExpiryStore
	Reviews          query.Store[*review.Review]
}

func NewStores(db *postgres.DB, logger *logger.Logger) Stores {
	return Stores{
		Businesses:       postgresRepo.NewRecordStore[*business.Business](db, postgresRepo.BusinessTable, logger),
		Articles:         postgresRepo.NewRecordStore[*article.Article](db, postgresRepo.ArticleTable, logger),
		Banners:          postgresRepo.NewRecordStore[*banner.Banner](db, postgresRepo.BannerTable, logger),
		BannerExpiry:     postgresRepo.NewExpiryStore(db, postgresRepo.BannerTable, logger),
		JobPostings:      postgresRepo.NewRecordStore[*jobposting.JobPosting](db, postgresRepo.JobPostingTable, logger),
		JobPostingExpiry: postgresRepo.NewExpiryStore(db, postgresRepo.JobPostingTable, logger),
		Reviews:          postgresRepo.NewRecordStore[*review.Review](db, postgresRepo.ReviewTable, logger),
	}
}

func NewUserRepository(db *postgres.DB, logger *logger.Logger) user.Repository {
	return postgresRepo.NewUserRepository(db, logger)
}

func NewTenantRepository(db *postgres.DB, logger *logger.Logger) tenant.Repository {
	return postgresRepo.NewTenantRepository(db, logger)
}
