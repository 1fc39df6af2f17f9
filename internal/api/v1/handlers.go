package v1

import (
	"github.com/listingdesk/backoffice/internal/domain/article"
	"github.com/listingdesk/backoffice/internal/domain/banner"
	"github.com/listingdesk/backoffice/internal/domain/business"
	"github.com/listingdesk/backoffice/internal/domain/jobposting"
	"github.com/listingdesk/backoffice/internal/domain/review"
	"github.com/listingdesk/backoffice/internal/logger"
	"github.com/listingdesk/backoffice/internal/service"
)

type (
	BusinessHandler   = RecordHandler[*business.Business, business.Filter, *business.Filter]
	ArticleHandler    = RecordHandler[*article.Article, article.Filter, *article.Filter]
	BannerHandler     = RecordHandler[*banner.Banner, banner.Filter, *banner.Filter]
	JobPostingHandler = RecordHandler[*jobposting.JobPosting, jobposting.Filter, *jobposting.Filter]
	ReviewHandler     = RecordHandler[*review.Review, review.Filter, *review.Filter]
)

func NewBusinessHandler(engines *service.Engines, log *logger.Logger) *BusinessHandler {
	return NewRecordHandler[*business.Business, business.Filter](engines.Businesses, log)
}

func NewArticleHandler(engines *service.Engines, log *logger.Logger) *ArticleHandler {
	return NewRecordHandler[*article.Article, article.Filter](engines.Articles, log)
}

func NewBannerHandler(engines *service.Engines, log *logger.Logger) *BannerHandler {
	return NewRecordHandler[*banner.Banner, banner.Filter](engines.Banners, log)
}

func NewJobPostingHandler(engines *service.Engines, log *logger.Logger) *JobPostingHandler {
	return NewRecordHandler[*jobposting.JobPosting, jobposting.Filter](engines.JobPostings, log)
}

func NewReviewHandler(engines *service.Engines, log *logger.Logger) *ReviewHandler {
	return NewRecordHandler[*review.Review, review.Filter](engines.Reviews, log)
}
