package postgres

import (
	"github.com/listingdesk/backoffice/internal/domain/article"
	"github.com/listingdesk/backoffice/internal/domain/banner"
	"github.com/listingdesk/backoffice/internal/domain/business"
	"github.com/listingdesk/backoffice/internal/domain/jobposting"
	"github.com/listingdesk/backoffice/internal/domain/review"
)

var (
	BusinessTable = Table{
		Entity:  business.Entity,
		Name:    "businesses",
		Columns: []string{"name", "category", "city", "phone", "status", "verified"},
	}

	ArticleTable = Table{
		Entity:  article.Entity,
		Name:    "articles",
		Columns: []string{"title", "slug", "author", "summary", "published", "view_count"},
	}

	BannerTable = Table{
		Entity:  banner.Entity,
		Name:    "banners",
		Columns: []string{"title", "placement", "image_url", "link_url", "priority", "duration_days"},
	}

	JobPostingTable = Table{
		Entity:  jobposting.Entity,
		Name:    "job_postings",
		Columns: []string{"title", "company", "location", "employment_type", "salary", "duration_days"},
	}

	ReviewTable = Table{
		Entity:  review.Entity,
		Name:    "reviews",
		Columns: []string{"business_id", "rating", "comment", "status"},
	}
)
