package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/listingdesk/backoffice/internal/api/v1"
	"github.com/listingdesk/backoffice/internal/auth"
	"github.com/listingdesk/backoffice/internal/config"
	"github.com/listingdesk/backoffice/internal/logger"
	"github.com/listingdesk/backoffice/internal/rest/middleware"
	"github.com/listingdesk/backoffice/internal/sentry"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Health      *v1.HealthHandler
	Businesses  *v1.BusinessHandler
	Articles    *v1.ArticleHandler
	Banners     *v1.BannerHandler
	JobPostings *v1.JobPostingHandler
	Reviews     *v1.ReviewHandler
}

// recordRoutes is the read surface every record handler exposes
type recordRoutes interface {
	List(c *gin.Context)
	Get(c *gin.Context)
}

func NewRouter(handlers Handlers, cfg *config.Configuration, sentryService *sentry.Service, logger *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.SentryMiddleware(cfg),
		middleware.PyroscopeMiddleware(cfg),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.MetricsMiddleware,
		middleware.ErrorHandler(sentryService, logger),
	)

	router.GET("/health", handlers.Health.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1Group := router.Group("/v1")
	if cfg.Auth.Enabled {
		v1Group.Use(middleware.AuthenticateMiddleware(auth.NewHMACAuth(cfg), logger))
	} else {
		v1Group.Use(middleware.GuestAuthenticateMiddleware)
	}
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	register := func(path string, h recordRoutes) {
		group := router.Group(path)
		{
			group.GET("", h.List)
			group.GET("/:id", h.Get)
		}
	}

	register("/businesses", handlers.Businesses)
	register("/articles", handlers.Articles)
	register("/banners", handlers.Banners)
	register("/job-postings", handlers.JobPostings)
	register("/reviews", handlers.Reviews)
}
