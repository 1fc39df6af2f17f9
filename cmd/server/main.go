package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/listingdesk/backoffice/internal/api"
	v1 "github.com/listingdesk/backoffice/internal/api/v1"
	"github.com/listingdesk/backoffice/internal/cache"
	"github.com/listingdesk/backoffice/internal/config"
	"github.com/listingdesk/backoffice/internal/directory"
	"github.com/listingdesk/backoffice/internal/logger"
	"github.com/listingdesk/backoffice/internal/postgres"
	"github.com/listingdesk/backoffice/internal/pyroscope"
	"github.com/listingdesk/backoffice/internal/query"
	"github.com/listingdesk/backoffice/internal/repository"
	"github.com/listingdesk/backoffice/internal/sentry"
	"github.com/listingdesk/backoffice/internal/service"
	"github.com/listingdesk/backoffice/internal/sweeper"
	"github.com/listingdesk/backoffice/internal/types"
	"github.com/samber/lo"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Monitoring
			sentry.NewSentryService,
			pyroscope.NewPyroscopeService,

			// Cache
			provideCache,

			// Postgres
			postgres.NewDB,

			// Repositories
			repository.NewStores,
			repository.NewUserRepository,
			repository.NewTenantRepository,

			// Directory
			directory.NewCachedDirectory,
			provideDirectory,
		),
		fx.Invoke(
			sentry.RegisterHooks,
			pyroscope.RegisterHooks,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			provideClock,
			provideErrorReporter,
			service.NewServiceParams,
			service.NewEngines,
			provideSweeperRunner,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			api.NewRouter,
		),
		fx.Invoke(
			closeDB,
			startServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideCache(cfg *config.Configuration, log *logger.Logger) cache.Cache {
	return cache.NewInMemoryCache(cfg, log)
}

func provideDirectory(d *directory.CachedDirectory) query.Directory {
	return d
}

func provideClock() query.Clock {
	return query.SystemClock
}

func provideErrorReporter(s *sentry.Service) query.ErrorReporter {
	return s
}

func provideSweeperRunner(engines *service.Engines, cfg *config.Configuration, log *logger.Logger) *sweeper.Runner {
	targets := lo.Map(engines.Sweepers(), func(s *query.Sweeper, _ int) sweeper.Target { return s })
	return sweeper.NewRunner(targets, cfg, log)
}

func provideHandlers(engines *service.Engines, logger *logger.Logger) api.Handlers {
	return api.Handlers{
		Health:      v1.NewHealthHandler(logger),
		Businesses:  v1.NewBusinessHandler(engines, logger),
		Articles:    v1.NewArticleHandler(engines, logger),
		Banners:     v1.NewBannerHandler(engines, logger),
		JobPostings: v1.NewJobPostingHandler(engines, logger),
		Reviews:     v1.NewReviewHandler(engines, logger),
	}
}

func closeDB(lc fx.Lifecycle, db *postgres.DB) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			db.Close()
			return nil
		},
	})
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	runner *sweeper.Runner,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal:
		startAPIServer(lc, r, cfg, log)
		startSweeper(lc, runner, log)
	case types.ModeAPI:
		startAPIServer(lc, r, cfg, log)
		if cfg.Sweeper.Enabled {
			startSweeper(lc, runner, log)
		}
	case types.ModeSweeper:
		startSweeper(lc, runner, log)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("Registering API server start hook")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("Starting API server...", "address", cfg.Server.Address)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return srv.Shutdown(ctx)
		},
	})
}

func startSweeper(lc fx.Lifecycle, runner *sweeper.Runner, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// the start context is cancelled once OnStart returns
			runner.Start(context.Background())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down sweeper...")
			runner.Stop()
			return nil
		},
	})
}
