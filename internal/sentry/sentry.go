package sentry

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/listingdesk/backoffice/internal/config"
	ierr "github.com/listingdesk/backoffice/internal/errors"
	"github.com/listingdesk/backoffice/internal/logger"
	"github.com/listingdesk/backoffice/internal/types"
	"go.uber.org/fx"
)

const flushTimeout = 2 * time.Second

type Service struct {
	cfg    *config.Configuration
	logger *logger.Logger
}

// NewSentryService creates a new Sentry service. Nothing is sent until the
// lifecycle hook initialises the client, and never when Sentry is disabled.
func NewSentryService(cfg *config.Configuration, logger *logger.Logger) *Service {
	return &Service{
		cfg:    cfg,
		logger: logger,
	}
}

// RegisterHooks registers lifecycle hooks for Sentry
func RegisterHooks(lc fx.Lifecycle, svc *Service) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !svc.cfg.Sentry.Enabled {
				svc.logger.Info("Sentry is disabled")
				return nil
			}

			err := sentry.Init(sentry.ClientOptions{
				Dsn:              svc.cfg.Sentry.DSN,
				Environment:      svc.cfg.Sentry.Environment,
				EnableTracing:    true,
				TracesSampleRate: svc.cfg.Sentry.SampleRate,
				TracesSampler: sentry.TracesSampler(func(ctx sentry.SamplingContext) float64 {
					if ctx.Span.Name == "GET /health" {
						return 0.0
					}
					return svc.cfg.Sentry.SampleRate
				}),
			})
			if err != nil {
				svc.logger.Errorw("Failed to initialize Sentry", "error", err)
				return err
			}
			svc.logger.Infow("Sentry initialized successfully",
				"environment", svc.cfg.Sentry.Environment,
				"sample_rate", svc.cfg.Sentry.SampleRate,
			)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			svc.Flush(flushTimeout)
			return nil
		},
	})
}

func (s *Service) Enabled() bool {
	return s.cfg.Sentry.Enabled
}

// CaptureException reports err tagged with the request and tenant carried by ctx
func (s *Service) CaptureException(ctx context.Context, err error) {
	if !s.Enabled() || err == nil {
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("error_code", ierr.Code(err))
		if requestID := types.GetRequestID(ctx); requestID != "" {
			scope.SetTag("request_id", requestID)
		}
		if tenantID := types.GetTenantID(ctx); tenantID != "" {
			scope.SetTag("tenant_id", tenantID)
		}
		if userID := types.GetUserID(ctx); userID != "" {
			scope.SetUser(sentry.User{ID: userID})
		}
	})
	hub.CaptureException(err)
}

// Flush waits for queued events to be sent
func (s *Service) Flush(timeout time.Duration) bool {
	if !s.Enabled() {
		return true
	}
	s.logger.Info("Flushing Sentry events before shutdown")
	return sentry.Flush(timeout)
}
