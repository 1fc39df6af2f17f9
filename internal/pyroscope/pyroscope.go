package pyroscope

import (
	"context"
	"strings"

	"github.com/grafana/pyroscope-go"
	"github.com/listingdesk/backoffice/internal/config"
	"github.com/listingdesk/backoffice/internal/logger"
	"go.uber.org/fx"
)

type Service struct {
	cfg      *config.Configuration
	logger   *logger.Logger
	profiler *pyroscope.Profiler
}

// NewPyroscopeService creates a new Pyroscope service
func NewPyroscopeService(cfg *config.Configuration, logger *logger.Logger) *Service {
	return &Service{
		cfg:    cfg,
		logger: logger,
	}
}

// RegisterHooks starts continuous profiling when enabled and stops it on shutdown
func RegisterHooks(lc fx.Lifecycle, svc *Service) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !svc.IsEnabled() {
				svc.logger.Info("Pyroscope profiling is disabled")
				return nil
			}

			cfg := svc.cfg.Pyroscope
			pyroscopeConfig := pyroscope.Config{
				ApplicationName:   cfg.ApplicationName,
				ServerAddress:     cfg.ServerAddress,
				BasicAuthUser:     cfg.BasicAuthUser,
				BasicAuthPassword: cfg.BasicAuthPass,
				ProfileTypes:      svc.profileTypes(),
				SampleRate:        cfg.SampleRate,
				DisableGCRuns:     cfg.DisableGCRuns,
				Tags:              map[string]string{"mode": string(svc.cfg.Deployment.Mode)},
				Logger:            svc,
			}

			profiler, err := pyroscope.Start(pyroscopeConfig)
			if err != nil {
				svc.logger.Errorw("Failed to initialize Pyroscope", "error", err)
				return err
			}
			svc.logger.Infow("Pyroscope profiling initialized",
				"application_name", cfg.ApplicationName,
				"server_address", cfg.ServerAddress,
				"sample_rate", cfg.SampleRate,
			)
			svc.profiler = profiler
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if svc.profiler == nil {
				return nil
			}
			svc.logger.Info("Stopping Pyroscope profiling")
			return svc.profiler.Stop()
		},
	})
}

func (s *Service) IsEnabled() bool {
	return s.cfg.Pyroscope.Enabled
}

// Debugf, Infof and Errorf implement pyroscope.Logger
func (s *Service) Debugf(format string, args ...interface{}) {
	s.logger.Debugf("[Pyroscope] "+format, args...)
}

func (s *Service) Infof(format string, args ...interface{}) {
	s.logger.Infof("[Pyroscope] "+format, args...)
}

func (s *Service) Errorf(format string, args ...interface{}) {
	s.logger.Errorf("[Pyroscope] "+format, args...)
}

var profileTypeNames = map[string]pyroscope.ProfileType{
	"cpu":            pyroscope.ProfileCPU,
	"inuse_objects":  pyroscope.ProfileInuseObjects,
	"alloc_objects":  pyroscope.ProfileAllocObjects,
	"inuse_space":    pyroscope.ProfileInuseSpace,
	"alloc_space":    pyroscope.ProfileAllocSpace,
	"goroutines":     pyroscope.ProfileGoroutines,
	"mutex_count":    pyroscope.ProfileMutexCount,
	"mutex_duration": pyroscope.ProfileMutexDuration,
	"block_count":    pyroscope.ProfileBlockCount,
	"block_duration": pyroscope.ProfileBlockDuration,
}

// profileTypes maps the configured names, falling back to the CPU, memory and
// goroutine profiles when none are configured
func (s *Service) profileTypes() []pyroscope.ProfileType {
	if len(s.cfg.Pyroscope.ProfileTypes) == 0 {
		return []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileGoroutines,
		}
	}

	types := make([]pyroscope.ProfileType, 0, len(s.cfg.Pyroscope.ProfileTypes))
	for _, name := range s.cfg.Pyroscope.ProfileTypes {
		pt, ok := profileTypeNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			s.logger.Warnw("Unknown profile type", "type", name)
			continue
		}
		types = append(types, pt)
	}
	return types
}
