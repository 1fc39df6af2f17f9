// Package sweeper deactivates expired time-bounded records in the background.
package sweeper

import (
	"context"
	"sync"
	"time"

	"github.com/listingdesk/backoffice/internal/config"
	"github.com/listingdesk/backoffice/internal/logger"
	"github.com/listingdesk/backoffice/internal/types"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/pool"
)

// Target is one record shape the runner sweeps
type Target interface {
	Entity() string
	Sweep(ctx context.Context) (int, error)
}

// Runner sweeps every target on a fixed interval. The read path keeps its own
// sweep, so the runner only shortens how long expired records stay active
// between reads.
type Runner struct {
	targets  []Target
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     conc.WaitGroup
}

const defaultInterval = time.Minute

func NewRunner(targets []Target, cfg *config.Configuration, logger *logger.Logger) *Runner {
	interval := cfg.Sweeper.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Runner{
		targets:  targets,
		interval: interval,
		logger:   logger,
	}
}

// SweepAll sweeps every target concurrently and returns the number of records
// deactivated per entity. Targets that fail are left out of the result and
// their errors joined.
func (r *Runner) SweepAll(ctx context.Context) (map[string]int, error) {
	type outcome struct {
		entity string
		count  int
	}

	p := pool.NewWithResults[outcome]().WithContext(ctx)
	for _, t := range r.targets {
		p.Go(func(ctx context.Context) (outcome, error) {
			count, err := t.Sweep(ctx)
			if err != nil {
				r.logger.Errorw("sweep failed", "entity", t.Entity(), "error", err)
				return outcome{}, err
			}
			return outcome{entity: t.Entity(), count: count}, nil
		})
	}

	results, err := p.Wait()
	return lo.SliceToMap(results, func(o outcome) (string, int) {
		return o.entity, o.count
	}), err
}

// Start launches the sweep loop. It sweeps once immediately and then on every
// tick until Stop is called or ctx is done.
func (r *Runner) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.logger.Infow("starting expiration sweeper", "interval", r.interval, "targets", len(r.targets))

	r.wg.Go(func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			r.tick(ctx)

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	})
}

// Stop cancels the loop and waits for an in-flight sweep to finish
func (r *Runner) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	r.wg.Wait()
	r.logger.Info("expiration sweeper stopped")
}

func (r *Runner) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	ctx = types.SetRequestID(ctx, types.GenerateUUID())
	counts, err := r.SweepAll(ctx)
	if err != nil {
		return
	}

	if total := lo.Sum(lo.Values(counts)); total > 0 {
		r.logger.Infow("sweep finished", "deactivated", total, "by_entity", counts)
	}
}
