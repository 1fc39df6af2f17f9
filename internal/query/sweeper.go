package query

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/listingdesk/backoffice/internal/logger"
	"github.com/listingdesk/backoffice/internal/types"
)

// PreStep runs before a read is planned. An error aborts the read.
type PreStep interface {
	Run(ctx context.Context) error
}

// ExpiryStore finds and deactivates time-bounded records whose lifetime elapsed
type ExpiryStore interface {
	// FindExpired returns the active, non-deleted records whose
	// createdAt + durationDays is strictly before now.
	FindExpired(ctx context.Context, now time.Time) ([]uuid.UUID, error)
	// Deactivate sets active=false and updatedAt=now on every id as one batch
	Deactivate(ctx context.Context, ids []uuid.UUID, now time.Time) error
}

// Clock returns the current time
type Clock func() time.Time

// SystemClock is the wall clock in UTC
func SystemClock() time.Time {
	return time.Now().UTC()
}

// Sweeper deactivates expired records of one shape. Running it twice in a row
// changes nothing the second time.
type Sweeper struct {
	entity string
	store  ExpiryStore
	clock  Clock
	logger *logger.Logger
}

func NewSweeper(entity string, store ExpiryStore, clock Clock, log *logger.Logger) *Sweeper {
	if clock == nil {
		clock = SystemClock
	}
	return &Sweeper{entity: entity, store: store, clock: clock, logger: log}
}

func (s *Sweeper) Entity() string {
	return s.entity
}

// Run implements PreStep
func (s *Sweeper) Run(ctx context.Context) error {
	_, err := s.Sweep(ctx)
	return err
}

// Sweep deactivates every expired record and returns how many it touched
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	now := s.clock()

	ids, err := s.store.FindExpired(ctx, now)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	if err := s.store.Deactivate(ctx, ids, now); err != nil {
		return 0, err
	}

	deactivationsTotal.WithLabelValues(s.entity).Add(float64(len(ids)))
	s.logger.Infow("deactivated expired records",
		"entity", s.entity,
		"count", len(ids),
		"request_id", types.GetRequestID(ctx),
	)
	return len(ids), nil
}
