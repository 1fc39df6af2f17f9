package testutil

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	ierr "github.com/listingdesk/backoffice/internal/errors"
	"github.com/listingdesk/backoffice/internal/query"
	"github.com/listingdesk/backoffice/internal/types"
	"github.com/samber/lo"
)

// InMemoryRecordStore implements query.Store and query.ExpiryStore over a map.
// Records are copied on the way in and out so callers never alias stored state.
type InMemoryRecordStore[S any, P interface {
	*S
	types.Record
}] struct {
	mu    sync.RWMutex
	items map[uuid.UUID]P
	err   error

	counts        int
	fetches       int
	deactivations [][]uuid.UUID
}

// NewInMemoryRecordStore creates an empty store
func NewInMemoryRecordStore[S any, P interface {
	*S
	types.Record
}]() *InMemoryRecordStore[S, P] {
	return &InMemoryRecordStore[S, P]{items: make(map[uuid.UUID]P)}
}

func clone[S any, P interface {
	*S
	types.Record
}](item P) P {
	c := *item
	return P(&c)
}

// Create adds records to the store
func (s *InMemoryRecordStore[S, P]) Create(items ...P) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		s.items[item.Identity()] = clone[S, P](item)
	}
}

// Get returns a copy of a stored record as it currently is
func (s *InMemoryRecordStore[S, P]) Get(id uuid.UUID) (P, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return nil, false
	}
	return clone[S, P](item), true
}

// FailWith makes every later read and write return err. nil restores the store.
func (s *InMemoryRecordStore[S, P]) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Counts returns how many Count and Fetch calls reached the store
func (s *InMemoryRecordStore[S, P]) Counts() (counts int, fetches int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counts, s.fetches
}

// Deactivations returns the id batches passed to Deactivate
func (s *InMemoryRecordStore[S, P]) Deactivations() [][]uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.deactivations)
}

// Clear removes all records and recorded calls
func (s *InMemoryRecordStore[S, P]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[uuid.UUID]P)
	s.err = nil
	s.counts, s.fetches = 0, 0
	s.deactivations = nil
}

func (s *InMemoryRecordStore[S, P]) Query() query.Query[P] {
	return &memoryQuery[S, P]{store: s}
}

func (s *InMemoryRecordStore[S, P]) FindExpired(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.err != nil {
		return nil, s.storageError("find expired records")
	}

	var ids []uuid.UUID
	for id, item := range s.items {
		bounded, ok := any(item).(types.TimeBounded)
		if !ok {
			continue
		}
		if bounded.Visible() && bounded.Expired(now) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *InMemoryRecordStore[S, P]) Deactivate(ctx context.Context, ids []uuid.UUID, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.storageError("deactivate records")
	}

	s.deactivations = append(s.deactivations, slices.Clone(ids))
	for _, id := range ids {
		if bounded, ok := any(s.items[id]).(types.TimeBounded); ok {
			bounded.Deactivate(now)
		}
	}
	return nil
}

func (s *InMemoryRecordStore[S, P]) storageError(op string) error {
	return ierr.WithError(s.err).
		WithHintf("Failed to %s", op).
		Mark(ierr.ErrDatabase)
}

type memoryQuery[S any, P interface {
	*S
	types.Record
}] struct {
	store  *InMemoryRecordStore[S, P]
	preds  []query.Predicate[P]
	orders []query.Ordering[P]
}

func (q *memoryQuery[S, P]) Where(p query.Predicate[P]) query.Query[P] {
	return &memoryQuery[S, P]{
		store:  q.store,
		preds:  append(slices.Clone(q.preds), p),
		orders: q.orders,
	}
}

func (q *memoryQuery[S, P]) OrderBy(orders ...query.Ordering[P]) query.Query[P] {
	return &memoryQuery[S, P]{
		store:  q.store,
		preds:  q.preds,
		orders: append(slices.Clone(q.orders), orders...),
	}
}

func (q *memoryQuery[S, P]) Count(ctx context.Context) (int, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()

	q.store.counts++
	if q.store.err != nil {
		return 0, q.store.storageError("count records")
	}
	return len(q.matching()), nil
}

func (q *memoryQuery[S, P]) Fetch(ctx context.Context, window types.PageWindow) ([]P, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()

	q.store.fetches++
	if q.store.err != nil {
		return nil, q.store.storageError("fetch records")
	}

	result := q.matching()
	sort.SliceStable(result, func(i, j int) bool {
		for _, o := range q.orders {
			c := o.Compare(result[i], result[j])
			if o.Descending {
				c = -c
			}
			if c != 0 {
				return c < 0
			}
		}
		return result[i].Identity().String() < result[j].Identity().String()
	})

	if window.Skip >= len(result) {
		return []P{}, nil
	}
	end := min(window.Skip+window.Take, len(result))
	return lo.Map(result[window.Skip:end], func(item P, _ int) P {
		return clone[S, P](item)
	}), nil
}

// matching must be called with the store lock held
func (q *memoryQuery[S, P]) matching() []P {
	var result []P
	for _, item := range q.store.items {
		if lo.EveryBy(q.preds, func(p query.Predicate[P]) bool { return p.Match(item) }) {
			result = append(result, item)
		}
	}
	return result
}
