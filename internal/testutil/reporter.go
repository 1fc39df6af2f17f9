package testutil

import (
	"context"
	"sync"
)

// InMemoryReporter records every captured error
type InMemoryReporter struct {
	mu       sync.Mutex
	captured []error
}

func NewInMemoryReporter() *InMemoryReporter {
	return &InMemoryReporter{}
}

func (r *InMemoryReporter) CaptureException(_ context.Context, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.captured = append(r.captured, err)
}

// Captured returns a copy of the errors captured so far
func (r *InMemoryReporter) Captured() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.captured...)
}
