package testutil

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/listingdesk/backoffice/internal/query"
)

// InMemoryDirectory is a query.Directory that records every lookup it serves
type InMemoryDirectory struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]query.DirectoryUser
	tenants map[uuid.UUID]query.DirectoryTenant
	err     error

	UserLookups   [][]uuid.UUID
	TenantLookups [][]uuid.UUID
}

func NewInMemoryDirectory() *InMemoryDirectory {
	return &InMemoryDirectory{
		users:   make(map[uuid.UUID]query.DirectoryUser),
		tenants: make(map[uuid.UUID]query.DirectoryTenant),
	}
}

// AddTenant registers a tenant and returns its id
func (d *InMemoryDirectory) AddTenant(name string) uuid.UUID {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := uuid.New()
	d.tenants[id] = query.DirectoryTenant{ID: id, Name: name}
	return id
}

// AddUser registers a user belonging to tenant, which may be nil, and returns its id
func (d *InMemoryDirectory) AddUser(name string, tenant *uuid.UUID) uuid.UUID {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := uuid.New()
	d.users[id] = query.DirectoryUser{ID: id, Name: name, TenantID: tenant}
	return id
}

// FailWith makes every later lookup return err
func (d *InMemoryDirectory) FailWith(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.err = err
}

// Lookups returns the total number of batched lookups served
func (d *InMemoryDirectory) Lookups() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.UserLookups) + len(d.TenantLookups)
}

// Reset forgets the recorded lookups
func (d *InMemoryDirectory) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.UserLookups, d.TenantLookups = nil, nil
}

func (d *InMemoryDirectory) Users(ctx context.Context, ids []uuid.UUID) ([]query.DirectoryUser, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.UserLookups = append(d.UserLookups, slices.Clone(ids))
	if d.err != nil {
		return nil, d.err
	}

	var out []query.DirectoryUser
	for _, id := range ids {
		if u, ok := d.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (d *InMemoryDirectory) Tenants(ctx context.Context, ids []uuid.UUID) ([]query.DirectoryTenant, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.TenantLookups = append(d.TenantLookups, slices.Clone(ids))
	if d.err != nil {
		return nil, d.err
	}

	var out []query.DirectoryTenant
	for _, id := range ids {
		if t, ok := d.tenants[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}
