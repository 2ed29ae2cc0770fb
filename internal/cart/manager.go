package cart

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Manager hands out one PersistentStore per cart ID, loading each cart
// from the persister the first time it is requested in this process.
type Manager struct {
	mu     sync.Mutex
	p      Persister
	log    *slog.Logger
	stores map[string]*PersistentStore
}

func NewManager(p Persister, log *slog.Logger) *Manager {
	return &Manager{p: p, log: log, stores: make(map[string]*PersistentStore)}
}

// NewID mints a fresh cart identifier.
func (m *Manager) NewID() string { return uuid.NewString() }

// Get returns the store for the given cart ID, opening it on first use.
func (m *Manager) Get(ctx context.Context, cartID string) *PersistentStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ps, ok := m.stores[cartID]; ok {
		return ps
	}
	ps := OpenPersistent(ctx, m.p, cartID, m.log)
	m.stores[cartID] = ps
	return ps
}
