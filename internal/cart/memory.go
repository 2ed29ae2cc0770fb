package cart

import (
	"context"
	"sync"
)

// MemoryPersister keeps payloads in a map. Used in tests and when the
// server runs without a cart database.
type MemoryPersister struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{data: make(map[string][]byte)}
}

func (m *MemoryPersister) Save(_ context.Context, cartID string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	buf := make([]byte, len(payload))
	copy(buf, payload)
	m.data[cartID] = buf
	return nil
}

func (m *MemoryPersister) Load(_ context.Context, cartID string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	payload, ok := m.data[cartID]
	if !ok {
		return nil, ErrNoRecord
	}
	return payload, nil
}
