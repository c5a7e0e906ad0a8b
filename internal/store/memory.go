package store

import (
	"context"
	"sync"
)

// Memory keeps collections in process memory. Used by tests and as the
// reference implementation of the Store contract.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
	bus  *bus
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte), bus: newBus()}
}

func (m *Memory) Read(_ context.Context, collection string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.data[collection]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return cp, nil
}

func (m *Memory) Write(_ context.Context, collection string, data []byte) error {
	m.mu.Lock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.data[collection] = cp
	m.mu.Unlock()
	m.bus.publish(collection)
	return nil
}

func (m *Memory) Subscribe(collection string) (<-chan struct{}, func()) {
	return m.bus.subscribe(collection)
}
