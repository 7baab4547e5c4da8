package store

import (
	"context"
	"strings"
	"sync"
)

// MemoryStore keeps records in a map. Used for tests and STORE_DRIVER=memory.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, unavailable("get", key, err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.records[key]
	if !ok {
		return nil, false, nil
	}
	return clone(value), true, nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return unavailable("set", key, err)
	}
	m.mu.Lock()
	m.records[key] = clone(value)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return unavailable("delete", key, err)
	}
	m.mu.Lock()
	delete(m.records, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable("scan", prefix, err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	values := make([][]byte, 0)
	for key, value := range m.records {
		if strings.HasPrefix(key, prefix) {
			values = append(values, clone(value))
		}
	}
	return values, nil
}

func (m *MemoryStore) Close() error { return nil }

// Len reports the number of stored keys.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

var _ KeyValueStore = (*MemoryStore)(nil)
