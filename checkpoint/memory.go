package checkpoint

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// MemoryStore is an in-memory Store implementation for testing.
// Thread-safe for concurrent reads and writes.
//
// Records go through the same encode/decode path as durable stores, so a
// Get always returns an independent copy of what was Put.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
	opts    Options
}

// NewMemoryStore creates a new in-memory checkpoint store.
func NewMemoryStore(optFns ...func(o *Options)) *MemoryStore {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	return &MemoryStore{
		records: make(map[string][]byte),
		opts:    opts,
	}
}

// Put encodes record and overwrites the value under key.
func (m *MemoryStore) Put(_ context.Context, key string, record any) error {
	data, err := EncodeRecord(m.opts, record)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = data
	return nil
}

// Get decodes the value under key into record.
func (m *MemoryStore) Get(_ context.Context, key string, record any) error {
	m.mu.RLock()
	data, ok := m.records[key]
	m.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return DecodeRecord(data, record)
}

// Delete removes the value under key.
func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, key)
	return nil
}

// List returns all keys with the given prefix, sorted.
func (m *MemoryStore) List(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var keys []string
	for k := range m.records {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Len returns the number of stored records.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
