// internal/infrastructure/storage/memory.go
package storage

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// Memory is an in-process Store. It backs tests and serves as the degraded
// fallback inside the Redis adapter when the backend is unreachable.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{entries: map[string]memoryEntry{}}
}

// Read unmarshals the stored value into dest, reporting false on a miss
func (m *Memory) Read(_ context.Context, key string, dest interface{}) bool {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return false
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return false
	}
	return json.Unmarshal(entry.data, dest) == nil
}

// Write stores the JSON encoding of value under key
func (m *Memory) Write(_ context.Context, key string, value interface{}, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = memoryEntry{data: data, expiresAt: expiresAt}
	m.mu.Unlock()
}

// Delete removes the given keys
func (m *Memory) Delete(_ context.Context, keys ...string) {
	m.mu.Lock()
	for _, key := range keys {
		delete(m.entries, key)
	}
	m.mu.Unlock()
}
