// Package store provides the key-value blob stores that back paycal's
// persisted state: a SQLite file for normal use and an in-memory map.
package store

import "sync"

// Blob is a string-by-key store. Get reports ok=false for a missing key.
type Blob interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Memory is a Blob held entirely in memory. The zero value is ready to use.
type Memory struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get implements Blob.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set implements Blob.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string]string)
	}
	m.data[key] = value
	return nil
}
