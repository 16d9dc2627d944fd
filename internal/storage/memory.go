package storage

import (
	"fmt"
	"sync"

	"github.com/pdxmph/todo-tui/internal/config"
)

// MemoryBackend keeps values in a map. Nothing survives the process.
type MemoryBackend struct {
	mu         sync.Mutex
	values     map[string]string
	failWrites bool
}

// NewMemoryBackend creates an empty in-memory backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string]string)}
}

// Name returns the backend identifier
func (m *MemoryBackend) Name() string {
	return "memory"
}

// Get returns the stored value for key
func (m *MemoryBackend) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key unless writes are failing
func (m *MemoryBackend) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWrites {
		return fmt.Errorf("setting %s: %w", key, ErrWriteRejected)
	}
	m.values[key] = value
	return nil
}

// FailWrites makes every subsequent Set fail until called with false
func (m *MemoryBackend) FailWrites(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWrites = fail
}

// Close is a no-op
func (m *MemoryBackend) Close() error {
	return nil
}

// Register the memory backend
func init() {
	Register("memory", func(config.StorageConfig) (Backend, error) { return NewMemoryBackend(), nil })
}
