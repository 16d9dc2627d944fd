package storage

import (
	"errors"

	"github.com/pdxmph/todo-tui/internal/config"
)

// ErrWriteRejected is returned by backends that refuse a write, such as a
// memory backend configured to simulate a full disk.
var ErrWriteRejected = errors.New("write rejected")

// Backend is a string key-value store holding whole documents. It plays the
// role a browser's local storage would: one key, one serialized value.
type Backend interface {
	// Name returns the backend identifier (e.g., "sqlite", "redis")
	Name() string

	// Get returns the value stored under key. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)

	// Set overwrites the value stored under key
	Set(key, value string) error

	// Close releases any underlying connection
	Close() error
}

// BackendFactory creates a Backend from the storage configuration
type BackendFactory func(cfg config.StorageConfig) (Backend, error)
