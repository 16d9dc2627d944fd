package sqlite

import (
	"fmt"

	"github.com/pdxmph/todo-tui/internal/config"
	"github.com/pdxmph/todo-tui/internal/db"
	"github.com/pdxmph/todo-tui/internal/storage"
)

// Backend implements storage.Backend on a SQLite file
type Backend struct {
	db   *db.DB
	path string
}

// NewBackend opens (creating if needed) the database at path
func NewBackend(path string) (*Backend, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite backend requires storage.path")
	}
	database, err := db.OpenOrInit(path)
	if err != nil {
		return nil, err
	}
	return &Backend{db: database, path: path}, nil
}

// Name returns the backend identifier
func (b *Backend) Name() string {
	return "sqlite"
}

// Path returns the database file location
func (b *Backend) Path() string {
	return b.path
}

// Get returns the stored value for key
func (b *Backend) Get(key string) (string, bool, error) {
	return b.db.GetValue(key)
}

// Set overwrites the value for key
func (b *Backend) Set(key, value string) error {
	return b.db.SetValue(key, value)
}

// Close closes the database
func (b *Backend) Close() error {
	return b.db.Close()
}

// Register the sqlite backend
func init() {
	storage.Register("sqlite", func(cfg config.StorageConfig) (storage.Backend, error) {
		return NewBackend(cfg.Path)
	})
}
