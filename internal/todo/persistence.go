package todo

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/pdxmph/todo-tui/internal/storage"
)

// DefaultKey is the storage key holding the task document
const DefaultKey = "todos-v1"

// Repository reads and writes the whole task list under a single key
type Repository struct {
	backend storage.Backend
	key     string
}

// NewRepository creates a repository storing tasks under key
func NewRepository(backend storage.Backend, key string) *Repository {
	if key == "" {
		key = DefaultKey
	}
	return &Repository{backend: backend, key: key}
}

// Load returns the stored task list. A missing, unreadable or corrupt
// document yields an empty list; the problem is logged, never returned.
func (r *Repository) Load() []Task {
	raw, ok, err := r.backend.Get(r.key)
	if err != nil {
		log.WithError(err).WithField("key", r.key).Warn("Failed to read tasks, starting empty")
		return []Task{}
	}
	if !ok {
		return []Task{}
	}

	tasks, err := Decode([]byte(raw))
	if err != nil {
		log.WithError(err).WithField("key", r.key).Warn("Failed to parse tasks, starting empty")
		return []Task{}
	}
	return tasks
}

// Save overwrites the stored document with tasks
func (r *Repository) Save(tasks []Task) error {
	data, err := Encode(tasks)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}
	if err := r.backend.Set(r.key, string(data)); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}
	return nil
}

// Setting returns a stored preference, or fallback when unset or unreadable
func (r *Repository) Setting(name, fallback string) string {
	v, ok, err := r.backend.Get(name)
	if err != nil {
		log.WithError(err).WithField("key", name).Warn("Failed to read setting")
		return fallback
	}
	if !ok || v == "" {
		return fallback
	}
	return v
}

// SetSetting stores a preference
func (r *Repository) SetSetting(name, value string) error {
	if err := r.backend.Set(name, value); err != nil {
		return fmt.Errorf("saving setting %s: %w", name, err)
	}
	return nil
}
