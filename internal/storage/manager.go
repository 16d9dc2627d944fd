package storage

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/pdxmph/todo-tui/internal/config"
)

// DefaultBackend is used when the configuration leaves the backend empty
const DefaultBackend = "sqlite"

// Open creates the backend named in cfg. Backends living in subpackages must
// be linked in (blank import) for their names to resolve.
func Open(cfg config.StorageConfig) (Backend, error) {
	name := cfg.Backend
	if name == "" {
		name = DefaultBackend
	}

	backend, err := CreateBackend(name, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating backend %s: %w", name, err)
	}

	log.WithField("backend", backend.Name()).Debug("storage backend opened")
	return backend, nil
}
