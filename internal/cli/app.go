package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/pdxmph/todo-tui/internal/config"
	"github.com/pdxmph/todo-tui/internal/logging"
	"github.com/pdxmph/todo-tui/internal/notify"
	"github.com/pdxmph/todo-tui/internal/storage"
	"github.com/pdxmph/todo-tui/internal/todo"
)

// app is everything a command needs once configuration is resolved
type app struct {
	cfg     *config.Config
	backend storage.Backend
	repo    *todo.Repository
	store   *todo.Store
	logs    io.Closer
}

func loadConfig(opts *globalOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFrom(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if opts.backend != "" {
		cfg.Storage.Backend = opts.backend
	}
	if opts.ephemeral {
		cfg.Storage.Backend = "memory"
	}
	return cfg, nil
}

func openApp(opts *globalOptions) (*app, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	logs, err := logging.Setup(cfg.Log)
	if err != nil {
		return nil, err
	}

	backend, err := storage.Open(cfg.Storage)
	if err != nil {
		logs.Close()
		return nil, err
	}

	repo := todo.NewRepository(backend, cfg.Storage.Key)
	log.WithFields(log.Fields{
		"backend": backend.Name(),
		"key":     cfg.Storage.Key,
	}).Debug("Opening task list")

	return &app{
		cfg:     cfg,
		backend: backend,
		repo:    repo,
		store:   todo.NewStore(repo),
		logs:    logs,
	}, nil
}

// Close releases the backend and the log file
func (a *app) Close() error {
	err := a.backend.Close()
	if cerr := a.logs.Close(); err == nil {
		err = cerr
	}
	return err
}

// notifier prints to w and mirrors every message into the log
func notifier(w io.Writer) notify.Notifier {
	return notify.Multi{
		notify.NewWriterNotifier(w),
		notify.NewLogNotifier(log.StandardLogger()),
	}
}

// resolveID accepts a full id or an unambiguous prefix of one
func (a *app) resolveID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.New("id must not be empty")
	}
	if _, ok := a.store.Get(ref); ok {
		return ref, nil
	}

	match := ""
	for _, t := range a.store.Tasks() {
		if !strings.HasPrefix(t.ID, ref) || t.ID == match {
			continue
		}
		if match != "" {
			return "", fmt.Errorf("id %q is ambiguous", ref)
		}
		match = t.ID
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", todo.ErrNotFound, ref)
	}
	return match, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
