package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/pdxmph/todo-tui/internal/config"
)

// Setup points the standard logrus logger at the configured file and level.
// The terminal belongs to the UI, so logs never go to stdout. The returned
// closer releases the file.
func Setup(cfg config.LogConfig) (io.Closer, error) {
	level := log.InfoLevel
	if cfg.Level != "" {
		parsed, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level: %w", err)
		}
		level = parsed
	}
	log.SetLevel(level)

	if cfg.Path == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	log.SetOutput(f)
	log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	return f, nil
}

// nopCloser is returned when there is no log file to release
type nopCloser struct{}

func (nopCloser) Close() error { return nil }
