package todo

import (
	"fmt"
	"testing"
	"time"

	"github.com/pdxmph/todo-tui/internal/storage"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("t%d", n)
	}
}

func newTestStore(t *testing.T) (*Store, *storage.MemoryBackend) {
	t.Helper()
	backend := storage.NewMemoryBackend()
	store := NewStore(
		NewRepository(backend, DefaultKey),
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(sequentialIDs()),
	)
	return store, backend
}

func mustCreate(t *testing.T, s *Store, title string) Task {
	t.Helper()
	task, err := s.Create(title)
	if err != nil {
		t.Fatalf("Create(%q): %v", title, err)
	}
	return task
}

func ids(tasks []Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}
