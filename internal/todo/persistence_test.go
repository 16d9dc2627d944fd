package todo

import (
	"errors"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/pdxmph/todo-tui/internal/storage"
)

// brokenBackend fails every call
type brokenBackend struct{}

func (brokenBackend) Name() string { return "broken" }
func (brokenBackend) Get(string) (string, bool, error) { return "", false, errors.New("disk on fire") }
func (brokenBackend) Set(string, string) error { return errors.New("disk on fire") }
func (brokenBackend) Close() error { return nil }

func TestLoadMissingKey(t *testing.T) {
	repo := NewRepository(storage.NewMemoryBackend(), "")
	tasks := repo.Load()
	if tasks == nil || len(tasks) != 0 {
		t.Fatalf("Load = %#v, want empty list", tasks)
	}
}

func TestLoadCorruptDocumentRecovers(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	for _, raw := range []string{"not json", `{"a":1}`, `[{"id":1}]`} {
		hook.Reset()
		backend := storage.NewMemoryBackend()
		if err := backend.Set(DefaultKey, raw); err != nil {
			t.Fatalf("seed: %v", err)
		}

		tasks := NewRepository(backend, DefaultKey).Load()
		if len(tasks) != 0 {
			t.Fatalf("Load(%q) = %v, want empty", raw, tasks)
		}
		entry := hook.LastEntry()
		if entry == nil || entry.Level != log.WarnLevel {
			t.Fatalf("Load(%q) should log a warning, got %+v", raw, entry)
		}
	}
}

func TestLoadReadErrorRecovers(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	tasks := NewRepository(brokenBackend{}, DefaultKey).Load()
	if len(tasks) != 0 {
		t.Fatalf("Load = %v, want empty", tasks)
	}
	if len(hook.Entries) == 0 {
		t.Fatal("expected a logged warning")
	}
}

func TestStoreOnCorruptStorageStartsEmptyAndRepairs(t *testing.T) {
	backend := storage.NewMemoryBackend()
	if err := backend.Set(DefaultKey, "not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s := NewStore(NewRepository(backend, DefaultKey))
	if len(s.Tasks()) != 0 {
		t.Fatal("expected empty store")
	}
	if _, err := s.Create("fresh start"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got := len(NewRepository(backend, DefaultKey).Load()); got != 1 {
		t.Fatalf("reloaded len = %d, want 1", got)
	}
}

func TestSaveWrapsWriteFailure(t *testing.T) {
	err := NewRepository(brokenBackend{}, DefaultKey).Save([]Task{{ID: "a", Title: "t"}})
	if !errors.Is(err, ErrStorageWrite) {
		t.Fatalf("Save error = %v, want ErrStorageWrite", err)
	}
}

func TestSaveUsesConfiguredKey(t *testing.T) {
	backend := storage.NewMemoryBackend()
	repo := NewRepository(backend, "custom")
	if err := repo.Save([]Task{}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, ok, _ := backend.Get("custom"); !ok {
		t.Fatal("document not stored under custom key")
	}
	if _, ok, _ := backend.Get(DefaultKey); ok {
		t.Fatal("document unexpectedly stored under default key")
	}
}

func TestSettings(t *testing.T) {
	repo := NewRepository(storage.NewMemoryBackend(), DefaultKey)

	if got := repo.Setting("theme", "dark"); got != "dark" {
		t.Fatalf("unset Setting = %q, want fallback", got)
	}
	if err := repo.SetSetting("theme", "light"); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}
	if got := repo.Setting("theme", "dark"); got != "light" {
		t.Fatalf("Setting = %q, want light", got)
	}

	broken := NewRepository(brokenBackend{}, DefaultKey)
	if got := broken.Setting("theme", "dark"); got != "dark" {
		t.Fatalf("Setting on broken backend = %q, want fallback", got)
	}
	if err := broken.SetSetting("theme", "light"); err == nil {
		t.Fatal("expected SetSetting error")
	}
}
