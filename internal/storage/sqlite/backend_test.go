package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/pdxmph/todo-tui/internal/config"
	"github.com/pdxmph/todo-tui/internal/storage"
)

func TestBackendPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.db")

	b, err := NewBackend(path)
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}
	if err := b.Set("todos-v1", `[]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	b, err = NewBackend(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer b.Close()

	v, ok, err := b.Get("todos-v1")
	if err != nil || !ok || v != "[]" {
		t.Fatalf("Get = %q ok:%v err:%v", v, ok, err)
	}
	if b.Path() != path {
		t.Fatalf("Path = %q", b.Path())
	}
}

func TestBackendRequiresPath(t *testing.T) {
	if _, err := NewBackend(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestRegisteredWithStorage(t *testing.T) {
	b, err := storage.Open(config.StorageConfig{Backend: "sqlite", Path: filepath.Join(t.TempDir(), "x.db")})
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer b.Close()
	if b.Name() != "sqlite" {
		t.Fatalf("Name = %q", b.Name())
	}
}

func TestDefaultBackendIsSQLite(t *testing.T) {
	b, err := storage.Open(config.StorageConfig{Path: filepath.Join(t.TempDir(), "y.db")})
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer b.Close()
	if b.Name() != "sqlite" {
		t.Fatalf("Name = %q, want sqlite", b.Name())
	}
}
