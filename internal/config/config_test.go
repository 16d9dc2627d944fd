package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("backend = %q, want sqlite", cfg.Storage.Backend)
	}
	if cfg.Storage.Key != "todos-v1" {
		t.Errorf("key = %q, want todos-v1", cfg.Storage.Key)
	}
	if cfg.Export.FileName != "todos.json" {
		t.Errorf("export filename = %q, want todos.json", cfg.Export.FileName)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("theme = %q, want dark", cfg.UI.Theme)
	}
}

func TestLoadFromOverridesAndExpandsHome(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[storage]
backend = "redis"
path = "~/tasks.db"

[storage.redis]
addr = "127.0.0.1:6390"
timeout_ms = 500

[ui]
theme = "light"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Storage.Backend != "redis" {
		t.Errorf("backend = %q, want redis", cfg.Storage.Backend)
	}
	if strings.HasPrefix(cfg.Storage.Path, "~") || !strings.HasSuffix(cfg.Storage.Path, "tasks.db") {
		t.Errorf("path not expanded: %q", cfg.Storage.Path)
	}
	if cfg.Storage.Redis.Addr != "127.0.0.1:6390" {
		t.Errorf("redis addr = %q", cfg.Storage.Redis.Addr)
	}
	if got := cfg.Storage.Redis.Timeout().Milliseconds(); got != 500 {
		t.Errorf("timeout = %dms, want 500ms", got)
	}
	// untouched sections keep their defaults
	if cfg.Storage.Key != "todos-v1" {
		t.Errorf("key = %q, want default", cfg.Storage.Key)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("theme = %q, want light", cfg.UI.Theme)
	}
}

func TestLoadFromRejectsBadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ui]\ntheme = \"neon\"\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected error for invalid theme")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := Default()
	cfg.Storage.Backend = "memory"
	cfg.Export.FileName = "backup.json"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Storage.Backend != "memory" || loaded.Export.FileName != "backup.json" {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
}

func TestRedisTimeoutDefault(t *testing.T) {
	if got := (RedisConfig{}).Timeout().Seconds(); got != 2 {
		t.Fatalf("default timeout = %vs, want 2s", got)
	}
}

func TestSaveWritesToConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Default()
	cfg.UI.Theme = "light"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.UI.Theme != "light" {
		t.Fatalf("theme = %q, want light", loaded.UI.Theme)
	}
	if _, err := os.Stat(filepath.Join(home, ".config", "todo-tui", "config.toml")); err != nil {
		t.Fatalf("config file: %v", err)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in, want string
	}{
		{"~/todos.json", filepath.Join(home, "todos.json")},
		{"/tmp/todos.json", "/tmp/todos.json"},
		{"relative.json", "relative.json"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
