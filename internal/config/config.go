package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the application configuration
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Export  ExportConfig  `toml:"export"`
	Log     LogConfig     `toml:"log"`
	UI      UIConfig      `toml:"ui"`
}

// StorageConfig selects and configures the key-value backend
type StorageConfig struct {
	Backend string      `toml:"backend"` // sqlite, redis or memory
	Path    string      `toml:"path"`
	Key     string      `toml:"key"`
	Redis   RedisConfig `toml:"redis"`
}

// RedisConfig holds redis connection settings
type RedisConfig struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	Prefix    string `toml:"prefix"`
	TimeoutMS int    `toml:"timeout_ms"`
}

// ExportConfig holds export file settings
type ExportConfig struct {
	Dir      string `toml:"dir"`
	FileName string `toml:"filename"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// UIConfig holds interface settings
type UIConfig struct {
	Theme string `toml:"theme"` // dark or light
}

// Timeout returns the redis per-call timeout
func (r RedisConfig) Timeout() time.Duration {
	if r.TimeoutMS <= 0 {
		return 2 * time.Second
	}
	return time.Duration(r.TimeoutMS) * time.Millisecond
}

// Dir returns the directory holding the config file and default data files
func Dir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "todo-tui")
}

// Default returns the default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Storage: StorageConfig{
			Backend: "sqlite",
			Path:    filepath.Join(Dir(), "todo.db"),
			Key:     "todos-v1",
			Redis: RedisConfig{
				Addr:      "localhost:6379",
				Prefix:    "todo:",
				TimeoutMS: 2000,
			},
		},
		Export: ExportConfig{
			Dir:      homeDir,
			FileName: "todos.json",
		},
		Log: LogConfig{
			Path:  filepath.Join(Dir(), "todo.log"),
			Level: "info",
		},
		UI: UIConfig{
			Theme: "dark",
		},
	}
}

// Load loads configuration from the standard location
func Load() (*Config, error) {
	return LoadFrom(filepath.Join(Dir(), "config.toml"))
}

// LoadFrom loads configuration from a specific path
func LoadFrom(configPath string) (*Config, error) {
	// Start with defaults
	cfg := Default()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Expand home directory in paths
	cfg.Storage.Path = ExpandPath(cfg.Storage.Path)
	cfg.Export.Dir = ExpandPath(cfg.Export.Dir)
	cfg.Log.Path = ExpandPath(cfg.Log.Path)

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.UI.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("invalid ui.theme %q (want dark or light)", c.UI.Theme)
	}
	if c.Storage.Key == "" {
		return fmt.Errorf("storage.key must not be empty")
	}
	return nil
}

// expandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[1:])
	}
	return path
}

// Save saves the configuration to the standard location
func (c *Config) Save() error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return c.SaveTo(filepath.Join(Dir(), "config.toml"))
}

// SaveTo saves the configuration to a specific path
func (c *Config) SaveTo(configPath string) error {
	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return nil
}
