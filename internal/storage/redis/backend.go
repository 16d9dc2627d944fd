package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/pdxmph/todo-tui/internal/config"
	"github.com/pdxmph/todo-tui/internal/storage"
)

// Backend implements storage.Backend on a Redis server. Keys are namespaced
// with a prefix so several lists can share one database.
type Backend struct {
	client  *goredis.Client
	prefix  string
	timeout time.Duration
}

// NewBackend connects to the server described by cfg and pings it
func NewBackend(cfg config.RedisConfig) (*Backend, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	b := NewBackendWithClient(client, cfg.Prefix, cfg.Timeout())

	ctx, cancel := b.context()
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Addr, err)
	}
	return b, nil
}

// NewBackendWithClient wraps an existing client
func NewBackendWithClient(client *goredis.Client, prefix string, timeout time.Duration) *Backend {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Backend{client: client, prefix: prefix, timeout: timeout}
}

// Name returns the backend identifier
func (b *Backend) Name() string {
	return "redis"
}

// Get returns the stored value for key
func (b *Backend) Get(key string) (string, bool, error) {
	ctx, cancel := b.context()
	defer cancel()

	v, err := b.client.Get(ctx, b.prefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return v, true, nil
}

// Set overwrites the value for key, with no expiry
func (b *Backend) Set(key, value string) error {
	ctx, cancel := b.context()
	defer cancel()

	if err := b.client.Set(ctx, b.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// Close closes the client
func (b *Backend) Close() error {
	return b.client.Close()
}

func (b *Backend) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), b.timeout)
}

// Register the redis backend
func init() {
	storage.Register("redis", func(cfg config.StorageConfig) (storage.Backend, error) {
		return NewBackend(cfg.Redis)
	})
}
