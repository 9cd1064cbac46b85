// Package redis stores cache snapshots as a single Redis string.
package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"filmbuff-ai/internal/querycache/repository"
)

const (
	backendName = "redis"
	DefaultKey  = "filmbuff:query_cache"
)

type implRepository struct {
	client goredis.UniversalClient
	key    string
}

var _ repository.SnapshotRepository = (*implRepository)(nil)

// New returns a repository that keeps the snapshot under key.
func New(client goredis.UniversalClient, key string) *implRepository {
	if key == "" {
		key = DefaultKey
	}
	return &implRepository{client: client, key: key}
}

// Options configures Connect.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Connect opens a client and verifies it with PING.
func Connect(ctx context.Context, opt Options) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opt.Addr,
		Password: opt.Password,
		DB:       opt.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opt.Addr, err)
	}
	return client, nil
}

func (r *implRepository) Name() string { return backendName }
