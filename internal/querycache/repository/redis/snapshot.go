package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	goredis "github.com/redis/go-redis/v9"

	"filmbuff-ai/internal/querycache/repository"
)

func (r *implRepository) Load(ctx context.Context) (repository.Snapshot, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return repository.Snapshot{Version: repository.SnapshotVersion}, nil
		}
		return repository.Snapshot{}, fmt.Errorf("redis get %s: %w", r.key, err)
	}

	var snap repository.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return repository.Snapshot{}, fmt.Errorf("%w: %v", repository.ErrCorruptSnapshot, err)
	}
	return snap, nil
}

// Save replaces the whole blob; SET is atomic so readers see either the old or the new table.
func (r *implRepository) Save(ctx context.Context, snap repository.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key, err)
	}
	return nil
}
