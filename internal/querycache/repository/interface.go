package repository

import (
	"context"
	"errors"
	"time"

	"filmbuff-ai/internal/model"
)

// SnapshotVersion is bumped whenever the persisted layout changes.
const SnapshotVersion = 1

var ErrCorruptSnapshot = errors.New("cache snapshot is corrupt")

// Snapshot is the full cache table as a single persisted blob.
type Snapshot struct {
	Version int                `json:"version"`
	SavedAt time.Time          `json:"saved_at"`
	Entries []model.CacheEntry `json:"entries"`
}

// SnapshotRepository persists and restores the whole cache table at once.
type SnapshotRepository interface {
	// Load returns an empty snapshot when nothing has been saved yet.
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
	Name() string
}
