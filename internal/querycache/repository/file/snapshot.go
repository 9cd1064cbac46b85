package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"filmbuff-ai/internal/querycache/repository"
)

func (r *implRepository) Load(ctx context.Context) (repository.Snapshot, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return repository.Snapshot{Version: repository.SnapshotVersion}, nil
		}
		return repository.Snapshot{}, fmt.Errorf("read %s: %w", r.path, err)
	}
	if len(data) == 0 {
		return repository.Snapshot{Version: repository.SnapshotVersion}, nil
	}

	var snap repository.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return repository.Snapshot{}, fmt.Errorf("%w: %v", repository.ErrCorruptSnapshot, err)
	}
	if snap.Version > repository.SnapshotVersion {
		return repository.Snapshot{}, fmt.Errorf("%w: unsupported version %d", repository.ErrCorruptSnapshot, snap.Version)
	}
	return snap, nil
}

// Save writes to a temp file in the same directory and renames it over the target,
// so readers never observe a partially written snapshot.
func (r *implRepository) Save(ctx context.Context, snap repository.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("chmod snapshot: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
