// Package file stores cache snapshots as a JSON file on local disk.
package file

import "filmbuff-ai/internal/querycache/repository"

const backendName = "file"

type implRepository struct {
	path string
}

var _ repository.SnapshotRepository = (*implRepository)(nil)

// New returns a repository writing to path. The parent directory is created on first save.
func New(path string) *implRepository {
	return &implRepository{path: path}
}

func (r *implRepository) Name() string { return backendName }
