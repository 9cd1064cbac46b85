package usecase

import (
	"sync"
	"sync/atomic"
	"time"

	"filmbuff-ai/internal/model"
	"filmbuff-ai/internal/querycache"
	"filmbuff-ai/internal/querycache/repository"
	pkgLog "filmbuff-ai/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	repo    repository.SnapshotRepository
	expiry  time.Duration
	maxSize int
	now     func() time.Time

	mu      sync.RWMutex
	entries map[string]model.CacheEntry
	seq     uint64

	// saveMu serialises full-table writes so snapshots never interleave.
	saveMu    sync.Mutex
	lastSaved time.Time

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

var _ querycache.UseCase = (*implUseCase)(nil)

// Option customises the cache.
type Option func(*implUseCase)

// WithClock overrides the time source used for entry ages.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) { uc.now = now }
}

// New creates the response cache. Call Load before serving to restore the persisted table.
func New(l pkgLog.Logger, repo repository.SnapshotRepository, cfg querycache.Config, opts ...Option) *implUseCase {
	if cfg.Expiry <= 0 {
		cfg.Expiry = querycache.DefaultExpiry
	}
	if cfg.MaxSize < 0 {
		cfg.MaxSize = 0
	}
	uc := &implUseCase{
		l:       l,
		repo:    repo,
		expiry:  cfg.Expiry,
		maxSize: cfg.MaxSize,
		now:     time.Now,
		entries: make(map[string]model.CacheEntry),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
