package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmbuff-ai/internal/querycache"
	"filmbuff-ai/internal/querycache/repository"
	fileRepo "filmbuff-ai/internal/querycache/repository/file"
)

func newCache(repo repository.SnapshotRepository, cfg querycache.Config, clock *fakeClock) *implUseCase {
	return New(&mockLogger{}, repo, cfg, WithClock(clock.Now))
}

func TestStoreLookup(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{}
	uc := newCache(repo, querycache.Config{}, newClock())

	_, ok := uc.Lookup(ctx, "Interstellar")
	assert.False(t, ok)

	uc.Store(ctx, "Interstellar", "A space epic by Christopher Nolan.")

	for _, q := range []string{"Interstellar", "  Interstellar ", "interstellar", "INTERSTELLAR"} {
		got, ok := uc.Lookup(ctx, q)
		require.True(t, ok, q)
		assert.Equal(t, "A space epic by Christopher Nolan.", got)
	}

	assert.Equal(t, 1, uc.Len())
	assert.Equal(t, 1, repo.saveCount())

	stats := uc.Stats()
	assert.Equal(t, int64(4), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, "memory", stats.Backend)
}

func TestStore_Overwrite(t *testing.T) {
	ctx := context.Background()
	uc := newCache(&memRepo{}, querycache.Config{}, newClock())

	uc.Store(ctx, "dune", "first")
	uc.Store(ctx, "Dune", "second")

	got, ok := uc.Lookup(ctx, "dune")
	require.True(t, ok)
	assert.Equal(t, "second", got)
	assert.Equal(t, 1, uc.Len())
}

func TestLookup_Expiry(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	uc := newCache(&memRepo{}, querycache.Config{Expiry: 7 * 24 * time.Hour}, clock)

	uc.Store(ctx, "alien", "answer")

	clock.Advance(7*24*time.Hour - time.Second)
	_, ok := uc.Lookup(ctx, "alien")
	assert.True(t, ok)

	clock.Advance(2 * time.Second)
	_, ok = uc.Lookup(ctx, "alien")
	assert.False(t, ok)
}

func TestStore_FIFOEviction(t *testing.T) {
	ctx := context.Background()
	uc := newCache(&memRepo{}, querycache.Config{MaxSize: 3}, newClock())

	for i := 1; i <= 4; i++ {
		uc.Store(ctx, fmt.Sprintf("query %d", i), fmt.Sprintf("answer %d", i))
	}

	_, ok := uc.Lookup(ctx, "query 1")
	assert.False(t, ok)
	for i := 2; i <= 4; i++ {
		_, ok := uc.Lookup(ctx, fmt.Sprintf("query %d", i))
		assert.True(t, ok, i)
	}
	assert.Equal(t, 3, uc.Len())
	assert.Equal(t, int64(1), uc.Stats().Evictions)
}

func TestStore_FIFOIgnoresAccessOrder(t *testing.T) {
	ctx := context.Background()
	uc := newCache(&memRepo{}, querycache.Config{MaxSize: 2}, newClock())

	uc.Store(ctx, "a", "1")
	uc.Store(ctx, "b", "2")
	// reading "a" must not protect it
	_, _ = uc.Lookup(ctx, "a")
	uc.Store(ctx, "c", "3")

	_, ok := uc.Lookup(ctx, "a")
	assert.False(t, ok)
	_, ok = uc.Lookup(ctx, "b")
	assert.True(t, ok)
}

func TestStore_OverwriteAtCapacityKeepsOthers(t *testing.T) {
	ctx := context.Background()
	uc := newCache(&memRepo{}, querycache.Config{MaxSize: 2}, newClock())

	uc.Store(ctx, "a", "1")
	uc.Store(ctx, "b", "2")
	uc.Store(ctx, "b", "2b")

	assert.Equal(t, 2, uc.Len())
	_, ok := uc.Lookup(ctx, "a")
	assert.True(t, ok)
}

func TestStore_SaveFailureSwallowed(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{saveErr: errDiskFull}
	uc := newCache(repo, querycache.Config{}, newClock())

	uc.Store(ctx, "heat", "answer")

	got, ok := uc.Lookup(ctx, "heat")
	require.True(t, ok)
	assert.Equal(t, "answer", got)
	assert.True(t, uc.Stats().LastSaved.IsZero())
}

func TestLoad_PurgesExpired(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	repo := &memRepo{}

	first := newCache(repo, querycache.Config{Expiry: time.Hour}, clock)
	first.Store(ctx, "old", "stale")
	clock.Advance(30 * time.Minute)
	first.Store(ctx, "new", "fresh")

	clock.Advance(45 * time.Minute)
	second := newCache(repo, querycache.Config{Expiry: time.Hour}, clock)
	second.Load(ctx)

	assert.Equal(t, 1, second.Len())
	_, ok := second.Lookup(ctx, "old")
	assert.False(t, ok)
	got, ok := second.Lookup(ctx, "new")
	require.True(t, ok)
	assert.Equal(t, "fresh", got)
}

func TestLoad_PreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	repo := &memRepo{}

	first := newCache(repo, querycache.Config{MaxSize: 2}, clock)
	first.Store(ctx, "a", "1")
	first.Store(ctx, "b", "2")

	second := newCache(repo, querycache.Config{MaxSize: 2}, clock)
	second.Load(ctx)
	second.Store(ctx, "c", "3")

	_, ok := second.Lookup(ctx, "a")
	assert.False(t, ok)
	_, ok = second.Lookup(ctx, "b")
	assert.True(t, ok)
}

func TestLoad_UnreadableSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{loadErr: repository.ErrCorruptSnapshot}
	uc := newCache(repo, querycache.Config{}, newClock())

	uc.Load(ctx)
	assert.Equal(t, 0, uc.Len())

	uc.Store(ctx, "q", "v")
	_, ok := uc.Lookup(ctx, "q")
	assert.True(t, ok)
}

func TestPurgeExpired(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	repo := &memRepo{}
	uc := newCache(repo, querycache.Config{Expiry: time.Hour}, clock)

	uc.Store(ctx, "a", "1")
	clock.Advance(2 * time.Hour)
	uc.Store(ctx, "b", "2")
	saves := repo.saveCount()

	assert.Equal(t, 1, uc.PurgeExpired(ctx))
	assert.Equal(t, 1, uc.Len())
	assert.Equal(t, saves+1, repo.saveCount())

	assert.Equal(t, 0, uc.PurgeExpired(ctx))
	assert.Equal(t, saves+1, repo.saveCount())
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{}
	uc := newCache(repo, querycache.Config{}, newClock())

	uc.Store(ctx, "a", "1")
	uc.Store(ctx, "b", "2")
	require.NoError(t, uc.Clear(ctx))

	assert.Equal(t, 0, uc.Len())
	assert.Empty(t, repo.snap.Entries)

	repo.saveErr = errDiskFull
	assert.ErrorIs(t, uc.Clear(ctx), errDiskFull)
}

func TestConcurrentStores(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{}
	uc := newCache(repo, querycache.Config{MaxSize: 20}, newClock())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			uc.Store(ctx, fmt.Sprintf("q%d", i%30), fmt.Sprintf("v%d", i))
			uc.Lookup(ctx, "q0")
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, uc.Len(), 20)
	assert.Equal(t, uc.Len(), len(repo.snap.Entries))
}

func TestFileBackedRoundTrip(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	repo := fileRepo.New(filepath.Join(t.TempDir(), "query_cache.json"))

	first := newCache(repo, querycache.Config{}, clock)
	first.Store(ctx, "What movies are trending this week?", "Trending list")
	first.Store(ctx, "Who directed Heat?", "Michael Mann")

	second := newCache(repo, querycache.Config{}, clock)
	second.Load(ctx)

	assert.Equal(t, 2, second.Len())
	got, ok := second.Lookup(ctx, "who directed heat?")
	require.True(t, ok)
	assert.Equal(t, "Michael Mann", got)
	assert.False(t, second.Stats().LastSaved.IsZero())
}
