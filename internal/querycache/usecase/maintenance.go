package usecase

import (
	"context"
	"sort"

	"filmbuff-ai/internal/model"
	"filmbuff-ai/internal/querycache"
	"filmbuff-ai/internal/querycache/repository"
)

func (uc *implUseCase) Load(ctx context.Context) {
	snap, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "querycache.Load: starting with an empty cache, snapshot unreadable: %v", err)
		return
	}

	uc.mu.Lock()
	uc.entries = make(map[string]model.CacheEntry, len(snap.Entries))
	uc.seq = 0
	for _, e := range snap.Entries {
		if e.Key == "" {
			continue
		}
		if prev, dup := uc.entries[e.Key]; dup && prev.Seq > e.Seq {
			continue
		}
		uc.entries[e.Key] = e
		if e.Seq > uc.seq {
			uc.seq = e.Seq
		}
	}
	loaded := len(uc.entries)
	uc.mu.Unlock()

	uc.saveMu.Lock()
	uc.lastSaved = snap.SavedAt
	uc.saveMu.Unlock()

	purged := uc.PurgeExpired(ctx)
	uc.l.Infof(ctx, "querycache.Load: restored %d entries from %s (%d expired)", loaded-purged, uc.repo.Name(), purged)
}

func (uc *implUseCase) PurgeExpired(ctx context.Context) int {
	uc.mu.Lock()
	purged := 0
	for k, e := range uc.entries {
		if uc.expired(e) {
			delete(uc.entries, k)
			purged++
		}
	}
	uc.mu.Unlock()

	if purged > 0 {
		uc.persist(ctx)
	}
	return purged
}

func (uc *implUseCase) Clear(ctx context.Context) error {
	uc.mu.Lock()
	uc.entries = make(map[string]model.CacheEntry)
	uc.mu.Unlock()

	return uc.save(ctx)
}

func (uc *implUseCase) Len() int {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return len(uc.entries)
}

func (uc *implUseCase) Stats() querycache.Stats {
	uc.saveMu.Lock()
	lastSaved := uc.lastSaved
	uc.saveMu.Unlock()

	return querycache.Stats{
		Entries:   uc.Len(),
		MaxSize:   uc.maxSize,
		Expiry:    uc.expiry,
		Hits:      uc.hits.Load(),
		Misses:    uc.misses.Load(),
		Evictions: uc.evictions.Load(),
		LastSaved: lastSaved,
		Backend:   uc.repo.Name(),
	}
}

// persist saves the table and swallows failures.
func (uc *implUseCase) persist(ctx context.Context) {
	if err := uc.save(ctx); err != nil {
		uc.l.Errorf(ctx, "querycache: failed to persist snapshot to %s: %v", uc.repo.Name(), err)
	}
}

// save snapshots under saveMu so the last writer always persists the newest table.
func (uc *implUseCase) save(ctx context.Context) error {
	uc.saveMu.Lock()
	defer uc.saveMu.Unlock()

	uc.mu.RLock()
	entries := make([]model.CacheEntry, 0, len(uc.entries))
	for _, e := range uc.entries {
		entries = append(entries, e)
	}
	uc.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].Seq < entries[j].Seq })

	now := uc.now()
	if err := uc.repo.Save(ctx, repository.Snapshot{
		Version: repository.SnapshotVersion,
		SavedAt: now,
		Entries: entries,
	}); err != nil {
		return err
	}
	uc.lastSaved = now
	return nil
}
