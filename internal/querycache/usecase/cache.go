package usecase

import (
	"context"

	"filmbuff-ai/internal/model"
	"filmbuff-ai/internal/querycache"
)

func (uc *implUseCase) Lookup(ctx context.Context, query string) (string, bool) {
	key := querycache.Fingerprint(query)

	uc.mu.RLock()
	entry, ok := uc.entries[key]
	uc.mu.RUnlock()

	if !ok || uc.expired(entry) {
		uc.misses.Add(1)
		return "", false
	}

	uc.hits.Add(1)
	uc.l.Debugf(ctx, "querycache.Lookup: hit key=%s", key)
	return entry.Value, true
}

func (uc *implUseCase) Store(ctx context.Context, query, value string) {
	key := querycache.Fingerprint(query)

	uc.mu.Lock()
	existing, overwrite := uc.entries[key]
	if !overwrite && uc.maxSize > 0 {
		for len(uc.entries) >= uc.maxSize {
			uc.evictOldestLocked(ctx)
		}
	}

	entry := model.CacheEntry{Key: key, Value: value, CreatedAt: uc.now()}
	if overwrite {
		// overwriting keeps the original insertion position
		entry.Seq = existing.Seq
	} else {
		uc.seq++
		entry.Seq = uc.seq
	}
	uc.entries[key] = entry
	uc.mu.Unlock()

	uc.persist(ctx)
}

// evictOldestLocked drops the entry inserted first. Caller holds uc.mu.
func (uc *implUseCase) evictOldestLocked(ctx context.Context) {
	var (
		oldestKey string
		oldestSeq uint64
		found     bool
	)
	for k, e := range uc.entries {
		if !found || e.Seq < oldestSeq {
			oldestKey, oldestSeq, found = k, e.Seq, true
		}
	}
	if !found {
		return
	}
	delete(uc.entries, oldestKey)
	uc.evictions.Add(1)
	uc.l.Debugf(ctx, "querycache.Store: evicted key=%s seq=%d", oldestKey, oldestSeq)
}

func (uc *implUseCase) expired(e model.CacheEntry) bool {
	return e.Age(uc.now()) > uc.expiry
}
