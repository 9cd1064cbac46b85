package model

import "time"

// CacheEntry is one remembered answer, keyed by the fingerprint of its normalised query.
type CacheEntry struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	// Seq is the insertion order; it drives FIFO eviction and survives snapshots.
	Seq uint64 `json:"seq"`
}

// Age reports how old the entry is at now.
func (e CacheEntry) Age(now time.Time) time.Duration {
	return now.Sub(e.CreatedAt)
}
