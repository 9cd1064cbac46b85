package querycache

import "time"

const (
	DefaultExpiry = 7 * 24 * time.Hour
)

// Config tunes the cache. MaxSize of 0 means unbounded.
type Config struct {
	Expiry  time.Duration
	MaxSize int
}

// Stats is a point-in-time view of the cache.
type Stats struct {
	Entries   int           `json:"entries"`
	MaxSize   int           `json:"max_size"`
	Expiry    time.Duration `json:"expiry"`
	Hits      int64         `json:"hits"`
	Misses    int64         `json:"misses"`
	Evictions int64         `json:"evictions"`
	LastSaved time.Time     `json:"last_saved"`
	Backend   string        `json:"backend"`
}
