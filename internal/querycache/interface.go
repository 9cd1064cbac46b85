package querycache

import "context"

// UseCase is the response cache keyed by normalised query text.
type UseCase interface {
	// Load restores the persisted table and drops expired entries.
	// An unreadable snapshot leaves the cache empty; it is never an error.
	Load(ctx context.Context)

	// Lookup returns the cached answer for query unless it is absent or expired.
	Lookup(ctx context.Context, query string) (string, bool)

	// Store remembers value for query and persists the table. Persistence
	// failures are logged, never returned.
	Store(ctx context.Context, query, value string)

	// PurgeExpired removes expired entries and returns how many were dropped.
	PurgeExpired(ctx context.Context) int

	// Clear empties the table and persists the empty state.
	Clear(ctx context.Context) error

	Len() int
	Stats() Stats
}
