package concierge

import (
	"context"

	"filmbuff-ai/internal/model"
	"filmbuff-ai/internal/querycache"
)

// UseCase answers free-text movie and TV questions.
type UseCase interface {
	// Ask admits, classifies, dispatches and caches one query.
	// Pipeline failures after admission are reported through AskOutput.Failed, not as an error.
	Ask(ctx context.Context, sc model.Scope, input AskInput) (AskOutput, error)

	// Classify returns the intent Ask would route query with, without calling any handler.
	Classify(ctx context.Context, query string) model.Intent

	CacheStats(ctx context.Context) querycache.Stats
	ClearCache(ctx context.Context) error
	// PurgeCache drops expired entries and returns how many were removed.
	PurgeCache(ctx context.Context) int

	// LimitStatus reports the limiter state without consuming quota.
	LimitStatus(ctx context.Context) LimitStatus
}
