package usecase

import (
	"context"

	"filmbuff-ai/internal/concierge"
	"filmbuff-ai/internal/model"
	"filmbuff-ai/internal/querycache"
)

func (uc *implUseCase) Classify(ctx context.Context, query string) model.Intent {
	return uc.router.Classify(ctx, query)
}

func (uc *implUseCase) CacheStats(ctx context.Context) querycache.Stats {
	return uc.cache.Stats()
}

func (uc *implUseCase) ClearCache(ctx context.Context) error {
	uc.l.Infof(ctx, "%s: clearing response cache (%d entries)", LogPrefixAsk, uc.cache.Len())
	return uc.cache.Clear(ctx)
}

func (uc *implUseCase) PurgeCache(ctx context.Context) int {
	n := uc.cache.PurgeExpired(ctx)
	uc.l.Infof(ctx, "%s: purged %d expired entries", LogPrefixAsk, n)
	return n
}

// LimitStatus never consumes quota.
func (uc *implUseCase) LimitStatus(ctx context.Context) concierge.LimitStatus {
	return concierge.LimitStatus{
		MaxCalls:              uc.limiter.MaxCalls(),
		Period:                uc.limiter.Period(),
		Remaining:             uc.limiter.Remaining(),
		SecondsUntilAvailable: uc.limiter.SecondsUntilAvailable(),
	}
}
