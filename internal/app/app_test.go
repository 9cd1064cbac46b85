package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmbuff-ai/config"
	"filmbuff-ai/pkg/log"
)

func baseConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Cache: config.CacheConfig{
			Backend:  config.CacheBackendFile,
			FilePath: filepath.Join(t.TempDir(), "cache.json"),
			Expiry:   time.Hour,
		},
		RateLimit: config.RateLimitConfig{MaxCalls: 5, Period: time.Minute},
		TMDb:      config.TMDbConfig{APIKey: "tmdb-key"},
		LLM: config.LLMConfig{
			Providers: []config.ProviderConfig{
				{Name: "openai", Enabled: true, Priority: 1, APIKey: "k", Model: "gpt-4o-mini"},
			},
			RetryDelay: "10ms",
		},
	}
}

func TestNew_FileBackend(t *testing.T) {
	ctx := context.Background()
	cfg := baseConfig(t)

	a, err := New(ctx, log.NewNop(), cfg)
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, "file", a.Cache.Stats().Backend)
	assert.Empty(t, a.Readiness)
	assert.Nil(t, a.Concierge)

	a.Cache.Store(ctx, "Top movies", "1. Dune")
	again, err := New(ctx, log.NewNop(), cfg)
	require.NoError(t, err)
	got, ok := again.Cache.Lookup(ctx, "top movies")
	assert.True(t, ok)
	assert.Equal(t, "1. Dune", got)
}

func TestNew_RedisBackend(t *testing.T) {
	ctx := context.Background()
	srv := miniredis.RunT(t)

	cfg := baseConfig(t)
	cfg.Cache.Backend = config.CacheBackendRedis
	cfg.Cache.Redis = config.RedisConfig{Addr: srv.Addr(), Key: "test:cache"}

	a, err := New(ctx, log.NewNop(), cfg)
	require.NoError(t, err)

	require.Contains(t, a.Readiness, "redis")
	assert.NoError(t, a.Readiness["redis"](ctx))
	assert.Equal(t, "redis", a.Cache.Stats().Backend)

	a.Cache.Store(ctx, "q", "answer")
	assert.True(t, srv.Exists("test:cache"))

	require.NoError(t, a.Close())
}

func TestNew_RedisUnreachable(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Cache.Backend = config.CacheBackendRedis
	cfg.Cache.Redis.Addr = "127.0.0.1:1"

	_, err := New(context.Background(), log.NewNop(), cfg)
	assert.Error(t, err)
}

func TestInitConcierge(t *testing.T) {
	ctx := context.Background()

	t.Run("wires the pipeline", func(t *testing.T) {
		a, err := New(ctx, log.NewNop(), baseConfig(t))
		require.NoError(t, err)

		require.NoError(t, a.InitConcierge(ctx))
		require.NotNil(t, a.Concierge)

		st := a.Concierge.LimitStatus(ctx)
		assert.Equal(t, 5, st.MaxCalls)
		assert.Equal(t, 5, st.Remaining)
		assert.Equal(t, "trending", string(a.Concierge.Classify(ctx, "what's trending this week").Category))
	})

	t.Run("missing tmdb key", func(t *testing.T) {
		cfg := baseConfig(t)
		cfg.TMDb.APIKey = ""
		a, err := New(ctx, log.NewNop(), cfg)
		require.NoError(t, err)
		assert.Error(t, a.InitConcierge(ctx))
	})

	t.Run("no usable provider", func(t *testing.T) {
		cfg := baseConfig(t)
		cfg.LLM.Providers[0].APIKey = ""
		a, err := New(ctx, log.NewNop(), cfg)
		require.NoError(t, err)
		assert.Error(t, a.InitConcierge(ctx))
		assert.Nil(t, a.Concierge)
	})
}
