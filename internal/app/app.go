// Package app wires the concierge stack from config. The API server and
// the CLI share it so both answer with the same cache and pipeline.
package app

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"filmbuff-ai/config"
	"filmbuff-ai/internal/agent"
	"filmbuff-ai/internal/agent/orchestrator"
	"filmbuff-ai/internal/agent/tools"
	"filmbuff-ai/internal/concierge"
	conciergeUC "filmbuff-ai/internal/concierge/usecase"
	"filmbuff-ai/internal/httpserver"
	"filmbuff-ai/internal/querycache"
	"filmbuff-ai/internal/querycache/repository"
	fileRepo "filmbuff-ai/internal/querycache/repository/file"
	redisRepo "filmbuff-ai/internal/querycache/repository/redis"
	cacheUC "filmbuff-ai/internal/querycache/usecase"
	"filmbuff-ai/internal/router"
	"filmbuff-ai/pkg/llmprovider"
	"filmbuff-ai/pkg/log"
	"filmbuff-ai/pkg/ratelimit"
	"filmbuff-ai/pkg/tmdb"
)

// App holds the wired components. Concierge is nil until InitConcierge succeeds.
type App struct {
	l   log.Logger
	cfg *config.Config

	Cache     querycache.UseCase
	Concierge concierge.UseCase
	Readiness map[string]httpserver.ReadinessCheck

	closers []func() error
}

// New opens the configured cache backend and restores its snapshot.
func New(ctx context.Context, l log.Logger, cfg *config.Config) (*App, error) {
	a := &App{
		l:         l,
		cfg:       cfg,
		Readiness: make(map[string]httpserver.ReadinessCheck),
	}

	repo, err := a.openRepository(ctx)
	if err != nil {
		return nil, err
	}

	a.Cache = cacheUC.New(l, repo, querycache.Config{
		Expiry:  cfg.Cache.Expiry,
		MaxSize: cfg.Cache.MaxSize,
	})
	a.Cache.Load(ctx)
	l.Infof(ctx, "app.New: cache backend=%s entries=%d", repo.Name(), a.Cache.Len())

	return a, nil
}

func (a *App) openRepository(ctx context.Context) (repository.SnapshotRepository, error) {
	switch a.cfg.Cache.Backend {
	case config.CacheBackendRedis:
		client, err := redisRepo.Connect(ctx, redisRepo.Options{
			Addr:     a.cfg.Cache.Redis.Addr,
			Password: a.cfg.Cache.Redis.Password,
			DB:       a.cfg.Cache.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("app: open redis cache: %w", err)
		}
		a.closers = append(a.closers, client.Close)
		a.Readiness["redis"] = pingCheck(client)
		return redisRepo.New(client, a.cfg.Cache.Redis.Key), nil

	case config.CacheBackendFile:
		return fileRepo.New(a.cfg.Cache.FilePath), nil

	default:
		return nil, fmt.Errorf("app: unknown cache backend %q", a.cfg.Cache.Backend)
	}
}

func pingCheck(client goredis.UniversalClient) httpserver.ReadinessCheck {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}

// InitConcierge builds the answering pipeline: TMDb tools, LLM-backed
// specialists, the keyword router and the query limiter.
func (a *App) InitConcierge(ctx context.Context) error {
	tmdbClient, err := tmdb.New(tmdb.Config{
		APIKey:   a.cfg.TMDb.APIKey,
		BaseURL:  a.cfg.TMDb.BaseURL,
		Language: a.cfg.TMDb.Language,
		Timeout:  a.cfg.TMDb.Timeout,
		CacheTTL: a.cfg.TMDb.ResponseCacheTTL,
	})
	if err != nil {
		return fmt.Errorf("app: tmdb client: %w", err)
	}

	providers, err := llmprovider.InitializeProviders(ctx, a.l, &a.cfg.LLM)
	if err != nil {
		return fmt.Errorf("app: llm providers: %w", err)
	}
	managerCfg, err := llmprovider.ManagerConfig(&a.cfg.LLM)
	if err != nil {
		return fmt.Errorf("app: llm manager: %w", err)
	}
	llm := llmprovider.NewManager(providers, managerCfg, a.l)
	a.l.Infof(ctx, "app.InitConcierge: %d LLM provider(s), primary=%s/%s", len(providers), llm.Name(), llm.Model())

	toolRegistry := agent.NewToolRegistry()
	tools.RegisterAll(toolRegistry, tmdbClient)

	handlers := orchestrator.NewRegistry(llm, toolRegistry, a.l,
		orchestrator.WithTemperature(a.cfg.LLM.Temperature),
	)

	a.Concierge = conciergeUC.New(
		a.l,
		a.Cache,
		ratelimit.New(a.cfg.RateLimit.MaxCalls, a.cfg.RateLimit.Period),
		router.New(a.l),
		handlers,
		concierge.Config{
			MinResultLength:      a.cfg.Pipeline.MinResultLength,
			InstructionMaxLength: a.cfg.Pipeline.InstructionMaxLength,
			SynthesisMaxLength:   a.cfg.Pipeline.SynthesisMaxLength,
			HandlerTimeout:       a.cfg.Pipeline.HandlerTimeout,
		},
	)
	return nil
}

// Close releases backend connections in reverse order of opening.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
