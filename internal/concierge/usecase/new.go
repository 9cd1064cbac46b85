package usecase

import (
	"time"

	"filmbuff-ai/internal/agent"
	"filmbuff-ai/internal/concierge"
	"filmbuff-ai/internal/querycache"
	"filmbuff-ai/internal/router"
	pkgLog "filmbuff-ai/pkg/log"

	"github.com/google/uuid"
)

// Limiter is the admission window shared by every caller.
type Limiter interface {
	TryAdmit() bool
	SecondsUntilAvailable() int
	Remaining() int
	MaxCalls() int
	Period() time.Duration
}

type implUseCase struct {
	l        pkgLog.Logger
	cache    querycache.UseCase
	limiter  Limiter
	router   router.Router
	handlers *agent.Registry
	cfg      concierge.Config
	now      func() time.Time
	newID    func() string
}

var _ concierge.UseCase = (*implUseCase)(nil)

// Option customises the use case.
type Option func(*implUseCase)

// WithClock overrides the time source used for latency metrics.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) { uc.now = now }
}

// WithIDGenerator overrides how request ids are minted.
func WithIDGenerator(newID func() string) Option {
	return func(uc *implUseCase) { uc.newID = newID }
}

// New creates a new concierge UseCase instance.
func New(
	l pkgLog.Logger,
	cache querycache.UseCase,
	limiter Limiter,
	rt router.Router,
	handlers *agent.Registry,
	cfg concierge.Config,
	opts ...Option,
) *implUseCase {
	if cfg.MinResultLength < 0 {
		cfg.MinResultLength = concierge.DefaultMinResultLength
	}
	if cfg.InstructionMaxLength <= 0 {
		cfg.InstructionMaxLength = concierge.DefaultInstructionMaxLength
	}
	if cfg.SynthesisMaxLength <= 0 {
		cfg.SynthesisMaxLength = concierge.DefaultSynthesisMaxLength
	}
	if cfg.HandlerTimeout < 0 {
		cfg.HandlerTimeout = 0
	}

	uc := &implUseCase{
		l:        l,
		cache:    cache,
		limiter:  limiter,
		router:   rt,
		handlers: handlers,
		cfg:      cfg,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
