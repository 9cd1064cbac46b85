package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"filmbuff-ai/internal/agent"
	"filmbuff-ai/internal/concierge"
	"filmbuff-ai/internal/model"
	"filmbuff-ai/internal/querycache"
	"filmbuff-ai/internal/router"
	"filmbuff-ai/pkg/ratelimit"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// memCache is a map-backed querycache.UseCase.
type memCache struct {
	mu      sync.Mutex
	entries map[string]string
	stores  int
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string]string)}
}

func cacheKey(q string) string { return strings.ToLower(strings.TrimSpace(q)) }

func (c *memCache) Load(ctx context.Context) {}

func (c *memCache) Lookup(ctx context.Context, query string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[cacheKey(query)]
	return v, ok
}

func (c *memCache) Store(ctx context.Context, query, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stores++
	c.entries[cacheKey(query)] = value
}

func (c *memCache) PurgeExpired(ctx context.Context) int { return 0 }

func (c *memCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]string)
	return nil
}

func (c *memCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *memCache) Stats() querycache.Stats {
	return querycache.Stats{Entries: c.Len(), Backend: "memory"}
}

var _ querycache.UseCase = (*memCache)(nil)

type reply struct {
	text    string
	err     error
	explode bool
	// block waits for the call context to end.
	block bool
}

type call struct {
	capability   model.Capability
	instructions string
	query        string
}

// scriptedHandlers answers each capability from a queue of replies.
type scriptedHandlers struct {
	mu      sync.Mutex
	replies map[model.Capability][]reply
	calls   []call
}

func newScripted(replies map[model.Capability][]reply) *scriptedHandlers {
	return &scriptedHandlers{replies: replies}
}

func (s *scriptedHandlers) registry() *agent.Registry {
	reg := agent.NewRegistry()
	for _, c := range []model.Capability{
		model.CapabilityGeneral,
		model.CapabilityResearch,
		model.CapabilityDetails,
		model.CapabilityRecommendation,
		model.CapabilityPeople,
	} {
		reg.Register(c, agent.HandlerFunc(func(ctx context.Context, instructions, query string) (string, error) {
			return s.next(ctx, c, instructions, query)
		}))
	}
	return reg
}

func (s *scriptedHandlers) next(ctx context.Context, c model.Capability, instructions, query string) (string, error) {
	s.mu.Lock()
	s.calls = append(s.calls, call{capability: c, instructions: instructions, query: query})
	queue := s.replies[c]
	if len(queue) == 0 {
		s.mu.Unlock()
		return "", fmt.Errorf("unexpected call to %s", c)
	}
	r := queue[0]
	s.replies[c] = queue[1:]
	s.mu.Unlock()

	if r.explode {
		panic("handler exploded")
	}
	if r.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return r.text, r.err
}

func (s *scriptedHandlers) callsTo(c model.Capability) []call {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []call
	for _, cl := range s.calls {
		if cl.capability == c {
			out = append(out, cl)
		}
	}
	return out
}

func (s *scriptedHandlers) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

type fixture struct {
	uc       *implUseCase
	cache    *memCache
	handlers *scriptedHandlers
	limiter  *ratelimit.SlidingWindow
}

func newFixture(replies map[model.Capability][]reply, cfg concierge.Config) fixture {
	f := fixture{
		cache:    newMemCache(),
		handlers: newScripted(replies),
		limiter:  ratelimit.New(5, time.Minute),
	}
	f.uc = New(
		&mockLogger{},
		f.cache,
		f.limiter,
		router.New(&mockLogger{}),
		f.handlers.registry(),
		cfg,
		WithIDGenerator(func() string { return "req-1" }),
	)
	return f
}

// long returns a reply comfortably above the default thin-result threshold.
func long(prefix string) string {
	return prefix + ": " + strings.Repeat("a well researched answer with real data. ", 3)
}
