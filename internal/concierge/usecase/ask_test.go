package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmbuff-ai/internal/concierge"
	"filmbuff-ai/internal/model"
	"filmbuff-ai/pkg/llmprovider"
	pkgLog "filmbuff-ai/pkg/log"
	"filmbuff-ai/pkg/tmdb"
)

var scope = model.Scope{UserID: "42", Username: "tester", Channel: model.ChannelCLI}

func TestAsk_EmptyQuery(t *testing.T) {
	f := newFixture(nil, concierge.DefaultConfig())

	_, err := f.uc.Ask(context.Background(), scope, concierge.AskInput{Query: "   "})
	assert.ErrorIs(t, err, concierge.ErrEmptyQuery)
	assert.Equal(t, 5, f.limiter.Remaining(), "empty queries must not consume quota")
}

func TestAsk_DirectQueryThenCacheHit(t *testing.T) {
	ctx := context.Background()
	answer := long("trending")
	f := newFixture(map[model.Capability][]reply{
		model.CapabilityGeneral: {{text: answer}},
	}, concierge.DefaultConfig())

	out, err := f.uc.Ask(ctx, scope, concierge.AskInput{Query: "What's trending this week?"})
	require.NoError(t, err)
	assert.Equal(t, answer, out.Answer)
	assert.False(t, out.Cached)
	assert.False(t, out.Retried)
	assert.False(t, out.Failed)
	assert.Equal(t, model.CategoryTrending, out.Intent.Category)
	assert.Equal(t, "req-1", out.RequestID)

	general := f.handlers.callsTo(model.CapabilityGeneral)
	require.Len(t, general, 1)
	assert.Equal(t, directInstructions, general[0].instructions)
	assert.Equal(t, "What's trending this week?", general[0].query)

	out, err = f.uc.Ask(ctx, scope, concierge.AskInput{Query: "  what's TRENDING this week?"})
	require.NoError(t, err)
	assert.True(t, out.Cached)
	assert.Equal(t, answer, out.Answer)
	assert.Equal(t, 1, f.handlers.callCount(), "a cache hit must not reach any handler")
}

func TestAsk_KeepsIncomingRequestID(t *testing.T) {
	f := newFixture(map[model.Capability][]reply{
		model.CapabilityGeneral: {{text: long("popular")}},
	}, concierge.DefaultConfig())

	ctx := pkgLog.WithRequestID(context.Background(), "from-http")
	out, err := f.uc.Ask(ctx, scope, concierge.AskInput{Query: "popular movies"})
	require.NoError(t, err)
	assert.Equal(t, "from-http", out.RequestID)
}

func TestAsk_DelegationPlan(t *testing.T) {
	plan := `DELEGATION PLAN:
Look the film up first.

DETAILS AGENT: Fetch Inception (2010) with director, cast and plot.`
	synthesis := long("Inception")

	f := newFixture(map[model.Capability][]reply{
		model.CapabilityGeneral: {{text: plan}, {text: synthesis}},
		model.CapabilityDetails: {{text: "Inception (2010), directed by Christopher Nolan."}},
	}, concierge.DefaultConfig())

	out, err := f.uc.Ask(context.Background(), scope, concierge.AskInput{Query: "Tell me details about Inception"})
	require.NoError(t, err)
	assert.Equal(t, synthesis, out.Answer)
	assert.Equal(t, model.CategoryDetail, out.Intent.Category)
	assert.Equal(t, []model.Capability{model.CapabilityDetails}, out.Intent.Capabilities)

	general := f.handlers.callsTo(model.CapabilityGeneral)
	require.Len(t, general, 2)
	assert.Contains(t, general[0].instructions, "DETAILS AGENT:")
	assert.NotContains(t, general[0].instructions, "PEOPLE AGENT:")

	details := f.handlers.callsTo(model.CapabilityDetails)
	require.Len(t, details, 1)
	assert.Equal(t, "Fetch Inception (2010) with director, cast and plot.", details[0].instructions)

	assert.Contains(t, general[1].instructions, "## DETAILS AGENT:\nInception (2010), directed by Christopher Nolan.")

	cached, ok := f.cache.Lookup(context.Background(), "Tell me details about Inception")
	require.True(t, ok)
	assert.Equal(t, synthesis, cached)
}

func TestAsk_DelegationRunsInCapabilityOrderWithDefaults(t *testing.T) {
	query := "Give me details about Inception and recommend similar films"
	plan := "DELEGATION PLAN:\nDETAILS AGENT: Fetch the film."

	f := newFixture(map[model.Capability][]reply{
		model.CapabilityGeneral:        {{text: plan}, {text: long("merged")}},
		model.CapabilityDetails:        {{text: "details output"}},
		model.CapabilityRecommendation: {{text: "recommendation output"}},
	}, concierge.DefaultConfig())

	out, err := f.uc.Ask(context.Background(), scope, concierge.AskInput{Query: query})
	require.NoError(t, err)
	assert.Equal(t, []model.Capability{model.CapabilityDetails, model.CapabilityRecommendation}, out.Intent.Capabilities)

	var order []model.Capability
	for _, c := range f.handlers.calls {
		order = append(order, c.capability)
	}
	assert.Equal(t, []model.Capability{
		model.CapabilityGeneral,
		model.CapabilityDetails,
		model.CapabilityRecommendation,
		model.CapabilityGeneral,
	}, order)

	rec := f.handlers.callsTo(model.CapabilityRecommendation)
	require.Len(t, rec, 1)
	assert.Equal(t, fmt.Sprintf("provide information about '%s'", query), rec[0].instructions)
}

func TestAsk_InstructionAndSynthesisTruncation(t *testing.T) {
	section := strings.Repeat("x", 400)
	specialist := strings.Repeat("y", 3000)

	f := newFixture(map[model.Capability][]reply{
		model.CapabilityGeneral: {{text: "PEOPLE AGENT: " + section}, {text: long("about Nolan")}},
		model.CapabilityPeople:  {{text: specialist}},
	}, concierge.DefaultConfig())

	_, err := f.uc.Ask(context.Background(), scope, concierge.AskInput{Query: "Who directed Oppenheimer?"})
	require.NoError(t, err)

	people := f.handlers.callsTo(model.CapabilityPeople)
	require.Len(t, people, 1)
	assert.Equal(t, strings.Repeat("x", 300)+"...", people[0].instructions)

	general := f.handlers.callsTo(model.CapabilityGeneral)
	require.Len(t, general, 2)
	assert.Contains(t, general[1].instructions, truncationMarker)
	assert.NotContains(t, general[1].instructions, strings.Repeat("y", 2000))
}

func TestAsk_RetryNeverRegresses(t *testing.T) {
	tcs := map[string]struct {
		replies     []reply
		wantAnswer  string
		wantRetried bool
		wantCalls   int
	}{
		"80 chars, no retry": {
			replies:    []reply{{text: strings.Repeat("a", 80)}},
			wantAnswer: strings.Repeat("a", 80),
			wantCalls:  1,
		},
		"10 then 120, retry wins": {
			replies:     []reply{{text: strings.Repeat("b", 10)}, {text: strings.Repeat("c", 120)}},
			wantAnswer:  strings.Repeat("c", 120),
			wantRetried: true,
			wantCalls:   2,
		},
		"10 then 10, original kept": {
			replies:     []reply{{text: "short one."}, {text: "short two."}},
			wantAnswer:  "short one.",
			wantRetried: true,
			wantCalls:   2,
		},
		"10 then error, original kept": {
			replies:     []reply{{text: "short one."}, {err: errors.New("boom")}},
			wantAnswer:  "short one.",
			wantRetried: true,
			wantCalls:   2,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			f := newFixture(map[model.Capability][]reply{
				model.CapabilityGeneral: tc.replies,
			}, concierge.DefaultConfig())

			out, err := f.uc.Ask(context.Background(), scope, concierge.AskInput{Query: "trending movies"})
			require.NoError(t, err)
			assert.False(t, out.Failed)
			assert.Equal(t, tc.wantAnswer, out.Answer)
			assert.Equal(t, tc.wantRetried, out.Retried)
			assert.Equal(t, tc.wantCalls, f.handlers.callCount())

			cached, ok := f.cache.Lookup(context.Background(), "trending movies")
			require.True(t, ok)
			assert.Equal(t, tc.wantAnswer, cached)
		})
	}
}

func TestAsk_RetryUsesStricterTemplate(t *testing.T) {
	f := newFixture(map[model.Capability][]reply{
		model.CapabilityGeneral: {{text: "nothing"}, {text: long("trends")}},
	}, concierge.DefaultConfig())

	_, err := f.uc.Ask(context.Background(), scope, concierge.AskInput{Query: "trending movies"})
	require.NoError(t, err)

	general := f.handlers.callsTo(model.CapabilityGeneral)
	require.Len(t, general, 2)
	assert.Contains(t, general[1].instructions, "CRITICAL TASK: Format Movie/TV Show Trends")
	assert.Contains(t, general[1].instructions, `"trending movies"`)
}

func TestAsk_ComplexRetryGoesToFirstCapability(t *testing.T) {
	f := newFixture(map[model.Capability][]reply{
		model.CapabilityGeneral: {{text: "DETAILS AGENT: look it up"}, {text: "too short"}},
		model.CapabilityDetails: {{text: "Dune (2021)"}, {text: long("Dune")}},
	}, concierge.DefaultConfig())

	out, err := f.uc.Ask(context.Background(), scope, concierge.AskInput{Query: "Dune synopsis"})
	require.NoError(t, err)
	assert.True(t, out.Retried)
	assert.Equal(t, long("Dune"), out.Answer)

	details := f.handlers.callsTo(model.CapabilityDetails)
	require.Len(t, details, 2)
	assert.Contains(t, details[1].instructions, "CRITICAL TASK: Provide Detailed Information")
}

func TestAsk_HandlerTimeoutCountsAsThin(t *testing.T) {
	cfg := concierge.DefaultConfig()
	cfg.HandlerTimeout = 20 * time.Millisecond

	f := newFixture(map[model.Capability][]reply{
		model.CapabilityGeneral: {{block: true}, {text: long("second try")}},
	}, cfg)

	out, err := f.uc.Ask(context.Background(), scope, concierge.AskInput{Query: "popular shows"})
	require.NoError(t, err)
	assert.False(t, out.Failed)
	assert.True(t, out.Retried)
	assert.Equal(t, long("second try"), out.Answer)
}

func TestAsk_FailuresAreNotCached(t *testing.T) {
	tcs := map[string]struct {
		reply    reply
		wantHint string
		wantText string
	}{
		"provider rate limit": {
			reply:    reply{err: fmt.Errorf("%w: %w", llmprovider.ErrAllProvidersFailed, llmprovider.ErrProviderRateLimited)},
			wantHint: hintRateLimited,
			wantText: "provider rate limited",
		},
		"tmdb auth": {
			reply:    reply{err: tmdb.ErrUnauthorized},
			wantHint: hintAuth,
			wantText: "tmdb: unauthorized",
		},
		"deadline": {
			reply:    reply{err: llmprovider.ErrProviderTimeout},
			wantHint: hintConnectivity,
			wantText: "provider timeout",
		},
		"generic": {
			reply:    reply{err: errors.New("boom")},
			wantHint: hintGeneric,
			wantText: "boom",
		},
		"panic": {
			reply:    reply{explode: true},
			wantHint: hintGeneric,
			wantText: "handler exploded",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			f := newFixture(map[model.Capability][]reply{
				model.CapabilityGeneral: {tc.reply},
			}, concierge.DefaultConfig())

			out, err := f.uc.Ask(context.Background(), scope, concierge.AskInput{Query: "trending movies"})
			require.NoError(t, err)
			assert.True(t, out.Failed)
			assert.Contains(t, out.Answer, `"trending movies"`)
			assert.Contains(t, out.Answer, tc.wantText)
			assert.Contains(t, out.Answer, tc.wantHint)
			assert.Equal(t, model.CategoryTrending, out.Intent.Category)
			assert.Equal(t, 0, f.cache.Len())
			assert.Equal(t, 0, f.cache.stores)
		})
	}
}

func TestAsk_EmptyAnswerIsAFailure(t *testing.T) {
	f := newFixture(map[model.Capability][]reply{
		model.CapabilityGeneral: {{text: ""}, {text: "  "}},
	}, concierge.DefaultConfig())

	out, err := f.uc.Ask(context.Background(), scope, concierge.AskInput{Query: "trending movies"})
	require.NoError(t, err)
	assert.True(t, out.Failed)
	assert.True(t, out.Retried)
	assert.Equal(t, 0, f.cache.Len())
}

func TestAsk_RateLimited(t *testing.T) {
	ctx := context.Background()
	f := newFixture(map[model.Capability][]reply{
		model.CapabilityGeneral: {{text: long("one")}},
	}, concierge.DefaultConfig())

	for i := 0; i < 5; i++ {
		require.True(t, f.limiter.TryAdmit())
	}

	_, err := f.uc.Ask(ctx, scope, concierge.AskInput{Query: "trending movies"})
	require.ErrorIs(t, err, concierge.ErrRateLimited)

	var rl *concierge.RateLimitError
	require.ErrorAs(t, err, &rl)
	assert.GreaterOrEqual(t, rl.RetryAfter, 1)
	assert.LessOrEqual(t, rl.RetryAfter, 60)
	assert.Equal(t, 0, f.handlers.callCount())
}

func TestLimitStatus_DoesNotConsume(t *testing.T) {
	f := newFixture(nil, concierge.DefaultConfig())

	for i := 0; i < 3; i++ {
		st := f.uc.LimitStatus(context.Background())
		assert.Equal(t, 5, st.MaxCalls)
		assert.Equal(t, time.Minute, st.Period)
		assert.Equal(t, 5, st.Remaining)
		assert.Equal(t, 0, st.SecondsUntilAvailable)
	}
}

func TestCacheMaintenance(t *testing.T) {
	ctx := context.Background()
	f := newFixture(nil, concierge.DefaultConfig())
	f.cache.Store(ctx, "alien", "answer")

	assert.Equal(t, 1, f.uc.CacheStats(ctx).Entries)
	assert.Equal(t, 0, f.uc.PurgeCache(ctx))
	require.NoError(t, f.uc.ClearCache(ctx))
	assert.Equal(t, 0, f.uc.CacheStats(ctx).Entries)
}
