package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	cfg := Config{APIKey: "test-key", BaseURL: srv.URL}
	require.NoError(t, cfg.Validate())
	c := newClient(cfg)
	c.sleep = func(context.Context, time.Duration) error { return nil }
	return c, srv
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{}
	assert.ErrorIs(t, cfg.Validate(), ErrMissingAPIKey)

	cfg = Config{APIKey: "k", BaseURL: "http://x/3/"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://x/3", cfg.BaseURL)
	assert.Equal(t, DefaultLanguage, cfg.Language)
	assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
	assert.NotNil(t, cfg.HTTPClient)
}

func TestSearchMovies(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "interstellar", r.URL.Query().Get("query"))
		assert.Equal(t, "2014", r.URL.Query().Get("year"))
		assert.Equal(t, "en-US", r.URL.Query().Get("language"))
		w.Write([]byte(`{"page":1,"results":[{"id":157336,"title":"Interstellar","release_date":"2014-11-05","vote_average":8.4}]}`))
	})

	got, err := c.SearchMovies(context.Background(), SearchParams{Query: "interstellar", Year: 2014})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Interstellar", got[0].DisplayTitle())
	assert.Equal(t, "2014", got[0].Year())
	assert.Equal(t, MediaMovie, got[0].MediaType)
}

func TestGet_MemoizesIdenticalRequests(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"results":[{"id":1,"name":"Dark","first_air_date":"2017-12-01"}]}`))
	})

	for i := 0; i < 3; i++ {
		got, err := c.SearchTV(context.Background(), SearchParams{Query: "dark"})
		require.NoError(t, err)
		assert.Equal(t, "Dark", got[0].DisplayTitle())
	}
	assert.Equal(t, int32(1), calls.Load())

	_, err := c.SearchTV(context.Background(), SearchParams{Query: "dark", Year: 2017})
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGet_RetriesOnceAfter429(t *testing.T) {
	var calls atomic.Int32
	var slept time.Duration
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "3")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"results":[]}`))
	})
	c.sleep = func(_ context.Context, d time.Duration) error {
		slept = d
		return nil
	}

	_, err := c.Trending(context.Background(), MediaMovie, WindowWeek)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, 3*time.Second, slept)
}

func TestGet_Persistent429(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.Trending(context.Background(), MediaAll, WindowDay)
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.True(t, IsRateLimited(err))
	assert.Equal(t, int32(2), calls.Load())
}

func TestGet_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{http.StatusUnauthorized, `{"status_code":7,"status_message":"Invalid API key"}`, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, ErrUnauthorized)
		}},
		{http.StatusNotFound, `{"status_code":34}`, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, ErrNotFound)
		}},
		{http.StatusInternalServerError, `{"status_code":11,"status_message":"Internal error"}`, func(t *testing.T, err error) {
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, 500, apiErr.StatusCode)
			assert.Equal(t, "Internal error", apiErr.StatusMessage)
		}},
	}

	for _, tt := range tests {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			w.Write([]byte(tt.body))
		})
		_, err := c.MovieDetails(context.Background(), 1)
		tt.check(t, err)
	}
}

func TestMovieDetails(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/1891", r.URL.Path)
		assert.Equal(t, "credits,similar,reviews,videos", r.URL.Query().Get("append_to_response"))
		w.Write([]byte(`{
			"id": 1891,
			"title": "The Empire Strikes Back",
			"release_date": "1980-05-20",
			"runtime": 124,
			"genres": [{"id": 878, "name": "Science Fiction"}],
			"credits": {
				"cast": [{"name": "Mark Hamill", "character": "Luke Skywalker"}],
				"crew": [{"name": "Lawrence Kasdan", "job": "Screenplay"}, {"name": "Irvin Kershner", "job": "Director"}]
			},
			"videos": {"results": [{"key": "teaser", "site": "YouTube", "type": "Teaser"}, {"key": "abc", "site": "YouTube", "type": "Trailer"}]},
			"similar": {"results": [{"id": 11, "title": "Star Wars"}]},
			"reviews": {"results": [{"author": "critic", "content": "classic"}], "total_results": 1}
		}`))
	})

	d, err := c.MovieDetails(context.Background(), 1891)
	require.NoError(t, err)
	assert.Equal(t, "Irvin Kershner", Director(d.Credits))
	assert.Equal(t, []string{"Lawrence Kasdan"}, Writers(d.Credits, 2))
	assert.Equal(t, "https://www.youtube.com/watch?v=abc", Trailer(d.Videos.Results))
	assert.Len(t, d.Similar.Results, 1)
	assert.Equal(t, 1, d.Reviews.TotalResults)
}

func TestDiscover_Params(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/discover/tv", r.URL.Path)
		assert.Equal(t, "18", q.Get("with_genres"))
		assert.Equal(t, "7.5", q.Get("vote_average.gte"))
		assert.Equal(t, "2010-01-01", q.Get("first_air_date.gte"))
		assert.Equal(t, "2015-12-31", q.Get("first_air_date.lte"))
		assert.Equal(t, "popularity.desc", q.Get("sort_by"))
		w.Write([]byte(`{"results":[{"id":1396,"name":"Breaking Bad"}]}`))
	})

	got, err := c.Discover(context.Background(), MediaTV, DiscoverParams{GenreID: 18, MinRating: 7.5, YearFrom: 2010, YearTo: 2015})
	require.NoError(t, err)
	assert.Equal(t, MediaTV, got[0].MediaType)
}

func TestTrending_NormalizesArguments(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trending/all/week", r.URL.Path)
		w.Write([]byte(`{"results":[{"id":1,"title":"A","media_type":"movie"},{"id":2,"name":"B","media_type":"tv"}]}`))
	})

	got, err := c.Trending(context.Background(), "podcasts", "year")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, MediaTV, got[1].MediaType)
}

func TestGet_ContextCancelledDuringRetryWait(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	c.sleep = sleepCtx

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Similar(ctx, MediaMovie, 1)
	assert.Error(t, err)
}

func TestRetryAfter(t *testing.T) {
	assert.Equal(t, time.Second, retryAfter(""))
	assert.Equal(t, time.Second, retryAfter("abc"))
	assert.Equal(t, 5*time.Second, retryAfter("5"))
	assert.Equal(t, MaxRetryAfter, retryAfter("3600"))
}
