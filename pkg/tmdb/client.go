package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/patrickmn/go-cache"
)

type client struct {
	cfg   Config
	http  *http.Client
	memo  *cache.Cache
	sleep func(ctx context.Context, d time.Duration) error
}

func newClient(cfg Config) *client {
	return &client{
		cfg:   cfg,
		http:  cfg.HTTPClient,
		memo:  cache.New(cfg.CacheTTL, cfg.CacheTTL*2),
		sleep: sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// get fetches endpoint and decodes it into out. Identical requests within
// CacheTTL are answered from memory. A 429 is retried once after Retry-After.
func (c *client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	if params.Get("language") == "" {
		params.Set("language", c.cfg.Language)
	}
	memoKey := endpoint + "?" + params.Encode()

	if raw, ok := c.memo.Get(memoKey); ok {
		if body, ok := raw.([]byte); ok {
			return json.Unmarshal(body, out)
		}
	}

	body, err := c.fetch(ctx, endpoint, params, true)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("tmdb: decode %s: %w", endpoint, err)
	}
	c.memo.Set(memoKey, body, cache.DefaultExpiration)
	return nil
}

func (c *client) fetch(ctx context.Context, endpoint string, params url.Values, allowRetry bool) ([]byte, error) {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("api_key", c.cfg.APIKey)

	reqURL := fmt.Sprintf("%s/%s?%s", c.cfg.BaseURL, endpoint, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("tmdb: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb: GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tmdb: read %s: %w", endpoint, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		if !allowRetry {
			return nil, ErrRateLimited
		}
		if err := c.sleep(ctx, retryAfter(resp.Header.Get("Retry-After"))); err != nil {
			return nil, err
		}
		return c.fetch(ctx, endpoint, params, false)
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, endpoint)
	default:
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if jsonErr := json.Unmarshal(body, apiErr); jsonErr != nil || apiErr.StatusMessage == "" {
			apiErr.StatusMessage = http.StatusText(resp.StatusCode)
		}
		return nil, apiErr
	}
}

// retryAfter parses a Retry-After seconds header, defaulting to one second.
func retryAfter(h string) time.Duration {
	secs, err := strconv.Atoi(h)
	if err != nil || secs < 1 {
		return time.Second
	}
	d := time.Duration(secs) * time.Second
	if d > MaxRetryAfter {
		return MaxRetryAfter
	}
	return d
}

// IsRateLimited reports whether err came from a TMDb 429.
func IsRateLimited(err error) bool { return errors.Is(err, ErrRateLimited) }
