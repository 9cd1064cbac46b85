package openai

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized is returned for 401/403 responses.
	ErrUnauthorized = errors.New("openai: unauthorized")
	// ErrRateLimited is returned for 429 responses.
	ErrRateLimited = errors.New("openai: rate limited")
)

// StatusError is a non-2xx answer from the API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openai: API error %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	}
	return nil
}
