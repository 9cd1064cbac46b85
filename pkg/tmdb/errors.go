package tmdb

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAPIKey = errors.New("tmdb: api key is required")
	ErrUnauthorized  = errors.New("tmdb: unauthorized")
	ErrNotFound      = errors.New("tmdb: resource not found")
	ErrRateLimited   = errors.New("tmdb: rate limited")
)

// APIError is any other non-2xx answer.
type APIError struct {
	StatusCode    int    `json:"-"`
	StatusMessage string `json:"status_message"`
	Code          int    `json:"status_code"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tmdb: http %d: %s (code %d)", e.StatusCode, e.StatusMessage, e.Code)
}
