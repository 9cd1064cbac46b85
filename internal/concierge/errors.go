package concierge

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyQuery  = errors.New("query is empty")
	ErrRateLimited = errors.New("query rate limit reached")
)

// RateLimitError is returned when the limiter rejects a query.
type RateLimitError struct {
	RetryAfter int // seconds
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s: retry in %d seconds", ErrRateLimited, e.RetryAfter)
}

func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}
