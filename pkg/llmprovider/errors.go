package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout indicates a provider request timed out
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderRateLimited indicates rate limit exceeded
	ErrProviderRateLimited = errors.New("provider rate limited")

	// ErrProviderAuth indicates the provider rejected the credentials
	ErrProviderAuth = errors.New("provider authentication failed")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsRateLimited reports whether err came from a provider quota rejection.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrProviderRateLimited)
}

// IsAuth reports whether err came from rejected credentials.
func IsAuth(err error) bool {
	return errors.Is(err, ErrProviderAuth)
}

// IsTimeout reports whether err came from a provider deadline.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrProviderTimeout)
}

// IsConnectivity reports whether err looks like a network or deadline failure
// rather than a rejection by the provider.
func IsConnectivity(err error) bool {
	if err == nil {
		return false
	}
	if IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
