package telegram

import (
	"errors"
	"fmt"
)

var ErrMissingToken = errors.New("telegram: bot token is required")

// APIError is a Bot API call that answered ok=false or a non-2xx status.
type APIError struct {
	Method      string
	StatusCode  int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram %s failed (http %d): %s", e.Method, e.StatusCode, e.Description)
}
