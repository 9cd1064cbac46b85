package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"filmbuff-ai/internal/concierge"
	"filmbuff-ai/pkg/response"
)

// writeError translates use-case errors into HTTP responses.
func (h *handler) writeError(c *gin.Context, err error) {
	var rl *concierge.RateLimitError
	switch {
	case errors.As(err, &rl):
		response.TooManyRequests(c, err, rl.RetryAfter)
	case errors.Is(err, concierge.ErrEmptyQuery):
		response.ErrorWithStatus(c, http.StatusBadRequest, err, nil)
	default:
		h.l.Errorf(c.Request.Context(), "concierge http: unmapped error: %v", err)
		response.InternalError(c, err)
	}
}
