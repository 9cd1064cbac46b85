package http

import (
	"github.com/gin-gonic/gin"

	"filmbuff-ai/internal/concierge"
	"filmbuff-ai/pkg/log"
)

// Handler is the public interface for the concierge HTTP delivery layer.
type Handler interface {
	Ask(c *gin.Context)
	CacheStats(c *gin.Context)
	ClearCache(c *gin.Context)
	PurgeCache(c *gin.Context)
	LimitStatus(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc concierge.UseCase
}

// New creates a new HTTP handler for the concierge domain.
func New(l log.Logger, uc concierge.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

var _ Handler = (*handler)(nil)
