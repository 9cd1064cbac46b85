package http

import (
	"github.com/gin-gonic/gin"

	"filmbuff-ai/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Only the ask route is throttled per client; it is the one that spends quota.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/ask", mw.Throttle(), h.Ask)
	rg.GET("/limit", h.LimitStatus)

	cache := rg.Group("/cache")
	{
		cache.GET("", h.CacheStats)
		cache.DELETE("", h.ClearCache)
		cache.POST("/purge", h.PurgeCache)
	}
}
