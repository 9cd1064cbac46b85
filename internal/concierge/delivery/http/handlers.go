package http

import (
	"github.com/gin-gonic/gin"

	"filmbuff-ai/pkg/response"
)

// Ask godoc
// @Summary     Ask the concierge
// @Description Answers a free-text movie or TV question. Cached answers are flagged; pipeline failures return 200 with failed=true and are never cached.
// @Tags        Concierge
// @Accept      json
// @Produce     json
// @Param       body body askReq true "Question"
// @Success     200  {object} askResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Query rate limit reached (see Retry-After)"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/concierge/ask [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Ask(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newAskResp(output))
}

// CacheStats godoc
// @Summary     Response cache statistics
// @Tags        Cache
// @Produce     json
// @Success     200 {object} cacheStatsResp
// @Router      /api/v1/concierge/cache [GET]
func (h *handler) CacheStats(c *gin.Context) {
	response.OK(c, h.newCacheStatsResp(h.uc.CacheStats(c.Request.Context())))
}

// ClearCache godoc
// @Summary     Clear the response cache
// @Tags        Cache
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/concierge/cache [DELETE]
func (h *handler) ClearCache(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.uc.ClearCache(ctx); err != nil {
		h.l.Errorf(ctx, "uc.ClearCache: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, nil)
}

// PurgeCache godoc
// @Summary     Drop expired cache entries
// @Tags        Cache
// @Produce     json
// @Success     200 {object} purgeResp
// @Router      /api/v1/concierge/cache/purge [POST]
func (h *handler) PurgeCache(c *gin.Context) {
	response.OK(c, purgeResp{Removed: h.uc.PurgeCache(c.Request.Context())})
}

// LimitStatus godoc
// @Summary     Query limiter status
// @Description Reports remaining quota without consuming any.
// @Tags        Concierge
// @Produce     json
// @Success     200 {object} limitResp
// @Router      /api/v1/concierge/limit [GET]
func (h *handler) LimitStatus(c *gin.Context) {
	response.OK(c, h.newLimitResp(h.uc.LimitStatus(c.Request.Context())))
}
