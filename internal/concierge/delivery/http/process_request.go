package http

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"filmbuff-ai/internal/model"
	"filmbuff-ai/pkg/log"
)

// processAskReq binds and validates the ask request body.
func (h *handler) processAskReq(c *gin.Context) (askReq, error) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Query = strings.TrimSpace(req.Query)
	return req, nil
}

// scopeFrom identifies the HTTP caller by address; there are no accounts.
func scopeFrom(c *gin.Context) model.Scope {
	return model.Scope{
		UserID:  fmt.Sprintf("http_%s", c.ClientIP()),
		Channel: model.ChannelHTTP,
	}
}

func requestID(c *gin.Context) string {
	return log.RequestID(c.Request.Context())
}
