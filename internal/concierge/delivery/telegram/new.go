package telegram

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"

	"filmbuff-ai/internal/concierge"
	pkgLog "filmbuff-ai/pkg/log"
	pkgTelegram "filmbuff-ai/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
	// Wait blocks until every accepted update has been processed or ctx ends.
	Wait(ctx context.Context) error
}

type handler struct {
	l           pkgLog.Logger
	uc          concierge.UseCase
	bot         pkgTelegram.ITelegram
	secretToken string
	// async runs message processing; tests swap it for a synchronous call.
	async    func(func())
	inflight sync.WaitGroup
}

// New creates a new Telegram delivery handler. An empty secretToken disables
// webhook authentication.
func New(l pkgLog.Logger, uc concierge.UseCase, bot pkgTelegram.ITelegram, secretToken string) Handler {
	h := &handler{
		l:           l,
		uc:          uc,
		bot:         bot,
		secretToken: secretToken,
	}
	h.async = func(fn func()) { go fn() }
	return h
}

// track counts fn as in flight until it returns.
func (h *handler) track(fn func()) {
	h.inflight.Add(1)
	h.async(func() {
		defer h.inflight.Done()
		fn()
	})
}

func (h *handler) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		h.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
