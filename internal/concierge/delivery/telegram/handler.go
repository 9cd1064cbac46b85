package telegram

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"filmbuff-ai/internal/concierge"
	"filmbuff-ai/internal/model"
	pkgLog "filmbuff-ai/pkg/log"
	pkgResponse "filmbuff-ai/pkg/response"
	pkgTelegram "filmbuff-ai/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It answers 200 right away and processes the message in the background;
// a full multi-agent answer can take far longer than Telegram waits.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secretToken != "" {
		got := c.GetHeader(headerSecretToken)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secretToken)) != 1 {
			h.l.Warnf(ctx, "telegram handler: rejected update with bad secret token")
			pkgResponse.Unauthorized(c)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edits, polls, channel posts)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	requestID := pkgLog.RequestID(ctx)

	h.track(func() {
		// Detach from the HTTP request context, which ends with the response.
		bgCtx := pkgLog.WithRequestID(context.Background(), requestID)
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, msgProcessErr)
		}
	})

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}
	chatID := msg.Chat.ID

	// ---- Built-in commands ----
	switch command(text) {
	case cmdStart:
		return h.bot.SendMessageWithMode(ctx, chatID, msgStart, pkgTelegram.ParseModeMarkdown)
	case cmdHelp:
		return h.bot.SendMessageWithMode(ctx, chatID, msgHelp, pkgTelegram.ParseModeMarkdown)
	case cmdStats:
		stats := formatStats(h.uc.CacheStats(ctx), h.uc.LimitStatus(ctx))
		return h.bot.SendMessageWithMode(ctx, chatID, stats, pkgTelegram.ParseModeMarkdown)
	case cmdClear:
		if err := h.uc.ClearCache(ctx); err != nil {
			h.l.Errorf(ctx, "telegram handler: ClearCache failed: %v", err)
			return h.bot.SendMessage(ctx, chatID, msgClearFailed)
		}
		return h.bot.SendMessage(ctx, chatID, msgCleared)
	}

	sc := model.Scope{Channel: model.ChannelTelegram, UserID: fmt.Sprintf("telegram_%d", chatID)}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
		sc.Username = msg.From.Username
	}

	if err := h.bot.SendChatAction(ctx, chatID, pkgTelegram.ActionTyping); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send typing action: %v", err)
	}

	out, err := h.uc.Ask(ctx, sc, concierge.AskInput{Query: text})
	if err != nil {
		var rl *concierge.RateLimitError
		if errors.As(err, &rl) {
			return h.bot.SendMessage(ctx, chatID, fmt.Sprintf(msgRateLimited, rl.RetryAfter))
		}
		return err
	}

	reply := formatAnswer(out)
	if err := h.bot.SendMessageWithMode(ctx, chatID, reply, pkgTelegram.ParseModeMarkdown); err != nil {
		// LLM output is not always valid Telegram Markdown; fall back to plain text.
		h.l.Warnf(ctx, "telegram handler: markdown send failed, retrying as plain text: %v", err)
		return h.bot.SendMessage(ctx, chatID, reply)
	}
	return nil
}

// command returns the bot command in text, without any @botname suffix.
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd, _, _ := strings.Cut(strings.Fields(text)[0], "@")
	return strings.ToLower(cmd)
}
