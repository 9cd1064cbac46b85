package telegram

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

// SetWebhook registers the webhook URL with Telegram. A non-empty
// secretToken is echoed back on every update.
func (b *bot) SetWebhook(ctx context.Context, webhookURL, secretToken string) error {
	return b.call(ctx, "setWebhook", SetWebhookRequest{URL: webhookURL, SecretToken: secretToken})
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

func (b *bot) SendMessageWithMode(ctx context.Context, chatID int64, text, parseMode string) error {
	for _, chunk := range SplitMessage(text, MaxMessageLength) {
		err := b.call(ctx, "sendMessage", SendMessageRequest{
			ChatID:                chatID,
			Text:                  chunk,
			ParseMode:             parseMode,
			DisableWebPagePreview: true,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *bot) SendChatAction(ctx context.Context, chatID int64, action string) error {
	return b.call(ctx, "sendChatAction", SendChatActionRequest{ChatID: chatID, Action: action})
}

func (b *bot) call(ctx context.Context, method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("telegram %s: marshal: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/%s", b.apiURL, method), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var apiResp APIResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil || resp.StatusCode != http.StatusOK || !apiResp.OK {
		desc := apiResp.Description
		if desc == "" {
			desc = strings.TrimSpace(string(raw))
		}
		return &APIError{Method: method, StatusCode: resp.StatusCode, Description: desc}
	}
	return nil
}

// SplitMessage cuts text into chunks of at most limit runes, preferring to
// break after a newline so Markdown blocks stay intact.
func SplitMessage(text string, limit int) []string {
	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return []string{text}
	}

	var chunks []string
	for len(runes) > limit {
		cut := limit
		for i := limit - 1; i > limit/2; i-- {
			if runes[i] == '\n' {
				cut = i + 1
				break
			}
		}
		chunks = append(chunks, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}
