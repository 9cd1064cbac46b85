package telegram

import "context"

// ITelegram is the subset of the Bot API the concierge uses.
type ITelegram interface {
	SetWebhook(ctx context.Context, webhookURL, secretToken string) error
	SendMessage(ctx context.Context, chatID int64, text string) error
	// SendMessageWithMode sends text with a parse mode such as "Markdown".
	// Text longer than one Telegram message is split and sent in order.
	SendMessageWithMode(ctx context.Context, chatID int64, text, parseMode string) error
	// SendChatAction shows a transient status such as "typing".
	SendChatAction(ctx context.Context, chatID int64, action string) error
}

// New creates a Bot API client.
func New(cfg Config) (ITelegram, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &bot{
		apiURL:     cfg.APIURL,
		httpClient: cfg.HTTPClient,
	}, nil
}
