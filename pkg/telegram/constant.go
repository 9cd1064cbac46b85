package telegram

import "time"

const (
	DefaultAPIURL  = "https://api.telegram.org"
	DefaultTimeout = 15 * time.Second

	// MaxMessageLength is the Bot API limit for one message, in UTF-16 units.
	// Counting runes against it is a safe approximation for text without astral characters.
	MaxMessageLength = 4096

	ParseModeMarkdown = "Markdown"
	ActionTyping      = "typing"
)
