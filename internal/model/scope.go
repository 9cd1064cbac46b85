package model

// Scope identifies who issued a request and through which channel.
type Scope struct {
	UserID   string
	Username string
	Channel  string
}

const (
	ChannelHTTP     = "http"
	ChannelTelegram = "telegram"
	ChannelCLI      = "cli"
)
