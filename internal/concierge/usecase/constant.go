package usecase

// Log prefixes
const (
	LogPrefixAsk      = "internal.concierge.usecase.Ask"
	LogPrefixDispatch = "internal.concierge.usecase.dispatch"
	LogPrefixRetry    = "internal.concierge.usecase.retry"
)

// Error messages
const (
	ErrMsgHandlerFailed = "%s handler (%s attempt)"
	ErrMsgPanic         = "pipeline panic: %v"
)

const (
	instructionEllipsis = "..."
	truncationMarker    = "\n...[results truncated]..."
)
