package usecase

import (
	"errors"
	"fmt"

	"filmbuff-ai/pkg/llmprovider"
	"filmbuff-ai/pkg/tmdb"
)

const failureTemplate = `# Error processing query

There was a problem processing: "%s"
Error: %s

%s
Please try rephrasing your question.`

const (
	hintRateLimited  = "The movie database or the language model is receiving too many requests right now. Wait a moment before asking again."
	hintAuth         = "The service credentials were rejected. The operator needs to check the configured API keys."
	hintConnectivity = "An upstream service could not be reached in time. Check the connection and try again."
	hintGeneric      = "Something unexpected went wrong while preparing the answer."
)

// failureHint maps err onto a user-facing category.
func failureHint(err error) string {
	switch {
	case llmprovider.IsRateLimited(err) || errors.Is(err, tmdb.ErrRateLimited):
		return hintRateLimited
	case llmprovider.IsAuth(err) || errors.Is(err, tmdb.ErrUnauthorized) || errors.Is(err, tmdb.ErrMissingAPIKey):
		return hintAuth
	case llmprovider.IsConnectivity(err):
		return hintConnectivity
	default:
		return hintGeneric
	}
}

// failureMessage renders the answer shown when the pipeline fails. It is never cached.
func failureMessage(query string, err error) string {
	return fmt.Sprintf(failureTemplate, query, err, failureHint(err))
}
