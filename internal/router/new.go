package router

import (
	"context"
	"regexp"
	"strings"

	"filmbuff-ai/internal/model"
	pkgLog "filmbuff-ai/pkg/log"
)

// Router maps free text to an Intent.
type Router interface {
	Classify(ctx context.Context, query string) model.Intent
}

// KeywordRouter classifies queries with an ordered list of keyword rules.
// It is deterministic and never calls a model.
type KeywordRouter struct {
	l     pkgLog.Logger
	rules []rule
}

var _ Router = (*KeywordRouter)(nil)

// New creates a KeywordRouter with DefaultKeywords.
func New(l pkgLog.Logger) *KeywordRouter {
	return NewWithKeywords(l, DefaultKeywords)
}

// NewWithKeywords creates a KeywordRouter with custom pattern groups.
func NewWithKeywords(l pkgLog.Logger, kw Keywords) *KeywordRouter {
	return &KeywordRouter{l: l, rules: buildRules(kw)}
}

// compile turns phrases into one alternation matched at word starts.
// An empty group never matches.
func compile(phrases []string) *regexp.Regexp {
	quoted := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(p))
	}
	if len(quoted) == 0 {
		return regexp.MustCompile(`$^`)
	}
	return regexp.MustCompile(`(?:^|[^\p{L}\p{N}])(?:` + strings.Join(quoted, "|") + `)`)
}
