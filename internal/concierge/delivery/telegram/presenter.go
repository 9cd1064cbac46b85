package telegram

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"filmbuff-ai/internal/concierge"
	"filmbuff-ai/internal/querycache"
)

var tmdbURL = regexp.MustCompile(`https://www\.themoviedb\.org/[^\s)\]]+`)

// linkTMDb turns bare TMDb URLs into Markdown links. URLs that already sit
// inside a Markdown link target are left alone.
func linkTMDb(text string) string {
	matches := tmdbURL.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		b.WriteString(text[last:start])
		if strings.HasSuffix(text[:start], "](") {
			b.WriteString(text[start:end])
		} else {
			fmt.Fprintf(&b, "[TMDb](%s)", text[start:end])
		}
		last = end
	}
	b.WriteString(text[last:])
	return b.String()
}

func formatAnswer(out concierge.AskOutput) string {
	text := linkTMDb(out.Answer)
	if out.Cached {
		text += cachedSuffix
	}
	return text
}

func formatStats(cache querycache.Stats, limit concierge.LimitStatus) string {
	var b strings.Builder
	b.WriteString("📊 *FilmBuff stats*\n\n")
	if cache.Entries == 0 {
		b.WriteString("Cache: empty\n")
	} else {
		fmt.Fprintf(&b, "Cache: %d stored answers\n", cache.Entries)
	}
	fmt.Fprintf(&b, "Hits/misses: %d/%d\n", cache.Hits, cache.Misses)
	if cache.LastSaved.IsZero() {
		b.WriteString("Last saved: not yet\n")
	} else {
		fmt.Fprintf(&b, "Last saved: %s\n", cache.LastSaved.Format("02/01/2006 15:04:05"))
	}
	fmt.Fprintf(&b, "Quota: %d of %d questions left per %s", limit.Remaining, limit.MaxCalls, limit.Period.Round(time.Second))
	if limit.SecondsUntilAvailable > 0 {
		fmt.Fprintf(&b, " (next in %ds)", limit.SecondsUntilAvailable)
	}
	return b.String()
}
