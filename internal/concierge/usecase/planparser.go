package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"filmbuff-ai/internal/model"
)

// plannedCapabilities are the specialists that may own a section of a delegation plan.
var plannedCapabilities = []model.Capability{
	model.CapabilityResearch,
	model.CapabilityDetails,
	model.CapabilityRecommendation,
	model.CapabilityPeople,
}

var planSections = compilePlanSections()

func planHeader(c model.Capability) string {
	return strings.ToUpper(string(c)) + " AGENT:"
}

// compilePlanSections builds one pattern per capability. A section runs from its
// header to the next known header or the end of the plan.
func compilePlanSections() map[model.Capability]*regexp.Regexp {
	stops := make([]string, 0, len(plannedCapabilities))
	for _, c := range plannedCapabilities {
		stops = append(stops, regexp.QuoteMeta(planHeader(c)))
	}
	terminator := "(?:" + strings.Join(stops, "|") + "|$)"

	out := make(map[model.Capability]*regexp.Regexp, len(plannedCapabilities))
	for _, c := range plannedCapabilities {
		out[c] = regexp.MustCompile(fmt.Sprintf(`(?is)%s(.*?)%s`, regexp.QuoteMeta(planHeader(c)), terminator))
	}
	return out
}

// extractInstructions returns the trimmed section of plan addressed to c.
func extractInstructions(plan string, c model.Capability) (string, bool) {
	re, ok := planSections[c]
	if !ok {
		return "", false
	}
	m := re.FindStringSubmatch(plan)
	if m == nil {
		return "", false
	}
	text := strings.TrimSpace(m[1])
	return text, text != ""
}

// truncateRunes cuts s to at most n runes and appends suffix when it did.
func truncateRunes(s string, n int, suffix string) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + suffix
}
