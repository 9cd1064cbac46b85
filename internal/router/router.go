package router

import (
	"context"
	"regexp"
	"strings"

	"filmbuff-ai/internal/model"
)

// rule is one step of the ordered classification; the first match wins.
type rule struct {
	category model.Category
	match    func(q string) bool
	needs    func(q string) []model.Capability
}

func buildRules(kw Keywords) []rule {
	var (
		trending  = compile(kw.Trending)
		search    = compile(kw.Search)
		detail    = compile(kw.Detail)
		recommend = compile(kw.Recommendation)
		person    = compile(kw.Person)
		titles    = compile(kw.Titles)
	)
	has := func(re *regexp.Regexp) func(string) bool {
		return func(q string) bool { return re.MatchString(q) }
	}
	none := func(string) []model.Capability { return nil }
	only := func(c model.Capability) func(string) []model.Capability {
		return func(string) []model.Capability { return []model.Capability{c} }
	}

	return []rule{
		{category: model.CategoryTrending, match: has(trending), needs: none},
		{
			category: model.CategorySearch,
			match:    func(q string) bool { return search.MatchString(q) && !titles.MatchString(q) },
			needs:    none,
		},
		{
			category: model.CategoryDetail,
			match:    func(q string) bool { return detail.MatchString(q) || titles.MatchString(q) },
			needs: func(q string) []model.Capability {
				caps := []model.Capability{model.CapabilityDetails}
				if recommend.MatchString(q) {
					caps = append(caps, model.CapabilityRecommendation)
				}
				return caps
			},
		},
		{category: model.CategoryRecommendation, match: has(recommend), needs: only(model.CapabilityRecommendation)},
		{category: model.CategoryPerson, match: has(person), needs: only(model.CapabilityPeople)},
	}
}

// Classify returns the intent of the first matching rule, or ambiguous/research.
func (r *KeywordRouter) Classify(ctx context.Context, query string) model.Intent {
	q := strings.ToLower(strings.TrimSpace(query))

	intent := model.Intent{
		Category:     model.CategoryAmbiguous,
		Capabilities: []model.Capability{model.CapabilityResearch},
	}
	for _, rl := range r.rules {
		if rl.match(q) {
			intent = model.Intent{Category: rl.category, Capabilities: rl.needs(q)}
			break
		}
	}

	if !intent.IsDirect() && len(intent.Capabilities) == 0 {
		intent.Capabilities = []model.Capability{model.CapabilityResearch}
	}

	r.l.Debugf(ctx, "%s: category=%s capabilities=%v", LogPrefixClassify, intent.Category, intent.Capabilities)
	return intent
}
