package usecase

import (
	"fmt"
	"strings"

	"filmbuff-ai/internal/model"
)

const directInstructions = `Answer the user's query directly.
Use your available tools to provide a direct and complete answer.
Format the answer clearly so it can be shown to the user as is.`

const planTemplate = `Analyse the user's query: "%s"

Create a delegation plan for the specialist agents.

Your answer MUST follow this format:

DELEGATION PLAN:
[Short description of how the query will be answered]
%s
Give specific and clear instructions for every agent listed above.`

const synthesisTemplate = `Results from the specialist agents:

%s

Synthesise this information into one well-formatted final answer.
Remove redundancy and organise the information logically.`

const defaultInstructionTemplate = "provide information about '%s'"

// planSlots describes what each specialist is asked for in the plan.
var planSlots = map[model.Capability]string{
	model.CapabilityResearch:       "[Instructions to research movies or TV shows relevant to the query]",
	model.CapabilityDetails:        "[Instructions to provide detailed information about the identified content]",
	model.CapabilityRecommendation: "[Instructions to recommend similar or related content]",
	model.CapabilityPeople:         "[Instructions to provide information about the people involved]",
}

func buildPlanRequest(query string, caps []model.Capability) string {
	var b strings.Builder
	for _, c := range caps {
		slot, ok := planSlots[c]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n%s %s\n", planHeader(c), slot)
	}
	return fmt.Sprintf(planTemplate, query, b.String())
}

const detailRetryTemplate = `# CRITICAL TASK: Provide Detailed Information

The user asked: "%s"

## EXPLICIT INSTRUCTIONS:
1. Use the movie or TV show detail tools to find the specific title
2. Fetch reviews if needed for additional context
3. Write a complete answer with ALL available details

Include:
- Complete title and year
- Director and main cast
- Detailed synopsis
- Rating and popularity
- Genres and runtime
- Notable facts

Make sure the answer is thorough and formatted with markdown.`

const trendingRetryTemplate = `# CRITICAL TASK: Format Movie/TV Show Trends

The user asked: "%s"

## EXPLICIT AND MANDATORY INSTRUCTIONS:
1. Use the trending tool to get current data
2. With the results you MUST write a complete and detailed answer
3. The answer MUST follow exactly this format:

# Trending Movies and TV Shows This Week

## Highlights:

1. **[TITLE]** (YEAR) - ⭐ [RATING]/10
   Type: [Movie/TV Show]
   [BRIEF DESCRIPTION]

## Other Trending Content:

[LIST ALL OTHER MOVIES/TV SHOWS IN THE SAME FORMAT]`

const generalRetryTemplate = `# CRITICAL TASK: Provide a Complete Answer

The user asked: "%s"

## EXPLICIT INSTRUCTIONS:
1. Use every relevant tool to look up real data for this query
2. Your previous answer was too short; this time be exhaustive
3. List every relevant title or person with year, rating and a short description

Format the answer with markdown headings and bullet points.`

// retryInstructions picks the stricter template for the query's category.
func retryInstructions(category model.Category, query string) string {
	switch category {
	case model.CategoryDetail:
		return fmt.Sprintf(detailRetryTemplate, query)
	case model.CategoryTrending:
		return fmt.Sprintf(trendingRetryTemplate, query)
	default:
		return fmt.Sprintf(generalRetryTemplate, query)
	}
}
