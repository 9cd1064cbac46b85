package tools

import (
	"filmbuff-ai/internal/agent"
	"filmbuff-ai/pkg/tmdb"
)

// RegisterAll adds every TMDb tool to reg.
func RegisterAll(reg *agent.ToolRegistry, client tmdb.ITMDb) {
	for _, t := range []agent.Tool{
		NewSearchMoviesTool(client),
		NewSearchTVShowsTool(client),
		NewDiscoverMoviesTool(client),
		NewDiscoverTVShowsTool(client),
		NewMovieDetailsTool(client),
		NewTVShowDetailsTool(client),
		NewTrendingTool(client),
		NewSearchPersonTool(client),
		NewPersonDetailsTool(client),
		NewFindSimilarTool(client),
		NewRecommendByGenreTool(client),
		NewFetchReviewsTool(client),
	} {
		reg.Register(t)
	}
}
