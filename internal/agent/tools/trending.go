package tools

import (
	"context"
	"fmt"

	"filmbuff-ai/internal/agent"
	"filmbuff-ai/pkg/tmdb"
)

// TrendingTool lists what is trending today or this week.
type TrendingTool struct {
	client tmdb.ITMDb
}

// NewTrendingTool creates a new trending content tool.
func NewTrendingTool(client tmdb.ITMDb) agent.Tool {
	return &TrendingTool{client: client}
}

func (t *TrendingTool) Name() string { return NameTrendingContent }

func (t *TrendingTool) Description() string {
	return "Get trending movies, TV shows, or people. Example: \"What movies are trending this week?\"."
}

func (t *TrendingTool) Parameters() map[string]interface{} {
	return schema(map[string]interface{}{
		"media_type": enumProp("What to list (default all)",
			string(tmdb.MediaAll), string(tmdb.MediaMovie), string(tmdb.MediaTV), string(tmdb.MediaPerson)),
		"time_window": enumProp("Trending window (default week)", string(tmdb.WindowDay), string(tmdb.WindowWeek)),
		"max_results": prop("integer", "Maximum number of results (default 5)"),
	})
}

func (t *TrendingTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	media := tmdb.MediaType(stringParam(params, "media_type"))
	if media == "" {
		media = tmdb.MediaAll
	}
	window := tmdb.TimeWindow(stringParam(params, "time_window"))

	items, err := t.client.Trending(ctx, media, window)
	if err != nil {
		return nil, fmt.Errorf("trending: %w", err)
	}
	return toMediaResults(items, maxResults(params, defaultMaxResults), tmdb.MediaMovie), nil
}
