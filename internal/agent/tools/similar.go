package tools

import (
	"context"
	"fmt"

	"filmbuff-ai/internal/agent"
	"filmbuff-ai/pkg/tmdb"
)

func mediaParam(params map[string]interface{}) tmdb.MediaType {
	if tmdb.MediaType(stringParam(params, "content_type")) == tmdb.MediaTV {
		return tmdb.MediaTV
	}
	return tmdb.MediaMovie
}

// FindSimilarTool lists titles similar to a movie or show.
type FindSimilarTool struct {
	client tmdb.ITMDb
}

// NewFindSimilarTool creates a new find similar content tool.
func NewFindSimilarTool(client tmdb.ITMDb) agent.Tool {
	return &FindSimilarTool{client: client}
}

func (t *FindSimilarTool) Name() string { return NameFindSimilarContent }

func (t *FindSimilarTool) Description() string {
	return "Find content similar to a specific movie or TV show by TMDb ID. Example: \"shows similar to Breaking Bad\"."
}

func (t *FindSimilarTool) Parameters() map[string]interface{} {
	return schema(map[string]interface{}{
		"content_id":   prop("integer", "TMDb ID of the movie or show"),
		"content_type": enumProp("movie or tv", string(tmdb.MediaMovie), string(tmdb.MediaTV)),
		"max_results":  prop("integer", "Maximum number of results (default 5)"),
	}, "content_id", "content_type")
}

func (t *FindSimilarTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	id, err := requiredInt(params, "content_id")
	if err != nil {
		return nil, err
	}
	media := mediaParam(params)
	items, err := t.client.Similar(ctx, media, id)
	if err != nil {
		return nil, fmt.Errorf("similar %s %d: %w", media, id, err)
	}
	return toMediaResults(items, maxResults(params, defaultMaxResults), media), nil
}

// FetchReviewsTool returns review excerpts for a movie or show.
type FetchReviewsTool struct {
	client tmdb.ITMDb
}

// NewFetchReviewsTool creates a new fetch reviews tool.
func NewFetchReviewsTool(client tmdb.ITMDb) agent.Tool {
	return &FetchReviewsTool{client: client}
}

func (t *FetchReviewsTool) Name() string { return NameFetchReviews }

func (t *FetchReviewsTool) Description() string {
	return "Fetches reviews and critiques for a specific movie or TV show by TMDb ID."
}

func (t *FetchReviewsTool) Parameters() map[string]interface{} {
	return schema(map[string]interface{}{
		"content_id":   prop("integer", "TMDb ID of the movie or show"),
		"content_type": enumProp("movie or tv", string(tmdb.MediaMovie), string(tmdb.MediaTV)),
		"max_results":  prop("integer", "Maximum number of reviews (default 5)"),
	}, "content_id")
}

func (t *FetchReviewsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	id, err := requiredInt(params, "content_id")
	if err != nil {
		return nil, err
	}
	media := mediaParam(params)
	reviews, total, err := t.client.Reviews(ctx, media, id)
	if err != nil {
		return nil, fmt.Errorf("reviews %s %d: %w", media, id, err)
	}
	excerpts := toReviewExcerpts(reviews, maxResults(params, defaultMaxResults))
	return map[string]interface{}{
		"total_reviews": total,
		"count":         len(excerpts),
		"reviews":       excerpts,
		"url":           tmdb.PageURL(media, id) + "/reviews",
	}, nil
}
