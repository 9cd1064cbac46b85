package tools

import (
	"context"
	"fmt"

	"filmbuff-ai/internal/agent"
	"filmbuff-ai/pkg/tmdb"
)

// DiscoverTool lists movies or TV shows by criteria without a keyword.
type DiscoverTool struct {
	client tmdb.ITMDb
	media  tmdb.MediaType
}

// NewDiscoverMoviesTool creates the movie discovery tool.
func NewDiscoverMoviesTool(client tmdb.ITMDb) agent.Tool {
	return &DiscoverTool{client: client, media: tmdb.MediaMovie}
}

// NewDiscoverTVShowsTool creates the TV discovery tool.
func NewDiscoverTVShowsTool(client tmdb.ITMDb) agent.Tool {
	return &DiscoverTool{client: client, media: tmdb.MediaTV}
}

func (t *DiscoverTool) Name() string {
	if t.media == tmdb.MediaTV {
		return NameDiscoverTVShows
	}
	return NameDiscoverMovies
}

func (t *DiscoverTool) Description() string {
	if t.media == tmdb.MediaTV {
		return "Discover TV shows based on specific criteria without a keyword search. Example: \"popular crime shows from 2019\"."
	}
	return "Discover movies based on specific criteria without a keyword search. Example: \"popular action movies from 2022\"."
}

func (t *DiscoverTool) Parameters() map[string]interface{} {
	return schema(map[string]interface{}{
		"genre":       prop("string", "Genre name"),
		"year":        prop("integer", "Release or first air year"),
		"sort_by":     prop("string", "TMDb sort order (default popularity.desc)"),
		"min_rating":  prop("number", "Minimum average rating, 0-10"),
		"max_results": prop("integer", "Maximum number of results (default 5)"),
	})
}

func (t *DiscoverTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	genre := stringParam(params, "genre")
	genreID := tmdb.MovieGenreID(genre)
	if t.media == tmdb.MediaTV {
		genreID = tmdb.TVGenreID(genre)
	}

	items, err := t.client.Discover(ctx, t.media, tmdb.DiscoverParams{
		GenreID:   genreID,
		Year:      intParam(params, "year"),
		SortBy:    stringParam(params, "sort_by"),
		MinRating: floatParam(params, "min_rating", 0),
	})
	if err != nil {
		return nil, fmt.Errorf("discover %s: %w", t.media, err)
	}
	return toMediaResults(items, maxResults(params, defaultMaxResults), t.media), nil
}

// RecommendByGenreTool returns highly rated titles of a genre, optionally within a year range.
type RecommendByGenreTool struct {
	client tmdb.ITMDb
}

// NewRecommendByGenreTool creates a new recommend by genre tool.
func NewRecommendByGenreTool(client tmdb.ITMDb) agent.Tool {
	return &RecommendByGenreTool{client: client}
}

func (t *RecommendByGenreTool) Name() string { return NameRecommendByGenre }

func (t *RecommendByGenreTool) Description() string {
	return "Recommends movies or TV shows by genre, sorted by rating, with optional minimum rating and year range."
}

func (t *RecommendByGenreTool) Parameters() map[string]interface{} {
	return schema(map[string]interface{}{
		"genre":       prop("string", "Genre name, e.g. Horror"),
		"media_type":  enumProp("movie or tv (default movie)", string(tmdb.MediaMovie), string(tmdb.MediaTV)),
		"min_rating":  prop("number", "Minimum average rating (default 7.0)"),
		"year_from":   prop("integer", "Earliest release year"),
		"year_to":     prop("integer", "Latest release year"),
		"max_results": prop("integer", "Maximum number of results (default 8)"),
	}, "genre")
}

func (t *RecommendByGenreTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	genre, err := requiredString(params, "genre")
	if err != nil {
		return nil, err
	}

	media := tmdb.MediaMovie
	genreID := tmdb.MovieGenreID(genre)
	if tmdb.MediaType(stringParam(params, "media_type")) == tmdb.MediaTV {
		media = tmdb.MediaTV
		genreID = tmdb.TVGenreID(genre)
	}
	if genreID == 0 {
		return map[string]interface{}{
			"status":  "error",
			"message": fmt.Sprintf("Genre '%s' not recognized", genre),
		}, nil
	}

	items, err := t.client.Discover(ctx, media, tmdb.DiscoverParams{
		GenreID:   genreID,
		YearFrom:  intParam(params, "year_from"),
		YearTo:    intParam(params, "year_to"),
		SortBy:    "vote_average.desc",
		MinRating: floatParam(params, "min_rating", genreMinRating),
	})
	if err != nil {
		return nil, fmt.Errorf("recommend by genre: %w", err)
	}

	list := toMediaResults(items, maxResults(params, genreMaxResults), media)
	return map[string]interface{}{
		"status":  "success",
		"genre":   genre,
		"count":   list.Count,
		"results": list.Results,
	}, nil
}
