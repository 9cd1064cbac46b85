package tools

import (
	"context"
	"fmt"

	"filmbuff-ai/internal/agent"
	"filmbuff-ai/pkg/tmdb"
)

// SearchMoviesTool searches movies by keyword with optional year and genre.
type SearchMoviesTool struct {
	client tmdb.ITMDb
}

// NewSearchMoviesTool creates a new search movies tool.
func NewSearchMoviesTool(client tmdb.ITMDb) agent.Tool {
	return &SearchMoviesTool{client: client}
}

func (t *SearchMoviesTool) Name() string { return NameSearchMovies }

func (t *SearchMoviesTool) Description() string {
	return "Search for movies based on keywords, year, or genre. Example: \"thriller movies with plot twist\"."
}

func (t *SearchMoviesTool) Parameters() map[string]interface{} {
	return schema(map[string]interface{}{
		"query":       prop("string", "Keywords or title to search for"),
		"year":        prop("integer", "Release year filter"),
		"genre":       prop("string", "Genre name, e.g. Thriller"),
		"max_results": prop("integer", "Maximum number of results (default 5)"),
	}, "query")
}

func (t *SearchMoviesTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	query, err := requiredString(params, "query")
	if err != nil {
		return nil, err
	}
	items, err := t.client.SearchMovies(ctx, tmdb.SearchParams{
		Query:   query,
		Year:    intParam(params, "year"),
		GenreID: tmdb.MovieGenreID(stringParam(params, "genre")),
	})
	if err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}
	return toMediaResults(items, maxResults(params, defaultMaxResults), tmdb.MediaMovie), nil
}

// SearchTVShowsTool searches TV shows by keyword with optional year and genre.
type SearchTVShowsTool struct {
	client tmdb.ITMDb
}

// NewSearchTVShowsTool creates a new search TV shows tool.
func NewSearchTVShowsTool(client tmdb.ITMDb) agent.Tool {
	return &SearchTVShowsTool{client: client}
}

func (t *SearchTVShowsTool) Name() string { return NameSearchTVShows }

func (t *SearchTVShowsTool) Description() string {
	return "Search for TV shows based on keywords, year, or genre. Example: \"sci-fi shows with time travel\"."
}

func (t *SearchTVShowsTool) Parameters() map[string]interface{} {
	return schema(map[string]interface{}{
		"query":       prop("string", "Keywords or title to search for"),
		"year":        prop("integer", "First air year filter"),
		"genre":       prop("string", "Genre name, e.g. Drama"),
		"max_results": prop("integer", "Maximum number of results (default 5)"),
	}, "query")
}

func (t *SearchTVShowsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	query, err := requiredString(params, "query")
	if err != nil {
		return nil, err
	}
	items, err := t.client.SearchTV(ctx, tmdb.SearchParams{
		Query:   query,
		Year:    intParam(params, "year"),
		GenreID: tmdb.TVGenreID(stringParam(params, "genre")),
	})
	if err != nil {
		return nil, fmt.Errorf("search tv: %w", err)
	}
	return toMediaResults(items, maxResults(params, defaultMaxResults), tmdb.MediaTV), nil
}

// SearchPersonTool finds actors, directors and other industry people.
type SearchPersonTool struct {
	client tmdb.ITMDb
}

// NewSearchPersonTool creates a new search person tool.
func NewSearchPersonTool(client tmdb.ITMDb) agent.Tool {
	return &SearchPersonTool{client: client}
}

func (t *SearchPersonTool) Name() string { return NameSearchPerson }

func (t *SearchPersonTool) Description() string {
	return "Search for actors, directors, or other film industry personalities. Example: \"Christopher Nolan\"."
}

func (t *SearchPersonTool) Parameters() map[string]interface{} {
	return schema(map[string]interface{}{
		"query":       prop("string", "Person name"),
		"max_results": prop("integer", "Maximum number of results (default 5)"),
	}, "query")
}

func (t *SearchPersonTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	query, err := requiredString(params, "query")
	if err != nil {
		return nil, err
	}
	people, err := t.client.SearchPerson(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search person: %w", err)
	}

	limit := maxResults(params, defaultMaxResults)
	if len(people) > limit {
		people = people[:limit]
	}
	results := make([]PersonResult, 0, len(people))
	for _, p := range people {
		known := make([]string, 0, len(p.KnownFor))
		for _, kf := range p.KnownFor {
			known = append(known, kf.DisplayTitle())
		}
		results = append(results, PersonResult{
			ID:                 p.ID,
			Name:               p.Name,
			Popularity:         p.Popularity,
			KnownForDepartment: p.KnownForDepartment,
			KnownFor:           known,
			URL:                tmdb.PageURL(tmdb.MediaPerson, p.ID),
		})
	}
	return map[string]interface{}{
		"count":   len(results),
		"results": results,
	}, nil
}
