package tools

import (
	"context"
	"fmt"
	"sort"

	"filmbuff-ai/internal/agent"
	"filmbuff-ai/pkg/tmdb"
)

// MovieDetailsTool fetches one movie with credits, trailer, reviews and similar titles.
type MovieDetailsTool struct {
	client tmdb.ITMDb
}

// NewMovieDetailsTool creates a new movie details tool.
func NewMovieDetailsTool(client tmdb.ITMDb) agent.Tool {
	return &MovieDetailsTool{client: client}
}

func (t *MovieDetailsTool) Name() string { return NameMovieDetails }

func (t *MovieDetailsTool) Description() string {
	return "Get detailed information about a specific movie by TMDb ID. Use search_movies first to find the ID."
}

func (t *MovieDetailsTool) Parameters() map[string]interface{} {
	return schema(map[string]interface{}{
		"movie_id": prop("integer", "TMDb movie ID"),
	}, "movie_id")
}

func (t *MovieDetailsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	id, err := requiredInt(params, "movie_id")
	if err != nil {
		return nil, err
	}
	d, err := t.client.MovieDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("movie details %d: %w", id, err)
	}

	genres := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		genres = append(genres, g.Name)
	}
	return map[string]interface{}{
		"id":           d.ID,
		"title":        d.Title,
		"tagline":      d.Tagline,
		"overview":     d.Overview,
		"year":         tmdb.YearOf(d.ReleaseDate),
		"release_date": d.ReleaseDate,
		"runtime":      d.Runtime,
		"rating":       d.VoteAverage,
		"vote_count":   d.VoteCount,
		"genres":       genres,
		"director":     tmdb.Director(d.Credits),
		"writers":      tmdb.Writers(d.Credits, detailWriters),
		"cast":         castCredits(tmdb.TopCast(d.Credits, detailCast)),
		"trailer":      tmdb.Trailer(d.Videos.Results),
		"reviews":      toReviewExcerpts(d.Reviews.Results, detailReviews),
		"similar":      similarTitles(d.Similar.Results, detailSimilar),
		"url":          tmdb.PageURL(tmdb.MediaMovie, d.ID),
	}, nil
}

// TVShowDetailsTool fetches one TV show with credits, seasons and similar titles.
type TVShowDetailsTool struct {
	client tmdb.ITMDb
}

// NewTVShowDetailsTool creates a new TV show details tool.
func NewTVShowDetailsTool(client tmdb.ITMDb) agent.Tool {
	return &TVShowDetailsTool{client: client}
}

func (t *TVShowDetailsTool) Name() string { return NameTVShowDetails }

func (t *TVShowDetailsTool) Description() string {
	return "Get detailed information about a specific TV show by TMDb ID. Use search_tv_shows first to find the ID."
}

func (t *TVShowDetailsTool) Parameters() map[string]interface{} {
	return schema(map[string]interface{}{
		"show_id": prop("integer", "TMDb TV show ID"),
	}, "show_id")
}

func (t *TVShowDetailsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	id, err := requiredInt(params, "show_id")
	if err != nil {
		return nil, err
	}
	d, err := t.client.TVDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("tv details %d: %w", id, err)
	}

	genres := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		genres = append(genres, g.Name)
	}
	creators := make([]string, 0, len(d.CreatedBy))
	for _, c := range d.CreatedBy {
		creators = append(creators, c.Name)
	}
	networks := make([]string, 0, len(d.Networks))
	for _, n := range d.Networks {
		networks = append(networks, n.Name)
	}
	episodes := 0
	for _, s := range d.Seasons {
		episodes += s.EpisodeCount
	}

	return map[string]interface{}{
		"id":             d.ID,
		"title":          d.Name,
		"tagline":        d.Tagline,
		"overview":       d.Overview,
		"first_air_date": d.FirstAirDate,
		"last_air_date":  d.LastAirDate,
		"status":         d.Status,
		"rating":         d.VoteAverage,
		"genres":         genres,
		"created_by":     creators,
		"networks":       networks,
		"seasons":        len(d.Seasons),
		"episodes":       episodes,
		"cast":           castCredits(tmdb.TopCast(d.Credits, detailCast)),
		"trailer":        tmdb.Trailer(d.Videos.Results),
		"similar":        similarTitles(d.Similar.Results, detailSimilar),
		"url":            tmdb.PageURL(tmdb.MediaTV, d.ID),
	}, nil
}

// PersonDetailsTool fetches a person's biography and notable credits.
type PersonDetailsTool struct {
	client tmdb.ITMDb
}

// NewPersonDetailsTool creates a new person details tool.
func NewPersonDetailsTool(client tmdb.ITMDb) agent.Tool {
	return &PersonDetailsTool{client: client}
}

func (t *PersonDetailsTool) Name() string { return NamePersonDetails }

func (t *PersonDetailsTool) Description() string {
	return "Get detailed information about a specific person by TMDb ID, including notable movies and TV shows."
}

func (t *PersonDetailsTool) Parameters() map[string]interface{} {
	return schema(map[string]interface{}{
		"person_id": prop("integer", "TMDb person ID"),
	}, "person_id")
}

func (t *PersonDetailsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	id, err := requiredInt(params, "person_id")
	if err != nil {
		return nil, err
	}
	d, err := t.client.PersonDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("person details %d: %w", id, err)
	}

	movies := make([]Credit, 0, personMovies)
	for _, c := range tmdb.MostPopular(d.MovieCredits.Cast, personMovies) {
		movies = append(movies, Credit{ID: c.ID, Title: c.Title, Character: c.Character, Year: yearOrEmpty(c.ReleaseDate)})
	}
	// Directors and writers have few cast credits; fill from crew.
	if len(movies) < personMovies {
		crew := make([]tmdb.CrewMember, len(d.MovieCredits.Crew))
		copy(crew, d.MovieCredits.Crew)
		sortCrewByPopularity(crew)
		for _, c := range crew {
			if len(movies) >= personMovies {
				break
			}
			movies = append(movies, Credit{ID: c.ID, Title: c.Title, Job: c.Job, Year: yearOrEmpty(c.ReleaseDate)})
		}
	}

	shows := make([]Credit, 0, personShows)
	for _, c := range tmdb.MostPopular(d.TVCredits.Cast, personShows) {
		title := c.Title
		if title == "" {
			title = c.Name
		}
		shows = append(shows, Credit{ID: c.ID, Title: title, Character: c.Character, Year: yearOrEmpty(c.FirstAirDate)})
	}

	return map[string]interface{}{
		"id":                   d.ID,
		"name":                 d.Name,
		"birthday":             d.Birthday,
		"place_of_birth":       d.PlaceOfBirth,
		"biography":            d.Biography,
		"known_for_department": d.KnownForDepartment,
		"notable_movies":       movies,
		"notable_tv_shows":     shows,
		"url":                  tmdb.PageURL(tmdb.MediaPerson, d.ID),
	}, nil
}

func yearOrEmpty(date string) string {
	if date == "" {
		return ""
	}
	return tmdb.YearOf(date)
}

func sortCrewByPopularity(crew []tmdb.CrewMember) {
	sort.SliceStable(crew, func(i, j int) bool { return crew[i].Popularity > crew[j].Popularity })
}
