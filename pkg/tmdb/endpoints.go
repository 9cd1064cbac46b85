package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

func (c *client) SearchMovies(ctx context.Context, p SearchParams) ([]Media, error) {
	params := url.Values{"query": {p.Query}}
	if p.Year > 0 {
		params.Set("year", strconv.Itoa(p.Year))
	}
	if p.GenreID > 0 {
		params.Set("with_genres", strconv.Itoa(p.GenreID))
	}

	var res page[Media]
	if err := c.get(ctx, "search/movie", params, &res); err != nil {
		return nil, err
	}
	return tagMedia(res.Results, MediaMovie), nil
}

func (c *client) SearchTV(ctx context.Context, p SearchParams) ([]Media, error) {
	params := url.Values{"query": {p.Query}}
	if p.Year > 0 {
		params.Set("first_air_date_year", strconv.Itoa(p.Year))
	}
	if p.GenreID > 0 {
		params.Set("with_genres", strconv.Itoa(p.GenreID))
	}

	var res page[Media]
	if err := c.get(ctx, "search/tv", params, &res); err != nil {
		return nil, err
	}
	return tagMedia(res.Results, MediaTV), nil
}

func (c *client) SearchPerson(ctx context.Context, query string) ([]Person, error) {
	var res page[Person]
	if err := c.get(ctx, "search/person", url.Values{"query": {query}}, &res); err != nil {
		return nil, err
	}
	return res.Results, nil
}

func (c *client) MovieDetails(ctx context.Context, id int) (MovieDetails, error) {
	var res MovieDetails
	err := c.get(ctx, fmt.Sprintf("movie/%d", id), url.Values{"append_to_response": {"credits,similar,reviews,videos"}}, &res)
	return res, err
}

func (c *client) TVDetails(ctx context.Context, id int) (TVDetails, error) {
	var res TVDetails
	err := c.get(ctx, fmt.Sprintf("tv/%d", id), url.Values{"append_to_response": {"credits,similar,videos"}}, &res)
	return res, err
}

func (c *client) PersonDetails(ctx context.Context, id int) (PersonDetails, error) {
	var res PersonDetails
	err := c.get(ctx, fmt.Sprintf("person/%d", id), url.Values{"append_to_response": {"movie_credits,tv_credits"}}, &res)
	return res, err
}

func (c *client) Discover(ctx context.Context, media MediaType, p DiscoverParams) ([]Media, error) {
	if media != MediaTV {
		media = MediaMovie
	}
	sortBy := p.SortBy
	if sortBy == "" {
		sortBy = "popularity.desc"
	}
	params := url.Values{
		"sort_by":       {sortBy},
		"include_adult": {"false"},
	}
	if p.MinRating > 0 {
		params.Set("vote_average.gte", strconv.FormatFloat(p.MinRating, 'f', -1, 64))
	}
	if p.GenreID > 0 {
		params.Set("with_genres", strconv.Itoa(p.GenreID))
	}

	dateGTE, dateLTE, yearKey := "primary_release_date.gte", "primary_release_date.lte", "primary_release_year"
	if media == MediaTV {
		dateGTE, dateLTE, yearKey = "first_air_date.gte", "first_air_date.lte", "first_air_date_year"
	}
	if p.Year > 0 {
		params.Set(yearKey, strconv.Itoa(p.Year))
	}
	if p.YearFrom > 1900 {
		params.Set(dateGTE, fmt.Sprintf("%d-01-01", p.YearFrom))
	}
	if p.YearTo > 1900 {
		params.Set(dateLTE, fmt.Sprintf("%d-12-31", p.YearTo))
	}

	var res page[Media]
	if err := c.get(ctx, "discover/"+string(media), params, &res); err != nil {
		return nil, err
	}
	return tagMedia(res.Results, media), nil
}

func (c *client) Trending(ctx context.Context, media MediaType, window TimeWindow) ([]Media, error) {
	switch media {
	case MediaAll, MediaMovie, MediaTV, MediaPerson:
	default:
		media = MediaAll
	}
	if window != WindowDay {
		window = WindowWeek
	}

	var res page[Media]
	if err := c.get(ctx, fmt.Sprintf("trending/%s/%s", media, window), nil, &res); err != nil {
		return nil, err
	}
	if media != MediaAll {
		return tagMedia(res.Results, media), nil
	}
	return res.Results, nil
}

func (c *client) Similar(ctx context.Context, media MediaType, id int) ([]Media, error) {
	if media != MediaTV {
		media = MediaMovie
	}
	var res page[Media]
	if err := c.get(ctx, fmt.Sprintf("%s/%d/similar", media, id), nil, &res); err != nil {
		return nil, err
	}
	return tagMedia(res.Results, media), nil
}

func (c *client) Reviews(ctx context.Context, media MediaType, id int) ([]Review, int, error) {
	if media != MediaTV {
		media = MediaMovie
	}
	var res page[Review]
	if err := c.get(ctx, fmt.Sprintf("%s/%d/reviews", media, id), nil, &res); err != nil {
		return nil, 0, err
	}
	return res.Results, res.TotalResults, nil
}

func tagMedia(items []Media, media MediaType) []Media {
	for i := range items {
		if items[i].MediaType == "" {
			items[i].MediaType = media
		}
	}
	return items
}
