package tmdb

import "strings"

var movieGenres = []Genre{
	{28, "Action"}, {12, "Adventure"}, {16, "Animation"},
	{35, "Comedy"}, {80, "Crime"}, {99, "Documentary"},
	{18, "Drama"}, {10751, "Family"}, {14, "Fantasy"},
	{36, "History"}, {27, "Horror"}, {9648, "Mystery"},
	{10749, "Romance"}, {878, "Science Fiction"}, {878, "Sci-Fi"},
	{53, "Thriller"}, {10752, "War"}, {37, "Western"},
}

var tvGenres = []Genre{
	{10759, "Action & Adventure"}, {16, "Animation"}, {35, "Comedy"},
	{80, "Crime"}, {99, "Documentary"}, {18, "Drama"},
	{10751, "Family"}, {10762, "Kids"}, {9648, "Mystery"},
	{10763, "News"}, {10764, "Reality"}, {10765, "Sci-Fi & Fantasy"},
	{10766, "Soap"}, {10767, "Talk"}, {10768, "War & Politics"},
}

// MovieGenreID resolves a movie genre name, exact (case-insensitive) first, then by containment.
// It returns 0 when nothing matches.
func MovieGenreID(name string) int { return lookupGenre(movieGenres, name) }

// TVGenreID resolves a TV genre name the same way as MovieGenreID.
func TVGenreID(name string) int { return lookupGenre(tvGenres, name) }

func lookupGenre(genres []Genre, name string) int {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "none" {
		return 0
	}
	for _, g := range genres {
		if strings.ToLower(g.Name) == name {
			return g.ID
		}
	}
	for _, g := range genres {
		if strings.Contains(name, strings.ToLower(g.Name)) {
			return g.ID
		}
	}
	return 0
}
