package tools

// Tool names exposed to the model.
const (
	NameSearchMovies       = "search_movies"
	NameSearchTVShows      = "search_tv_shows"
	NameDiscoverMovies     = "discover_movies"
	NameDiscoverTVShows    = "discover_tv_shows"
	NameMovieDetails       = "get_movie_details"
	NameTVShowDetails      = "get_tv_show_details"
	NameTrendingContent    = "get_trending_content"
	NameSearchPerson       = "search_person"
	NamePersonDetails      = "get_person_details"
	NameFindSimilarContent = "find_similar_content"
	NameRecommendByGenre   = "recommend_by_genre"
	NameFetchReviews       = "fetch_reviews"
)

const (
	defaultMaxResults = 5
	maxMaxResults     = 20

	genreMaxResults = 8
	genreMinRating  = 7.0

	detailCast       = 5
	detailWriters    = 2
	detailSimilar    = 3
	detailReviews    = 2
	personMovies     = 5
	personShows      = 3
	reviewExcerptLen = 200
)
