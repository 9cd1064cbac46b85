package tmdb

import (
	"net/http"
	"strings"
	"time"
)

// Config configures the TMDb client.
type Config struct {
	APIKey     string
	BaseURL    string
	Language   string
	Timeout    time.Duration
	CacheTTL   time.Duration
	HTTPClient *http.Client
}

// Validate fills defaults and rejects a missing key.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = DefaultCacheTTL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

// Media is a movie or TV listing as returned by search, discover, trending and similar.
type Media struct {
	ID            int       `json:"id"`
	Title         string    `json:"title,omitempty"`
	Name          string    `json:"name,omitempty"`
	OriginalTitle string    `json:"original_title,omitempty"`
	Overview      string    `json:"overview"`
	ReleaseDate   string    `json:"release_date,omitempty"`
	FirstAirDate  string    `json:"first_air_date,omitempty"`
	VoteAverage   float64   `json:"vote_average"`
	VoteCount     int       `json:"vote_count"`
	Popularity    float64   `json:"popularity"`
	MediaType     MediaType `json:"media_type,omitempty"`
	GenreIDs      []int     `json:"genre_ids,omitempty"`
}

// DisplayTitle returns Title for movies and Name for TV.
func (m Media) DisplayTitle() string {
	if m.Title != "" {
		return m.Title
	}
	return m.Name
}

// Year returns the release or first-air year, or "N/A".
func (m Media) Year() string {
	if m.ReleaseDate != "" {
		return YearOf(m.ReleaseDate)
	}
	return YearOf(m.FirstAirDate)
}

// Person is a search/person hit.
type Person struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Popularity         float64 `json:"popularity"`
	KnownForDepartment string  `json:"known_for_department"`
	KnownFor           []Media `json:"known_for"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CastMember struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Character    string  `json:"character"`
	Order        int     `json:"order"`
	Popularity   float64 `json:"popularity"`
	Title        string  `json:"title,omitempty"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
}

type CrewMember struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Job         string  `json:"job"`
	Department  string  `json:"department"`
	Popularity  float64 `json:"popularity"`
	Title       string  `json:"title,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
}

type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

type Video struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
	Name string `json:"name"`
}

type Review struct {
	Author        string `json:"author"`
	Content       string `json:"content"`
	URL           string `json:"url"`
	CreatedAt     string `json:"created_at"`
	AuthorDetails struct {
		Rating *float64 `json:"rating"`
	} `json:"author_details"`
}

type page[T any] struct {
	Page         int `json:"page"`
	Results      []T `json:"results"`
	TotalResults int `json:"total_results"`
	TotalPages   int `json:"total_pages"`
}

// MovieDetails is movie/{id} with credits, similar, videos and reviews appended.
type MovieDetails struct {
	ID            int          `json:"id"`
	Title         string       `json:"title"`
	OriginalTitle string       `json:"original_title"`
	Tagline       string       `json:"tagline"`
	Overview      string       `json:"overview"`
	ReleaseDate   string       `json:"release_date"`
	Runtime       int          `json:"runtime"`
	VoteAverage   float64      `json:"vote_average"`
	VoteCount     int          `json:"vote_count"`
	Popularity    float64      `json:"popularity"`
	Budget        int64        `json:"budget"`
	Revenue       int64        `json:"revenue"`
	PosterPath    string       `json:"poster_path"`
	Genres        []Genre      `json:"genres"`
	Credits       Credits      `json:"credits"`
	Similar       page[Media]  `json:"similar"`
	Videos        page[Video]  `json:"videos"`
	Reviews       page[Review] `json:"reviews"`
}

type Season struct {
	SeasonNumber int `json:"season_number"`
	EpisodeCount int `json:"episode_count"`
}

// TVDetails is tv/{id} with credits, similar and videos appended.
type TVDetails struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	OriginalName string  `json:"original_name"`
	Tagline      string  `json:"tagline"`
	Overview     string  `json:"overview"`
	FirstAirDate string  `json:"first_air_date"`
	LastAirDate  string  `json:"last_air_date"`
	Status       string  `json:"status"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	Popularity   float64 `json:"popularity"`
	Genres       []Genre `json:"genres"`
	CreatedBy    []struct {
		Name string `json:"name"`
	} `json:"created_by"`
	Networks []struct {
		Name string `json:"name"`
	} `json:"networks"`
	Seasons []Season    `json:"seasons"`
	Credits Credits     `json:"credits"`
	Similar page[Media] `json:"similar"`
	Videos  page[Video] `json:"videos"`
}

// PersonDetails is person/{id} with movie and TV credits appended.
type PersonDetails struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Birthday           string  `json:"birthday"`
	PlaceOfBirth       string  `json:"place_of_birth"`
	Biography          string  `json:"biography"`
	KnownForDepartment string  `json:"known_for_department"`
	Popularity         float64 `json:"popularity"`
	MovieCredits       Credits `json:"movie_credits"`
	TVCredits          Credits `json:"tv_credits"`
}

// SearchParams filters search/movie and search/tv.
type SearchParams struct {
	Query   string
	Year    int
	GenreID int
}

// DiscoverParams filters discover/movie and discover/tv.
type DiscoverParams struct {
	GenreID   int
	Year      int
	YearFrom  int
	YearTo    int
	SortBy    string
	MinRating float64
}
