package tmdb

import "time"

const (
	// DefaultBaseURL is the TMDb v3 REST endpoint.
	DefaultBaseURL = "https://api.themoviedb.org/3"

	// WebURL is the public site used for user-facing links.
	WebURL = "https://www.themoviedb.org"

	DefaultLanguage = "en-US"
	DefaultTimeout  = 15 * time.Second

	// DefaultCacheTTL bounds how long identical GETs are served from memory.
	DefaultCacheTTL = 10 * time.Minute

	// MaxRetryAfter caps how long a single 429 may stall a request.
	MaxRetryAfter = 30 * time.Second
)

// MediaType selects movie or TV endpoints.
type MediaType string

const (
	MediaAll    MediaType = "all"
	MediaMovie  MediaType = "movie"
	MediaTV     MediaType = "tv"
	MediaPerson MediaType = "person"
)

// TimeWindow is the trending window.
type TimeWindow string

const (
	WindowDay  TimeWindow = "day"
	WindowWeek TimeWindow = "week"
)
