package tmdb

import "context"

// ITMDb is the subset of the TMDb v3 API the concierge uses.
// Implementations are safe for concurrent use.
type ITMDb interface {
	SearchMovies(ctx context.Context, p SearchParams) ([]Media, error)
	SearchTV(ctx context.Context, p SearchParams) ([]Media, error)
	SearchPerson(ctx context.Context, query string) ([]Person, error)

	MovieDetails(ctx context.Context, id int) (MovieDetails, error)
	TVDetails(ctx context.Context, id int) (TVDetails, error)
	PersonDetails(ctx context.Context, id int) (PersonDetails, error)

	Discover(ctx context.Context, media MediaType, p DiscoverParams) ([]Media, error)
	Trending(ctx context.Context, media MediaType, window TimeWindow) ([]Media, error)
	Similar(ctx context.Context, media MediaType, id int) ([]Media, error)
	Reviews(ctx context.Context, media MediaType, id int) ([]Review, int, error)
}

// New creates a TMDb client with the given configuration.
func New(cfg Config) (ITMDb, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(cfg), nil
}
