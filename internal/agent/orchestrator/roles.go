package orchestrator

import (
	"filmbuff-ai/internal/agent/tools"
	"filmbuff-ai/internal/model"
)

// Roles returns the five built-in specialists, general first.
func Roles() []Role {
	return []Role{
		{
			Capability: model.CapabilityGeneral,
			Title:      "Entertainment Concierge",
			Goal:       "Analyze questions about movies and TV shows and either answer them directly or coordinate the specialists.",
			Backstory:  "You are an entertainment expert who answers questions about movies and TV shows and delegates complex requests to specialists when needed.",
			Tools:      []string{tools.NameSearchMovies, tools.NameSearchTVShows, tools.NameTrendingContent, tools.NameSearchPerson},
		},
		{
			Capability: model.CapabilityResearch,
			Title:      "Content Researcher",
			Goal:       "Find movies and TV shows that match the user's criteria.",
			Backstory:  "You are a meticulous researcher specialized in finding audiovisual content based on specific criteria.",
			Tools: []string{
				tools.NameSearchMovies, tools.NameSearchTVShows,
				tools.NameDiscoverMovies, tools.NameDiscoverTVShows, tools.NameTrendingContent,
			},
		},
		{
			Capability: model.CapabilityDetails,
			Title:      "Details Specialist",
			Goal:       "Provide detailed information about movies and TV shows.",
			Backstory:  "You are a film and television expert with encyclopedic knowledge about audiovisual productions.",
			Tools: []string{
				tools.NameSearchMovies, tools.NameSearchTVShows,
				tools.NameMovieDetails, tools.NameTVShowDetails, tools.NamePersonDetails,
				tools.NameFindSimilarContent, tools.NameFetchReviews,
			},
		},
		{
			Capability: model.CapabilityRecommendation,
			Title:      "Recommendation Consultant",
			Goal:       "Create personalized recommendations based on user preferences.",
			Backstory:  "You are a renowned film critic, known for recommending movies and shows that perfectly match audience tastes.",
			Tools: []string{
				tools.NameSearchMovies, tools.NameSearchTVShows,
				tools.NameDiscoverMovies, tools.NameDiscoverTVShows,
				tools.NameFindSimilarContent, tools.NameRecommendByGenre,
			},
		},
		{
			Capability: model.CapabilityPeople,
			Title:      "People Specialist",
			Goal:       "Find information about actors, directors, and other film industry personalities.",
			Backstory:  "You are a celebrity expert with deep knowledge about film industry professionals and their careers.",
			Tools:      []string{tools.NameSearchPerson, tools.NamePersonDetails},
		},
	}
}
