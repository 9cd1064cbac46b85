package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// DefaultKeywords covers English and the Portuguese phrasings the bot was first built for.
var DefaultKeywords = Keywords{
	Trending: []string{
		"trending", "popular", "top rated", "top-rated", "this week", "this month",
		"new releases", "what's hot", "whats hot",
		"em alta", "tendência", "tendencias", "populares", "melhores filmes", "novidades", "lançamentos",
	},
	Search: []string{
		"find", "search", "look for", "looking for", "list of",
		"encontre", "busque", "procure", "pesquise", "lista de",
	},
	Detail: []string{
		"details", "detailed", "information about", "info about", "synopsis", "plot of",
		"cast", "when was it released", "release date", "runtime",
		"detalhes", "informações", "sinopse", "elenco", "quando foi lançado",
		"sobre o filme", "sobre a série", "sobre a serie",
	},
	Recommendation: []string{
		"recommend", "similar", "same genre", "same style", "suggest", "movies like", "shows like",
		"recomende", "recomendação", "recomendações", "parecido", "do mesmo gênero", "do mesmo estilo",
	},
	Person: []string{
		"actor", "actress", "director", "who played", "who directed", "who starred", "filmography",
		"ator", "atriz", "diretor", "quem", "personagem", "artista",
	},
	Titles: []string{
		"star wars", "avengers", "harry potter", "lord of the rings", "game of thrones",
		"vingadores", "senhor dos anéis",
	},
}
