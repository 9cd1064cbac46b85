package router

// Keywords holds the ordered pattern groups. Matching is case-insensitive and
// anchored at word starts, so "recommend" also matches "recommendations".
type Keywords struct {
	Trending       []string
	Search         []string
	Detail         []string
	Recommendation []string
	Person         []string
	// Titles are well-known franchises that imply a detail lookup.
	Titles []string
}
