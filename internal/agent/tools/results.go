package tools

import (
	"filmbuff-ai/pkg/tmdb"
)

// MediaResult is the compact listing shape returned to the model.
type MediaResult struct {
	ID         int            `json:"id"`
	Title      string         `json:"title"`
	MediaType  tmdb.MediaType `json:"media_type,omitempty"`
	Overview   string         `json:"overview,omitempty"`
	Year       string         `json:"year"`
	Rating     float64        `json:"rating"`
	Popularity float64        `json:"popularity"`
	URL        string         `json:"url"`
}

// PersonResult is a compact person hit.
type PersonResult struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	Popularity         float64  `json:"popularity"`
	KnownForDepartment string   `json:"known_for_department,omitempty"`
	KnownFor           []string `json:"known_for,omitempty"`
	URL                string   `json:"url"`
}

// Credit is a cast or crew line.
type Credit struct {
	ID        int    `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Title     string `json:"title,omitempty"`
	Character string `json:"character,omitempty"`
	Job       string `json:"job,omitempty"`
	Year      string `json:"year,omitempty"`
}

// ReviewExcerpt is a shortened review.
type ReviewExcerpt struct {
	Author  string   `json:"author"`
	Rating  *float64 `json:"rating,omitempty"`
	Excerpt string   `json:"excerpt"`
	URL     string   `json:"url,omitempty"`
}

// ListResult wraps listings with a count.
type ListResult struct {
	Count   int           `json:"count"`
	Results []MediaResult `json:"results"`
}

func toMediaResults(items []tmdb.Media, limit int, fallback tmdb.MediaType) ListResult {
	if len(items) > limit {
		items = items[:limit]
	}
	out := make([]MediaResult, 0, len(items))
	for _, m := range items {
		media := m.MediaType
		if media == "" {
			media = fallback
		}
		out = append(out, MediaResult{
			ID:         m.ID,
			Title:      m.DisplayTitle(),
			MediaType:  media,
			Overview:   m.Overview,
			Year:       m.Year(),
			Rating:     m.VoteAverage,
			Popularity: m.Popularity,
			URL:        tmdb.PageURL(media, m.ID),
		})
	}
	return ListResult{Count: len(out), Results: out}
}

func toReviewExcerpts(reviews []tmdb.Review, limit int) []ReviewExcerpt {
	if len(reviews) > limit {
		reviews = reviews[:limit]
	}
	out := make([]ReviewExcerpt, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, ReviewExcerpt{
			Author:  r.Author,
			Rating:  r.AuthorDetails.Rating,
			Excerpt: tmdb.Excerpt(r.Content, reviewExcerptLen),
			URL:     r.URL,
		})
	}
	return out
}

func castCredits(cast []tmdb.CastMember) []Credit {
	out := make([]Credit, 0, len(cast))
	for _, c := range cast {
		out = append(out, Credit{Name: c.Name, Character: c.Character})
	}
	return out
}

func similarTitles(items []tmdb.Media, limit int) []Credit {
	if len(items) > limit {
		items = items[:limit]
	}
	out := make([]Credit, 0, len(items))
	for _, m := range items {
		out = append(out, Credit{ID: m.ID, Title: m.DisplayTitle()})
	}
	return out
}
