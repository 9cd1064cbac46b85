package tmdb

import (
	"fmt"
	"sort"
	"strings"
)

// YearOf returns the year part of a YYYY-MM-DD date, or "N/A".
func YearOf(date string) string {
	if y, _, ok := strings.Cut(date, "-"); ok && y != "" {
		return y
	}
	if date != "" {
		return date
	}
	return "N/A"
}

// PageURL links to the public TMDb page of an item.
func PageURL(media MediaType, id int) string {
	if media == "" || media == MediaAll {
		media = MediaMovie
	}
	return fmt.Sprintf("%s/%s/%d", WebURL, media, id)
}

// Trailer returns the first YouTube trailer link, or "".
func Trailer(videos []Video) string {
	for _, v := range videos {
		if v.Type == "Trailer" && v.Site == "YouTube" && v.Key != "" {
			return "https://www.youtube.com/watch?v=" + v.Key
		}
	}
	return ""
}

// Director returns the first crew member credited as Director, or "Unknown".
func Director(c Credits) string {
	for _, m := range c.Crew {
		if m.Job == "Director" {
			return m.Name
		}
	}
	return "Unknown"
}

// Writers returns up to limit writer or screenplay credits.
func Writers(c Credits, limit int) []string {
	var out []string
	for _, m := range c.Crew {
		if len(out) >= limit {
			break
		}
		if m.Job == "Writer" || m.Job == "Screenplay" {
			out = append(out, m.Name)
		}
	}
	return out
}

// TopCast returns the first limit billed cast members.
func TopCast(c Credits, limit int) []CastMember {
	if len(c.Cast) <= limit {
		return c.Cast
	}
	return c.Cast[:limit]
}

// MostPopular sorts credits by popularity, highest first, and keeps limit.
func MostPopular(cast []CastMember, limit int) []CastMember {
	sorted := make([]CastMember, len(cast))
	copy(sorted, cast)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Popularity > sorted[j].Popularity })
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// Excerpt shortens text to max runes, appending "..." when cut.
func Excerpt(text string, max int) string {
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	return string(r[:max]) + "..."
}
