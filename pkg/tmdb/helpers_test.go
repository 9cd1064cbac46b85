package tmdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenreLookup(t *testing.T) {
	assert.Equal(t, 28, MovieGenreID("action"))
	assert.Equal(t, 878, MovieGenreID("Sci-Fi"))
	assert.Equal(t, 27, MovieGenreID("psychological horror"))
	assert.Equal(t, 0, MovieGenreID("None"))
	assert.Equal(t, 0, MovieGenreID("telenovela"))

	assert.Equal(t, 10765, TVGenreID("sci-fi & fantasy"))
	assert.Equal(t, 18, TVGenreID("Drama"))
}

func TestYearOf(t *testing.T) {
	assert.Equal(t, "1999", YearOf("1999-03-31"))
	assert.Equal(t, "N/A", YearOf(""))
}

func TestPageURL(t *testing.T) {
	assert.Equal(t, "https://www.themoviedb.org/tv/1396", PageURL(MediaTV, 1396))
	assert.Equal(t, "https://www.themoviedb.org/movie/550", PageURL("", 550))
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", Excerpt("short", 10))
	assert.Equal(t, "héll...", Excerpt("héllo world", 4))
}

func TestMostPopular(t *testing.T) {
	cast := []CastMember{{Name: "a", Popularity: 1}, {Name: "b", Popularity: 9}, {Name: "c", Popularity: 5}}
	got := MostPopular(cast, 2)
	assert.Equal(t, "b", got[0].Name)
	assert.Equal(t, "c", got[1].Name)
	assert.Equal(t, "a", cast[0].Name)
}
