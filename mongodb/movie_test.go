package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/SwapnilRC1995/movies-api-app/movie"
)

func TestMovieModelMarshalsClearedFields(t *testing.T) {
	// A replace with blanked optional fields must still carry them in the
	// update document, otherwise $set leaves the old stored values behind.
	m := movie.Movie{
		Title:     "Inception",
		Year:      2010,
		Type:      "movie",
		Countries: []string{"USA"},
		Awards:    movie.Awards{Text: "Won 4 Oscars."},
	}
	model := toMovieModel(m)

	raw, err := bson.Marshal(model)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))

	for _, field := range []string{
		"plot", "runtime", "poster", "fullplot", "metacritic", "rated",
		"lastupdated", "genres", "cast", "languages", "directors",
		"writers", "countries", "num_mflix_comments", "year", "type",
		"title", "imdb", "awards",
	} {
		assert.Contains(t, doc, field, "field %q must be present so a replace clears it", field)
	}

	// Unset identifier and optional embeds stay out of the document.
	assert.NotContains(t, doc, "_id")
	assert.NotContains(t, doc, "released")
	assert.NotContains(t, doc, "tomatoes")
}

func TestFilterPageByTitle(t *testing.T) {
	catalog := []movieModel{
		{Title: "Inception"},
		{Title: "Memento"},
		{Title: "Dunkirk"},
		{Title: "Inception"},
		{Title: "Tenet"},
		{Title: "Interstellar"},
	}
	// Page 2 with two entries per page.
	page := catalog[2:4]

	t.Run("no filter returns the whole page in order", func(t *testing.T) {
		result := filterPageByTitle(page, "")

		require.Len(t, result, 2)
		assert.Equal(t, "Dunkirk", result[0].Title)
		assert.Equal(t, "Inception", result[1].Title)
	})

	t.Run("filter keeps only exact matches inside the page", func(t *testing.T) {
		result := filterPageByTitle(page, "Inception")

		require.Len(t, result, 1)
		assert.Equal(t, "Inception", result[0].Title)
	})

	t.Run("a title present only outside the page yields nothing", func(t *testing.T) {
		// Interstellar exists in the catalog but not in the fetched page.
		result := filterPageByTitle(page, "Interstellar")

		assert.Empty(t, result)
	})

	t.Run("match is case and whitespace sensitive", func(t *testing.T) {
		assert.Empty(t, filterPageByTitle(page, "inception"))
		assert.Empty(t, filterPageByTitle(page, "Inception "))
	})
}
