package httpserver

import (
	"strconv"
	"strings"
	"time"

	"github.com/SwapnilRC1995/movies-api-app/movie"
)

// MovieRequest is the full write payload for create and replace. Fields
// arrive as strings (urlencoded form or JSON) and are format-checked
// before conversion; comma-separated list fields are split afterwards.
type MovieRequest struct {
	Title            string `json:"title" form:"title" validate:"required"`
	Plot             string `json:"plot" form:"plot"`
	Genres           string `json:"genres" form:"genres"`
	Runtime          string `json:"runtime" form:"runtime" validate:"omitempty,intstring"`
	Cast             string `json:"cast" form:"cast"`
	NumMflixComments string `json:"num_mflix_comments" form:"num_mflix_comments" validate:"required,intstring"`
	Poster           string `json:"poster" form:"poster" validate:"omitempty,url"`
	Fullplot         string `json:"fullplot" form:"fullplot"`
	Languages        string `json:"languages" form:"languages"`
	Released         string `json:"released" form:"released" validate:"omitempty,iso8601"`
	Directors        string `json:"directors" form:"directors"`
	Writers          string `json:"writers" form:"writers"`
	Lastupdated      string `json:"lastupdated" form:"lastupdated" validate:"iso8601"`
	Year             string `json:"year" form:"year" validate:"required,intstring"`
	Countries        string `json:"countries" form:"countries" validate:"required"`
	Type             string `json:"type" form:"type" validate:"required"`
	Metacritic       string `json:"metacritic" form:"metacritic"`
	Rated            string `json:"rated" form:"rated"`
	Rating           string `json:"rating" form:"rating" validate:"omitempty,decimalstring"`
	Votes            string `json:"votes" form:"votes" validate:"omitempty,intstring"`
	ImdbID           string `json:"id" form:"id" validate:"omitempty,intstring"`
	Wins             string `json:"wins" form:"wins" validate:"required,intstring"`
	Nominations      string `json:"nominations" form:"nominations" validate:"required,intstring"`
	Text             string `json:"text" form:"text" validate:"required"`
}

// normalize trims every field and substitutes the per-field defaults for
// absent optional values. Runs before validation, so required checks see
// trimmed input and lastupdated always carries a timestamp.
func (r *MovieRequest) normalize(now func() time.Time) {
	fields := []*string{
		&r.Title, &r.Plot, &r.Genres, &r.Runtime, &r.Cast,
		&r.NumMflixComments, &r.Poster, &r.Fullplot, &r.Languages,
		&r.Released, &r.Directors, &r.Writers, &r.Lastupdated, &r.Year,
		&r.Countries, &r.Type, &r.Metacritic, &r.Rated, &r.Rating,
		&r.Votes, &r.ImdbID, &r.Wins, &r.Nominations, &r.Text,
	}
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}

	if r.Lastupdated == "" {
		r.Lastupdated = now().UTC().Format(time.RFC3339)
	}
	if r.Runtime == "" {
		r.Runtime = "0"
	}
	if r.Rating == "" {
		r.Rating = "0.0"
	}
	if r.Votes == "" {
		r.Votes = "0"
	}
	if r.ImdbID == "" {
		r.ImdbID = "0"
	}
}

// ToMovie converts a validated request into the domain record. Numeric
// conversions cannot fail after validation; metacritic is unvalidated in
// the rule set and parses best-effort.
func (r MovieRequest) ToMovie() movie.Movie {
	m := movie.Movie{
		Title:            r.Title,
		Plot:             r.Plot,
		Genres:           splitList(r.Genres),
		Runtime:          atoi(r.Runtime),
		Cast:             splitList(r.Cast),
		NumMflixComments: atoi(r.NumMflixComments),
		Poster:           r.Poster,
		Fullplot:         r.Fullplot,
		Languages:        splitList(r.Languages),
		Directors:        splitList(r.Directors),
		Writers:          splitList(r.Writers),
		Lastupdated:      r.Lastupdated,
		Year:             atoi(r.Year),
		Countries:        splitList(r.Countries),
		Type:             r.Type,
		Metacritic:       atoi(r.Metacritic),
		Rated:            r.Rated,
		Imdb: movie.Imdb{
			ID:     atoi(r.ImdbID),
			Rating: atof(r.Rating),
			Votes:  atoi(r.Votes),
		},
		Awards: movie.Awards{
			Wins:        atoi(r.Wins),
			Nominations: atoi(r.Nominations),
			Text:        r.Text,
		},
	}

	if r.Released != "" {
		if released, ok := parseDate(r.Released); ok {
			m.Released = &released
		}
	}
	return m
}

// splitList turns comma-separated input into a trimmed sequence. Empty
// input yields an empty sequence, never nil.
func splitList(entries string) []string {
	if entries == "" {
		return []string{}
	}
	parts := strings.Split(entries, ",")
	result := make([]string, len(parts))
	for i, p := range parts {
		result[i] = strings.TrimSpace(p)
	}
	return result
}

func parseDate(value string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func atof(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
