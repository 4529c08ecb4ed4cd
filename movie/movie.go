package movie

import (
	"time"

	"github.com/SwapnilRC1995/movies-api-app/errs"
)

var (
	ErrNotFound       = errs.Errorf(errs.ENOTFOUND, "movie: not found")
	ErrMalformedID    = errs.Errorf(errs.EINVALID, "movie: malformed id")
	ErrInvalidPaging  = errs.Errorf(errs.EINVALID, "movie: page and perPage must be positive")
	ErrMissingTitle   = errs.Errorf(errs.EINVALID, "movie: title is required")
	ErrMissingYear    = errs.Errorf(errs.EINVALID, "movie: year is required")
	ErrMissingType    = errs.Errorf(errs.EINVALID, "movie: type is required")
	ErrMissingCountry = errs.Errorf(errs.EINVALID, "movie: countries is required")
	ErrMissingAwards  = errs.Errorf(errs.EINVALID, "movie: awards text is required")
)

type Imdb struct {
	ID     int     `json:"id"`
	Rating float64 `json:"rating"`
	Votes  int     `json:"votes"`
}

type Awards struct {
	Wins        int    `json:"wins"`
	Nominations int    `json:"nominations"`
	Text        string `json:"text"`
}

type TomatoesRating struct {
	Rating     float64 `json:"rating"`
	NumReviews int     `json:"numReviews"`
	Meter      int     `json:"meter"`
}

// Tomatoes is read-modeled only: documents seeded from the mflix dataset
// carry it, but the write API never touches it.
type Tomatoes struct {
	BoxOffice   string         `json:"boxOffice,omitempty"`
	Consensus   string         `json:"consensus,omitempty"`
	Critic      TomatoesRating `json:"critic"`
	DVD         *time.Time     `json:"dvd,omitempty"`
	Fresh       int            `json:"fresh,omitempty"`
	Rotten      int            `json:"rotten,omitempty"`
	Production  string         `json:"production,omitempty"`
	Website     string         `json:"website,omitempty"`
	Viewer      TomatoesRating `json:"viewer"`
	LastUpdated *time.Time     `json:"lastUpdated,omitempty"`
}

type Movie struct {
	ID               string     `json:"_id,omitempty"`
	Plot             string     `json:"plot"`
	Genres           []string   `json:"genres"`
	Runtime          int        `json:"runtime"`
	Cast             []string   `json:"cast"`
	NumMflixComments int        `json:"num_mflix_comments"`
	Poster           string     `json:"poster"`
	Title            string     `json:"title"`
	Fullplot         string     `json:"fullplot"`
	Languages        []string   `json:"languages"`
	Released         *time.Time `json:"released,omitempty"`
	Directors        []string   `json:"directors"`
	Writers          []string   `json:"writers"`
	Lastupdated      string     `json:"lastupdated"`
	Year             int        `json:"year"`
	Countries        []string   `json:"countries"`
	Type             string     `json:"type"`
	Metacritic       int        `json:"metacritic,omitempty"`
	Rated            string     `json:"rated,omitempty"`
	Imdb             Imdb       `json:"imdb"`
	Awards           Awards     `json:"awards"`
	Tomatoes         *Tomatoes  `json:"tomatoes,omitempty"`
}

// Validate enforces the persisted-movie invariant: every stored document
// has title, num_mflix_comments, year, type, countries and the awards
// block populated. Comment count of zero is a valid value; absence is
// rejected upstream by request validation.
func (m Movie) Validate() error {
	if m.Title == "" {
		return ErrMissingTitle
	}
	if m.Year == 0 {
		return ErrMissingYear
	}
	if m.Type == "" {
		return ErrMissingType
	}
	if len(m.Countries) == 0 {
		return ErrMissingCountry
	}
	if m.Awards.Text == "" {
		return ErrMissingAwards
	}
	return nil
}
