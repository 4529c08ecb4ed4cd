package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SwapnilRC1995/movies-api-app/movie"
)

// movieModel mirrors the mflix movie document layout. Value fields must
// marshal even when zero: updates $set the whole model, and an omitted
// field would leave the previously stored value behind instead of
// clearing it. Only _id and the optional pointers stay omitempty.
type movieModel struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Plot             string             `bson:"plot"`
	Genres           []string           `bson:"genres"`
	Runtime          int                `bson:"runtime"`
	Cast             []string           `bson:"cast"`
	NumMflixComments int                `bson:"num_mflix_comments"`
	Poster           string             `bson:"poster"`
	Title            string             `bson:"title"`
	Fullplot         string             `bson:"fullplot"`
	Languages        []string           `bson:"languages"`
	Released         *time.Time         `bson:"released,omitempty"`
	Directors        []string           `bson:"directors"`
	Writers          []string           `bson:"writers"`
	Lastupdated      string             `bson:"lastupdated"`
	Year             int                `bson:"year"`
	Countries        []string           `bson:"countries"`
	Type             string             `bson:"type"`
	Metacritic       int                `bson:"metacritic"`
	Rated            string             `bson:"rated"`
	Imdb             imdbModel          `bson:"imdb"`
	Awards           awardsModel        `bson:"awards"`
	Tomatoes         *tomatoesModel     `bson:"tomatoes,omitempty"`
}

type imdbModel struct {
	ID     int     `bson:"id"`
	Rating float64 `bson:"rating"`
	Votes  int     `bson:"votes"`
}

type awardsModel struct {
	Wins        int    `bson:"wins"`
	Nominations int    `bson:"nominations"`
	Text        string `bson:"text"`
}

type tomatoesRatingModel struct {
	Rating     float64 `bson:"rating,omitempty"`
	NumReviews int     `bson:"numReviews,omitempty"`
	Meter      int     `bson:"meter,omitempty"`
}

type tomatoesModel struct {
	BoxOffice   string              `bson:"boxOffice,omitempty"`
	Consensus   string              `bson:"consensus,omitempty"`
	Critic      tomatoesRatingModel `bson:"critic,omitempty"`
	DVD         *time.Time          `bson:"dvd,omitempty"`
	Fresh       int                 `bson:"fresh,omitempty"`
	Rotten      int                 `bson:"rotten,omitempty"`
	Production  string              `bson:"production,omitempty"`
	Website     string              `bson:"website,omitempty"`
	Viewer      tomatoesRatingModel `bson:"viewer,omitempty"`
	LastUpdated *time.Time          `bson:"lastUpdated,omitempty"`
}

// MovieRepository implements movie.Repository against the movies collection.
type MovieRepository struct {
	coll *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{coll: db.Collection("movies")}
}

func (r *MovieRepository) Insert(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	model := toMovieModel(m)
	model.ID = primitive.NilObjectID

	res, err := r.coll.InsertOne(ctx, model)
	if err != nil {
		return movie.Movie{}, err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return movie.Movie{}, errors.New("unexpected inserted id type")
	}
	model.ID = oid
	return toDomainMovie(model), nil
}

// FindPage returns one page ordered by ascending _id. A non-blank title
// filters the fetched page in memory, so at most the current page's
// matches are returned even when more exist elsewhere in the collection.
// This mirrors the historical list behavior callers depend on.
func (r *MovieRepository) FindPage(ctx context.Context, page, perPage int, title string) ([]movie.Movie, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(perPage) * int64(page-1)).
		SetLimit(int64(perPage))

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	var models []movieModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, err
	}

	return filterPageByTitle(models, title), nil
}

// filterPageByTitle applies the exact-title filter to an already fetched
// page. Matches elsewhere in the collection are never consulted: a title
// present only outside the page yields an empty result.
func filterPageByTitle(models []movieModel, title string) []movie.Movie {
	movies := make([]movie.Movie, 0, len(models))
	for _, model := range models {
		if title != "" && model.Title != title {
			continue
		}
		movies = append(movies, toDomainMovie(model))
	}
	return movies
}

func (r *MovieRepository) FindByID(ctx context.Context, id string) (movie.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return movie.Movie{}, movie.ErrMalformedID
	}

	var model movieModel
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&model)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return movie.Movie{}, movie.ErrNotFound
		}
		return movie.Movie{}, err
	}

	return toDomainMovie(model), nil
}

// UpdateByID replaces the named fields and returns the refreshed document.
func (r *MovieRepository) UpdateByID(ctx context.Context, m movie.Movie, id string) (movie.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return movie.Movie{}, movie.ErrMalformedID
	}

	model := toMovieModel(m)
	model.ID = primitive.NilObjectID

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": model})
	if err != nil {
		return movie.Movie{}, err
	}
	if res.MatchedCount == 0 {
		return movie.Movie{}, movie.ErrNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *MovieRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, movie.ErrMalformedID
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount != 0, nil
}

func toMovieModel(m movie.Movie) movieModel {
	model := movieModel{
		Plot:             m.Plot,
		Genres:           emptyIfNil(m.Genres),
		Runtime:          m.Runtime,
		Cast:             emptyIfNil(m.Cast),
		NumMflixComments: m.NumMflixComments,
		Poster:           m.Poster,
		Title:            m.Title,
		Fullplot:         m.Fullplot,
		Languages:        emptyIfNil(m.Languages),
		Released:         m.Released,
		Directors:        emptyIfNil(m.Directors),
		Writers:          emptyIfNil(m.Writers),
		Lastupdated:      m.Lastupdated,
		Year:             m.Year,
		Countries:        emptyIfNil(m.Countries),
		Type:             m.Type,
		Metacritic:       m.Metacritic,
		Rated:            m.Rated,
		Imdb:             imdbModel(m.Imdb),
		Awards:           awardsModel(m.Awards),
	}
	if m.Tomatoes != nil {
		model.Tomatoes = &tomatoesModel{
			BoxOffice:   m.Tomatoes.BoxOffice,
			Consensus:   m.Tomatoes.Consensus,
			Critic:      tomatoesRatingModel(m.Tomatoes.Critic),
			DVD:         m.Tomatoes.DVD,
			Fresh:       m.Tomatoes.Fresh,
			Rotten:      m.Tomatoes.Rotten,
			Production:  m.Tomatoes.Production,
			Website:     m.Tomatoes.Website,
			Viewer:      tomatoesRatingModel(m.Tomatoes.Viewer),
			LastUpdated: m.Tomatoes.LastUpdated,
		}
	}
	return model
}

func toDomainMovie(model movieModel) movie.Movie {
	m := movie.Movie{
		ID:               model.ID.Hex(),
		Plot:             model.Plot,
		Genres:           emptyIfNil(model.Genres),
		Runtime:          model.Runtime,
		Cast:             emptyIfNil(model.Cast),
		NumMflixComments: model.NumMflixComments,
		Poster:           model.Poster,
		Title:            model.Title,
		Fullplot:         model.Fullplot,
		Languages:        emptyIfNil(model.Languages),
		Released:         model.Released,
		Directors:        emptyIfNil(model.Directors),
		Writers:          emptyIfNil(model.Writers),
		Lastupdated:      model.Lastupdated,
		Year:             model.Year,
		Countries:        emptyIfNil(model.Countries),
		Type:             model.Type,
		Metacritic:       model.Metacritic,
		Rated:            model.Rated,
		Imdb:             movie.Imdb(model.Imdb),
		Awards:           movie.Awards(model.Awards),
	}
	if model.Tomatoes != nil {
		m.Tomatoes = &movie.Tomatoes{
			BoxOffice:   model.Tomatoes.BoxOffice,
			Consensus:   model.Tomatoes.Consensus,
			Critic:      movie.TomatoesRating(model.Tomatoes.Critic),
			DVD:         model.Tomatoes.DVD,
			Fresh:       model.Tomatoes.Fresh,
			Rotten:      model.Tomatoes.Rotten,
			Production:  model.Tomatoes.Production,
			Website:     model.Tomatoes.Website,
			Viewer:      movie.TomatoesRating(model.Tomatoes.Viewer),
			LastUpdated: model.Tomatoes.LastUpdated,
		}
	}
	return m
}

// emptyIfNil keeps list fields as empty sequences, never null, in both
// stored documents and API output.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
