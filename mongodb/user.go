package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SwapnilRC1995/movies-api-app/user"
)

type userModel struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
	APIKey   string             `bson:"apiKey"`
}

// UserRepository implements user.Repository against the users collection.
// Email is the lookup key but no unique index is created: the data layer
// does not enforce uniqueness.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection("users")}
}

func (r *UserRepository) Insert(ctx context.Context, u user.User) (user.User, error) {
	model := userModel{
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
		APIKey:   u.APIKey,
	}

	res, err := r.coll.InsertOne(ctx, model)
	if err != nil {
		return user.User{}, err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return user.User{}, errors.New("unexpected inserted id type")
	}
	model.ID = oid
	return toDomainUser(model), nil
}

// FindByEmail returns the first document with an exact email match.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (user.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByAPIKey(ctx context.Context, key string) (user.User, error) {
	return r.findOne(ctx, bson.M{"apiKey": key})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (user.User, error) {
	var model userModel
	err := r.coll.FindOne(ctx, filter).Decode(&model)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return toDomainUser(model), nil
}

func toDomainUser(model userModel) user.User {
	return user.User{
		ID:       model.ID.Hex(),
		Name:     model.Name,
		Email:    model.Email,
		Password: model.Password,
		APIKey:   model.APIKey,
	}
}
