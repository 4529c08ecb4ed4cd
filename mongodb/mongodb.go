// Package mongodb implements the movie and user repositories on top of a
// MongoDB database. The connection is established once at process startup
// and injected into the repositories.
package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Options struct {
	// URI is the full connection string, e.g. mongodb://localhost:27017.
	URI      string
	Database string
}

func NewConnection(ctx context.Context, opts Options) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return client.Database(opts.Database), nil
}
