package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store implements repository.Store backed by MongoDB collections
type Store struct {
	products *mongo.Collection
	reviews  *mongo.Collection
	orders   *mongo.Collection
	business *mongo.Collection
}

// NewStore creates a store over the given database
func NewStore(db *mongo.Database) *Store {
	return &Store{
		products: db.Collection("products"),
		reviews:  db.Collection("reviews"),
		orders:   db.Collection("orders"),
		business: db.Collection("business"),
	}
}

// Connect dials MongoDB and verifies the connection with a ping
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "mongodb: connect")
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "mongodb: ping")
	}

	return client, nil
}
