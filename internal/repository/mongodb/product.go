package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sweethomebakery/backend/internal/models"
	"github.com/sweethomebakery/backend/internal/repository"
)

// ListProducts returns all products flagged available
func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	cur, err := s.products.Find(ctx, bson.M{"availability": true})
	if err != nil {
		return nil, errors.Wrap(err, "mongodb: find products")
	}

	products := make([]models.Product, 0)
	if err := cur.All(ctx, &products); err != nil {
		return nil, errors.Wrap(err, "mongodb: decode products")
	}
	return products, nil
}

// GetProduct returns the product with the given id or ErrProductNotFound
func (s *Store) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	err := s.products.FindOne(ctx, bson.M{"id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, repository.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "mongodb: find product %d", id)
	}
	return &product, nil
}

// CreateProduct inserts unconditionally; duplicate ids are not rejected
func (s *Store) CreateProduct(ctx context.Context, p models.Product) error {
	if _, err := s.products.InsertOne(ctx, p); err != nil {
		return errors.Wrapf(err, "mongodb: insert product %d", p.ID)
	}
	return nil
}

// CountProducts reports the total product count, available or not
func (s *Store) CountProducts(ctx context.Context) (int64, error) {
	count, err := s.products.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errors.Wrap(err, "mongodb: count products")
	}
	return count, nil
}
