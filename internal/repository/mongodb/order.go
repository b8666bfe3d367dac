package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sweethomebakery/backend/internal/models"
	"github.com/sweethomebakery/backend/internal/repository"
)

// CreateOrder inserts unconditionally; there is no dedup or idempotency key
func (s *Store) CreateOrder(ctx context.Context, o models.Order) error {
	if _, err := s.orders.InsertOne(ctx, o); err != nil {
		return errors.Wrapf(err, "mongodb: insert order %s", o.OrderID)
	}
	return nil
}

// GetOrder returns the order with the given order_id or ErrOrderNotFound
func (s *Store) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	err := s.orders.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, repository.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "mongodb: find order %s", orderID)
	}
	return &order, nil
}
