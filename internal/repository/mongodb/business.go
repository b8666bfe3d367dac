package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sweethomebakery/backend/internal/models"
	"github.com/sweethomebakery/backend/internal/repository"
)

// businessDoc mirrors the single business document. Pointer sub-fields
// distinguish an absent field from a zero value.
type businessDoc struct {
	BusinessInfo    *models.BusinessInfo    `bson:"business_info"`
	DeliveryOptions []models.DeliveryOption `bson:"delivery_options"`
	BusinessHours   *models.BusinessHours   `bson:"business_hours"`
}

func (s *Store) findBusinessDoc(ctx context.Context) (*businessDoc, error) {
	var doc businessDoc
	err := s.business.FindOne(ctx, bson.M{}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, repository.ErrBusinessNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "mongodb: find business document")
	}
	return &doc, nil
}

// GetBusinessInfo projects the info sub-field of the business document
func (s *Store) GetBusinessInfo(ctx context.Context) (*models.BusinessInfo, error) {
	doc, err := s.findBusinessDoc(ctx)
	if err != nil {
		return nil, err
	}
	if doc.BusinessInfo == nil {
		return nil, repository.ErrBusinessNotFound
	}
	return doc.BusinessInfo, nil
}

// GetDeliveryOptions projects the delivery options; absent means empty
func (s *Store) GetDeliveryOptions(ctx context.Context) ([]models.DeliveryOption, error) {
	doc, err := s.findBusinessDoc(ctx)
	if err == repository.ErrBusinessNotFound {
		return []models.DeliveryOption{}, nil
	}
	if err != nil {
		return nil, err
	}
	if doc.DeliveryOptions == nil {
		return []models.DeliveryOption{}, nil
	}
	return doc.DeliveryOptions, nil
}

// GetBusinessHours projects the hours sub-field of the business document
func (s *Store) GetBusinessHours(ctx context.Context) (*models.BusinessHours, error) {
	doc, err := s.findBusinessDoc(ctx)
	if err != nil {
		return nil, err
	}
	if doc.BusinessHours == nil {
		return nil, repository.ErrBusinessNotFound
	}
	return doc.BusinessHours, nil
}

// SeedBusinessData inserts the single business document
func (s *Store) SeedBusinessData(ctx context.Context, data models.BusinessData) error {
	if _, err := s.business.InsertOne(ctx, data); err != nil {
		return errors.Wrap(err, "mongodb: insert business document")
	}
	return nil
}
