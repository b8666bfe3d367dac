package service

import (
	"context"

	"github.com/sweethomebakery/backend/internal/models"
)

// BusinessStore is the slice of the store serving the static reference data
type BusinessStore interface {
	GetBusinessInfo(ctx context.Context) (*models.BusinessInfo, error)
	GetDeliveryOptions(ctx context.Context) ([]models.DeliveryOption, error)
	GetBusinessHours(ctx context.Context) (*models.BusinessHours, error)
}

// BusinessService serves the business reference data
type BusinessService struct {
	store BusinessStore
}

// NewBusinessService creates a new business service
func NewBusinessService(store BusinessStore) *BusinessService {
	return &BusinessService{
		store: store,
	}
}

// GetBusinessInfo returns the storefront's public contact details
func (s *BusinessService) GetBusinessInfo(ctx context.Context) (*models.BusinessInfo, error) {
	return s.store.GetBusinessInfo(ctx)
}

// GetDeliveryOptions returns the configured delivery options
func (s *BusinessService) GetDeliveryOptions(ctx context.Context) ([]models.DeliveryOption, error) {
	return s.store.GetDeliveryOptions(ctx)
}

// GetBusinessHours returns the opening hours
func (s *BusinessService) GetBusinessHours(ctx context.Context) (*models.BusinessHours, error) {
	return s.store.GetBusinessHours(ctx)
}
