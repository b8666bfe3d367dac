package service

import (
	"context"

	"github.com/sweethomebakery/backend/internal/models"
)

// ProductStore is the slice of the store that the product service needs
type ProductStore interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
}

// ProductService handles catalog reads
type ProductService struct {
	store ProductStore
}

// NewProductService creates a new product service
func NewProductService(store ProductStore) *ProductService {
	return &ProductService{
		store: store,
	}
}

// ListProducts returns all available products
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.store.ListProducts(ctx)
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	return s.store.GetProduct(ctx, id)
}
