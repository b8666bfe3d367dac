package repository

import (
	"context"
	"errors"

	"github.com/sweethomebakery/backend/internal/models"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrBusinessNotFound = errors.New("business data not found")
)

// Store defines the interface for storefront data access.
// One logical collection per entity family: products, reviews,
// orders, business.
type Store interface {
	// ListProducts returns all products flagged available, in storage order.
	ListProducts(ctx context.Context) ([]models.Product, error)
	// GetProduct returns the product with the given id or ErrProductNotFound.
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	// CreateProduct inserts unconditionally; id uniqueness is not enforced.
	CreateProduct(ctx context.Context, p models.Product) error
	// CountProducts reports how many products exist, available or not.
	CountProducts(ctx context.Context) (int64, error)

	// ListReviews returns a page of approved reviews plus the total approved
	// count. The two reads are independent and may disagree under
	// concurrent writes.
	ListReviews(ctx context.Context, limit, offset int64) ([]models.Review, int64, error)
	// CreateReview assigns the next id as max existing id + 1 and inserts
	// with approved defaulting to true. The read-then-insert sequence is not
	// safe under concurrent writers.
	CreateReview(ctx context.Context, sub models.ReviewSubmission) (*models.Review, error)

	// CreateOrder inserts unconditionally; no idempotency key.
	CreateOrder(ctx context.Context, o models.Order) error
	// GetOrder returns the order with the given order_id or ErrOrderNotFound.
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)

	// GetBusinessInfo returns the info sub-field of the single business
	// document, or ErrBusinessNotFound when unseeded.
	GetBusinessInfo(ctx context.Context) (*models.BusinessInfo, error)
	// GetDeliveryOptions returns the delivery options, possibly empty.
	GetDeliveryOptions(ctx context.Context) ([]models.DeliveryOption, error)
	// GetBusinessHours returns the hours sub-field, or ErrBusinessNotFound.
	GetBusinessHours(ctx context.Context) (*models.BusinessHours, error)
	// SeedBusinessData inserts the single business document.
	SeedBusinessData(ctx context.Context, data models.BusinessData) error
}
