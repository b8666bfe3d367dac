package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sweethomebakery/backend/internal/models"
)

// OrderStore is the slice of the store that order assembly needs
type OrderStore interface {
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	CreateOrder(ctx context.Context, o models.Order) error
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)
}

// OrderService assembles and persists orders
type OrderService struct {
	store OrderStore
}

// NewOrderService creates a new order service
func NewOrderService(store OrderStore) *OrderService {
	return &OrderService{
		store: store,
	}
}

// CreateOrder validates each submitted item against the catalog, builds the
// order and persists it. The first missing product aborts with the store's
// not-found error and nothing is persisted.
//
// The submitted unit price is trusted as-is rather than re-derived from the
// stored product, and delivery_fee/subtotal/total are taken verbatim from
// the caller. This keeps room for client-side promotional pricing.
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	items := make([]models.OrderItem, 0, len(req.Items))

	for _, item := range req.Items {
		product, err := s.store.GetProduct(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}

		items = append(items, models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Subtotal:    item.Price * float64(item.Quantity),
		})
	}

	now := time.Now().UTC()
	order := models.Order{
		OrderID:             uuid.New().String(),
		CustomerInfo:        req.CustomerInfo,
		Items:               items,
		DeliveryOption:      req.DeliveryOption,
		DeliveryFee:         req.DeliveryFee,
		Subtotal:            req.Subtotal,
		Total:               req.Total,
		Status:              "pending",
		SpecialInstructions: req.SpecialInstructions,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.store.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	return &order, nil
}

// GetOrder returns an order by its generated id
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	return s.store.GetOrder(ctx, orderID)
}
