package memory

import (
	"context"
	"sync"
	"time"

	"github.com/sweethomebakery/backend/internal/models"
	"github.com/sweethomebakery/backend/internal/repository"
)

// Store implements repository.Store with in-memory storage.
// Used by tests and as a mongo-free development backend.
type Store struct {
	mu       sync.RWMutex
	products []models.Product
	reviews  []models.Review
	orders   map[string]models.Order
	business *models.BusinessData
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		orders: make(map[string]models.Order),
	}
}

// ListProducts returns all products flagged available
func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.Availability {
			products = append(products, p)
		}
	}
	return products, nil
}

// GetProduct returns a product by its id
func (s *Store) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

// CreateProduct appends unconditionally, duplicate ids included
func (s *Store) CreateProduct(ctx context.Context, p models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, p)
	return nil
}

// CountProducts reports the total product count
func (s *Store) CountProducts(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.products)), nil
}

// ListReviews returns a page of approved reviews plus the total approved count
func (s *Store) ListReviews(ctx context.Context, limit, offset int64) ([]models.Review, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	approved := make([]models.Review, 0, len(s.reviews))
	for _, r := range s.reviews {
		if r.Approved {
			approved = append(approved, r)
		}
	}

	total := int64(len(approved))

	if offset >= total {
		return []models.Review{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return approved[offset:end], total, nil
}

// CreateReview assigns max existing id + 1 and appends
func (s *Store) CreateReview(ctx context.Context, sub models.ReviewSubmission) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	nextID := int64(1)
	for _, r := range s.reviews {
		if r.ID >= nextID {
			nextID = r.ID + 1
		}
	}

	review := models.Review{
		ID:        nextID,
		Name:      sub.Name,
		Rating:    sub.Rating,
		Comment:   sub.Comment,
		Verified:  sub.Verified,
		Approved:  true,
		CreatedAt: time.Now().UTC(),
	}
	s.reviews = append(s.reviews, review)
	return &review, nil
}

// CreateOrder stores the order keyed by its order_id
func (s *Store) CreateOrder(ctx context.Context, o models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders[o.OrderID] = o
	return nil
}

// GetOrder returns an order by its order_id
func (s *Store) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, exists := s.orders[orderID]
	if !exists {
		return nil, repository.ErrOrderNotFound
	}
	return &order, nil
}

// GetBusinessInfo returns the seeded business info
func (s *Store) GetBusinessInfo(ctx context.Context) (*models.BusinessInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.business == nil {
		return nil, repository.ErrBusinessNotFound
	}
	info := s.business.BusinessInfo
	return &info, nil
}

// GetDeliveryOptions returns the seeded delivery options, possibly empty
func (s *Store) GetDeliveryOptions(ctx context.Context) ([]models.DeliveryOption, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.business == nil {
		return []models.DeliveryOption{}, nil
	}
	options := make([]models.DeliveryOption, len(s.business.DeliveryOptions))
	copy(options, s.business.DeliveryOptions)
	return options, nil
}

// GetBusinessHours returns the seeded business hours
func (s *Store) GetBusinessHours(ctx context.Context) (*models.BusinessHours, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.business == nil {
		return nil, repository.ErrBusinessNotFound
	}
	hours := s.business.BusinessHours
	return &hours, nil
}

// SeedBusinessData stores the single business document
func (s *Store) SeedBusinessData(ctx context.Context, data models.BusinessData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.business = &data
	return nil
}
