package models

import (
	"errors"
	"fmt"
	"time"
)

// CustomerInfo holds the contact details embedded in an order
type CustomerInfo struct {
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone" json:"phone"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
}

// OrderItemRequest is a single cart line as submitted by the caller.
// Price is the caller-quoted unit price; it is trusted as-is.
type OrderItemRequest struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderRequest represents an incoming order request
type OrderRequest struct {
	CustomerInfo        CustomerInfo       `json:"customer_info"`
	Items               []OrderItemRequest `json:"items"`
	DeliveryOption      string             `json:"delivery_option"`
	DeliveryFee         float64            `json:"delivery_fee"`
	Subtotal            float64            `json:"subtotal"`
	Total               float64            `json:"total"`
	SpecialInstructions string             `json:"special_instructions,omitempty"`
}

// Validate rejects malformed order requests at the boundary,
// before any assembly or persistence runs
func (r OrderRequest) Validate() error {
	if len(r.Items) == 0 {
		return errors.New("order must contain at least one item")
	}
	for i, item := range r.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("item %d: quantity must be positive", i)
		}
		if item.Price < 0 {
			return fmt.Errorf("item %d: price must not be negative", i)
		}
	}
	if r.CustomerInfo.Name == "" || r.CustomerInfo.Email == "" || r.CustomerInfo.Phone == "" {
		return errors.New("customer name, email and phone are required")
	}
	return nil
}

// OrderItem is a persisted order line. ProductName is denormalized from
// the catalog at order time so later catalog changes don't rewrite history.
type OrderItem struct {
	ProductID   int64   `bson:"product_id" json:"product_id"`
	ProductName string  `bson:"product_name" json:"product_name"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	Price       float64 `bson:"price" json:"price"`
	Subtotal    float64 `bson:"subtotal" json:"subtotal"`
}

// Order defines the persisted order document
type Order struct {
	OrderID             string       `bson:"order_id" json:"order_id"`
	CustomerInfo        CustomerInfo `bson:"customer_info" json:"customer_info"`
	Items               []OrderItem  `bson:"items" json:"items"`
	DeliveryOption      string       `bson:"delivery_option" json:"delivery_option"`
	DeliveryFee         float64      `bson:"delivery_fee" json:"delivery_fee"`
	Subtotal            float64      `bson:"subtotal" json:"subtotal"`
	Total               float64      `bson:"total" json:"total"`
	Status              string       `bson:"status" json:"status"`
	SpecialInstructions string       `bson:"special_instructions,omitempty" json:"special_instructions,omitempty"`
	CreatedAt           time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time    `bson:"updated_at" json:"updated_at"`
}

// OrderResponse is the body returned by POST /api/orders
type OrderResponse struct {
	Order   Order  `json:"order"`
	OrderID string `json:"order_id"`
	Message string `json:"message"`
}
