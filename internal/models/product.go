package models

import "time"

// Product represents a catalog item available for order
// Schema matches the storefront API contract
type Product struct {
	ID           int64     `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Description  string    `bson:"description" json:"description"`
	Price        float64   `bson:"price" json:"price"`
	Unit         string    `bson:"unit" json:"unit"`
	Image        string    `bson:"image" json:"image"`
	Category     string    `bson:"category" json:"category"`
	PrepTime     string    `bson:"prep_time" json:"prep_time"`
	Availability bool      `bson:"availability" json:"availability"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// ProductsResponse wraps the product list for GET /api/products
type ProductsResponse struct {
	Products []Product `json:"products"`
}
