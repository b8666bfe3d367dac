// Package seed populates the store with the initial catalog, sample
// reviews and business reference data on first startup.
package seed

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/sweethomebakery/backend/internal/models"
	"github.com/sweethomebakery/backend/internal/repository"
)

// Run seeds the store unless any product already exists. The gate checks
// products only: a partially failed earlier seed (products in, reviews not)
// makes later runs skip entirely.
func Run(ctx context.Context, store repository.Store, log *slog.Logger) error {
	count, err := store.CountProducts(ctx)
	if err != nil {
		return errors.Wrap(err, "seed: count products")
	}
	if count > 0 {
		log.Info("seed skipped, store already populated", "products", count)
		return nil
	}

	for _, p := range Products() {
		if err := store.CreateProduct(ctx, p); err != nil {
			return errors.Wrapf(err, "seed: product %d", p.ID)
		}
	}

	for _, r := range Reviews() {
		if _, err := store.CreateReview(ctx, r); err != nil {
			return errors.Wrap(err, "seed: review")
		}
	}

	if err := store.SeedBusinessData(ctx, BusinessData()); err != nil {
		return errors.Wrap(err, "seed: business data")
	}

	log.Info("store seeded", "products", len(Products()), "reviews", len(Reviews()))
	return nil
}

// Products returns the initial catalog
func Products() []models.Product {
	now := time.Now().UTC()
	return []models.Product{
		{
			ID:           1,
			Name:         "Classic Chocolate Chip Cookies",
			Description:  "Soft, chewy cookies made with Belgian chocolate chips and Madagascar vanilla. A timeless favorite that melts in your mouth.",
			Price:        24.99,
			Unit:         "dozen",
			Image:        "https://images.unsplash.com/photo-1558961363-fa8fdf82db35?w=400&h=300&fit=crop",
			Category:     "cookies",
			PrepTime:     "2-3 hours",
			Availability: true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           2,
			Name:         "Artisan Sourdough Bread",
			Description:  "Hand-crafted sourdough with a crispy crust and perfectly airy interior. Made with our 100-year-old starter culture.",
			Price:        12.99,
			Unit:         "loaf",
			Image:        "https://images.unsplash.com/photo-1549931319-a545dcf3bc73?w=400&h=300&fit=crop",
			Category:     "bread",
			PrepTime:     "24 hours",
			Availability: true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           3,
			Name:         "Classic Apple Pie",
			Description:  "Traditional apple pie with flaky, buttery crust filled with cinnamon-spiced Granny Smith apples. Served warm with love.",
			Price:        32.99,
			Unit:         "whole pie",
			Image:        "https://images.unsplash.com/photo-1621743478914-cc8a86d7e9b5?w=400&h=300&fit=crop",
			Category:     "pies",
			PrepTime:     "4-5 hours",
			Availability: true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}

// Reviews returns the initial sample reviews; ids are assigned by the store
func Reviews() []models.ReviewSubmission {
	return []models.ReviewSubmission{
		{
			Name:     "Sarah Johnson",
			Rating:   5,
			Comment:  "The chocolate chip cookies are absolutely divine! My family can't get enough of them. Will definitely be ordering again!",
			Verified: true,
		},
		{
			Name:     "Michael Chen",
			Rating:   5,
			Comment:  "Best sourdough bread in town! The crust is perfect and the flavor is incredible. Sweet Home Bakery has become our go-to.",
			Verified: true,
		},
		{
			Name:     "Emily Rodriguez",
			Rating:   5,
			Comment:  "Ordered the apple pie for our family dinner and it was a huge hit! Beautifully made and tastes like grandma's recipe.",
			Verified: true,
		},
		{
			Name:     "David Thompson",
			Rating:   4,
			Comment:  "Great quality baked goods and excellent customer service. The delivery was prompt and everything arrived fresh.",
			Verified: true,
		},
	}
}

// BusinessData returns the static business reference document
func BusinessData() models.BusinessData {
	return models.BusinessData{
		BusinessInfo: models.BusinessInfo{
			Name:        "Sweet Home Bakery",
			Tagline:     "Freshly baked with love, delivered to your door",
			Description: "Family-owned bakery creating artisanal baked goods using traditional recipes and the finest ingredients.",
			Phone:       "(555) 123-BAKE",
			Email:       "hello@sweethomebakery.com",
			Address:     "123 Baker Street, Sweet Valley, CA 90210",
		},
		DeliveryOptions: []models.DeliveryOption{
			{
				ID:          "pickup",
				Name:        "Store Pickup",
				Description: "Pick up your order at our bakery",
				Price:       0.0,
				Time:        "Available daily 7AM - 7PM",
				Icon:        "store",
			},
			{
				ID:          "local_delivery",
				Name:        "Local Delivery",
				Description: "Free delivery within 5 miles",
				Price:       0.0,
				Time:        "Same day delivery available",
				Icon:        "truck",
			},
			{
				ID:          "express_delivery",
				Name:        "Express Delivery",
				Description: "Rush delivery within 2 hours",
				Price:       8.99,
				Time:        "Available 9AM - 5PM",
				Icon:        "zap",
			},
		},
		BusinessHours: models.BusinessHours{
			Monday:    "7:00 AM - 7:00 PM",
			Tuesday:   "7:00 AM - 7:00 PM",
			Wednesday: "7:00 AM - 7:00 PM",
			Thursday:  "7:00 AM - 7:00 PM",
			Friday:    "7:00 AM - 8:00 PM",
			Saturday:  "8:00 AM - 8:00 PM",
			Sunday:    "8:00 AM - 6:00 PM",
		},
	}
}
