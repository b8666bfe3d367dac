package models

import (
	"errors"
	"fmt"
	"time"
)

// Review represents a persisted customer review
type Review struct {
	ID        int64     `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment" json:"comment"`
	Verified  bool      `bson:"verified" json:"verified"`
	Approved  bool      `bson:"approved" json:"approved"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// ReviewSubmission is the inbound payload for POST /api/reviews.
// The id, approved flag and timestamp are assigned by the store.
type ReviewSubmission struct {
	Name     string `json:"name"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Verified bool   `json:"verified"`
}

// Validate rejects malformed submissions before they reach persistence
func (s ReviewSubmission) Validate() error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	if s.Rating < 1 || s.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", s.Rating)
	}
	if s.Comment == "" {
		return errors.New("comment is required")
	}
	return nil
}

// ReviewsResponse wraps a page of reviews plus the total approved count
type ReviewsResponse struct {
	Reviews []Review `json:"reviews"`
	Total   int64    `json:"total"`
}
