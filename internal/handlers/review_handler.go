package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sweethomebakery/backend/internal/models"
	"github.com/sweethomebakery/backend/internal/service"
)

const (
	defaultReviewLimit  = 10
	defaultReviewOffset = 0
)

// ReviewHandler handles review-related HTTP requests
type ReviewHandler struct {
	service *service.ReviewService
	log     *slog.Logger
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(service *service.ReviewService, log *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log,
	}
}

// ListReviews handles GET /api/reviews?limit&offset
// Returns a page of approved reviews plus the total approved count
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := queryInt(r, "limit", defaultReviewLimit)
	if limit == 0 {
		limit = defaultReviewLimit
	}
	offset := queryInt(r, "offset", defaultReviewOffset)

	reviews, total, err := h.service.ListReviews(ctx, limit, offset)
	if err != nil {
		h.log.Error("failed to list reviews", "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to fetch reviews", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, models.ReviewsResponse{Reviews: reviews, Total: total}, h.log)
}

// CreateReview handles POST /api/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var sub models.ReviewSubmission

	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		h.log.Error("failed to decode review submission", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	if err := sub.Validate(); err != nil {
		h.log.Warn("invalid review submission", "error", err)
		WriteError(w, http.StatusBadRequest, err.Error(), h.log)
		return
	}

	review, err := h.service.CreateReview(r.Context(), sub)
	if err != nil {
		h.log.Error("failed to create review", "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to create review", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"review":  review,
		"message": "Review submitted successfully",
	}, h.log)
	h.log.Info("review created", "review_id", review.ID, "rating", review.Rating)
}

// queryInt reads a non-negative integer query parameter, falling back to
// the default on absence or garbage
func queryInt(r *http.Request, key string, fallback int64) int64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
