package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/sweethomebakery/backend/internal/repository"
	"github.com/sweethomebakery/backend/internal/service"
)

// BusinessHandler serves the static business reference endpoints
type BusinessHandler struct {
	service *service.BusinessService
	log     *slog.Logger
}

// NewBusinessHandler creates a new business handler
func NewBusinessHandler(service *service.BusinessService, log *slog.Logger) *BusinessHandler {
	return &BusinessHandler{
		service: service,
		log:     log,
	}
}

// GetBusinessInfo handles GET /api/business-info
// Returns 404 when the store has not been seeded
func (h *BusinessHandler) GetBusinessInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.service.GetBusinessInfo(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			h.log.Info("business info not found")
			WriteError(w, http.StatusNotFound, "Business information not found", h.log)
			return
		}

		h.log.Error("failed to get business info", "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to fetch business information", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, info, h.log)
}

// GetDeliveryOptions handles GET /api/delivery-options
// An unseeded store yields an empty array, not an error
func (h *BusinessHandler) GetDeliveryOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.service.GetDeliveryOptions(r.Context())
	if err != nil {
		h.log.Error("failed to get delivery options", "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to fetch delivery options", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, options, h.log)
}

// GetBusinessHours handles GET /api/business-hours
// Returns 404 when the store has not been seeded
func (h *BusinessHandler) GetBusinessHours(w http.ResponseWriter, r *http.Request) {
	hours, err := h.service.GetBusinessHours(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			h.log.Info("business hours not found")
			WriteError(w, http.StatusNotFound, "Business hours not found", h.log)
			return
		}

		h.log.Error("failed to get business hours", "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to fetch business hours", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, hours, h.log)
}
