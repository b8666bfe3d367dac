package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sweethomebakery/backend/internal/models"
	"github.com/sweethomebakery/backend/internal/repository"
	"github.com/sweethomebakery/backend/internal/service"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// CreateOrder handles POST /api/orders
// - 200: order placed
// - 400: malformed or invalid request body
// - 404: an item references a product that does not exist
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	if err := req.Validate(); err != nil {
		h.log.Warn("invalid order request", "error", err)
		WriteError(w, http.StatusBadRequest, err.Error(), h.log)
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			h.log.Info("order referenced missing product", "error", err)
			WriteError(w, http.StatusNotFound, "Product not found", h.log)
			return
		}

		h.log.Error("failed to create order", "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to create order", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, models.OrderResponse{
		Order:   *order,
		OrderID: order.OrderID,
		Message: "Order placed successfully",
	}, h.log)
	h.log.Info("order created", "order_id", order.OrderID, "items_count", len(order.Items), "total", order.Total)
}

// GetOrder handles GET /api/orders/{orderId}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "orderId")

	order, err := h.orderService.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			h.log.Info("order not found", "orderId", orderID)
			WriteError(w, http.StatusNotFound, "Order not found", h.log)
			return
		}

		h.log.Error("failed to get order", "orderId", orderID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to fetch order", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, order, h.log)
}
