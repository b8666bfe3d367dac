package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sweethomebakery/backend/internal/models"
	"github.com/sweethomebakery/backend/internal/repository"
	"github.com/sweethomebakery/backend/internal/service"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.ProductService
	log     *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, log *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// ListProducts handles GET /api/products
// Returns all available products wrapped in a products envelope
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.service.ListProducts(ctx)
	if err != nil {
		h.log.Error("failed to list products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to fetch products", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, models.ProductsResponse{Products: products}, h.log)
}

// GetProduct handles GET /api/products/{productId}
// - 200: successful operation
// - 400: invalid id supplied
// - 404: product not found
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idParam := chi.URLParam(r, "productId")

	productID, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		h.log.Warn("invalid product ID format", "productId", idParam, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	product, err := h.service.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			h.log.Info("product not found", "productId", productID)
			WriteError(w, http.StatusNotFound, "Product not found", h.log)
			return
		}

		h.log.Error("failed to get product", "productId", productID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to fetch product", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.log)
}
