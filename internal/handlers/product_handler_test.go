package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/sweethomebakery/backend/internal/models"
	"github.com/sweethomebakery/backend/internal/repository/memory"
	"github.com/sweethomebakery/backend/internal/service"
	"github.com/sweethomebakery/backend/pkg/logger"
)

func newProductRouter(t *testing.T) (*chi.Mux, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	products := []models.Product{
		{ID: 1, Name: "Classic Chocolate Chip Cookies", Price: 24.99, Category: "cookies", Availability: true},
		{ID: 2, Name: "Artisan Sourdough Bread", Price: 12.99, Category: "bread", Availability: true},
		{ID: 3, Name: "Day-Old Baguette", Price: 4.99, Category: "bread", Availability: false},
	}
	for _, p := range products {
		if err := store.CreateProduct(context.Background(), p); err != nil {
			t.Fatalf("failed to seed product: %v", err)
		}
	}

	svc := service.NewProductService(store)
	log := logger.New("error")
	handler := NewProductHandler(svc, log)

	r := chi.NewRouter()
	r.Get("/api/products", handler.ListProducts)
	r.Get("/api/products/{productId}", handler.GetProduct)
	return r, store
}

func TestListProducts(t *testing.T) {
	r, _ := newProductRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var response models.ProductsResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	// The unavailable product must be filtered out
	if len(response.Products) != 2 {
		t.Errorf("expected 2 available products, got %d", len(response.Products))
	}
	for _, p := range response.Products {
		if !p.Availability {
			t.Errorf("product %d returned despite availability=false", p.ID)
		}
	}
}

func TestListProducts_AgreesWithGetProduct(t *testing.T) {
	r, _ := newProductRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var response models.ProductsResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	// Every listed product must be individually fetchable and available
	for _, listed := range response.Products {
		req := httptest.NewRequest(http.MethodGet, "/api/products/"+strconv.FormatInt(listed.ID, 10), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected status 200 for product %d, got %d", listed.ID, w.Code)
			continue
		}

		var product models.Product
		if err := json.NewDecoder(w.Body).Decode(&product); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if !product.Availability {
			t.Errorf("product %d listed but fetched with availability=false", listed.ID)
		}
	}
}

func TestGetProduct_Success(t *testing.T) {
	r, _ := newProductRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products/1", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var product models.Product
	if err := json.NewDecoder(w.Body).Decode(&product); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if product.ID != 1 {
		t.Errorf("expected product ID 1, got %d", product.ID)
	}
	if product.Name != "Classic Chocolate Chip Cookies" {
		t.Errorf("expected product name 'Classic Chocolate Chip Cookies', got %s", product.Name)
	}
	if product.Price != 24.99 {
		t.Errorf("expected product price 24.99, got %f", product.Price)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	r, _ := newProductRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products/999", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}

	if response["error"] != "Product not found" {
		t.Errorf("expected error message 'Product not found', got %s", response["error"])
	}
}

func TestGetProduct_InvalidID(t *testing.T) {
	r, _ := newProductRouter(t)

	testCases := []struct {
		name string
		id   string
	}{
		{"letters", "invalid"},
		{"special chars", "abc@123"},
		{"float", "12.34"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/products/"+tc.id, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400 for ID %s, got %d", tc.id, w.Code)
			}

			var response map[string]string
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}

			if response["error"] != "Invalid ID supplied" {
				t.Errorf("expected error message 'Invalid ID supplied', got %s", response["error"])
			}
		})
	}
}
