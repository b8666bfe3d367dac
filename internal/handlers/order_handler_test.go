package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/sweethomebakery/backend/internal/models"
	"github.com/sweethomebakery/backend/internal/repository/memory"
	"github.com/sweethomebakery/backend/internal/service"
	"github.com/sweethomebakery/backend/pkg/logger"
)

func newOrderRouter(t *testing.T) *chi.Mux {
	t.Helper()

	store := memory.NewStore()
	if err := store.CreateProduct(context.Background(), models.Product{
		ID: 1, Name: "Classic Chocolate Chip Cookies", Price: 24.99, Unit: "dozen", Category: "cookies", Availability: true,
	}); err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}

	log := logger.New("error")
	handler := NewOrderHandler(service.NewOrderService(store), log)

	r := chi.NewRouter()
	r.Post("/api/orders", handler.CreateOrder)
	r.Get("/api/orders/{orderId}", handler.GetOrder)
	return r
}

func orderBody() []byte {
	body, _ := json.Marshal(models.OrderRequest{
		CustomerInfo: models.CustomerInfo{
			Name:  "Jane Doe",
			Email: "jane@example.com",
			Phone: "555-0100",
		},
		Items: []models.OrderItemRequest{
			{ProductID: 1, Quantity: 2, Price: 24.99},
		},
		DeliveryOption: "pickup",
		DeliveryFee:    0,
		Subtotal:       49.98,
		Total:          49.98,
	})
	return body
}

func TestCreateOrder_Success(t *testing.T) {
	r := newOrderRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(orderBody()))
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var response models.OrderResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.OrderID == "" {
		t.Error("expected non-empty order_id")
	}
	if response.Message != "Order placed successfully" {
		t.Errorf("unexpected message: %s", response.Message)
	}
	if response.Order.Status != "pending" {
		t.Errorf("expected status 'pending', got %s", response.Order.Status)
	}
	if len(response.Order.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(response.Order.Items))
	}
	if response.Order.Items[0].Subtotal != 49.98 {
		t.Errorf("expected item subtotal 49.98, got %f", response.Order.Items[0].Subtotal)
	}
}

func TestCreateOrder_ThenGetOrder(t *testing.T) {
	r := newOrderRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(orderBody()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var response models.OrderResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	getReq := httptest.NewRequest(http.MethodGet, "/api/orders/"+response.OrderID, nil)
	getW := httptest.NewRecorder()
	r.ServeHTTP(getW, getReq)

	if getW.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", getW.Code)
	}

	var fetched models.Order
	if err := json.NewDecoder(getW.Body).Decode(&fetched); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if fetched.OrderID != response.OrderID {
		t.Errorf("expected order id %s, got %s", response.OrderID, fetched.OrderID)
	}
}

func TestCreateOrder_MissingProduct(t *testing.T) {
	r := newOrderRouter(t)

	req := models.OrderRequest{
		CustomerInfo: models.CustomerInfo{Name: "Jane Doe", Email: "jane@example.com", Phone: "555-0100"},
		Items: []models.OrderItemRequest{
			{ProductID: 999, Quantity: 1, Price: 9.99},
		},
		DeliveryOption: "pickup",
		Total:          9.99,
		Subtotal:       9.99,
	}
	body, _ := json.Marshal(req)

	httpReq := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httpReq)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestCreateOrder_InvalidBody(t *testing.T) {
	r := newOrderRouter(t)

	testCases := []struct {
		name string
		body string
	}{
		{"malformed json", "{not json"},
		{"no items", `{"customer_info":{"name":"Jane","email":"j@e.com","phone":"555"},"items":[]}`},
		{"zero quantity", `{"customer_info":{"name":"Jane","email":"j@e.com","phone":"555"},"items":[{"product_id":1,"quantity":0,"price":5}]}`},
		{"negative price", `{"customer_info":{"name":"Jane","email":"j@e.com","phone":"555"},"items":[{"product_id":1,"quantity":1,"price":-5}]}`},
		{"missing contact", `{"customer_info":{"name":"Jane"},"items":[{"product_id":1,"quantity":1,"price":5}]}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader([]byte(tc.body)))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}
		})
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	r := newOrderRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/no-such-order", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if response["error"] != "Order not found" {
		t.Errorf("expected error message 'Order not found', got %s", response["error"])
	}
}
