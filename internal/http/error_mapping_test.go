package handlers_test

import (
	"net/http"
	"testing"
)

// Error kinds surface as distinct statuses with a JSON {"error": ...} body:
// validation 400, missing reference 404, failed reservation 409.
func TestErrorMapping(t *testing.T) {
	app := newTestApp(t)

	t.Run("validation 400", func(t *testing.T) {
		cases := []struct {
			name string
			body map[string]any
		}{
			{"missing name", map[string]any{"sku": "12345", "price": 9.9}},
			{"bad sku", map[string]any{"name": "X", "sku": "no spaces!", "price": 9.9}},
			{"zero price", map[string]any{"name": "X", "sku": "12345", "price": 0}},
			{"negative price", map[string]any{"name": "X", "sku": "12345", "price": -1}},
		}
		for _, tc := range cases {
			status, body := doJSON(t, app, http.MethodPost, "/products", tc.body)
			if status != http.StatusBadRequest {
				t.Fatalf("%s: want 400, got %d (%v)", tc.name, status, body)
			}
			if msg, _ := body["error"].(string); msg == "" {
				t.Fatalf("%s: want error message, got %v", tc.name, body)
			}
		}
	})

	t.Run("not found 404", func(t *testing.T) {
		if status, _ := doJSON(t, app, http.MethodGet, "/stocks/9999", nil); status != http.StatusNotFound {
			t.Fatalf("ghost stock: want 404, got %d", status)
		}
		if status, _ := doJSON(t, app, http.MethodGet, "/users/9999", nil); status != http.StatusNotFound {
			t.Fatalf("ghost user: want 404, got %d", status)
		}
		if status, _ := doJSON(t, app, http.MethodDelete, "/orders/9999", nil); status != http.StatusNotFound {
			t.Fatalf("ghost order delete: want 404, got %d", status)
		}
		if status, _ := doJSON(t, app, http.MethodGet, "/products/9999", nil); status != http.StatusNotFound {
			t.Fatalf("ghost product: want 404, got %d", status)
		}
		// stock addition against a ghost product
		status, _ := doJSON(t, app, http.MethodPost, "/stocks", map[string]any{"product_id": 9999, "quantity": 5})
		if status != http.StatusNotFound {
			t.Fatalf("stock for ghost product: want 404, got %d", status)
		}
	})

	t.Run("insufficient stock 409", func(t *testing.T) {
		_, body := doJSON(t, app, http.MethodPost, "/products",
			map[string]any{"name": "Scarce", "sku": "SC-1", "price": 5})
		pid := int64(body["product_id"].(float64))
		doJSON(t, app, http.MethodPost, "/stocks", map[string]any{"product_id": pid, "quantity": 2})

		status, body := doJSON(t, app, http.MethodPost, "/orders", map[string]any{
			"user_id": 1,
			"items":   []map[string]any{{"product_id": pid, "quantity": 3}},
		})
		if status != http.StatusConflict {
			t.Fatalf("want 409, got %d (%v)", status, body)
		}

		// stock untouched by the rejected order
		status, body = doJSON(t, app, http.MethodGet, "/stocks/"+itoa(pid), nil)
		if status != http.StatusCreated || body["quantity"] != float64(2) {
			t.Fatalf("stock changed by failed order: %d %v", status, body)
		}
	})

	t.Run("unknown route 404 JSON", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/nope", nil)
		msg, _ := body["error"].(string)
		if status != http.StatusNotFound || msg == "" {
			t.Fatalf("want JSON 404 fallback, got %d %v", status, body)
		}
	})

	t.Run("malformed body 400", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodPost, "/orders", map[string]any{"user_id": 0})
		if status != http.StatusBadRequest {
			t.Fatalf("want 400 for missing user_id, got %d", status)
		}
	})
}
