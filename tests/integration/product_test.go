//go:build integration

package integration

import (
	"net/http"
	"testing"
)

func TestListProducts(t *testing.T) {
	resp := doGet(t, "/api/products")
	defer resp.Body.Close()

	mustStatus(t, resp, http.StatusOK)
	products := decodeJSON[[]productResponse](t, resp)
	if len(products) != 6 {
		t.Fatalf("expected 6 products, got %d", len(products))
	}

	for _, p := range products {
		if p.ID == "" || p.Name == "" || p.Price == "" {
			t.Errorf("product missing fields: %+v", p)
		}
		if p.Step <= 0 {
			t.Errorf("product %s: step should be positive, got %d", p.ID, p.Step)
		}
	}
}

func TestGetProduct(t *testing.T) {
	resp := doGet(t, "/api/products/choc-chip")
	defer resp.Body.Close()

	mustStatus(t, resp, http.StatusOK)
	p := decodeJSON[productResponse](t, resp)
	if p.ID != "choc-chip" {
		t.Errorf("id: got %q", p.ID)
	}
	if p.Price != "10" && p.Price != "10.00" {
		t.Errorf("price: got %q", p.Price)
	}
	if len(p.Tiers) != 3 {
		t.Errorf("expected 3 tiers, got %d", len(p.Tiers))
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	resp := doGet(t, "/api/products/no-such-cookie")
	defer resp.Body.Close()

	mustStatus(t, resp, http.StatusNotFound)
	body := decodeJSON[errorResponse](t, resp)
	if body.Code != http.StatusNotFound {
		t.Errorf("error code: got %d", body.Code)
	}
}

type quoteResponse struct {
	ProductID          string `json:"productId"`
	RequestedQuantity  int    `json:"requestedQuantity"`
	NormalizedQuantity int    `json:"normalizedQuantity"`
	UnitPrice          string `json:"unitPrice"`
	Total              string `json:"total"`
	Savings            string `json:"savings"`
}

func TestPriceQuote(t *testing.T) {
	resp := doPost(t, "/api/pricing/quote", map[string]any{
		"productId": "choc-chip",
		"quantity":  10,
	})
	defer resp.Body.Close()

	mustStatus(t, resp, http.StatusOK)
	q := decodeJSON[quoteResponse](t, resp)

	// 10 normalizes up to 12 and lands in the 10% tier:
	// 12 x 10.00 x 0.90 = 108.00, unit 9.00, savings 12.00.
	if q.NormalizedQuantity != 12 {
		t.Errorf("normalized quantity: got %d, want 12", q.NormalizedQuantity)
	}
	if q.Total != "108" && q.Total != "108.00" {
		t.Errorf("total: got %q", q.Total)
	}
	if q.Savings != "12" && q.Savings != "12.00" {
		t.Errorf("savings: got %q", q.Savings)
	}
}

func TestPriceQuote_UnknownProduct(t *testing.T) {
	resp := doPost(t, "/api/pricing/quote", map[string]any{
		"productId": "missing",
		"quantity":  6,
	})
	defer resp.Body.Close()

	mustStatus(t, resp, http.StatusNotFound)
}
