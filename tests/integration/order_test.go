//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

// createTestOrder posts a fresh order and returns the decoded response.
func createTestOrder(t *testing.T, items ...itemRequest) orderResponse {
	t.Helper()

	if len(items) == 0 {
		items = []itemRequest{{ProductID: "choc-chip", Quantity: 6}}
	}
	resp := doPost(t, "/api/orders", orderRequest{
		Items:  items,
		Client: clientRequest{Name: "Panaderia El Sol", TaxID: "20123456789"},
	})
	defer resp.Body.Close()

	mustStatus(t, resp, http.StatusCreated)
	return decodeJSON[orderResponse](t, resp)
}

// sameAmount compares money strings numerically so "57" and "57.00" match.
func sameAmount(t *testing.T, got, want string) {
	t.Helper()

	g, err := strconv.ParseFloat(got, 64)
	if err != nil {
		t.Fatalf("parse amount %q: %v", got, err)
	}
	w, err := strconv.ParseFloat(want, 64)
	if err != nil {
		t.Fatalf("parse amount %q: %v", want, err)
	}
	if g != w {
		t.Errorf("amount: got %s, want %s", got, want)
	}
}

func transitionOrder(t *testing.T, id, action string) orderResponse {
	t.Helper()

	resp := doPost(t, fmt.Sprintf("/api/orders/%s/%s", id, action), nil)
	defer resp.Body.Close()
	mustStatus(t, resp, http.StatusOK)
	return decodeJSON[orderResponse](t, resp)
}

func deliverOrder(t *testing.T, id string) orderResponse {
	t.Helper()

	transitionOrder(t, id, "accept")
	transitionOrder(t, id, "ready")
	return transitionOrder(t, id, "deliver")
}

func TestCreateOrder(t *testing.T) {
	o := createTestOrder(t)

	if !strings.HasPrefix(o.OrderNumber, "ORD-") {
		t.Errorf("order number: got %q", o.OrderNumber)
	}
	if o.Status != "pending" {
		t.Errorf("status: got %q", o.Status)
	}
	// 6 units of choc-chip at 10.00 hit the 5% tier.
	sameAmount(t, o.Total, "57.00")
	if len(o.Items) != 1 {
		t.Fatalf("items: got %d", len(o.Items))
	}
	if o.Items[0].Quantity != 6 {
		t.Errorf("quantity: got %d", o.Items[0].Quantity)
	}
}

func TestCreateOrder_NumbersAreSequential(t *testing.T) {
	first := createTestOrder(t)
	second := createTestOrder(t)

	a, err := strconv.Atoi(strings.TrimPrefix(first.OrderNumber, "ORD-"))
	if err != nil {
		t.Fatalf("parse %q: %v", first.OrderNumber, err)
	}
	b, err := strconv.Atoi(strings.TrimPrefix(second.OrderNumber, "ORD-"))
	if err != nil {
		t.Fatalf("parse %q: %v", second.OrderNumber, err)
	}
	if b <= a {
		t.Errorf("numbers not increasing: %s then %s", first.OrderNumber, second.OrderNumber)
	}
}

func TestCreateOrder_ConcurrentBurstIsGapless(t *testing.T) {
	const burst = 12

	numbers := make(chan string, burst)
	errs := make(chan error, burst)

	body, err := json.Marshal(orderRequest{
		Items:  []itemRequest{{ProductID: "choc-chip", Quantity: 6}},
		Client: clientRequest{Name: "Panaderia El Sol"},
	})
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < burst; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req, err := http.NewRequestWithContext(context.Background(),
				http.MethodPost, baseURL+"/api/orders", bytes.NewReader(body))
			if err != nil {
				errs <- err
				return
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("api_key", testAPIKey)

			resp, err := httpClient.Do(req)
			if err != nil {
				errs <- err
				return
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusCreated {
				errs <- fmt.Errorf("create returned %d", resp.StatusCode)
				return
			}
			var o orderResponse
			if err := json.NewDecoder(resp.Body).Decode(&o); err != nil {
				errs <- err
				return
			}
			numbers <- o.OrderNumber
		}()
	}
	wg.Wait()
	close(numbers)
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent create: %v", err)
	}

	// The burst must have minted one distinct number per order with no gap:
	// exactly the contiguous range {min .. min+burst-1}.
	seen := make(map[int]bool, burst)
	min := -1
	for num := range numbers {
		n, err := strconv.Atoi(strings.TrimPrefix(num, "ORD-"))
		if err != nil {
			t.Fatalf("parse %q: %v", num, err)
		}
		if seen[n] {
			t.Fatalf("number %s allocated twice", num)
		}
		seen[n] = true
		if min == -1 || n < min {
			min = n
		}
	}
	if len(seen) != burst {
		t.Fatalf("got %d numbers, want %d", len(seen), burst)
	}
	for n := min; n < min+burst; n++ {
		if !seen[n] {
			t.Errorf("gap in allocated numbers at ORD-%03d", n)
		}
	}
}

func TestCreateOrder_NormalizesQuantity(t *testing.T) {
	// 13 rounds up to the next multiple of the carton size (6), so 18 units
	// in the 10% tier: 18 x 10.00 x 0.90 = 162.00.
	o := createTestOrder(t, itemRequest{ProductID: "choc-chip", Quantity: 13})

	if o.Items[0].Quantity != 18 {
		t.Errorf("normalized quantity: got %d, want 18", o.Items[0].Quantity)
	}
	sameAmount(t, o.Total, "162.00")
}

func TestCreateOrder_EmptyItems(t *testing.T) {
	resp := doPost(t, "/api/orders", orderRequest{
		Client: clientRequest{Name: "Panaderia El Sol"},
	})
	defer resp.Body.Close()
	mustStatus(t, resp, http.StatusBadRequest)
}

func TestCreateOrder_UnknownProduct(t *testing.T) {
	resp := doPost(t, "/api/orders", orderRequest{
		Items:  []itemRequest{{ProductID: "no-such-cookie", Quantity: 6}},
		Client: clientRequest{Name: "Panaderia El Sol"},
	})
	defer resp.Body.Close()
	mustStatus(t, resp, http.StatusUnprocessableEntity)
}

func TestGetOrder_NotFound(t *testing.T) {
	resp := doGet(t, "/api/orders/00000000-0000-0000-0000-000000000000")
	defer resp.Body.Close()
	mustStatus(t, resp, http.StatusNotFound)
}

func TestOrderLifecycle(t *testing.T) {
	o := createTestOrder(t)

	for _, step := range []struct {
		action string
		status string
	}{
		{"accept", "preparing"},
		{"ready", "ready"},
		{"deliver", "delivered"},
	} {
		got := transitionOrder(t, o.ID, step.action)
		if got.Status != step.status {
			t.Fatalf("after %s: status %q, want %q", step.action, got.Status, step.status)
		}
	}
}

func TestOrderLifecycle_IllegalTransition(t *testing.T) {
	o := createTestOrder(t)

	// A pending order cannot jump straight to delivered.
	resp := doPost(t, "/api/orders/"+o.ID+"/deliver", nil)
	defer resp.Body.Close()
	mustStatus(t, resp, http.StatusConflict)

	got := decodeJSON[errorResponse](t, resp)
	if got.Code != http.StatusConflict {
		t.Errorf("error code: got %d", got.Code)
	}
}

func TestRejectAndRecycle(t *testing.T) {
	o := createTestOrder(t)

	resp := doPost(t, "/api/orders/"+o.ID+"/reject", map[string]string{
		"reason": "out of stock",
	})
	mustStatus(t, resp, http.StatusOK)
	rejected := decodeJSON[orderResponse](t, resp)
	resp.Body.Close()

	if rejected.Status != "rejected" {
		t.Fatalf("status: got %q", rejected.Status)
	}
	if rejected.RejectionReason != "out of stock" {
		t.Errorf("rejection reason: got %q", rejected.RejectionReason)
	}

	recycled := transitionOrder(t, o.ID, "recycle")
	if recycled.Status != "pending" {
		t.Errorf("status after recycle: got %q", recycled.Status)
	}
	// The reason stays on the record as context for the retry.
	if recycled.RejectionReason != "out of stock" {
		t.Errorf("rejection reason after recycle: got %q", recycled.RejectionReason)
	}
}

func TestReject_RequiresReason(t *testing.T) {
	o := createTestOrder(t)

	resp := doPost(t, "/api/orders/"+o.ID+"/reject", map[string]string{"reason": ""})
	defer resp.Body.Close()
	mustStatus(t, resp, http.StatusBadRequest)
}

func TestEditOrder(t *testing.T) {
	o := createTestOrder(t)

	resp := doRequest(t, http.MethodPatch, "/api/orders/"+o.ID, map[string]any{
		"items": []itemRequest{{ProductID: "choc-chip", Quantity: 12}},
	})
	defer resp.Body.Close()
	mustStatus(t, resp, http.StatusOK)

	edited := decodeJSON[orderResponse](t, resp)
	// 12 x 10.00 x 0.90 after the 12-unit tier.
	sameAmount(t, edited.Total, "108.00")
	if edited.OrderNumber != o.OrderNumber {
		t.Errorf("order number changed on edit: %q -> %q", o.OrderNumber, edited.OrderNumber)
	}
}

func TestEditOrder_LockedAfterDelivery(t *testing.T) {
	o := createTestOrder(t)
	deliverOrder(t, o.ID)

	resp := doRequest(t, http.MethodPatch, "/api/orders/"+o.ID, map[string]any{
		"notes": "too late",
	})
	defer resp.Body.Close()
	mustStatus(t, resp, http.StatusConflict)
}

func TestListOrdersByStatus(t *testing.T) {
	o := createTestOrder(t)

	resp := doGet(t, "/api/orders?status=pending")
	mustStatus(t, resp, http.StatusOK)
	list := decodeJSON[[]orderResponse](t, resp)
	resp.Body.Close()

	found := false
	for _, item := range list {
		if item.ID == o.ID {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("order %s missing from pending listing", o.ID)
	}
}

func TestListOrders_UnknownStatus(t *testing.T) {
	resp := doGet(t, "/api/orders?status=bogus")
	defer resp.Body.Close()
	mustStatus(t, resp, http.StatusBadRequest)
}

func TestSoftDeleteAndRestore(t *testing.T) {
	o := createTestOrder(t)

	resp := doRequest(t, http.MethodDelete, "/api/orders/"+o.ID, map[string]string{
		"reason": "duplicate entry",
	})
	resp.Body.Close()
	mustStatus(t, resp, http.StatusNoContent)

	resp = doGet(t, "/api/orders/"+o.ID)
	mustStatus(t, resp, http.StatusNotFound)
	resp.Body.Close()

	resp = doPost(t, "/api/orders/"+o.ID+"/restore", nil)
	mustStatus(t, resp, http.StatusOK)
	restored := decodeJSON[orderResponse](t, resp)
	resp.Body.Close()

	if restored.ID != o.ID {
		t.Errorf("restored id: got %q", restored.ID)
	}

	resp = doGet(t, "/api/orders/"+o.ID)
	defer resp.Body.Close()
	mustStatus(t, resp, http.StatusOK)
}

func TestSoftDelete_RequiresReason(t *testing.T) {
	o := createTestOrder(t)

	resp := doRequest(t, http.MethodDelete, "/api/orders/"+o.ID, map[string]string{"reason": ""})
	defer resp.Body.Close()
	mustStatus(t, resp, http.StatusBadRequest)
}

func TestDeriveInvoice(t *testing.T) {
	o := createTestOrder(t)
	deliverOrder(t, o.ID)

	resp := doPost(t, "/api/orders/"+o.ID+"/invoice", nil)
	mustStatus(t, resp, http.StatusOK)
	inv := decodeJSON[invoiceResponse](t, resp)
	resp.Body.Close()

	if inv.ID != o.ID {
		t.Errorf("invoice id should mirror the order id: got %q", inv.ID)
	}
	sameAmount(t, inv.Amount, o.Total)
	if inv.Status != "pending" {
		t.Errorf("invoice status: got %q", inv.Status)
	}

	billed := doGet(t, "/api/orders/"+o.ID)
	got := decodeJSON[orderResponse](t, billed)
	billed.Body.Close()
	if got.Status != "billed" {
		t.Errorf("order status after invoicing: got %q", got.Status)
	}
}

func TestDeriveInvoice_Idempotent(t *testing.T) {
	o := createTestOrder(t)
	deliverOrder(t, o.ID)

	resp := doPost(t, "/api/orders/"+o.ID+"/invoice", nil)
	first := decodeJSON[invoiceResponse](t, resp)
	resp.Body.Close()

	resp = doPost(t, "/api/orders/"+o.ID+"/invoice", nil)
	mustStatus(t, resp, http.StatusOK)
	second := decodeJSON[invoiceResponse](t, resp)
	resp.Body.Close()

	if first.ID != second.ID || first.DueDate != second.DueDate {
		t.Errorf("repeat derivation changed the invoice: %+v vs %+v", first, second)
	}
}

func TestDeriveInvoice_NotCollectible(t *testing.T) {
	o := createTestOrder(t)

	resp := doPost(t, "/api/orders/"+o.ID+"/invoice", nil)
	defer resp.Body.Close()
	mustStatus(t, resp, http.StatusConflict)
}

func TestRecordPayment_FullSettlement(t *testing.T) {
	o := createTestOrder(t)
	deliverOrder(t, o.ID)

	resp := doPost(t, "/api/orders/"+o.ID+"/invoice", nil)
	mustStatus(t, resp, http.StatusOK)
	resp.Body.Close()

	resp = doPost(t, "/api/orders/"+o.ID+"/payments", map[string]any{
		"amount":      o.Total,
		"bank":        "BCP",
		"depositDate": time.Now().UTC().Format(time.RFC3339),
	})
	mustStatus(t, resp, http.StatusCreated)
	p := decodeJSON[paymentResponse](t, resp)
	resp.Body.Close()

	sameAmount(t, p.Amount, o.Total)
	if p.Partial {
		t.Errorf("payment should not be partial")
	}

	after := doGet(t, "/api/orders/"+o.ID)
	got := decodeJSON[orderResponse](t, after)
	after.Body.Close()
	if got.Status != "paid" {
		t.Errorf("order status after settlement: got %q", got.Status)
	}

	invResp := doGet(t, "/api/orders/"+o.ID+"/invoice")
	inv := decodeJSON[invoiceResponse](t, invResp)
	invResp.Body.Close()
	if inv.Status != "paid" {
		t.Errorf("invoice status after settlement: got %q", inv.Status)
	}
}

func TestRecordPayment_PartialKeepsBilled(t *testing.T) {
	o := createTestOrder(t)
	deliverOrder(t, o.ID)

	resp := doPost(t, "/api/orders/"+o.ID+"/invoice", nil)
	mustStatus(t, resp, http.StatusOK)
	resp.Body.Close()

	resp = doPost(t, "/api/orders/"+o.ID+"/payments", map[string]any{
		"amount":      "10.00",
		"partial":     true,
		"depositDate": time.Now().UTC().Format(time.RFC3339),
	})
	mustStatus(t, resp, http.StatusCreated)
	resp.Body.Close()

	after := doGet(t, "/api/orders/"+o.ID)
	got := decodeJSON[orderResponse](t, after)
	after.Body.Close()
	if got.Status != "billed" {
		t.Errorf("order status after partial payment: got %q", got.Status)
	}

	list := doGet(t, "/api/orders/"+o.ID+"/payments")
	payments := decodeJSON[[]paymentResponse](t, list)
	list.Body.Close()
	if len(payments) != 1 {
		t.Errorf("payments: got %d, want 1", len(payments))
	}
}

func TestRecordPayment_RejectsNonPositive(t *testing.T) {
	o := createTestOrder(t)
	deliverOrder(t, o.ID)

	resp := doPost(t, "/api/orders/"+o.ID+"/payments", map[string]any{
		"amount":      "0",
		"depositDate": time.Now().UTC().Format(time.RFC3339),
	})
	defer resp.Body.Close()
	mustStatus(t, resp, http.StatusBadRequest)
}

func TestFollowups(t *testing.T) {
	o := createTestOrder(t)
	deliverOrder(t, o.ID)

	resp := doPost(t, "/api/orders/"+o.ID+"/invoice", nil)
	mustStatus(t, resp, http.StatusOK)
	resp.Body.Close()

	resp = doPost(t, "/api/orders/"+o.ID+"/reminders", map[string]string{
		"message": "invoice due next week",
	})
	mustStatus(t, resp, http.StatusCreated)
	resp.Body.Close()

	resp = doPost(t, "/api/orders/"+o.ID+"/warnings", map[string]string{
		"message": "second notice",
	})
	mustStatus(t, resp, http.StatusCreated)
	resp.Body.Close()

	list := doGet(t, "/api/orders/"+o.ID+"/followups")
	followups := decodeJSON[[]map[string]any](t, list)
	list.Body.Close()
	if len(followups) != 2 {
		t.Errorf("followups: got %d, want 2", len(followups))
	}
}

func TestOrderHistory(t *testing.T) {
	o := createTestOrder(t)
	transitionOrder(t, o.ID, "accept")

	resp := doGet(t, "/api/orders/"+o.ID+"/history")
	mustStatus(t, resp, http.StatusOK)
	entries := decodeJSON[[]historyEntryResponse](t, resp)
	resp.Body.Close()

	if len(entries) < 2 {
		t.Fatalf("history entries: got %d, want at least 2", len(entries))
	}
	if entries[0].Action != "created" {
		t.Errorf("first action: got %q", entries[0].Action)
	}

	var sawTransition bool
	for _, e := range entries {
		if e.Action == "status_changed" && e.NewValue == "preparing" {
			sawTransition = true
		}
	}
	if !sawTransition {
		t.Errorf("no status_changed entry to preparing in %+v", entries)
	}
}
