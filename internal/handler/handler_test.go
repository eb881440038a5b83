package handler

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetbatch/orderdesk/gen/oas"
	"github.com/sweetbatch/orderdesk/internal/domain/auth"
	"github.com/sweetbatch/orderdesk/internal/domain/billing"
	"github.com/sweetbatch/orderdesk/internal/domain/history"
	"github.com/sweetbatch/orderdesk/internal/domain/order"
	"github.com/sweetbatch/orderdesk/internal/domain/product"
)

// --- Mock implementations ---

type mockProductRepo struct {
	products []product.Product
	byID     map[string]*product.Product
	listErr  error
}

func (m *mockProductRepo) List(_ context.Context) ([]product.Product, error) {
	return m.products, m.listErr
}

func (m *mockProductRepo) GetByID(_ context.Context, id string) (*product.Product, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	return p, nil
}

func (m *mockProductRepo) GetByIDs(_ context.Context, ids []string) ([]product.Product, error) {
	var out []product.Product
	for _, id := range ids {
		if p, ok := m.byID[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

type mockAllocator struct {
	n int64
}

func (m *mockAllocator) Next(_ context.Context) (int64, error) {
	m.n++
	return m.n, nil
}

type memOrderRepo struct {
	orders     map[string]*order.Order
	tombstones map[string]*order.Tombstone
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{
		orders:     make(map[string]*order.Order),
		tombstones: make(map[string]*order.Tombstone),
	}
}

func (m *memOrderRepo) Create(_ context.Context, o *order.Order, _ history.Entry) error {
	cp := *o
	m.orders[o.ID] = &cp
	return nil
}

func (m *memOrderRepo) Get(_ context.Context, id string) (*order.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *memOrderRepo) ListByStatus(_ context.Context, st order.Status) ([]order.Order, error) {
	var out []order.Order
	for _, o := range m.orders {
		if o.Status == st {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *memOrderRepo) ApplyTransition(_ context.Context, o *order.Order, _ order.Status, _ history.Entry) error {
	cp := *o
	m.orders[o.ID] = &cp
	return nil
}

func (m *memOrderRepo) UpdateFields(_ context.Context, o *order.Order, _ history.Entry) error {
	cp := *o
	m.orders[o.ID] = &cp
	return nil
}

func (m *memOrderRepo) SoftDelete(_ context.Context, t order.Tombstone, _ history.Entry) error {
	delete(m.orders, t.OrderID)
	m.tombstones[t.OrderID] = &t
	return nil
}

func (m *memOrderRepo) GetTombstone(_ context.Context, id string) (*order.Tombstone, error) {
	t, ok := m.tombstones[id]
	if !ok {
		return nil, order.ErrTombstoneNotFound
	}
	return t, nil
}

func (m *memOrderRepo) Restore(_ context.Context, t order.Tombstone, _ history.Entry) error {
	cp := t.Order
	m.orders[cp.ID] = &cp
	delete(m.tombstones, t.OrderID)
	return nil
}

func (m *memOrderRepo) ReconcileIndex(_ context.Context) (int, error) {
	return 0, nil
}

type memBillingRepo struct {
	invoices  map[string]*billing.Invoice
	payments  map[string][]billing.Payment
	followups map[string][]billing.Followup
}

func newMemBillingRepo() *memBillingRepo {
	return &memBillingRepo{
		invoices:  make(map[string]*billing.Invoice),
		payments:  make(map[string][]billing.Payment),
		followups: make(map[string][]billing.Followup),
	}
}

func (m *memBillingRepo) UpsertInvoice(_ context.Context, inv billing.Invoice) (*billing.Invoice, error) {
	if existing, ok := m.invoices[inv.OrderID]; ok {
		return existing, nil
	}
	cp := inv
	m.invoices[inv.OrderID] = &cp
	return &cp, nil
}

func (m *memBillingRepo) GetInvoiceByOrder(_ context.Context, orderID string) (*billing.Invoice, error) {
	inv, ok := m.invoices[orderID]
	if !ok {
		return nil, billing.ErrInvoiceNotFound
	}
	return inv, nil
}

func (m *memBillingRepo) SetInvoiceStatus(_ context.Context, id string, st billing.InvoiceStatus) error {
	for _, inv := range m.invoices {
		if inv.ID == id {
			inv.Status = st
			return nil
		}
	}
	return billing.ErrInvoiceNotFound
}

func (m *memBillingRepo) CreatePayment(_ context.Context, p billing.Payment) error {
	m.payments[p.OrderID] = append(m.payments[p.OrderID], p)
	return nil
}

func (m *memBillingRepo) ListPaymentsByOrder(_ context.Context, orderID string) ([]billing.Payment, error) {
	return m.payments[orderID], nil
}

func (m *memBillingRepo) CreateFollowup(_ context.Context, f billing.Followup) error {
	m.followups[f.OrderID] = append(m.followups[f.OrderID], f)
	return nil
}

func (m *memBillingRepo) ListFollowupsByOrder(_ context.Context, orderID string) ([]billing.Followup, error) {
	return m.followups[orderID], nil
}

type mockHistory struct {
	entries []history.Entry
}

func (m *mockHistory) Append(_ context.Context, e history.Entry) error {
	m.entries = append(m.entries, e)
	return nil
}

func (m *mockHistory) ListByOrder(_ context.Context, orderID string) ([]history.Entry, error) {
	var out []history.Entry
	for _, e := range m.entries {
		if e.OrderID == orderID {
			out = append(out, e)
		}
	}
	return out, nil
}

type mockAPIKeyRepo struct {
	info *auth.APIKeyInfo
	err  error
}

func (m *mockAPIKeyRepo) FindByHash(_ context.Context, _ string) (*auth.APIKeyInfo, error) {
	return m.info, m.err
}

// --- Helpers ---

func newTestProduct(id, name string, price int64, step int) product.Product {
	return product.Product{
		ID:       id,
		Name:     name,
		Price:    decimal.NewFromInt(price),
		Category: "cookies",
		Step:     step,
	}
}

func newProductRepo(products ...product.Product) *mockProductRepo {
	byID := make(map[string]*product.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	return &mockProductRepo{
		products: products,
		byID:     byID,
	}
}

func newTestHandler(products ...product.Product) *Handler {
	repo := newMemOrderRepo()
	hist := &mockHistory{}
	orders := order.NewService(newProductRepo(products...), &mockAllocator{}, repo)
	billingSvc := billing.NewService(orders, newMemBillingRepo(), hist)
	return NewHandler(newProductRepo(products...), orders, billingSvc, hist, nil, nil)
}

func placeOrder(t *testing.T, h *Handler, items ...oas.OrderItemInput) *oas.Order {
	t.Helper()
	result, err := h.CreateOrder(context.Background(), &oas.OrderRequest{
		Items:  items,
		Client: oas.ClientInfo{Name: "Panaderia San Martin"},
	}, oas.CreateOrderParams{})
	require.NoError(t, err)
	o, ok := result.(*oas.Order)
	require.True(t, ok, "expected *oas.Order, got %T", result)
	return o
}

// --- Tests ---

func TestListProducts(t *testing.T) {
	h := newTestHandler(
		newTestProduct("choc-chip", "Chocolate Chip", 10, 6),
		newTestProduct("oatmeal", "Oatmeal Raisin", 8, 12),
	)

	result, err := h.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "choc-chip", result[0].ID)
	assert.Equal(t, "Chocolate Chip", result[0].Name)
	assert.Equal(t, "10", result[0].Price)
	assert.Equal(t, 6, result[0].Step)
}

func TestGetProduct(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h := newTestHandler(newTestProduct("choc-chip", "Chocolate Chip", 10, 6))

		result, err := h.GetProduct(context.Background(), oas.GetProductParams{ID: "choc-chip"})
		require.NoError(t, err)

		prod, ok := result.(*oas.Product)
		require.True(t, ok, "expected *oas.Product, got %T", result)
		assert.Equal(t, "choc-chip", prod.ID)
	})

	t.Run("not found returns 404", func(t *testing.T) {
		h := newTestHandler()

		result, err := h.GetProduct(context.Background(), oas.GetProductParams{ID: "missing"})
		require.NoError(t, err)

		notFound, ok := result.(*oas.GetProductNotFound)
		require.True(t, ok, "expected *oas.GetProductNotFound, got %T", result)
		assert.Equal(t, int32(404), notFound.Code)
	})
}

func TestQuotePrice(t *testing.T) {
	t.Run("rounds the quantity up to the step", func(t *testing.T) {
		h := newTestHandler(newTestProduct("choc-chip", "Chocolate Chip", 10, 6))

		result, err := h.QuotePrice(context.Background(), &oas.QuoteRequest{
			ProductId: "choc-chip",
			Quantity:  5,
		})
		require.NoError(t, err)

		quote, ok := result.(*oas.PriceQuote)
		require.True(t, ok, "expected *oas.PriceQuote, got %T", result)
		assert.Equal(t, 5, quote.RequestedQuantity)
		assert.Equal(t, 6, quote.NormalizedQuantity)
		assert.Equal(t, "60", quote.Total)
	})

	t.Run("unknown product returns 404", func(t *testing.T) {
		h := newTestHandler()

		result, err := h.QuotePrice(context.Background(), &oas.QuoteRequest{
			ProductId: "missing",
			Quantity:  6,
		})
		require.NoError(t, err)

		notFound, ok := result.(*oas.QuotePriceNotFound)
		require.True(t, ok, "expected *oas.QuotePriceNotFound, got %T", result)
		assert.Equal(t, int32(404), notFound.Code)
	})
}

func TestCreateOrder(t *testing.T) {
	chocChip := newTestProduct("choc-chip", "Chocolate Chip", 10, 6)

	t.Run("empty items returns 400", func(t *testing.T) {
		h := newTestHandler(chocChip)

		result, err := h.CreateOrder(context.Background(), &oas.OrderRequest{
			Client: oas.ClientInfo{Name: "Panaderia San Martin"},
		}, oas.CreateOrderParams{})
		require.NoError(t, err)

		resp, ok := result.(*oas.CreateOrderBadRequest)
		require.True(t, ok, "expected *oas.CreateOrderBadRequest, got %T", result)
		assert.Equal(t, int32(400), resp.Code)
	})

	t.Run("zero quantity returns 422", func(t *testing.T) {
		h := newTestHandler(chocChip)

		result, err := h.CreateOrder(context.Background(), &oas.OrderRequest{
			Items:  []oas.OrderItemInput{{ProductId: "choc-chip", Quantity: 0}},
			Client: oas.ClientInfo{Name: "Panaderia San Martin"},
		}, oas.CreateOrderParams{})
		require.NoError(t, err)

		resp, ok := result.(*oas.CreateOrderUnprocessableEntity)
		require.True(t, ok, "expected *oas.CreateOrderUnprocessableEntity, got %T", result)
		assert.Equal(t, int32(422), resp.Code)
	})

	t.Run("unknown product returns 422", func(t *testing.T) {
		h := newTestHandler(chocChip)

		result, err := h.CreateOrder(context.Background(), &oas.OrderRequest{
			Items:  []oas.OrderItemInput{{ProductId: "nonexistent", Quantity: 6}},
			Client: oas.ClientInfo{Name: "Panaderia San Martin"},
		}, oas.CreateOrderParams{})
		require.NoError(t, err)

		resp, ok := result.(*oas.CreateOrderUnprocessableEntity)
		require.True(t, ok, "expected *oas.CreateOrderUnprocessableEntity, got %T", result)
		assert.Equal(t, int32(422), resp.Code)
	})

	t.Run("valid order is numbered and pending", func(t *testing.T) {
		h := newTestHandler(chocChip)

		o := placeOrder(t, h, oas.OrderItemInput{ProductId: "choc-chip", Quantity: 6})
		assert.Equal(t, "ORD-001", o.OrderNumber)
		assert.Equal(t, "pending", o.Status)
		assert.Equal(t, "60", o.Total)
		require.Len(t, o.Items, 1)
		assert.Equal(t, 6, o.Items[0].Quantity)
	})
}

func TestListOrders(t *testing.T) {
	t.Run("unknown status returns 400", func(t *testing.T) {
		h := newTestHandler()

		result, err := h.ListOrders(context.Background(), oas.ListOrdersParams{Status: "shipped"})
		require.NoError(t, err)

		resp, ok := result.(*oas.ListOrdersBadRequest)
		require.True(t, ok, "expected *oas.ListOrdersBadRequest, got %T", result)
		assert.Equal(t, int32(400), resp.Code)
	})

	t.Run("lists the status bucket", func(t *testing.T) {
		h := newTestHandler(newTestProduct("choc-chip", "Chocolate Chip", 10, 6))
		placeOrder(t, h, oas.OrderItemInput{ProductId: "choc-chip", Quantity: 6})

		result, err := h.ListOrders(context.Background(), oas.ListOrdersParams{Status: "pending"})
		require.NoError(t, err)

		list, ok := result.(*oas.ListOrdersOKApplicationJSON)
		require.True(t, ok, "expected *oas.ListOrdersOKApplicationJSON, got %T", result)
		require.Len(t, *list, 1)
		assert.Equal(t, "ORD-001", (*list)[0].OrderNumber)
	})
}

func TestAcceptOrder(t *testing.T) {
	h := newTestHandler(newTestProduct("choc-chip", "Chocolate Chip", 10, 6))
	o := placeOrder(t, h, oas.OrderItemInput{ProductId: "choc-chip", Quantity: 6})

	t.Run("pending order moves to preparing", func(t *testing.T) {
		result, err := h.AcceptOrder(context.Background(), oas.AcceptOrderParams{ID: o.ID})
		require.NoError(t, err)

		accepted, ok := result.(*oas.Order)
		require.True(t, ok, "expected *oas.Order, got %T", result)
		assert.Equal(t, "preparing", accepted.Status)
		assert.True(t, accepted.AcceptedAt.IsSet())
	})

	t.Run("second accept conflicts", func(t *testing.T) {
		result, err := h.AcceptOrder(context.Background(), oas.AcceptOrderParams{ID: o.ID})
		require.NoError(t, err)

		conflict, ok := result.(*oas.AcceptOrderConflict)
		require.True(t, ok, "expected *oas.AcceptOrderConflict, got %T", result)
		assert.Equal(t, int32(409), conflict.Code)
	})

	t.Run("unknown order returns 404", func(t *testing.T) {
		result, err := h.AcceptOrder(context.Background(), oas.AcceptOrderParams{ID: "missing"})
		require.NoError(t, err)

		notFound, ok := result.(*oas.AcceptOrderNotFound)
		require.True(t, ok, "expected *oas.AcceptOrderNotFound, got %T", result)
		assert.Equal(t, int32(404), notFound.Code)
	})
}

func TestDeleteOrder(t *testing.T) {
	h := newTestHandler(newTestProduct("choc-chip", "Chocolate Chip", 10, 6))
	o := placeOrder(t, h, oas.OrderItemInput{ProductId: "choc-chip", Quantity: 6})

	t.Run("empty reason returns 400", func(t *testing.T) {
		result, err := h.DeleteOrder(context.Background(), &oas.ReasonRequest{}, oas.DeleteOrderParams{ID: o.ID})
		require.NoError(t, err)

		resp, ok := result.(*oas.DeleteOrderBadRequest)
		require.True(t, ok, "expected *oas.DeleteOrderBadRequest, got %T", result)
		assert.Equal(t, int32(400), resp.Code)
	})

	t.Run("deleted order disappears and restores", func(t *testing.T) {
		result, err := h.DeleteOrder(context.Background(),
			&oas.ReasonRequest{Reason: "client cancelled"}, oas.DeleteOrderParams{ID: o.ID})
		require.NoError(t, err)
		_, ok := result.(*oas.DeleteOrderNoContent)
		require.True(t, ok, "expected *oas.DeleteOrderNoContent, got %T", result)

		got, err := h.GetOrder(context.Background(), oas.GetOrderParams{ID: o.ID})
		require.NoError(t, err)
		_, ok = got.(*oas.GetOrderNotFound)
		require.True(t, ok, "expected *oas.GetOrderNotFound, got %T", got)

		restored, err := h.RestoreOrder(context.Background(), oas.RestoreOrderParams{ID: o.ID})
		require.NoError(t, err)
		back, ok := restored.(*oas.Order)
		require.True(t, ok, "expected *oas.Order, got %T", restored)
		assert.Equal(t, o.OrderNumber, back.OrderNumber)
	})
}

func TestRecordPayment_InvalidAmount(t *testing.T) {
	h := newTestHandler(newTestProduct("choc-chip", "Chocolate Chip", 10, 6))
	o := placeOrder(t, h, oas.OrderItemInput{ProductId: "choc-chip", Quantity: 6})

	result, err := h.RecordPayment(context.Background(), &oas.PaymentRequest{
		Amount: "not-a-number",
	}, oas.RecordPaymentParams{ID: o.ID})
	require.NoError(t, err)

	resp, ok := result.(*oas.RecordPaymentBadRequest)
	require.True(t, ok, "expected *oas.RecordPaymentBadRequest, got %T", result)
	assert.Equal(t, int32(400), resp.Code)
	assert.Equal(t, "invalid amount", resp.Message)
}

func TestSubmitInvoice_NoProviderConfigured(t *testing.T) {
	h := newTestHandler(newTestProduct("choc-chip", "Chocolate Chip", 10, 6))

	_, err := h.SubmitInvoice(context.Background(), oas.SubmitInvoiceParams{ID: "any"})
	require.Error(t, err)

	sc := h.NewError(context.Background(), err)
	assert.Equal(t, 503, sc.StatusCode)
	assert.Equal(t, int32(503), sc.Response.Code)
}

func TestNewError(t *testing.T) {
	h := newTestHandler()
	ctx := context.Background()

	t.Run("upstream failure reports 502", func(t *testing.T) {
		err := &order.UpstreamError{Op: "create order", Applied: true, Err: errors.New("connection reset")}
		sc := h.NewError(ctx, err)
		assert.Equal(t, 502, sc.StatusCode)
		assert.Equal(t, "backing store unavailable", sc.Response.Message)
	})

	t.Run("classified domain error keeps its status", func(t *testing.T) {
		sc := h.NewError(ctx, order.ErrNotFound)
		assert.Equal(t, 404, sc.StatusCode)
	})

	t.Run("unclassified error reports 500", func(t *testing.T) {
		sc := h.NewError(ctx, errors.New("boom"))
		assert.Equal(t, 500, sc.StatusCode)
		assert.Equal(t, "internal error", sc.Response.Message)
	})
}

func TestHandleAPIKey(t *testing.T) {
	pepper := []byte("test-pepper")

	t.Run("valid key returns context", func(t *testing.T) {
		apiKey := "my-secret-key"
		mac := hmac.New(sha256.New, pepper)
		mac.Write([]byte(apiKey))
		hexHash := hex.EncodeToString(mac.Sum(nil))

		s := NewSecurityHandler(&mockAPIKeyRepo{
			info: &auth.APIKeyInfo{
				ID:      "key-1",
				KeyHash: hexHash,
				Name:    "test-key",
				Scopes:  []string{"orders"},
			},
		}, pepper)

		resultCtx, err := s.HandleAPIKey(context.Background(), oas.CreateOrderOperation, oas.APIKey{APIKey: apiKey})
		require.NoError(t, err)
		assert.NotNil(t, resultCtx)
	})

	t.Run("unknown key returns error", func(t *testing.T) {
		s := NewSecurityHandler(&mockAPIKeyRepo{err: errors.New("not found")}, pepper)

		_, err := s.HandleAPIKey(context.Background(), oas.CreateOrderOperation, oas.APIKey{APIKey: "bad-key"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unauthorized")
	})

	t.Run("hash mismatch returns error", func(t *testing.T) {
		s := NewSecurityHandler(&mockAPIKeyRepo{
			info: &auth.APIKeyInfo{ID: "key-1", KeyHash: hex.EncodeToString([]byte("other"))},
		}, pepper)

		_, err := s.HandleAPIKey(context.Background(), oas.CreateOrderOperation, oas.APIKey{APIKey: "my-secret-key"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unauthorized")
	})
}
