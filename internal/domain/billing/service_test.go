package billing

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetbatch/orderdesk/internal/domain/history"
	"github.com/sweetbatch/orderdesk/internal/domain/order"
	"github.com/sweetbatch/orderdesk/internal/domain/product"
)

// --- Mock implementations ---

type mockProductRepo struct {
	byID map[string]*product.Product
}

func (m *mockProductRepo) List(_ context.Context) ([]product.Product, error) { return nil, nil }

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

type mockAllocator struct{ next int64 }

func (m *mockAllocator) Next(_ context.Context) (int64, error) {
	m.next++
	return m.next, nil
}

type mockOrderRepo struct {
	orders map[string]*order.Order
	index  map[string]order.Status
}

func newOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{
		orders: make(map[string]*order.Order),
		index:  make(map[string]order.Status),
	}
}

func (m *mockOrderRepo) Create(_ context.Context, o *order.Order, _ history.Entry) error {
	cp := *o
	m.orders[o.ID] = &cp
	m.index[o.ID] = o.Status
	return nil
}

func (m *mockOrderRepo) Get(_ context.Context, id string) (*order.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *mockOrderRepo) ListByStatus(_ context.Context, st order.Status) ([]order.Order, error) {
	var out []order.Order
	for id, s := range m.index {
		if s == st {
			out = append(out, *m.orders[id])
		}
	}
	return out, nil
}

func (m *mockOrderRepo) ApplyTransition(_ context.Context, o *order.Order, prev order.Status, _ history.Entry) error {
	cur, ok := m.orders[o.ID]
	if !ok {
		return order.ErrNotFound
	}
	if cur.Status != prev {
		return order.ErrConflict
	}
	cp := *o
	m.orders[o.ID] = &cp
	m.index[o.ID] = o.Status
	return nil
}

func (m *mockOrderRepo) UpdateFields(_ context.Context, o *order.Order, _ history.Entry) error {
	cp := *o
	m.orders[o.ID] = &cp
	return nil
}

func (m *mockOrderRepo) SoftDelete(_ context.Context, t order.Tombstone, _ history.Entry) error {
	delete(m.orders, t.OrderID)
	delete(m.index, t.OrderID)
	return nil
}

func (m *mockOrderRepo) GetTombstone(_ context.Context, _ string) (*order.Tombstone, error) {
	return nil, order.ErrTombstoneNotFound
}

func (m *mockOrderRepo) Restore(_ context.Context, _ order.Tombstone, _ history.Entry) error {
	return nil
}

func (m *mockOrderRepo) ReconcileIndex(_ context.Context) (int, error) { return 0, nil }

// mockBillingRepo mimics the upsert-by-key behavior of the real store:
// inserting an invoice whose id already exists returns the stored row.
type mockBillingRepo struct {
	invoices  map[string]*Invoice // keyed by order id
	payments  []Payment
	followups []Followup
}

func newBillingRepo() *mockBillingRepo {
	return &mockBillingRepo{invoices: make(map[string]*Invoice)}
}

func (m *mockBillingRepo) UpsertInvoice(_ context.Context, inv Invoice) (*Invoice, error) {
	if existing, ok := m.invoices[inv.OrderID]; ok {
		return existing, nil
	}
	cp := inv
	m.invoices[inv.OrderID] = &cp
	return &cp, nil
}

func (m *mockBillingRepo) GetInvoiceByOrder(_ context.Context, orderID string) (*Invoice, error) {
	inv, ok := m.invoices[orderID]
	if !ok {
		return nil, ErrInvoiceNotFound
	}
	return inv, nil
}

func (m *mockBillingRepo) SetInvoiceStatus(_ context.Context, id string, st InvoiceStatus) error {
	for _, inv := range m.invoices {
		if inv.ID == id {
			inv.Status = st
			return nil
		}
	}
	return ErrInvoiceNotFound
}

func (m *mockBillingRepo) CreatePayment(_ context.Context, p Payment) error {
	m.payments = append(m.payments, p)
	return nil
}

func (m *mockBillingRepo) ListPaymentsByOrder(_ context.Context, orderID string) ([]Payment, error) {
	var out []Payment
	for _, p := range m.payments {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockBillingRepo) CreateFollowup(_ context.Context, f Followup) error {
	m.followups = append(m.followups, f)
	return nil
}

func (m *mockBillingRepo) ListFollowupsByOrder(_ context.Context, orderID string) ([]Followup, error) {
	var out []Followup
	for _, f := range m.followups {
		if f.OrderID == orderID {
			out = append(out, f)
		}
	}
	return out, nil
}

type mockRecorder struct {
	entries []history.Entry
}

func (m *mockRecorder) Append(_ context.Context, e history.Entry) error {
	m.entries = append(m.entries, e)
	return nil
}

func (m *mockRecorder) ListByOrder(_ context.Context, orderID string) ([]history.Entry, error) {
	var out []history.Entry
	for _, e := range m.entries {
		if e.OrderID == orderID {
			out = append(out, e)
		}
	}
	return out, nil
}

// --- Helpers ---

type fixture struct {
	orders  *order.Service
	repo    *mockBillingRepo
	hist    *mockRecorder
	billing *Service
}

func newFixture() *fixture {
	price := decimal.RequireFromString("10.00")
	products := &mockProductRepo{byID: map[string]*product.Product{
		"choc-chip": {ID: "choc-chip", Name: "Chocolate Chip", Price: price, Step: 6},
	}}
	orders := order.NewService(products, &mockAllocator{}, newOrderRepo())

	repo := newBillingRepo()
	hist := &mockRecorder{}
	return &fixture{
		orders:  orders,
		repo:    repo,
		hist:    hist,
		billing: NewService(orders, repo, hist),
	}
}

// deliveredOrder creates an order and walks it to delivered.
func (f *fixture) deliveredOrder(t *testing.T, terms string) *order.Order {
	t.Helper()
	ctx := context.Background()

	o, err := f.orders.Create(ctx, order.CreateRequest{
		Items:        []order.ItemInput{{ProductID: "choc-chip", Quantity: 6}},
		Client:       order.Client{Name: "Panaderia San Martin"},
		PaymentTerms: terms,
		Actor:        "tester",
	})
	require.NoError(t, err)

	_, err = f.orders.Accept(ctx, o.ID, "tester")
	require.NoError(t, err)
	_, err = f.orders.MarkReady(ctx, o.ID, "tester")
	require.NoError(t, err)
	o, err = f.orders.MarkDelivered(ctx, o.ID, "tester")
	require.NoError(t, err)
	return o
}

// --- Tests ---

func TestDeriveInvoice_FromDelivered(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	o := f.deliveredOrder(t, "credito 30 dias")

	inv, err := f.billing.DeriveInvoice(ctx, o.ID, "tester")
	require.NoError(t, err)

	assert.Equal(t, o.ID, inv.ID, "invoice id mirrors the order id")
	assert.Equal(t, o.OrderNumber, inv.OrderNumber)
	assert.True(t, inv.Amount.Equal(o.Total))
	assert.Equal(t, InvoicePending, inv.Status)
	assert.Equal(t, o.CreatedAt.Add(30*24*time.Hour), inv.DueDate)

	// Derivation advances the order to billed.
	cur, err := f.orders.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusBilled, cur.Status)
}

func TestDeriveInvoice_Idempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	o := f.deliveredOrder(t, "")

	first, err := f.billing.DeriveInvoice(ctx, o.ID, "tester")
	require.NoError(t, err)

	again, err := f.billing.DeriveInvoice(ctx, o.ID, "tester")
	require.NoError(t, err)

	assert.Equal(t, first.ID, again.ID)
	assert.True(t, first.Amount.Equal(again.Amount))
	assert.Equal(t, first.CreatedAt, again.CreatedAt)
}

func TestDeriveInvoice_NotCollectible(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	o, err := f.orders.Create(ctx, order.CreateRequest{
		Items: []order.ItemInput{{ProductID: "choc-chip", Quantity: 6}},
		Actor: "tester",
	})
	require.NoError(t, err)

	_, err = f.billing.DeriveInvoice(ctx, o.ID, "tester")
	require.ErrorIs(t, err, ErrNotCollectible)
}

func TestDeriveInvoice_UnknownOrder(t *testing.T) {
	f := newFixture()

	_, err := f.billing.DeriveInvoice(context.Background(), "missing", "tester")
	require.ErrorIs(t, err, order.ErrNotFound)
}

func TestRecordPayment_RejectsNonPositive(t *testing.T) {
	f := newFixture()

	_, err := f.billing.RecordPayment(context.Background(), PaymentRequest{
		OrderID: "any",
		Amount:  decimal.Zero,
	})
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestRecordPayment_NoInvoiceWritesNothing(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	o := f.deliveredOrder(t, "")

	// Settling without a derived invoice must fail before any write: a
	// committed payment behind the error would duplicate on retry.
	_, err := f.billing.RecordPayment(ctx, PaymentRequest{
		OrderID: o.ID,
		Amount:  o.Total,
		Actor:   "tester",
	})
	require.ErrorIs(t, err, ErrInvoiceNotFound)

	payments, err := f.billing.ListPayments(ctx, o.ID)
	require.NoError(t, err)
	assert.Empty(t, payments, "failed settlement must not persist a payment")

	cur, err := f.orders.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered, cur.Status)
}

func TestRecordPayment_FullSettlement(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	o := f.deliveredOrder(t, "")

	_, err := f.billing.DeriveInvoice(ctx, o.ID, "tester")
	require.NoError(t, err)

	p, err := f.billing.RecordPayment(ctx, PaymentRequest{
		OrderID: o.ID,
		Amount:  decimal.RequireFromString("57.00"),
		Bank:    "BCP",
		Actor:   "tester",
	})
	require.NoError(t, err)
	assert.False(t, p.Partial)

	inv, err := f.billing.GetInvoice(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, InvoicePaid, inv.Status)

	cur, err := f.orders.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPaid, cur.Status)
}

func TestRecordPayment_UnderpaymentStillSettles(t *testing.T) {
	// The settlement rule follows the deposit flag, not the amount: a
	// non-partial payment closes the invoice even below the total.
	f := newFixture()
	ctx := context.Background()
	o := f.deliveredOrder(t, "")

	_, err := f.billing.DeriveInvoice(ctx, o.ID, "tester")
	require.NoError(t, err)

	_, err = f.billing.RecordPayment(ctx, PaymentRequest{
		OrderID: o.ID,
		Amount:  decimal.RequireFromString("10.00"),
		Actor:   "tester",
	})
	require.NoError(t, err)

	inv, err := f.billing.GetInvoice(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, InvoicePaid, inv.Status)
}

func TestRecordPayment_PartialAccumulates(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	o := f.deliveredOrder(t, "")

	_, err := f.billing.DeriveInvoice(ctx, o.ID, "tester")
	require.NoError(t, err)

	for range 2 {
		_, err = f.billing.RecordPayment(ctx, PaymentRequest{
			OrderID: o.ID,
			Amount:  decimal.RequireFromString("20.00"),
			Partial: true,
			Actor:   "tester",
		})
		require.NoError(t, err)
	}

	payments, err := f.billing.ListPayments(ctx, o.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 2)

	// No status changed anywhere.
	inv, err := f.billing.GetInvoice(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, InvoicePending, inv.Status)

	cur, err := f.orders.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusBilled, cur.Status)
}

func TestRecordPayment_SettlesDirectFromDelivered(t *testing.T) {
	// A full payment on a delivered order that was invoiced but never marked
	// billed walks the order through billed to paid in one call.
	f := newFixture()
	ctx := context.Background()
	o := f.deliveredOrder(t, "")

	// Seed the invoice directly, leaving the order in delivered.
	_, err := f.repo.UpsertInvoice(ctx, Invoice{
		ID: o.ID, OrderID: o.ID, OrderNumber: o.OrderNumber,
		Amount: o.Total, DueDate: time.Now(), Status: InvoicePending, CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	_, err = f.billing.RecordPayment(ctx, PaymentRequest{
		OrderID: o.ID,
		Amount:  o.Total,
		Actor:   "tester",
	})
	require.NoError(t, err)

	cur, err := f.orders.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPaid, cur.Status)
}

func TestFollowups(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	o := f.deliveredOrder(t, "")

	_, err := f.billing.CreateReminder(ctx, o.ID, "tester", "invoice due next week")
	require.NoError(t, err)
	_, err = f.billing.SendWarning(ctx, o.ID, "tester", "payment overdue")
	require.NoError(t, err)

	followups, err := f.billing.ListFollowups(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, followups, 2)
	assert.Equal(t, FollowupReminder, followups[0].Kind)
	assert.Equal(t, FollowupWarning, followups[1].Kind)

	// Followups never touch the order.
	cur, err := f.orders.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered, cur.Status)
}

func TestDueOffset(t *testing.T) {
	tests := []struct {
		terms string
		want  time.Duration
	}{
		{"credito 15 dias", 15 * 24 * time.Hour},
		{"credito 30 dias", 30 * 24 * time.Hour},
		{"net 30", 30 * 24 * time.Hour},
		{"contado", 7 * 24 * time.Hour},
		{"", 7 * 24 * time.Hour},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DueOffset(tt.terms), "terms %q", tt.terms)
	}
}
