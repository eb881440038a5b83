// Package billing derives invoices and payment records from orders. An
// invoice is a point-in-time copy of the order total, created at most once
// per order; it never tracks later edits.
package billing

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// InvoiceStatus is the collection state of an invoice.
type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pending"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
	InvoiceVoid    InvoiceStatus = "void"
)

// Followup kinds. Followups are informational; they never change order or
// invoice state.
const (
	FollowupReminder = "reminder"
	FollowupWarning  = "warning"
)

// Sentinel errors.
var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrNotCollectible  = errors.New("order is not in a collectible state")
	ErrInvalidAmount   = errors.New("amount must be greater than 0")
)

// Invoice is the billing artifact derived from an order. Its id mirrors the
// source order id, which makes derivation an upsert-by-key and therefore
// naturally idempotent under retry.
type Invoice struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"orderId"`
	OrderNumber string          `json:"orderNumber"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"dueDate"`
	Status      InvoiceStatus   `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Payment is a recorded deposit against an order. Partial payments accumulate
// for manual reconciliation; the first non-partial payment settles in full.
type Payment struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"orderId"`
	Amount      decimal.Decimal `json:"amount"`
	Bank        string          `json:"bank,omitempty"`
	DepositDate time.Time       `json:"depositDate"`
	Partial     bool            `json:"partial"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Followup is a reminder or payment warning attached to an order.
type Followup struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repository defines persistence for billing artifacts.
type Repository interface {
	// UpsertInvoice inserts the invoice keyed by its id and returns the
	// stored row: on conflict the already-existing invoice is returned
	// unchanged.
	UpsertInvoice(ctx context.Context, inv Invoice) (*Invoice, error)
	GetInvoiceByOrder(ctx context.Context, orderID string) (*Invoice, error)
	SetInvoiceStatus(ctx context.Context, id string, st InvoiceStatus) error

	CreatePayment(ctx context.Context, p Payment) error
	ListPaymentsByOrder(ctx context.Context, orderID string) ([]Payment, error)

	CreateFollowup(ctx context.Context, f Followup) error
	ListFollowupsByOrder(ctx context.Context, orderID string) ([]Followup, error)
}

// DueOffset maps a payment-terms string to the invoice due-date offset:
// 15 or 30 days when the terms mention them, 7 days otherwise.
func DueOffset(terms string) time.Duration {
	switch {
	case strings.Contains(terms, "15"):
		return 15 * 24 * time.Hour
	case strings.Contains(terms, "30"):
		return 30 * 24 * time.Hour
	default:
		return 7 * 24 * time.Hour
	}
}
