// Package order owns the canonical order record, its lifecycle state machine
// and the denormalized status index that mirrors it.
package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sweetbatch/orderdesk/internal/domain/history"
)

// Status is the lifecycle state of an order. The set is closed.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
	StatusRejected  Status = "rejected"
	StatusBilled    Status = "billed"
	StatusPaid      Status = "paid"
)

// transitions is the legal edge set of the state machine. Soft deletion is
// out-of-band: it is tracked by removal from the live collection, not as a
// status value.
var transitions = map[Status][]Status{
	StatusPending:   {StatusPreparing, StatusRejected},
	StatusPreparing: {StatusReady},
	StatusReady:     {StatusDelivered},
	StatusDelivered: {StatusBilled},
	StatusBilled:    {StatusPaid},
	StatusRejected:  {StatusPending},
}

// Valid reports whether s is a member of the closed status set.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered,
		StatusRejected, StatusBilled, StatusPaid:
		return true
	}
	return false
}

// CanTransition reports whether the state machine permits moving from s to
// next.
func (s Status) CanTransition(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// editable reports whether operator edits are still permitted. Once goods
// have shipped the record feeds billing artifacts and is locked.
func (s Status) editable() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusRejected:
		return true
	}
	return false
}

// Client is a denormalized copy of the customer identity taken at order
// creation, not a live join.
type Client struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	TaxID   string `json:"taxId,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// Item is a single priced order line. UnitPrice is the catalog base price;
// LineTotal already includes the quantity tier discount.
type Item struct {
	ProductID string          `json:"productId,omitempty"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// Order is the canonical order record.
type Order struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	Status          Status          `json:"status"`
	Total           decimal.Decimal `json:"total"`
	Items           []Item          `json:"items"`
	Client          Client          `json:"client"`
	PaymentTerms    string          `json:"paymentTerms,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	RejectionReason string          `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	AcceptedAt      *time.Time      `json:"acceptedAt,omitempty"`
	ReadyAt         *time.Time      `json:"readyAt,omitempty"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
	RejectedAt      *time.Time      `json:"rejectedAt,omitempty"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
}

// Tombstone captures a soft-deleted order: the full copy for restoration,
// the status-index membership it held, and the deletion reason.
type Tombstone struct {
	OrderID   string    `json:"orderId"`
	Reason    string    `json:"reason"`
	Status    Status    `json:"status"`
	Order     Order     `json:"order"`
	DeletedAt time.Time `json:"deletedAt"`
}

// Repository defines persistence for orders. Implementations must apply each
// multi-location write (order row, status index, history append) atomically,
// or leave the store in a state the reconcile pass can repair.
type Repository interface {
	Create(ctx context.Context, o *Order, entry history.Entry) error
	Get(ctx context.Context, id string) (*Order, error)
	ListByStatus(ctx context.Context, st Status) ([]Order, error)

	// ApplyTransition persists the already-validated status change together
	// with the index move and the audit entry.
	ApplyTransition(ctx context.Context, o *Order, prev Status, entry history.Entry) error

	// UpdateFields persists an edit that does not change status.
	UpdateFields(ctx context.Context, o *Order, entry history.Entry) error

	SoftDelete(ctx context.Context, t Tombstone, entry history.Entry) error
	GetTombstone(ctx context.Context, id string) (*Tombstone, error)
	Restore(ctx context.Context, t Tombstone, entry history.Entry) error

	// ReconcileIndex rebuilds status-index membership from the order records
	// (the order is authoritative) and returns how many memberships changed.
	ReconcileIndex(ctx context.Context) (int, error)
}
