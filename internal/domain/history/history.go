// Package history defines the append-only audit trail of order transitions
// and edits. Entries are never mutated or deleted, and never consulted for
// business decisions; they exist for the audit listing only.
package history

import (
	"context"
	"time"
)

// Actions recorded in the audit trail.
const (
	ActionCreated  = "created"
	ActionStatus   = "status_changed"
	ActionEdited   = "edited"
	ActionDeleted  = "deleted"
	ActionRestored = "restored"
	ActionInvoiced = "invoiced"
	ActionPayment  = "payment_recorded"
	ActionReminder = "reminder_created"
	ActionWarning  = "warning_sent"
)

// Entry is a single audit record for an order.
type Entry struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	At        time.Time `json:"at"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	PrevValue string    `json:"previousValue,omitempty"`
	NewValue  string    `json:"newValue,omitempty"`
}

// Recorder appends audit entries and lists them per order.
type Recorder interface {
	Append(ctx context.Context, e Entry) error
	ListByOrder(ctx context.Context, orderID string) ([]Entry, error)
}
