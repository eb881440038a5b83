package order

import (
	"fmt"

	"github.com/go-faster/errors"
)

// Sentinel errors for order validation.
var (
	ErrNotFound          = errors.New("order not found")
	ErrInvalidStatus     = errors.New("unknown status")
	ErrEmptyItems        = errors.New("items required")
	ErrEmptyReason       = errors.New("reason required")
	ErrNotEditable       = errors.New("order is no longer editable")
	ErrTombstoneNotFound = errors.New("deleted order not found")
	ErrConflict          = errors.New("order modified concurrently")
)

// InvalidTransitionError indicates a status change the state machine does not
// permit from the order's current state. The order is left unchanged.
type InvalidTransitionError struct {
	OrderID string
	From    Status
	To      Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("order %s: illegal transition %s -> %s", e.OrderID, e.From, e.To)
}

// InvalidQuantityError indicates a line item with a non-positive quantity.
type InvalidQuantityError struct {
	ProductID string
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity must be greater than 0 for product %s", e.ProductID)
}

// ProductNotFoundError indicates a requested product does not exist in the
// catalog.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

// UpstreamError wraps a backing-store failure. Applied reports whether any
// part of the operation may have been committed before the failure: false
// means nothing changed and the whole call is safe to retry; true means the
// caller should re-check current state (and let the reconcile pass repair
// the index) instead of blindly retrying.
type UpstreamError struct {
	Op      string
	Applied bool
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Applied {
		return fmt.Sprintf("%s: partially applied, repair pending: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
