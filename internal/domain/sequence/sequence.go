// Package sequence mints the human-facing order numbers. Allocation must be
// linearizable: two orders sharing a number means duplicate invoices, so the
// increment always runs as an atomic read-modify-write in the backing store,
// never as an in-process variable.
package sequence

import (
	"context"
	"fmt"
)

// Prefix is the order-number prefix shown to customers.
const Prefix = "ORD-"

// Allocator returns strictly increasing integers under concurrent callers:
// N concurrent calls against counter value k return exactly {k+1 .. k+N},
// in unspecified order, with no duplicate and no gap.
type Allocator interface {
	Next(ctx context.Context) (int64, error)
}

// Format renders an allocated integer as an order number. Values below 1000
// are zero-padded to three digits for display; larger values use their full
// decimal representation, so no two integers ever format identically.
func Format(n int64) string {
	return fmt.Sprintf("%s%03d", Prefix, n)
}
