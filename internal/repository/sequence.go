package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sweetbatch/orderdesk/internal/domain/sequence"
)

// The single UPDATE ... RETURNING is the atomic read-modify-write the
// allocator contract requires: concurrent callers serialize on the row lock
// and each sees a distinct value, with no duplicate and no gap.
const nextCounterSQL = `UPDATE counters SET value = value + 1
	WHERE name = $1 RETURNING value`

const orderNumberCounter = "order_number"

var _ sequence.Allocator = (*SequenceAllocator)(nil)

// SequenceAllocator mints strictly increasing integers from a persisted
// counter row.
type SequenceAllocator struct {
	pool *pgxpool.Pool
}

// NewSequenceAllocator returns a SequenceAllocator that uses the given pool.
func NewSequenceAllocator(pool *pgxpool.Pool) *SequenceAllocator {
	return &SequenceAllocator{pool: pool}
}

// Next atomically increments the order-number counter and returns the new
// value.
func (a *SequenceAllocator) Next(ctx context.Context) (int64, error) {
	var value int64
	err := a.pool.QueryRow(ctx, nextCounterSQL, orderNumberCounter).Scan(&value)
	if err != nil {
		return 0, fmt.Errorf("incrementing counter %q: %w", orderNumberCounter, err)
	}
	return value, nil
}
