package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sweetbatch/orderdesk/internal/domain/history"
)

const (
	insertHistorySQL = `INSERT INTO order_history (id, order_id, at, actor, action, prev_value, new_value)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	listHistorySQL = `SELECT id, order_id, at, actor, action, prev_value, new_value
		FROM order_history WHERE order_id = $1 ORDER BY at, id`
)

var _ history.Recorder = (*HistoryRepository)(nil)

// HistoryRepository implements history.Recorder backed by PostgreSQL. The
// table is append-only: there is no update or delete path.
type HistoryRepository struct {
	pool *pgxpool.Pool
}

// NewHistoryRepository returns a HistoryRepository that uses the given pool.
func NewHistoryRepository(pool *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{pool: pool}
}

// Append writes a single audit entry.
func (r *HistoryRepository) Append(ctx context.Context, e history.Entry) error {
	_, err := r.pool.Exec(ctx, insertHistorySQL,
		e.ID, e.OrderID, e.At, e.Actor, e.Action, e.PrevValue, e.NewValue,
	)
	if err != nil {
		return fmt.Errorf("appending history for order %q: %w", e.OrderID, err)
	}
	return nil
}

// ListByOrder returns the audit trail for an order, oldest first.
func (r *HistoryRepository) ListByOrder(ctx context.Context, orderID string) ([]history.Entry, error) {
	rows, err := r.pool.Query(ctx, listHistorySQL, orderID)
	if err != nil {
		return nil, fmt.Errorf("listing history for order %q: %w", orderID, err)
	}
	defer rows.Close()

	var out []history.Entry
	for rows.Next() {
		var e history.Entry
		if err := rows.Scan(&e.ID, &e.OrderID, &e.At, &e.Actor, &e.Action, &e.PrevValue, &e.NewValue); err != nil {
			return nil, fmt.Errorf("listing history for order %q: %w", orderID, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// appendHistoryTx writes an audit entry inside an order transaction so the
// entry commits or rolls back together with the state change it records.
func appendHistoryTx(ctx context.Context, tx pgx.Tx, e history.Entry) error {
	_, err := tx.Exec(ctx, insertHistorySQL,
		e.ID, e.OrderID, e.At, e.Actor, e.Action, e.PrevValue, e.NewValue,
	)
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}
