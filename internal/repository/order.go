package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sweetbatch/orderdesk/internal/domain/history"
	"github.com/sweetbatch/orderdesk/internal/domain/order"
)

const (
	orderColumns = `id, order_number, status, total, items, client, payment_terms, notes,
		rejection_reason, created_at, accepted_at, ready_at, delivered_at, rejected_at, paid_at`

	insertOrderSQL = `INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	getOrderSQL = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	listOrdersByStatusSQL = `SELECT o.id, o.order_number, o.status, o.total, o.items, o.client,
		o.payment_terms, o.notes, o.rejection_reason, o.created_at, o.accepted_at,
		o.ready_at, o.delivered_at, o.rejected_at, o.paid_at
		FROM orders o
		JOIN order_status_index i ON i.order_id = o.id
		WHERE i.status = $1
		ORDER BY o.created_at`

	// Guarded on the previous status so a concurrent transition loses
	// cleanly instead of clobbering.
	transitionOrderSQL = `UPDATE orders SET status = $1, rejection_reason = $2,
		accepted_at = $3, ready_at = $4, delivered_at = $5, rejected_at = $6, paid_at = $7
		WHERE id = $8 AND status = $9`

	updateOrderFieldsSQL = `UPDATE orders SET total = $1, items = $2, client = $3,
		payment_terms = $4, notes = $5 WHERE id = $6`

	upsertIndexSQL = `INSERT INTO order_status_index (order_id, status) VALUES ($1, $2)
		ON CONFLICT (order_id) DO UPDATE SET status = EXCLUDED.status`

	deleteOrderSQL = `DELETE FROM orders WHERE id = $1`

	insertTombstoneSQL = `INSERT INTO deleted_orders (order_id, reason, status, order_copy, deleted_at)
		VALUES ($1, $2, $3, $4, $5)`

	getTombstoneSQL = `SELECT order_id, reason, status, order_copy, deleted_at
		FROM deleted_orders WHERE order_id = $1`

	deleteTombstoneSQL = `DELETE FROM deleted_orders WHERE order_id = $1`

	// Reconciliation: the order record is authoritative, the index is
	// rebuilt from it. Both statements are idempotent.
	reconcileDeleteSQL = `DELETE FROM order_status_index i
		WHERE NOT EXISTS (
			SELECT 1 FROM orders o WHERE o.id = i.order_id AND o.status = i.status
		)`

	reconcileInsertSQL = `INSERT INTO order_status_index (order_id, status)
		SELECT o.id, o.status FROM orders o
		WHERE NOT EXISTS (
			SELECT 1 FROM order_status_index i WHERE i.order_id = o.id
		)
		ON CONFLICT (order_id) DO NOTHING`
)

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository implements order.Repository backed by PostgreSQL.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns an OrderRepository that uses the given pool.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create persists a new order, its status-index entry and the creation audit
// record in one transaction.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order, entry history.Entry) error {
	items, client, err := marshalOrderDocs(o)
	if err != nil {
		return err
	}

	err = inTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, insertOrderSQL,
			o.ID, o.OrderNumber, o.Status, o.Total, items, client,
			o.PaymentTerms, o.Notes, o.RejectionReason, o.CreatedAt,
			o.AcceptedAt, o.ReadyAt, o.DeliveredAt, o.RejectedAt, o.PaidAt,
		); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		if _, err := tx.Exec(ctx, upsertIndexSQL, o.ID, o.Status); err != nil {
			return fmt.Errorf("insert index entry: %w", err)
		}
		return appendHistoryTx(ctx, tx, entry)
	})
	if err != nil {
		return fmt.Errorf("creating order %q: %w", o.ID, err)
	}
	return nil
}

// Get returns the order with the given id.
func (r *OrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	o, err := scanOrder(r.pool.QueryRow(ctx, getOrderSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrNotFound
		}
		return nil, fmt.Errorf("getting order %q: %w", id, err)
	}
	return o, nil
}

// ListByStatus returns the orders in the given status bucket, read through
// the denormalized index.
func (r *OrderRepository) ListByStatus(ctx context.Context, st order.Status) ([]order.Order, error) {
	rows, err := r.pool.Query(ctx, listOrdersByStatusSQL, st)
	if err != nil {
		return nil, fmt.Errorf("listing orders by status %q: %w", st, err)
	}
	defer rows.Close()

	var out []order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("listing orders by status %q: %w", st, err)
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// ApplyTransition persists a validated status change, the index move and the
// audit entry atomically. The order update is guarded on the previous status;
// losing the guard returns order.ErrConflict with nothing applied.
func (r *OrderRepository) ApplyTransition(ctx context.Context, o *order.Order, prev order.Status, entry history.Entry) error {
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, transitionOrderSQL,
			o.Status, o.RejectionReason,
			o.AcceptedAt, o.ReadyAt, o.DeliveredAt, o.RejectedAt, o.PaidAt,
			o.ID, prev,
		)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return order.ErrConflict
		}
		if _, err := tx.Exec(ctx, upsertIndexSQL, o.ID, o.Status); err != nil {
			return fmt.Errorf("move index entry: %w", err)
		}
		return appendHistoryTx(ctx, tx, entry)
	})
	if err != nil {
		if errors.Is(err, order.ErrConflict) {
			return order.ErrConflict
		}
		return fmt.Errorf("transitioning order %q to %s: %w", o.ID, o.Status, err)
	}
	return nil
}

// UpdateFields persists an edit that does not change status.
func (r *OrderRepository) UpdateFields(ctx context.Context, o *order.Order, entry history.Entry) error {
	items, client, err := marshalOrderDocs(o)
	if err != nil {
		return err
	}

	err = inTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, updateOrderFieldsSQL,
			o.Total, items, client, o.PaymentTerms, o.Notes, o.ID,
		)
		if err != nil {
			return fmt.Errorf("update order fields: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return order.ErrNotFound
		}
		return appendHistoryTx(ctx, tx, entry)
	})
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			return order.ErrNotFound
		}
		return fmt.Errorf("editing order %q: %w", o.ID, err)
	}
	return nil
}

// SoftDelete stores the tombstone and removes the order from the live
// collection; the index membership goes with it (FK cascade).
func (r *OrderRepository) SoftDelete(ctx context.Context, t order.Tombstone, entry history.Entry) error {
	copyJSON, err := json.Marshal(t.Order)
	if err != nil {
		return fmt.Errorf("marshaling order copy: %w", err)
	}

	err = inTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, insertTombstoneSQL,
			t.OrderID, t.Reason, t.Status, copyJSON, t.DeletedAt,
		); err != nil {
			return fmt.Errorf("insert tombstone: %w", err)
		}
		if _, err := tx.Exec(ctx, deleteOrderSQL, t.OrderID); err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		return appendHistoryTx(ctx, tx, entry)
	})
	if err != nil {
		return fmt.Errorf("soft deleting order %q: %w", t.OrderID, err)
	}
	return nil
}

// GetTombstone returns the tombstone for a soft-deleted order.
func (r *OrderRepository) GetTombstone(ctx context.Context, id string) (*order.Tombstone, error) {
	var (
		t        order.Tombstone
		copyJSON []byte
	)
	err := r.pool.QueryRow(ctx, getTombstoneSQL, id).Scan(
		&t.OrderID, &t.Reason, &t.Status, &copyJSON, &t.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrTombstoneNotFound
		}
		return nil, fmt.Errorf("getting tombstone %q: %w", id, err)
	}
	if err := json.Unmarshal(copyJSON, &t.Order); err != nil {
		return nil, fmt.Errorf("unmarshaling order copy %q: %w", id, err)
	}
	return &t, nil
}

// Restore reinserts the stored copy verbatim, re-adds the index membership
// for the status the copy held, and drops the tombstone.
func (r *OrderRepository) Restore(ctx context.Context, t order.Tombstone, entry history.Entry) error {
	o := t.Order
	items, client, err := marshalOrderDocs(&o)
	if err != nil {
		return err
	}

	err = inTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, insertOrderSQL,
			o.ID, o.OrderNumber, o.Status, o.Total, items, client,
			o.PaymentTerms, o.Notes, o.RejectionReason, o.CreatedAt,
			o.AcceptedAt, o.ReadyAt, o.DeliveredAt, o.RejectedAt, o.PaidAt,
		); err != nil {
			return fmt.Errorf("reinsert order: %w", err)
		}
		if _, err := tx.Exec(ctx, upsertIndexSQL, o.ID, t.Status); err != nil {
			return fmt.Errorf("reinsert index entry: %w", err)
		}
		if _, err := tx.Exec(ctx, deleteTombstoneSQL, t.OrderID); err != nil {
			return fmt.Errorf("delete tombstone: %w", err)
		}
		return appendHistoryTx(ctx, tx, entry)
	})
	if err != nil {
		return fmt.Errorf("restoring order %q: %w", t.OrderID, err)
	}
	return nil
}

// ReconcileIndex removes index memberships that disagree with the order
// records and adds the missing ones. Returns how many memberships changed.
func (r *OrderRepository) ReconcileIndex(ctx context.Context) (int, error) {
	var changed int
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		del, err := tx.Exec(ctx, reconcileDeleteSQL)
		if err != nil {
			return fmt.Errorf("remove stale memberships: %w", err)
		}
		ins, err := tx.Exec(ctx, reconcileInsertSQL)
		if err != nil {
			return fmt.Errorf("add missing memberships: %w", err)
		}
		changed = int(del.RowsAffected() + ins.RowsAffected())
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("reconciling status index: %w", err)
	}
	return changed, nil
}

// rowScanner covers both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*order.Order, error) {
	var (
		o      order.Order
		items  []byte
		client []byte
	)
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.Status, &o.Total, &items, &client,
		&o.PaymentTerms, &o.Notes, &o.RejectionReason, &o.CreatedAt,
		&o.AcceptedAt, &o.ReadyAt, &o.DeliveredAt, &o.RejectedAt, &o.PaidAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("unmarshaling order items: %w", err)
	}
	if err := json.Unmarshal(client, &o.Client); err != nil {
		return nil, fmt.Errorf("unmarshaling order client: %w", err)
	}
	return &o, nil
}

func marshalOrderDocs(o *order.Order) (items, client []byte, err error) {
	items, err = json.Marshal(o.Items)
	if err != nil {
		return nil, nil, fmt.Errorf("marshaling order items: %w", err)
	}
	client, err = json.Marshal(o.Client)
	if err != nil {
		return nil, nil, fmt.Errorf("marshaling order client: %w", err)
	}
	return items, client, nil
}
