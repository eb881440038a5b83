package repository

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sweetbatch/orderdesk/internal/domain/billing"
)

const (
	// ON CONFLICT DO NOTHING plus the follow-up select makes derivation an
	// idempotent upsert-by-key: a retried or concurrent call gets the row
	// the first writer stored, amount untouched.
	upsertInvoiceSQL = `INSERT INTO invoices (id, order_id, order_number, amount, due_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING`

	getInvoiceByOrderSQL = `SELECT id, order_id, order_number, amount, due_date, status, created_at
		FROM invoices WHERE order_id = $1`

	setInvoiceStatusSQL = `UPDATE invoices SET status = $1 WHERE id = $2`

	insertPaymentSQL = `INSERT INTO payments (id, order_id, amount, bank, deposit_date, partial, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	listPaymentsSQL = `SELECT id, order_id, amount, bank, deposit_date, partial, created_at
		FROM payments WHERE order_id = $1 ORDER BY created_at`

	insertFollowupSQL = `INSERT INTO followups (id, order_id, kind, message, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	listFollowupsSQL = `SELECT id, order_id, kind, message, created_at
		FROM followups WHERE order_id = $1 ORDER BY created_at`
)

var _ billing.Repository = (*BillingRepository)(nil)

// BillingRepository implements billing.Repository backed by PostgreSQL.
type BillingRepository struct {
	pool *pgxpool.Pool
}

// NewBillingRepository returns a BillingRepository that uses the given pool.
func NewBillingRepository(pool *pgxpool.Pool) *BillingRepository {
	return &BillingRepository{pool: pool}
}

// UpsertInvoice inserts the invoice keyed by its id and returns the stored
// row; a conflicting insert leaves the existing invoice unchanged.
func (r *BillingRepository) UpsertInvoice(ctx context.Context, inv billing.Invoice) (*billing.Invoice, error) {
	_, err := r.pool.Exec(ctx, upsertInvoiceSQL,
		inv.ID, inv.OrderID, inv.OrderNumber, inv.Amount, inv.DueDate, inv.Status, inv.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upserting invoice %q: %w", inv.ID, err)
	}
	return r.GetInvoiceByOrder(ctx, inv.OrderID)
}

// GetInvoiceByOrder returns the invoice derived from the given order.
func (r *BillingRepository) GetInvoiceByOrder(ctx context.Context, orderID string) (*billing.Invoice, error) {
	var inv billing.Invoice
	err := r.pool.QueryRow(ctx, getInvoiceByOrderSQL, orderID).Scan(
		&inv.ID, &inv.OrderID, &inv.OrderNumber, &inv.Amount, &inv.DueDate, &inv.Status, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, billing.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("getting invoice for order %q: %w", orderID, err)
	}
	return &inv, nil
}

// SetInvoiceStatus updates the collection state of an invoice.
func (r *BillingRepository) SetInvoiceStatus(ctx context.Context, id string, st billing.InvoiceStatus) error {
	tag, err := r.pool.Exec(ctx, setInvoiceStatusSQL, st, id)
	if err != nil {
		return fmt.Errorf("setting invoice %q status: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return billing.ErrInvoiceNotFound
	}
	return nil
}

// CreatePayment appends a payment record.
func (r *BillingRepository) CreatePayment(ctx context.Context, p billing.Payment) error {
	_, err := r.pool.Exec(ctx, insertPaymentSQL,
		p.ID, p.OrderID, p.Amount, p.Bank, p.DepositDate, p.Partial, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating payment %q: %w", p.ID, err)
	}
	return nil
}

// ListPaymentsByOrder returns the payments recorded against an order.
func (r *BillingRepository) ListPaymentsByOrder(ctx context.Context, orderID string) ([]billing.Payment, error) {
	rows, err := r.pool.Query(ctx, listPaymentsSQL, orderID)
	if err != nil {
		return nil, fmt.Errorf("listing payments for order %q: %w", orderID, err)
	}
	defer rows.Close()

	var out []billing.Payment
	for rows.Next() {
		var p billing.Payment
		if err := rows.Scan(&p.ID, &p.OrderID, &p.Amount, &p.Bank, &p.DepositDate, &p.Partial, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("listing payments for order %q: %w", orderID, err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// CreateFollowup appends a reminder or warning record.
func (r *BillingRepository) CreateFollowup(ctx context.Context, f billing.Followup) error {
	_, err := r.pool.Exec(ctx, insertFollowupSQL,
		f.ID, f.OrderID, f.Kind, f.Message, f.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating followup %q: %w", f.ID, err)
	}
	return nil
}

// ListFollowupsByOrder returns the reminders and warnings for an order.
func (r *BillingRepository) ListFollowupsByOrder(ctx context.Context, orderID string) ([]billing.Followup, error) {
	rows, err := r.pool.Query(ctx, listFollowupsSQL, orderID)
	if err != nil {
		return nil, fmt.Errorf("listing followups for order %q: %w", orderID, err)
	}
	defer rows.Close()

	var out []billing.Followup
	for rows.Next() {
		var f billing.Followup
		if err := rows.Scan(&f.ID, &f.OrderID, &f.Kind, &f.Message, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("listing followups for order %q: %w", orderID, err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
