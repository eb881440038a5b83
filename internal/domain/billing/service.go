package billing

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sweetbatch/orderdesk/internal/domain/history"
	"github.com/sweetbatch/orderdesk/internal/domain/order"
)

// Service derives billing artifacts from orders.
type Service struct {
	orders *order.Service
	repo   Repository
	hist   history.Recorder

	now   func() time.Time
	newID func() string
}

// NewService creates a billing Service.
func NewService(orders *order.Service, repo Repository, hist history.Recorder) *Service {
	return &Service{
		orders: orders,
		repo:   repo,
		hist:   hist,
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}
}

// DeriveInvoice converts a delivered order into an invoice. Calling it again
// for the same order returns the existing invoice unchanged: the invoice id
// mirrors the order id, so the write is an upsert-by-key and a retried or
// concurrent call cannot create a duplicate or overwrite the amount.
func (s *Service) DeriveInvoice(ctx context.Context, orderID, actor string) (*Invoice, error) {
	o, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetInvoiceByOrder(ctx, orderID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrInvoiceNotFound) {
		return nil, errors.Wrap(err, "lookup invoice")
	}

	if o.Status != order.StatusDelivered && o.Status != order.StatusBilled {
		return nil, ErrNotCollectible
	}

	now := s.now()
	inv, err := s.repo.UpsertInvoice(ctx, Invoice{
		ID:          o.ID,
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		Amount:      o.Total,
		DueDate:     o.CreatedAt.Add(DueOffset(o.PaymentTerms)),
		Status:      InvoicePending,
		CreatedAt:   now,
	})
	if err != nil {
		return nil, errors.Wrap(err, "upsert invoice")
	}

	if o.Status == order.StatusDelivered {
		if _, err := s.orders.MarkBilled(ctx, o.ID, actor); err != nil {
			// A concurrent deriver may have advanced the order already; the
			// invoice itself is in place either way.
			var itErr *order.InvalidTransitionError
			if !errors.As(err, &itErr) {
				return nil, errors.Wrap(err, "mark order billed")
			}
		}
	}

	// Audit appends are best-effort once the billing write has committed;
	// history is never read for business decisions.
	_ = s.hist.Append(ctx, history.Entry{
		ID:       s.newID(),
		OrderID:  o.ID,
		At:       now,
		Actor:    actor,
		Action:   history.ActionInvoiced,
		NewValue: inv.Amount.String(),
	})
	return inv, nil
}

// PaymentRequest holds the input for recording a payment.
type PaymentRequest struct {
	OrderID     string
	Amount      decimal.Decimal
	Bank        string
	DepositDate time.Time
	Partial     bool
	Actor       string
}

// RecordPayment always appends a payment record. A non-partial payment is
// additionally treated as full settlement: the invoice becomes paid and the
// order advances through billed to paid. Partial payments accumulate for
// later manual reconciliation and change no status.
func (s *Service) RecordPayment(ctx context.Context, req PaymentRequest) (*Payment, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	o, err := s.orders.Get(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	// A settling payment needs an invoice, so resolve it before anything is
	// written: failing afterwards would leave a committed payment behind a
	// not-found error and a retry would append a duplicate.
	var inv *Invoice
	if !req.Partial {
		if inv, err = s.repo.GetInvoiceByOrder(ctx, o.ID); err != nil {
			return nil, errors.Wrap(err, "settle payment")
		}
	}

	now := s.now()
	p := Payment{
		ID:          s.newID(),
		OrderID:     o.ID,
		Amount:      req.Amount,
		Bank:        req.Bank,
		DepositDate: req.DepositDate,
		Partial:     req.Partial,
		CreatedAt:   now,
	}
	if p.DepositDate.IsZero() {
		p.DepositDate = now
	}
	if err := s.repo.CreatePayment(ctx, p); err != nil {
		return nil, errors.Wrap(err, "create payment")
	}

	_ = s.hist.Append(ctx, history.Entry{
		ID:       s.newID(),
		OrderID:  o.ID,
		At:       now,
		Actor:    req.Actor,
		Action:   history.ActionPayment,
		NewValue: req.Amount.String(),
	})

	if req.Partial {
		return &p, nil
	}

	// Full settlement: invoice to paid, order through billed to paid.
	if inv.Status != InvoicePaid {
		if err := s.repo.SetInvoiceStatus(ctx, inv.ID, InvoicePaid); err != nil {
			return nil, errors.Wrap(err, "mark invoice paid")
		}
	}

	if o.Status == order.StatusDelivered {
		if o, err = s.orders.MarkBilled(ctx, o.ID, req.Actor); err != nil {
			return nil, errors.Wrap(err, "mark order billed")
		}
	}
	if o.Status == order.StatusBilled {
		if _, err = s.orders.MarkPaid(ctx, o.ID, req.Actor); err != nil {
			return nil, errors.Wrap(err, "mark order paid")
		}
	}
	return &p, nil
}

// ListPayments returns the payments recorded against an order.
func (s *Service) ListPayments(ctx context.Context, orderID string) ([]Payment, error) {
	return s.repo.ListPaymentsByOrder(ctx, orderID)
}

// GetInvoice returns the invoice derived from an order.
func (s *Service) GetInvoice(ctx context.Context, orderID string) (*Invoice, error) {
	return s.repo.GetInvoiceByOrder(ctx, orderID)
}

// CreateReminder attaches a follow-up reminder to an order. Informational
// only: no order or invoice state changes.
func (s *Service) CreateReminder(ctx context.Context, orderID, actor, message string) (*Followup, error) {
	return s.createFollowup(ctx, orderID, actor, FollowupReminder, message, history.ActionReminder)
}

// SendWarning attaches a payment warning to an order. Informational only.
func (s *Service) SendWarning(ctx context.Context, orderID, actor, message string) (*Followup, error) {
	return s.createFollowup(ctx, orderID, actor, FollowupWarning, message, history.ActionWarning)
}

// ListFollowups returns the reminders and warnings attached to an order.
func (s *Service) ListFollowups(ctx context.Context, orderID string) ([]Followup, error) {
	return s.repo.ListFollowupsByOrder(ctx, orderID)
}

func (s *Service) createFollowup(ctx context.Context, orderID, actor, kind, message, action string) (*Followup, error) {
	o, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	f := Followup{
		ID:        s.newID(),
		OrderID:   o.ID,
		Kind:      kind,
		Message:   message,
		CreatedAt: now,
	}
	if err := s.repo.CreateFollowup(ctx, f); err != nil {
		return nil, errors.Wrap(err, "create followup")
	}

	_ = s.hist.Append(ctx, history.Entry{
		ID:       s.newID(),
		OrderID:  o.ID,
		At:       now,
		Actor:    actor,
		Action:   action,
		NewValue: message,
	})
	return &f, nil
}
