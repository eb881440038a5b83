package order

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/sweetbatch/orderdesk/internal/domain/history"
	"github.com/sweetbatch/orderdesk/internal/domain/pricing"
	"github.com/sweetbatch/orderdesk/internal/domain/product"
	"github.com/sweetbatch/orderdesk/internal/domain/sequence"
)

// ItemInput is a requested cart line: a catalog product and a raw quantity.
// The quantity is normalized to the product's ordering step before pricing.
type ItemInput struct {
	ProductID string
	Quantity  int
}

// CreateRequest holds the input for creating an order.
type CreateRequest struct {
	Items        []ItemInput
	Client       Client
	PaymentTerms string
	Notes        string
	Actor        string
}

// EditRequest is a partial update. Nil fields are left unchanged. There is no
// total field: when items change, the total is always recomputed by the
// pricing engine, never taken from the caller.
type EditRequest struct {
	Items        []ItemInput
	Client       *Client
	PaymentTerms *string
	Notes        *string
}

// Service drives the order lifecycle: creation with number allocation and
// pricing, status transitions with index maintenance, edits, soft deletion.
type Service struct {
	products product.Repository
	seq      sequence.Allocator
	repo     Repository

	now   func() time.Time
	newID func() string

	tracer  trace.Tracer
	created metric.Int64Counter
}

// Option configures optional Service dependencies.
type Option func(*Service)

// WithTelemetry attaches a tracer for transition spans and a counter
// incremented on every created order.
func WithTelemetry(tracer trace.Tracer, created metric.Int64Counter) Option {
	return func(s *Service) {
		s.tracer = tracer
		s.created = created
	}
}

// NewService creates an order Service with the required dependencies.
func NewService(products product.Repository, seq sequence.Allocator, repo Repository, opts ...Option) *Service {
	s := &Service{
		products: products,
		seq:      seq,
		repo:     repo,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates and prices the cart, allocates the next order number, and
// persists the order together with its status-index entry and the creation
// audit record.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyItems
	}

	items, total, err := s.priceItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	// Number allocation is the last step before the write so a failed
	// persist burns at most one value.
	n, err := s.seq.Next(ctx)
	if err != nil {
		return nil, &UpstreamError{Op: "allocate order number", Err: err}
	}

	now := s.now()
	o := &Order{
		ID:           s.newID(),
		OrderNumber:  sequence.Format(n),
		Status:       StatusPending,
		Total:        total,
		Items:        items,
		Client:       req.Client,
		PaymentTerms: req.PaymentTerms,
		Notes:        req.Notes,
		CreatedAt:    now,
	}

	entry := history.Entry{
		ID:       s.newID(),
		OrderID:  o.ID,
		At:       now,
		Actor:    req.Actor,
		Action:   history.ActionCreated,
		NewValue: string(StatusPending),
	}
	if err := s.repo.Create(ctx, o, entry); err != nil {
		// The allocation above already committed, so a failed persist leaves
		// a burned number behind: partially applied, not safe to retry
		// blindly.
		return nil, &UpstreamError{Op: "create order", Applied: true, Err: err}
	}

	if s.created != nil {
		s.created.Add(ctx, 1)
	}
	return o, nil
}

// Get returns the order with the given id.
func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	return s.repo.Get(ctx, id)
}

// ListByStatus returns the orders currently in the given status bucket.
func (s *Service) ListByStatus(ctx context.Context, st Status) ([]Order, error) {
	if !st.Valid() {
		return nil, errors.Wrapf(ErrInvalidStatus, "%q", st)
	}
	return s.repo.ListByStatus(ctx, st)
}

// Accept moves a pending order into preparation.
func (s *Service) Accept(ctx context.Context, id, actor string) (*Order, error) {
	return s.transition(ctx, id, StatusPreparing, actor, func(o *Order, now time.Time) {
		if o.AcceptedAt == nil {
			o.AcceptedAt = &now
		}
	})
}

// MarkReady marks a preparing order as ready for delivery.
func (s *Service) MarkReady(ctx context.Context, id, actor string) (*Order, error) {
	return s.transition(ctx, id, StatusReady, actor, func(o *Order, now time.Time) {
		if o.ReadyAt == nil {
			o.ReadyAt = &now
		}
	})
}

// MarkDelivered marks a ready order as delivered.
func (s *Service) MarkDelivered(ctx context.Context, id, actor string) (*Order, error) {
	return s.transition(ctx, id, StatusDelivered, actor, func(o *Order, now time.Time) {
		if o.DeliveredAt == nil {
			o.DeliveredAt = &now
		}
	})
}

// Reject rejects a pending order. The reason is mandatory and kept on the
// record even if the order is later recycled.
func (s *Service) Reject(ctx context.Context, id, actor, reason string) (*Order, error) {
	if reason == "" {
		return nil, ErrEmptyReason
	}
	return s.transition(ctx, id, StatusRejected, actor, func(o *Order, now time.Time) {
		o.RejectionReason = reason
		if o.RejectedAt == nil {
			o.RejectedAt = &now
		}
	})
}

// Recycle returns a rejected order to the pending queue. The historical
// rejection reason is preserved.
func (s *Service) Recycle(ctx context.Context, id, actor string) (*Order, error) {
	return s.transition(ctx, id, StatusPending, actor, nil)
}

// MarkBilled records that an invoice has been derived for a delivered order.
func (s *Service) MarkBilled(ctx context.Context, id, actor string) (*Order, error) {
	return s.transition(ctx, id, StatusBilled, actor, nil)
}

// MarkPaid settles a billed order.
func (s *Service) MarkPaid(ctx context.Context, id, actor string) (*Order, error) {
	return s.transition(ctx, id, StatusPaid, actor, func(o *Order, now time.Time) {
		if o.PaidAt == nil {
			o.PaidAt = &now
		}
	})
}

// transition validates the requested status change against the state machine
// and persists it atomically with the index move and the audit entry.
func (s *Service) transition(ctx context.Context, id string, to Status, actor string, mutate func(*Order, time.Time)) (*Order, error) {
	if s.tracer != nil {
		var span trace.Span
		ctx, span = s.tracer.Start(ctx, "order.transition",
			trace.WithAttributes(
				attribute.String("order.id", id),
				attribute.String("order.to", string(to)),
			))
		defer span.End()
	}

	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !o.Status.CanTransition(to) {
		return nil, &InvalidTransitionError{OrderID: id, From: o.Status, To: to}
	}

	prev := o.Status
	now := s.now()
	o.Status = to
	if mutate != nil {
		mutate(o, now)
	}

	entry := history.Entry{
		ID:        s.newID(),
		OrderID:   o.ID,
		At:        now,
		Actor:     actor,
		Action:    history.ActionStatus,
		PrevValue: string(prev),
		NewValue:  string(to),
	}
	if err := s.repo.ApplyTransition(ctx, o, prev, entry); err != nil {
		return nil, &UpstreamError{Op: "apply transition", Err: err}
	}
	return o, nil
}

// Edit applies a partial update to an order that has not shipped. Changing
// the items recomputes the total through the pricing engine.
func (s *Service) Edit(ctx context.Context, id, actor string, req EditRequest) (*Order, error) {
	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !o.Status.editable() {
		return nil, ErrNotEditable
	}

	prevTotal := o.Total
	if req.Items != nil {
		if len(req.Items) == 0 {
			return nil, ErrEmptyItems
		}
		items, total, err := s.priceItems(ctx, req.Items)
		if err != nil {
			return nil, err
		}
		o.Items = items
		o.Total = total
	}
	if req.Client != nil {
		o.Client = *req.Client
	}
	if req.PaymentTerms != nil {
		o.PaymentTerms = *req.PaymentTerms
	}
	if req.Notes != nil {
		o.Notes = *req.Notes
	}

	entry := history.Entry{
		ID:        s.newID(),
		OrderID:   o.ID,
		At:        s.now(),
		Actor:     actor,
		Action:    history.ActionEdited,
		PrevValue: prevTotal.String(),
		NewValue:  o.Total.String(),
	}
	if err := s.repo.UpdateFields(ctx, o, entry); err != nil {
		return nil, &UpstreamError{Op: "edit order", Err: err}
	}
	return o, nil
}

// SoftDelete removes the order and its index membership from the live
// collection, keeping a tombstone with the full copy for restoration.
func (s *Service) SoftDelete(ctx context.Context, id, actor, reason string) error {
	if reason == "" {
		return ErrEmptyReason
	}
	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	now := s.now()
	t := Tombstone{
		OrderID:   o.ID,
		Reason:    reason,
		Status:    o.Status,
		Order:     *o,
		DeletedAt: now,
	}
	entry := history.Entry{
		ID:        s.newID(),
		OrderID:   o.ID,
		At:        now,
		Actor:     actor,
		Action:    history.ActionDeleted,
		PrevValue: string(o.Status),
		NewValue:  reason,
	}
	if err := s.repo.SoftDelete(ctx, t, entry); err != nil {
		return &UpstreamError{Op: "soft delete order", Err: err}
	}
	return nil
}

// Restore reinserts a soft-deleted order verbatim, re-adding the status
// index membership for whatever status the copy held.
func (s *Service) Restore(ctx context.Context, id, actor string) (*Order, error) {
	t, err := s.repo.GetTombstone(ctx, id)
	if err != nil {
		return nil, err
	}

	entry := history.Entry{
		ID:       s.newID(),
		OrderID:  t.OrderID,
		At:       s.now(),
		Actor:    actor,
		Action:   history.ActionRestored,
		NewValue: string(t.Status),
	}
	if err := s.repo.Restore(ctx, *t, entry); err != nil {
		return nil, &UpstreamError{Op: "restore order", Err: err}
	}
	o := t.Order
	return &o, nil
}

// ReconcileIndex repairs status-index drift from the order records. It is
// idempotent and safe to run concurrently with itself.
func (s *Service) ReconcileIndex(ctx context.Context) (int, error) {
	n, err := s.repo.ReconcileIndex(ctx)
	if err != nil {
		return 0, &UpstreamError{Op: "reconcile status index", Err: err}
	}
	return n, nil
}

// priceItems resolves catalog products, normalizes quantities to each
// product's ordering step, and prices every line through the tier engine.
// The total is the sum of already-rounded line totals and is never re-rounded.
func (s *Service) priceItems(ctx context.Context, inputs []ItemInput) ([]Item, decimal.Decimal, error) {
	ids := make([]string, len(inputs))
	for i, in := range inputs {
		if in.Quantity <= 0 {
			return nil, decimal.Zero, &InvalidQuantityError{ProductID: in.ProductID}
		}
		ids[i] = in.ProductID
	}

	fetched, err := s.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, decimal.Zero, errors.Wrap(err, "get products")
	}
	byID := make(map[string]product.Product, len(fetched))
	for _, p := range fetched {
		byID[p.ID] = p
	}

	items := make([]Item, 0, len(inputs))
	total := decimal.Zero
	for _, in := range inputs {
		p, ok := byID[in.ProductID]
		if !ok {
			return nil, decimal.Zero, &ProductNotFoundError{ProductID: in.ProductID}
		}

		qty := pricing.NormalizeToStep(in.Quantity, p.EffectiveStep())
		if qty == 0 {
			return nil, decimal.Zero, &InvalidQuantityError{ProductID: in.ProductID}
		}
		line := pricing.ComputeLine(p.Price, p.Tiers, qty)

		items = append(items, Item{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  qty,
			UnitPrice: p.Price,
			LineTotal: line.Total,
		})
		total = total.Add(line.Total)
	}
	return items, total, nil
}
