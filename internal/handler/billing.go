package handler

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sweetbatch/orderdesk/gen/oas"
	"github.com/sweetbatch/orderdesk/internal/domain/billing"
)

func toOASInvoice(inv *billing.Invoice) *oas.Invoice {
	return &oas.Invoice{
		ID:          inv.ID,
		OrderId:     inv.OrderID,
		OrderNumber: inv.OrderNumber,
		Amount:      inv.Amount.String(),
		DueDate:     inv.DueDate,
		Status:      string(inv.Status),
		CreatedAt:   inv.CreatedAt,
	}
}

func toOASPayment(p *billing.Payment) *oas.Payment {
	return &oas.Payment{
		ID:          p.ID,
		OrderId:     p.OrderID,
		Amount:      p.Amount.String(),
		Bank:        optStr(p.Bank),
		DepositDate: p.DepositDate,
		Partial:     p.Partial,
		CreatedAt:   p.CreatedAt,
	}
}

func toOASFollowup(f *billing.Followup) *oas.Followup {
	return &oas.Followup{
		ID:        f.ID,
		OrderId:   f.OrderID,
		Kind:      f.Kind,
		Message:   optStr(f.Message),
		CreatedAt: f.CreatedAt,
	}
}

// DeriveInvoice implements deriveInvoice operation.
func (h *Handler) DeriveInvoice(ctx context.Context, params oas.DeriveInvoiceParams) (oas.DeriveInvoiceRes, error) {
	inv, err := h.billing.DeriveInvoice(ctx, params.ID, actor(params.XActor))
	if err != nil {
		switch errClass(err) {
		case http.StatusNotFound:
			return &oas.DeriveInvoiceNotFound{Code: 404, Message: err.Error()}, nil
		case http.StatusConflict:
			return &oas.DeriveInvoiceConflict{Code: 409, Message: err.Error()}, nil
		}
		return nil, err
	}
	return toOASInvoice(inv), nil
}

// GetInvoice implements getInvoice operation.
func (h *Handler) GetInvoice(ctx context.Context, params oas.GetInvoiceParams) (oas.GetInvoiceRes, error) {
	inv, err := h.billing.GetInvoice(ctx, params.ID)
	if err != nil {
		if errClass(err) == http.StatusNotFound {
			return &oas.GetInvoiceNotFound{Code: 404, Message: err.Error()}, nil
		}
		return nil, err
	}
	return toOASInvoice(inv), nil
}

// SubmitInvoice implements submitInvoice operation.
//
// Sends the order's electronic invoice payload to the external provider and
// returns the acceptance code. The invoice must be derived first so the
// submission always matches a frozen total.
func (h *Handler) SubmitInvoice(ctx context.Context, params oas.SubmitInvoiceParams) (oas.SubmitInvoiceRes, error) {
	if h.invoicer == nil {
		return nil, errInvoicerNotConfigured
	}

	if _, err := h.billing.GetInvoice(ctx, params.ID); err != nil {
		if errClass(err) == http.StatusNotFound {
			return &oas.SubmitInvoiceNotFound{Code: 404, Message: err.Error()}, nil
		}
		return nil, err
	}
	o, err := h.orders.Get(ctx, params.ID)
	if err != nil {
		if errClass(err) == http.StatusNotFound {
			return &oas.SubmitInvoiceNotFound{Code: 404, Message: err.Error()}, nil
		}
		return nil, err
	}

	code, err := h.invoicer.Submit(ctx, o)
	if err != nil {
		return nil, err
	}
	return &oas.SubmitInvoiceOK{Code: code}, nil
}

// RecordPayment implements recordPayment operation.
func (h *Handler) RecordPayment(ctx context.Context, req *oas.PaymentRequest, params oas.RecordPaymentParams) (oas.RecordPaymentRes, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return &oas.RecordPaymentBadRequest{Code: 400, Message: "invalid amount"}, nil
	}

	p, err := h.billing.RecordPayment(ctx, billing.PaymentRequest{
		OrderID:     params.ID,
		Amount:      amount,
		Bank:        req.Bank.Or(""),
		DepositDate: req.DepositDate,
		Partial:     req.Partial.Or(false),
		Actor:       actor(params.XActor),
	})
	if err != nil {
		switch errClass(err) {
		case http.StatusBadRequest:
			return &oas.RecordPaymentBadRequest{Code: 400, Message: err.Error()}, nil
		case http.StatusNotFound:
			return &oas.RecordPaymentNotFound{Code: 404, Message: err.Error()}, nil
		case http.StatusConflict:
			return &oas.RecordPaymentConflict{Code: 409, Message: err.Error()}, nil
		}
		return nil, err
	}
	return toOASPayment(p), nil
}

// ListPayments implements listPayments operation.
func (h *Handler) ListPayments(ctx context.Context, params oas.ListPaymentsParams) ([]oas.Payment, error) {
	payments, err := h.billing.ListPayments(ctx, params.ID)
	if err != nil {
		return nil, err
	}

	res := make([]oas.Payment, len(payments))
	for i := range payments {
		res[i] = *toOASPayment(&payments[i])
	}
	return res, nil
}

// CreateReminder implements createReminder operation.
func (h *Handler) CreateReminder(ctx context.Context, req *oas.FollowupRequest, params oas.CreateReminderParams) (oas.CreateReminderRes, error) {
	f, err := h.billing.CreateReminder(ctx, params.ID, actor(params.XActor), req.Message)
	if err != nil {
		switch errClass(err) {
		case http.StatusBadRequest:
			return &oas.CreateReminderBadRequest{Code: 400, Message: err.Error()}, nil
		case http.StatusNotFound:
			return &oas.CreateReminderNotFound{Code: 404, Message: err.Error()}, nil
		case http.StatusConflict:
			return &oas.CreateReminderConflict{Code: 409, Message: err.Error()}, nil
		}
		return nil, err
	}
	return toOASFollowup(f), nil
}

// SendWarning implements sendWarning operation.
func (h *Handler) SendWarning(ctx context.Context, req *oas.FollowupRequest, params oas.SendWarningParams) (oas.SendWarningRes, error) {
	f, err := h.billing.SendWarning(ctx, params.ID, actor(params.XActor), req.Message)
	if err != nil {
		switch errClass(err) {
		case http.StatusBadRequest:
			return &oas.SendWarningBadRequest{Code: 400, Message: err.Error()}, nil
		case http.StatusNotFound:
			return &oas.SendWarningNotFound{Code: 404, Message: err.Error()}, nil
		case http.StatusConflict:
			return &oas.SendWarningConflict{Code: 409, Message: err.Error()}, nil
		}
		return nil, err
	}
	return toOASFollowup(f), nil
}

// ListFollowups implements listFollowups operation.
func (h *Handler) ListFollowups(ctx context.Context, params oas.ListFollowupsParams) ([]oas.Followup, error) {
	followups, err := h.billing.ListFollowups(ctx, params.ID)
	if err != nil {
		return nil, err
	}

	res := make([]oas.Followup, len(followups))
	for i := range followups {
		res[i] = *toOASFollowup(&followups[i])
	}
	return res, nil
}
