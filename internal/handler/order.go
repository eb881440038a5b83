package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sweetbatch/orderdesk/gen/oas"
	"github.com/sweetbatch/orderdesk/internal/domain/order"
)

func toItemInputs(items []oas.OrderItemInput) []order.ItemInput {
	if items == nil {
		return nil
	}
	inputs := make([]order.ItemInput, len(items))
	for i, it := range items {
		inputs[i] = order.ItemInput{ProductID: it.ProductId, Quantity: it.Quantity}
	}
	return inputs
}

func toDomainClient(c oas.ClientInfo) order.Client {
	return order.Client{
		Name:    c.Name,
		Address: c.Address.Or(""),
		TaxID:   c.TaxId.Or(""),
		Phone:   c.Phone.Or(""),
	}
}

func optStr(s string) oas.OptString {
	if s == "" {
		return oas.OptString{}
	}
	return oas.NewOptString(s)
}

func optTime(t *time.Time) oas.OptDateTime {
	if t == nil {
		return oas.OptDateTime{}
	}
	return oas.NewOptDateTime(*t)
}

func toOASClient(c order.Client) oas.ClientInfo {
	return oas.ClientInfo{
		Name:    c.Name,
		Address: optStr(c.Address),
		TaxId:   optStr(c.TaxID),
		Phone:   optStr(c.Phone),
	}
}

func toOASOrder(o *order.Order) *oas.Order {
	items := make([]oas.OrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = oas.OrderItem{
			ProductId: optStr(it.ProductID),
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.String(),
			LineTotal: it.LineTotal.String(),
		}
	}
	return &oas.Order{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		Status:          string(o.Status),
		Total:           o.Total.String(),
		Items:           items,
		Client:          toOASClient(o.Client),
		PaymentTerms:    optStr(o.PaymentTerms),
		Notes:           optStr(o.Notes),
		RejectionReason: optStr(o.RejectionReason),
		CreatedAt:       o.CreatedAt,
		AcceptedAt:      optTime(o.AcceptedAt),
		ReadyAt:         optTime(o.ReadyAt),
		DeliveredAt:     optTime(o.DeliveredAt),
		RejectedAt:      optTime(o.RejectedAt),
		PaidAt:          optTime(o.PaidAt),
	}
}

// CreateOrder implements createOrder operation.
func (h *Handler) CreateOrder(ctx context.Context, req *oas.OrderRequest, params oas.CreateOrderParams) (oas.CreateOrderRes, error) {
	o, err := h.orders.Create(ctx, order.CreateRequest{
		Items:        toItemInputs(req.Items),
		Client:       toDomainClient(req.Client),
		PaymentTerms: req.PaymentTerms.Or(""),
		Notes:        req.Notes.Or(""),
		Actor:        actor(params.XActor),
	})
	if err != nil {
		switch errClass(err) {
		case http.StatusBadRequest:
			return &oas.CreateOrderBadRequest{Code: 400, Message: err.Error()}, nil
		case http.StatusUnprocessableEntity:
			return &oas.CreateOrderUnprocessableEntity{Code: 422, Message: err.Error()}, nil
		}
		return nil, err
	}
	return toOASOrder(o), nil
}

// GetOrder implements getOrder operation.
func (h *Handler) GetOrder(ctx context.Context, params oas.GetOrderParams) (oas.GetOrderRes, error) {
	o, err := h.orders.Get(ctx, params.ID)
	if err != nil {
		if errClass(err) == http.StatusNotFound {
			return &oas.GetOrderNotFound{Code: 404, Message: err.Error()}, nil
		}
		return nil, err
	}
	return toOASOrder(o), nil
}

// ListOrders implements listOrders operation.
func (h *Handler) ListOrders(ctx context.Context, params oas.ListOrdersParams) (oas.ListOrdersRes, error) {
	list, err := h.orders.ListByStatus(ctx, order.Status(params.Status))
	if err != nil {
		if errClass(err) == http.StatusBadRequest {
			return &oas.ListOrdersBadRequest{Code: 400, Message: err.Error()}, nil
		}
		return nil, err
	}

	res := make(oas.ListOrdersOKApplicationJSON, len(list))
	for i := range list {
		res[i] = *toOASOrder(&list[i])
	}
	return &res, nil
}

// EditOrder implements editOrder operation.
func (h *Handler) EditOrder(ctx context.Context, req *oas.OrderPatch, params oas.EditOrderParams) (oas.EditOrderRes, error) {
	edit := order.EditRequest{Items: toItemInputs(req.Items)}
	if c, ok := req.Client.Get(); ok {
		dc := toDomainClient(c)
		edit.Client = &dc
	}
	if v, ok := req.PaymentTerms.Get(); ok {
		edit.PaymentTerms = &v
	}
	if v, ok := req.Notes.Get(); ok {
		edit.Notes = &v
	}

	o, err := h.orders.Edit(ctx, params.ID, actor(params.XActor), edit)
	if err != nil {
		switch errClass(err) {
		case http.StatusBadRequest:
			return &oas.EditOrderBadRequest{Code: 400, Message: err.Error()}, nil
		case http.StatusNotFound:
			return &oas.EditOrderNotFound{Code: 404, Message: err.Error()}, nil
		case http.StatusConflict:
			return &oas.EditOrderConflict{Code: 409, Message: err.Error()}, nil
		case http.StatusUnprocessableEntity:
			return &oas.EditOrderUnprocessableEntity{Code: 422, Message: err.Error()}, nil
		}
		return nil, err
	}
	return toOASOrder(o), nil
}

// DeleteOrder implements deleteOrder operation.
func (h *Handler) DeleteOrder(ctx context.Context, req *oas.ReasonRequest, params oas.DeleteOrderParams) (oas.DeleteOrderRes, error) {
	if err := h.orders.SoftDelete(ctx, params.ID, actor(params.XActor), req.Reason); err != nil {
		switch errClass(err) {
		case http.StatusBadRequest:
			return &oas.DeleteOrderBadRequest{Code: 400, Message: err.Error()}, nil
		case http.StatusNotFound:
			return &oas.DeleteOrderNotFound{Code: 404, Message: err.Error()}, nil
		case http.StatusConflict:
			return &oas.DeleteOrderConflict{Code: 409, Message: err.Error()}, nil
		}
		return nil, err
	}
	return &oas.DeleteOrderNoContent{}, nil
}

// RestoreOrder implements restoreOrder operation.
func (h *Handler) RestoreOrder(ctx context.Context, params oas.RestoreOrderParams) (oas.RestoreOrderRes, error) {
	o, err := h.orders.Restore(ctx, params.ID, actor(params.XActor))
	if err != nil {
		switch errClass(err) {
		case http.StatusNotFound:
			return &oas.RestoreOrderNotFound{Code: 404, Message: err.Error()}, nil
		case http.StatusConflict:
			return &oas.RestoreOrderConflict{Code: 409, Message: err.Error()}, nil
		}
		return nil, err
	}
	return toOASOrder(o), nil
}

// AcceptOrder implements acceptOrder operation.
func (h *Handler) AcceptOrder(ctx context.Context, params oas.AcceptOrderParams) (oas.AcceptOrderRes, error) {
	o, err := h.orders.Accept(ctx, params.ID, actor(params.XActor))
	if err != nil {
		switch errClass(err) {
		case http.StatusNotFound:
			return &oas.AcceptOrderNotFound{Code: 404, Message: err.Error()}, nil
		case http.StatusConflict:
			return &oas.AcceptOrderConflict{Code: 409, Message: err.Error()}, nil
		}
		return nil, err
	}
	return toOASOrder(o), nil
}

// MarkOrderReady implements markOrderReady operation.
func (h *Handler) MarkOrderReady(ctx context.Context, params oas.MarkOrderReadyParams) (oas.MarkOrderReadyRes, error) {
	o, err := h.orders.MarkReady(ctx, params.ID, actor(params.XActor))
	if err != nil {
		switch errClass(err) {
		case http.StatusNotFound:
			return &oas.MarkOrderReadyNotFound{Code: 404, Message: err.Error()}, nil
		case http.StatusConflict:
			return &oas.MarkOrderReadyConflict{Code: 409, Message: err.Error()}, nil
		}
		return nil, err
	}
	return toOASOrder(o), nil
}

// DeliverOrder implements deliverOrder operation.
func (h *Handler) DeliverOrder(ctx context.Context, params oas.DeliverOrderParams) (oas.DeliverOrderRes, error) {
	o, err := h.orders.MarkDelivered(ctx, params.ID, actor(params.XActor))
	if err != nil {
		switch errClass(err) {
		case http.StatusNotFound:
			return &oas.DeliverOrderNotFound{Code: 404, Message: err.Error()}, nil
		case http.StatusConflict:
			return &oas.DeliverOrderConflict{Code: 409, Message: err.Error()}, nil
		}
		return nil, err
	}
	return toOASOrder(o), nil
}

// RejectOrder implements rejectOrder operation.
func (h *Handler) RejectOrder(ctx context.Context, req *oas.ReasonRequest, params oas.RejectOrderParams) (oas.RejectOrderRes, error) {
	o, err := h.orders.Reject(ctx, params.ID, actor(params.XActor), req.Reason)
	if err != nil {
		switch errClass(err) {
		case http.StatusBadRequest:
			return &oas.RejectOrderBadRequest{Code: 400, Message: err.Error()}, nil
		case http.StatusNotFound:
			return &oas.RejectOrderNotFound{Code: 404, Message: err.Error()}, nil
		case http.StatusConflict:
			return &oas.RejectOrderConflict{Code: 409, Message: err.Error()}, nil
		}
		return nil, err
	}
	return toOASOrder(o), nil
}

// RecycleOrder implements recycleOrder operation.
func (h *Handler) RecycleOrder(ctx context.Context, params oas.RecycleOrderParams) (oas.RecycleOrderRes, error) {
	o, err := h.orders.Recycle(ctx, params.ID, actor(params.XActor))
	if err != nil {
		switch errClass(err) {
		case http.StatusNotFound:
			return &oas.RecycleOrderNotFound{Code: 404, Message: err.Error()}, nil
		case http.StatusConflict:
			return &oas.RecycleOrderConflict{Code: 409, Message: err.Error()}, nil
		}
		return nil, err
	}
	return toOASOrder(o), nil
}

// GetOrderHistory implements getOrderHistory operation.
//
// An order keeps its trail even after soft deletion, so the listing is not
// gated on the live record existing.
func (h *Handler) GetOrderHistory(ctx context.Context, params oas.GetOrderHistoryParams) ([]oas.HistoryEntry, error) {
	entries, err := h.hist.ListByOrder(ctx, params.ID)
	if err != nil {
		return nil, err
	}

	res := make([]oas.HistoryEntry, len(entries))
	for i, e := range entries {
		res[i] = oas.HistoryEntry{
			ID:            e.ID,
			OrderId:       e.OrderID,
			At:            e.At,
			Actor:         e.Actor,
			Action:        e.Action,
			PreviousValue: optStr(e.PrevValue),
			NewValue:      optStr(e.NewValue),
		}
	}
	return res, nil
}
