// Package handler implements the generated oas.Handler against the domain
// services.
package handler

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/sweetbatch/orderdesk/gen/oas"
	"github.com/sweetbatch/orderdesk/internal/domain/billing"
	"github.com/sweetbatch/orderdesk/internal/domain/history"
	"github.com/sweetbatch/orderdesk/internal/domain/order"
	"github.com/sweetbatch/orderdesk/internal/domain/product"
	"github.com/sweetbatch/orderdesk/internal/invoicing"
	"github.com/sweetbatch/orderdesk/internal/lookup"
)

var (
	errInvoicerNotConfigured = errors.New("invoicing provider not configured")
	errLookupNotConfigured   = errors.New("document lookup not configured")
)

// Handler routes API operations to the domain services.
type Handler struct {
	oas.UnimplementedHandler

	products product.Repository
	orders   *order.Service
	billing  *billing.Service
	hist     history.Recorder
	invoicer *invoicing.Caller
	lookup   *lookup.Client
}

var _ oas.Handler = (*Handler)(nil)

// NewHandler constructs a Handler with the required domain dependencies.
// The invoicer and lookup clients may be nil when no provider endpoint is
// configured; their operations then respond 503.
func NewHandler(
	products product.Repository,
	orders *order.Service,
	billingSvc *billing.Service,
	hist history.Recorder,
	invoicer *invoicing.Caller,
	lookupClient *lookup.Client,
) *Handler {
	return &Handler{
		products: products,
		orders:   orders,
		billing:  billingSvc,
		hist:     hist,
		invoicer: invoicer,
		lookup:   lookupClient,
	}
}

// errClass buckets a domain error into the response taxonomy: invalid
// arguments 400, missing records 404, transition and concurrency conflicts
// 409, unknown catalog references 422. Errors outside the buckets report 0
// and fall through to NewError.
func errClass(err error) int {
	var (
		itErr  *order.InvalidTransitionError
		iqErr  *order.InvalidQuantityError
		pnfErr *order.ProductNotFoundError
		inErr  *lookup.InvalidNumberError
	)

	switch {
	case errors.Is(err, order.ErrEmptyItems),
		errors.Is(err, order.ErrEmptyReason),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, billing.ErrInvalidAmount),
		errors.As(err, &inErr):
		return http.StatusBadRequest

	case errors.Is(err, order.ErrNotFound),
		errors.Is(err, order.ErrTombstoneNotFound),
		errors.Is(err, billing.ErrInvoiceNotFound),
		errors.Is(err, product.ErrNotFound),
		errors.Is(err, lookup.ErrNotFound):
		return http.StatusNotFound

	case errors.As(err, &itErr),
		errors.Is(err, order.ErrNotEditable),
		errors.Is(err, order.ErrConflict),
		errors.Is(err, billing.ErrNotCollectible):
		return http.StatusConflict

	case errors.As(err, &iqErr), errors.As(err, &pnfErr):
		return http.StatusUnprocessableEntity
	}
	return 0
}

// NewError converts errors the per-operation mappings did not claim into the
// default error response: unconfigured providers 503, backing store and
// provider failures 502, anything unclassified 500.
func (h *Handler) NewError(ctx context.Context, err error) *oas.ErrorStatusCode {
	var (
		provErr *invoicing.ProviderError
		upErr   *order.UpstreamError
	)

	switch {
	case errors.Is(err, errInvoicerNotConfigured), errors.Is(err, errLookupNotConfigured):
		return errStatus(http.StatusServiceUnavailable, err.Error())

	case errors.As(err, &provErr):
		zctx.From(ctx).Warn("invoicing provider rejection",
			zap.Int("provider_status", provErr.Status),
			zap.String("message", provErr.Message),
		)
		return errStatus(http.StatusBadGateway, err.Error())

	case errors.As(err, &upErr):
		zctx.From(ctx).Error("upstream failure",
			zap.String("op", upErr.Op),
			zap.Bool("applied", upErr.Applied),
			zap.Error(err),
		)
		return errStatus(http.StatusBadGateway, "backing store unavailable")
	}

	if code := errClass(err); code != 0 {
		return errStatus(code, err.Error())
	}

	zctx.From(ctx).Error("internal error", zap.Error(err))
	return errStatus(http.StatusInternalServerError, "internal error")
}

func errStatus(code int, message string) *oas.ErrorStatusCode {
	return &oas.ErrorStatusCode{
		StatusCode: code,
		Response:   oas.Error{Code: int32(code), Message: message},
	}
}

// actor identifies the operator performing a mutation, taken from the
// X-Actor header set by the panels.
func actor(v oas.OptString) string {
	return v.Or("system")
}
