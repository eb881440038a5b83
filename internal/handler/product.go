package handler

import (
	"context"
	"net/http"

	"github.com/sweetbatch/orderdesk/gen/oas"
	"github.com/sweetbatch/orderdesk/internal/domain/pricing"
	"github.com/sweetbatch/orderdesk/internal/domain/product"
	"github.com/sweetbatch/orderdesk/internal/lookup"
)

func toOASProduct(p *product.Product) *oas.Product {
	tiers := make([]oas.Tier, len(p.Tiers))
	for i, t := range p.Tiers {
		tiers[i] = oas.Tier{
			MinQuantity: t.MinQuantity,
			Discount:    t.Discount.String(),
		}
	}
	return &oas.Product{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price.String(),
		Category: p.Category,
		Step:     p.Step,
		Tiers:    tiers,
	}
}

// ListProducts implements listProducts operation.
func (h *Handler) ListProducts(ctx context.Context) ([]oas.Product, error) {
	products, err := h.products.List(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]oas.Product, len(products))
	for i := range products {
		res[i] = *toOASProduct(&products[i])
	}
	return res, nil
}

// GetProduct implements getProduct operation.
func (h *Handler) GetProduct(ctx context.Context, params oas.GetProductParams) (oas.GetProductRes, error) {
	p, err := h.products.GetByID(ctx, params.ID)
	if err != nil {
		if errClass(err) == http.StatusNotFound {
			return &oas.GetProductNotFound{Code: 404, Message: err.Error()}, nil
		}
		return nil, err
	}
	return toOASProduct(p), nil
}

// QuotePrice implements quotePrice operation.
//
// Prices a single line without creating anything: the wholesale cart uses it
// to preview tier discounts as quantities change.
func (h *Handler) QuotePrice(ctx context.Context, req *oas.QuoteRequest) (oas.QuotePriceRes, error) {
	p, err := h.products.GetByID(ctx, req.ProductId)
	if err != nil {
		if errClass(err) == http.StatusNotFound {
			return &oas.QuotePriceNotFound{Code: 404, Message: err.Error()}, nil
		}
		return nil, err
	}

	qty := pricing.NormalizeToStep(req.Quantity, p.EffectiveStep())
	line := pricing.ComputeLine(p.Price, p.Tiers, qty)

	return &oas.PriceQuote{
		ProductId:          p.ID,
		RequestedQuantity:  req.Quantity,
		NormalizedQuantity: qty,
		UnitPrice:          line.UnitPrice.String(),
		Total:              line.Total.String(),
		Savings:            line.Savings.String(),
		DiscountPct:        line.DiscountPct.String(),
	}, nil
}

// LookupDocument implements lookupDocument operation.
func (h *Handler) LookupDocument(ctx context.Context, params oas.LookupDocumentParams) (oas.LookupDocumentRes, error) {
	if h.lookup == nil {
		return nil, errLookupNotConfigured
	}

	id, err := h.lookup.Lookup(ctx, lookup.DocType(params.Type), params.Number)
	if err != nil {
		switch errClass(err) {
		case http.StatusBadRequest:
			return &oas.LookupDocumentBadRequest{Code: 400, Message: err.Error()}, nil
		case http.StatusNotFound:
			return &oas.LookupDocumentNotFound{Code: 404, Message: err.Error()}, nil
		}
		return nil, err
	}

	return &oas.Identity{
		Type:    string(id.DocType),
		Number:  id.Number,
		Name:    id.Name,
		Address: optStr(id.Address),
	}, nil
}
