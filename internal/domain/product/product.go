// Package product defines the cookie catalog consumed by the cart and the
// pricing engine.
package product

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/sweetbatch/orderdesk/internal/domain/pricing"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Product is a catalog item. Step is the ordering multiple enforced by the
// wholesale cart (boxes of 6 by default); Tiers is the quantity discount
// table applied by the pricing engine.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Step     int             `json:"step"`
	Tiers    []pricing.Tier  `json:"tiers"`
}

// EffectiveStep returns the product's ordering multiple, falling back to the
// engine default when the catalog row carries none.
func (p Product) EffectiveStep() int {
	if p.Step > 0 {
		return p.Step
	}
	return pricing.DefaultStep
}

// Repository defines read operations for the catalog.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	GetByIDs(ctx context.Context, ids []string) ([]Product, error)
}
