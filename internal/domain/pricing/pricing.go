// Package pricing implements the quantity-tier discount engine used by the
// wholesale cart. All monetary values are decimals rounded to 2 places, half
// away from zero, exactly once at the point the line total is computed.
package pricing

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultStep is the ordering multiple applied when a product does not
// specify one.
const DefaultStep = 6

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// Tier is a quantity discount rule: orders of at least MinQuantity units get
// Discount off, expressed as a fraction (0.05 = 5%).
type Tier struct {
	MinQuantity int             `json:"minQuantity"`
	Discount    decimal.Decimal `json:"discount"`
}

// Line holds the priced result for a single cart line.
type Line struct {
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
	Savings     decimal.Decimal `json:"savings"`
	DiscountPct decimal.Decimal `json:"discountPct"`
}

// SelectTier returns the discount fraction of the tier with the greatest
// MinQuantity not exceeding quantity, or zero when no tier applies.
func SelectTier(tiers []Tier, quantity int) decimal.Decimal {
	best := decimal.Zero
	bestMin := 0
	for _, t := range tiers {
		if t.MinQuantity <= quantity && t.MinQuantity >= bestMin {
			best = t.Discount
			bestMin = t.MinQuantity
		}
	}
	return best
}

// ComputeLine prices a single line: it selects the applicable tier for the
// requested quantity and derives total, effective unit price and savings.
// The gross amount is rounded once; unit price and savings are derived from
// the rounded total so repeated recomputation never drifts.
func ComputeLine(baseUnitPrice decimal.Decimal, tiers []Tier, quantity int) Line {
	if quantity <= 0 {
		return Line{
			UnitPrice:   decimal.Zero,
			Total:       decimal.Zero,
			Savings:     decimal.Zero,
			DiscountPct: decimal.Zero,
		}
	}

	discount := SelectTier(tiers, quantity)
	qty := decimal.NewFromInt(int64(quantity))
	gross := baseUnitPrice.Mul(qty)

	total := gross.Mul(one.Sub(discount)).Round(2)
	unitPrice := total.Div(qty).Round(2)
	savings := gross.Sub(total).Round(2)

	return Line{
		UnitPrice:   unitPrice,
		Total:       total,
		Savings:     savings,
		DiscountPct: discount.Mul(hundred),
	}
}

// NormalizeToStep rounds quantity up to the nearest positive multiple of
// step. A non-positive step falls back to DefaultStep. A non-positive
// quantity normalizes to 0, meaning the line should be removed, never to a
// single step.
func NormalizeToStep(quantity, step int) int {
	if step <= 0 {
		step = DefaultStep
	}
	if quantity <= 0 {
		return 0
	}
	if rem := quantity % step; rem != 0 {
		return quantity + step - rem
	}
	return quantity
}

// SortTiers orders tiers by ascending MinQuantity. Selection does not depend
// on order; this is for stable display and storage.
func SortTiers(tiers []Tier) {
	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].MinQuantity < tiers[j].MinQuantity
	})
}
