// Package invoicing builds the normalized payload consumed by the external
// electronic-invoicing provider and submits it. The provider's internals are
// not our concern; the contract is the payload shape and the acceptance code.
package invoicing

import (
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/sweetbatch/orderdesk/internal/domain/order"
)

// igvDivisor converts tax-inclusive prices to tax-exclusive values
// (18% IGV: exclusive = inclusive / 1.18).
var igvDivisor = decimal.RequireFromString("1.18")

// BuildPayload encodes the provider payload for an order. Unit values are
// tax-exclusive; line totals are quantity * discounted unit price. The
// amounts come from the order's already-rounded totals and are rounded once
// more only where the tax split itself introduces new precision.
func BuildPayload(o *order.Order) []byte {
	var e jx.Encoder

	e.Obj(func(e *jx.Encoder) {
		e.Field("orderNumber", func(e *jx.Encoder) { e.Str(o.OrderNumber) })
		e.Field("client", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("name", func(e *jx.Encoder) { e.Str(o.Client.Name) })
				e.Field("taxId", func(e *jx.Encoder) { e.Str(o.Client.TaxID) })
				e.Field("address", func(e *jx.Encoder) { e.Str(o.Client.Address) })
			})
		})
		e.Field("items", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, item := range o.Items {
					encodeItem(e, item)
				}
			})
		})

		taxable := o.Total.Div(igvDivisor).Round(2)
		igv := o.Total.Sub(taxable)
		e.Field("taxableAmount", func(e *jx.Encoder) { encodeDecimal(e, taxable) })
		e.Field("igv", func(e *jx.Encoder) { encodeDecimal(e, igv) })
		e.Field("total", func(e *jx.Encoder) { encodeDecimal(e, o.Total) })
	})

	return e.Bytes()
}

func encodeItem(e *jx.Encoder, item order.Item) {
	qty := decimal.NewFromInt(int64(item.Quantity))
	discountedUnit := item.LineTotal.Div(qty).Round(2)
	unitValue := discountedUnit.Div(igvDivisor).Round(2)

	e.Obj(func(e *jx.Encoder) {
		e.Field("description", func(e *jx.Encoder) { e.Str(item.Name) })
		e.Field("quantity", func(e *jx.Encoder) { e.Int(item.Quantity) })
		e.Field("unitPrice", func(e *jx.Encoder) { encodeDecimal(e, discountedUnit) })
		e.Field("unitValue", func(e *jx.Encoder) { encodeDecimal(e, unitValue) })
		e.Field("lineTotal", func(e *jx.Encoder) { encodeDecimal(e, item.LineTotal) })
	})
}

// encodeDecimal writes a decimal as a JSON number without float conversion.
func encodeDecimal(e *jx.Encoder, d decimal.Decimal) {
	e.Num(jx.Num(d.String()))
}
