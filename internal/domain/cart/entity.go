// internal/domain/cart/entity.go
package cart

import (
	"github.com/shopspring/decimal"
	"github.com/your-org/catering-storefront/internal/domain/pricing"
)

// LineType tags the two kinds of cart lines
type LineType string

const (
	LineTypeProduct LineType = "product"
	LineTypeSet     LineType = "set"
)

// SetConfig is a saved set configuration attached to a set line. PerPerson
// quantities start out derived from the set's base composition but are
// independently adjustable afterwards.
//
// JSON field names follow the persisted cart format of the storefront
// client, which the webhook payload also carries verbatim.
type SetConfig struct {
	SetID          string               `json:"setId"`
	Persons        int                  `json:"persons"`
	Variant        string               `json:"variant"`
	PerPerson      []pricing.PortionRow `json:"perPerson"`
	PricePerPerson decimal.Decimal      `json:"pricePerPerson"`
}

// Line is one entry of the order: either a simple product-quantity pair or
// a fully configured set. Title, Lang and Price are snapshots taken when
// the line was created; later catalog changes do not rewrite them.
type Line struct {
	ID        string          `json:"id"`
	Type      LineType        `json:"type"`
	ProductID string          `json:"productId,omitempty"`
	Title     string          `json:"title"`
	Lang      string          `json:"lang"`
	Price     decimal.Decimal `json:"price"`
	Qty       int             `json:"qty"`
	SetConfig *SetConfig      `json:"setConfig,omitempty"`
}

// Total returns the line's contribution to the cart subtotal: price times
// quantity for product lines, the configured total for set lines.
func (l Line) Total() decimal.Decimal {
	if l.Type == LineTypeProduct {
		return l.Price.Mul(decimal.NewFromInt(int64(l.Qty)))
	}
	return l.Price
}

// Totals represents calculated cart totals
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Delivery decimal.Decimal `json:"delivery"`
	Total    decimal.Decimal `json:"total"`
}

// TotalsStrategy computes cart totals from the line sequence. It is the
// extension point for future promotional and delivery pricing; line items
// never change shape when a strategy does.
type TotalsStrategy interface {
	Totals(lines []Line) Totals
}

// StandardTotals is the baseline strategy: zero discount, zero delivery
type StandardTotals struct{}

// Totals implements TotalsStrategy
func (StandardTotals) Totals(lines []Line) Totals {
	subtotal := Subtotal(lines)
	discount := decimal.Zero
	delivery := decimal.Zero
	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Delivery: delivery,
		Total:    subtotal.Sub(discount).Add(delivery),
	}
}

// Subtotal sums line totals over the cart
func Subtotal(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Total())
	}
	return sum
}
