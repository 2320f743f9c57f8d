// internal/domain/pricing/pricing.go
package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/your-org/catering-storefront/internal/domain/catalog"
)

// KidsVariant is the portion tier that receives the child discount
const KidsVariant = "kids"

// kidsFactor is the global child-portion multiplier (30% discount). It is a
// storefront-wide policy, not configurable per set.
var kidsFactor = decimal.NewFromFloat(0.7)

// PortionRow is one per-person quantity of a product inside a set
// configuration.
type PortionRow struct {
	ProductID    string          `json:"productId"`
	QtyPerPerson decimal.Decimal `json:"qtyPerPerson"`
}

// UnitPrice returns the product's unit price, zero for a missing product
func UnitPrice(p *catalog.Product) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	return p.Price
}

// Calculator derives prices from the loaded catalog. All methods are pure:
// deterministic given the catalog contents, and an unknown product id always
// contributes zero rather than failing.
type Calculator struct {
	catalog *catalog.Store
}

// NewCalculator creates a calculator bound to a catalog store
func NewCalculator(store *catalog.Store) *Calculator {
	return &Calculator{catalog: store}
}

// ProductPrice returns the unit price of a product by id, zero when unknown
func (c *Calculator) ProductPrice(productID string) decimal.Decimal {
	p, ok := c.catalog.Product(productID)
	if !ok {
		return decimal.Zero
	}
	return UnitPrice(p)
}

// SetPricePerPerson sums unit price times per-person quantity over the
// rows, then applies the child discount for the kids variant.
func (c *Calculator) SetPricePerPerson(rows []PortionRow, variant string) decimal.Decimal {
	base := decimal.Zero
	for _, row := range rows {
		base = base.Add(c.ProductPrice(row.ProductID).Mul(row.QtyPerPerson))
	}
	if variant == KidsVariant {
		return base.Mul(kidsFactor)
	}
	return base
}

// SetTotalPrice scales a per-person price to the configured headcount
func SetTotalPrice(pricePerPerson decimal.Decimal, persons int) decimal.Decimal {
	return pricePerPerson.Mul(decimal.NewFromInt(int64(persons)))
}

// SetDefaultTotal prices a set at its catalog defaults: base composition,
// default headcount, first variant. Used by catalog listings.
func (c *Calculator) SetDefaultTotal(def *catalog.SetDefinition) decimal.Decimal {
	if def == nil || def.DefaultPersons <= 0 {
		return decimal.Zero
	}
	rows := DeriveRows(def)
	variant := ""
	if len(def.Variants) > 0 {
		variant = def.Variants[0]
	}
	return SetTotalPrice(c.SetPricePerPerson(rows, variant), def.DefaultPersons)
}

// DeriveRows converts a set's base composition (total quantities for the
// default headcount) into per-person rows.
func DeriveRows(def *catalog.SetDefinition) []PortionRow {
	if def == nil || def.DefaultPersons <= 0 {
		return nil
	}
	persons := decimal.NewFromInt(int64(def.DefaultPersons))
	rows := make([]PortionRow, len(def.Base))
	for i, b := range def.Base {
		rows[i] = PortionRow{
			ProductID:    b.ProductID,
			QtyPerPerson: b.Qty.Div(persons),
		}
	}
	return rows
}
