package pricing

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/catering-storefront/internal/domain/catalog"
)

const testDoc = `{
  "meta": { "currency": "GEL" },
  "products": [
    { "id": "khachapuri", "price": 12.5, "i18n": { "en": { "name": "Khachapuri" } } },
    { "id": "pkhali", "price": 8, "i18n": { "en": { "name": "Pkhali" } } }
  ],
  "sets": [
    {
      "id": "banquet",
      "default_persons": 10,
      "variants": ["adult", "kids"],
      "base": [
        { "productId": "khachapuri", "qty": 5 },
        { "productId": "pkhali", "qty": 10 }
      ],
      "i18n": { "en": "Banquet Set" }
    }
  ]
}`

func testCalculator(t *testing.T) *Calculator {
	t.Helper()
	store := catalog.NewStore()
	require.NoError(t, store.Load(strings.NewReader(testDoc)))
	return NewCalculator(store)
}

func assertDecimalEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("expected %s, got %s", want, got.String())
	}
}

func TestUnitPrice_NilProduct(t *testing.T) {
	assertDecimalEqual(t, "0", UnitPrice(nil))
}

func TestProductPrice_Unknown(t *testing.T) {
	calc := testCalculator(t)
	assertDecimalEqual(t, "0", calc.ProductPrice("missing"))
}

func TestSetPricePerPerson(t *testing.T) {
	calc := testCalculator(t)

	rows := []PortionRow{
		{ProductID: "khachapuri", QtyPerPerson: decimal.RequireFromString("0.5")},
		{ProductID: "pkhali", QtyPerPerson: decimal.NewFromInt(1)},
	}

	// 12.5*0.5 + 8*1
	assertDecimalEqual(t, "14.25", calc.SetPricePerPerson(rows, "adult"))
}

func TestSetPricePerPerson_KidsDiscount(t *testing.T) {
	calc := testCalculator(t)

	rows := []PortionRow{
		{ProductID: "khachapuri", QtyPerPerson: decimal.RequireFromString("0.5")},
		{ProductID: "pkhali", QtyPerPerson: decimal.NewFromInt(1)},
	}

	adult := calc.SetPricePerPerson(rows, "adult")
	kids := calc.SetPricePerPerson(rows, KidsVariant)

	assertDecimalEqual(t, "9.975", kids)
	assert.True(t, kids.Equal(adult.Mul(decimal.RequireFromString("0.7"))))
}

func TestSetPricePerPerson_UnknownProductContributesZero(t *testing.T) {
	calc := testCalculator(t)

	rows := []PortionRow{
		{ProductID: "pkhali", QtyPerPerson: decimal.NewFromInt(2)},
		{ProductID: "discontinued", QtyPerPerson: decimal.NewFromInt(3)},
	}

	assertDecimalEqual(t, "16", calc.SetPricePerPerson(rows, "adult"))
}

func TestSetTotalPrice(t *testing.T) {
	assertDecimalEqual(t, "142.5", SetTotalPrice(decimal.RequireFromString("14.25"), 10))
	assertDecimalEqual(t, "0", SetTotalPrice(decimal.RequireFromString("14.25"), 0))
}

func TestDeriveRows(t *testing.T) {
	calc := testCalculator(t)

	def, ok := calc.catalog.Set("banquet")
	require.True(t, ok)

	rows := DeriveRows(def)
	require.Len(t, rows, 2)
	assert.Equal(t, "khachapuri", rows[0].ProductID)
	assertDecimalEqual(t, "0.5", rows[0].QtyPerPerson)
	assertDecimalEqual(t, "1", rows[1].QtyPerPerson)
}

func TestDeriveRows_Degenerate(t *testing.T) {
	assert.Nil(t, DeriveRows(nil))
	assert.Nil(t, DeriveRows(&catalog.SetDefinition{ID: "broken", DefaultPersons: 0}))
}

func TestSetDefaultTotal(t *testing.T) {
	calc := testCalculator(t)

	def, ok := calc.catalog.Set("banquet")
	require.True(t, ok)

	// first variant is adult: 14.25 per person, 10 persons
	assertDecimalEqual(t, "142.5", calc.SetDefaultTotal(def))
	assertDecimalEqual(t, "0", calc.SetDefaultTotal(nil))
}
