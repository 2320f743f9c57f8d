package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDoc = `{
  // storefront menu
  "meta": { "currency": "GEL" },
  "categories": [
    { "id": "appetizers", "i18n": { "en": "Appetizers", "ka": "წახემსებელი" } },
    { "id": "snacks", "i18n": { "en": "Snacks" } }
  ],
  "products": [
    {
      "id": "khachapuri",
      "price": 12.5,
      "category": "appetizers",
      "popular": true,
      "i18n": { "en": { "name": "Khachapuri" }, "ka": { "name": "ხაჭაპური" } }
    },
    /* seasonal item */
    {
      "id": "pkhali",
      "price": 8,
      "category": "appetizers",
      "i18n": { "en": { "name": "Pkhali" } }
    }
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

func loadTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.Load(strings.NewReader(testDoc)))
	return s
}

func TestStripComments(t *testing.T) {
	pad := func(n int) string { return strings.Repeat(" ", n) }

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"line comment", `{"a": 1} // note`, `{"a": 1} ` + pad(len("// note"))},
		{"block comment", `{/* x */"a": 1}`, `{` + pad(len("/* x */")) + `"a": 1}`},
		{"slashes inside string", `{"url": "http://x"}`, `{"url": "http://x"}`},
		{"comment marker inside string", `{"a": "not // a comment"}`, `{"a": "not // a comment"}`},
		{"escaped quote", `{"a": "say \"hi\" // ok"}`, `{"a": "say \"hi\" // ok"}`},
		{"block comment keeps newlines", "{\n/* x\ny */\n}", "{\n" + pad(4) + "\n" + pad(4) + "\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(StripComments([]byte(tt.input)))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_ToleratesComments(t *testing.T) {
	s := loadTestStore(t)

	assert.Len(t, s.Products(), 2)
	assert.Len(t, s.Categories(), 2)
	assert.Len(t, s.Sets(), 1)
}

func TestLoad_FailureKeepsPreviousContents(t *testing.T) {
	s := loadTestStore(t)

	err := s.Load(strings.NewReader("{ not json"))
	require.Error(t, err)

	assert.Len(t, s.Products(), 2)
	assert.Equal(t, "GEL", s.Currency())
}

func TestEmptyStore_Degrades(t *testing.T) {
	s := NewStore()

	_, ok := s.Product("khachapuri")
	assert.False(t, ok)
	assert.Empty(t, s.Products())
	assert.Equal(t, DefaultCurrency, s.Currency())
	assert.Equal(t, "khachapuri", s.ProductName("khachapuri", "en"))
}

func TestProductName_LocaleFallback(t *testing.T) {
	s := loadTestStore(t)

	tests := []struct {
		name string
		id   string
		lang string
		want string
	}{
		{"requested locale", "khachapuri", "ka", "ხაჭაპური"},
		{"missing locale falls back to en", "pkhali", "ka", "Pkhali"},
		{"unknown locale falls back to en", "khachapuri", "fr", "Khachapuri"},
		{"unknown product yields id", "missing", "en", "missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.ProductName(tt.id, tt.lang))
		})
	}
}

func TestCategoryAndSetLabels(t *testing.T) {
	s := loadTestStore(t)

	assert.Equal(t, "წახემსებელი", s.CategoryName("appetizers", "ka"))
	assert.Equal(t, "Snacks", s.CategoryName("snacks", "ka"))
	assert.Equal(t, "Banquet Set", s.SetLabel("banquet", "de"))
	assert.Equal(t, "nope", s.SetLabel("nope", "en"))
}

func TestSetLookup(t *testing.T) {
	s := loadTestStore(t)

	def, ok := s.Set("banquet")
	require.True(t, ok)
	assert.Equal(t, 10, def.DefaultPersons)
	assert.Equal(t, []string{"adult", "kids"}, def.Variants)
	require.Len(t, def.Base, 2)
	assert.Equal(t, "khachapuri", def.Base[0].ProductID)
}
