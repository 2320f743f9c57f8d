// internal/domain/catalog/entity.go
package catalog

import (
	"github.com/shopspring/decimal"
)

// Product represents a single menu item. Products are immutable once the
// catalog document is loaded; identity is the ID.
type Product struct {
	ID          string                 `json:"id"`
	Price       decimal.Decimal        `json:"price"`
	Category    string                 `json:"category"`
	I18n        map[string]ProductText `json:"i18n"`
	Weight      string                 `json:"weight,omitempty"`
	Description string                 `json:"description,omitempty"`
	Popular     bool                   `json:"popular,omitempty"`
	Image       string                 `json:"image,omitempty"`
}

// ProductText holds the localized fields of a product
type ProductText struct {
	Name string `json:"name"`
}

// Category represents a menu category
type Category struct {
	ID   string            `json:"id"`
	I18n map[string]string `json:"i18n"`
}

// BaseItem is one row of a set's base composition: the total quantity of a
// product for the set's default headcount.
type BaseItem struct {
	ProductID string          `json:"productId"`
	Qty       decimal.Decimal `json:"qty"`
}

// SetDefinition represents a pre-built per-person bundle (e.g. a banquet
// package) as declared in the catalog document.
type SetDefinition struct {
	ID             string            `json:"id"`
	DefaultPersons int               `json:"default_persons"`
	Variants       []string          `json:"variants"`
	Base           []BaseItem        `json:"base"`
	I18n           map[string]string `json:"i18n"`
	Image          string            `json:"image,omitempty"`
}

// Meta carries document-level catalog metadata
type Meta struct {
	Currency string `json:"currency"`
}

// Document is the full catalog as shipped in menu.json
type Document struct {
	Meta       Meta            `json:"meta"`
	Categories []Category      `json:"categories"`
	Products   []Product       `json:"products"`
	Sets       []SetDefinition `json:"sets"`
}
