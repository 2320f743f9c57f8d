// internal/domain/catalog/store.go
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	// FallbackLocale is tried after the requested locale for every
	// localized name before falling back to the raw id.
	FallbackLocale = "en"

	// DefaultCurrency applies when the catalog document carries no meta
	DefaultCurrency = "GEL"
)

// Store holds the loaded catalog and exposes lookup-by-id. The zero store is
// usable: lookups report "not found" until a document is loaded, so the rest
// of the system degrades gracefully while the catalog is unavailable.
type Store struct {
	mu           sync.RWMutex
	doc          Document
	productsByID map[string]int
	categsByID   map[string]int
	setsByID     map[string]int
}

// NewStore creates an empty catalog store
func NewStore() *Store {
	return &Store{
		productsByID: map[string]int{},
		categsByID:   map[string]int{},
		setsByID:     map[string]int{},
	}
}

// LoadFile loads the catalog from a menu document on disk
func (s *Store) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()
	return s.Load(f)
}

// Load parses a catalog document, tolerating line and block comments, and
// replaces the store's contents. A parse failure leaves the previous
// contents untouched.
func (s *Store) Load(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read catalog: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(StripComments(raw), &doc); err != nil {
		return fmt.Errorf("failed to parse catalog: %w", err)
	}

	products := make(map[string]int, len(doc.Products))
	for i, p := range doc.Products {
		products[p.ID] = i
	}
	categories := make(map[string]int, len(doc.Categories))
	for i, c := range doc.Categories {
		categories[c.ID] = i
	}
	sets := make(map[string]int, len(doc.Sets))
	for i, d := range doc.Sets {
		sets[d.ID] = i
	}

	s.mu.Lock()
	s.doc = doc
	s.productsByID = products
	s.categsByID = categories
	s.setsByID = sets
	s.mu.Unlock()

	return nil
}

// Product looks up a product by id
func (s *Store) Product(id string) (*Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.productsByID[id]
	if !ok {
		return nil, false
	}
	p := s.doc.Products[i]
	return &p, true
}

// Category looks up a category by id
func (s *Store) Category(id string) (*Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.categsByID[id]
	if !ok {
		return nil, false
	}
	c := s.doc.Categories[i]
	return &c, true
}

// Set looks up a set definition by id
func (s *Store) Set(id string) (*SetDefinition, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.setsByID[id]
	if !ok {
		return nil, false
	}
	d := s.doc.Sets[i]
	return &d, true
}

// Products returns all products in document order
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, len(s.doc.Products))
	copy(out, s.doc.Products)
	return out
}

// Categories returns all categories in document order
func (s *Store) Categories() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Category, len(s.doc.Categories))
	copy(out, s.doc.Categories)
	return out
}

// Sets returns all set definitions in document order
func (s *Store) Sets() []SetDefinition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]SetDefinition, len(s.doc.Sets))
	copy(out, s.doc.Sets)
	return out
}

// Currency returns the catalog currency code
func (s *Store) Currency() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc.Meta.Currency == "" {
		return DefaultCurrency
	}
	return s.doc.Meta.Currency
}

// ProductName resolves a product's display name through the locale fallback
// chain: requested locale, then "en", then the raw id.
func (s *Store) ProductName(id, lang string) string {
	p, ok := s.Product(id)
	if !ok {
		return id
	}
	if t, ok := p.I18n[lang]; ok && t.Name != "" {
		return t.Name
	}
	if t, ok := p.I18n[FallbackLocale]; ok && t.Name != "" {
		return t.Name
	}
	return id
}

// CategoryName resolves a category label with the same fallback chain
func (s *Store) CategoryName(id, lang string) string {
	c, ok := s.Category(id)
	if !ok {
		return id
	}
	return localize(c.I18n, lang, id)
}

// SetLabel resolves a set's display label with the same fallback chain
func (s *Store) SetLabel(id, lang string) string {
	d, ok := s.Set(id)
	if !ok {
		return id
	}
	return localize(d.I18n, lang, id)
}

// localize is the shared ordered-fallback lookup used by every
// name-resolution call site.
func localize(m map[string]string, lang, fallback string) string {
	if v, ok := m[lang]; ok && v != "" {
		return v
	}
	if v, ok := m[FallbackLocale]; ok && v != "" {
		return v
	}
	return fallback
}
