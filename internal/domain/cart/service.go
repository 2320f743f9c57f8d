// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/catering-storefront/internal/domain/catalog"
	"github.com/your-org/catering-storefront/internal/infrastructure/storage"
)

var (
	// ErrLineNotFound means the referenced cart line does not exist
	ErrLineNotFound = errors.New("cart line not found")

	// ErrNotProductLine means a quantity change was requested on a set
	// line; set lines always carry qty 1 and are edited through a set
	// configuration session instead.
	ErrNotProductLine = errors.New("quantity can only be changed on product lines")
)

// Service is the cart engine: the single writer of a session's line
// sequence. Every operation loads the persisted lines, applies one
// mutation, persists the result (fire-and-forget) and returns a fresh
// snapshot with recomputed totals.
type Service struct {
	catalog  *catalog.Store
	store    storage.Store
	strategy TotalsStrategy
	ttl      time.Duration
	log      *logrus.Logger
}

// NewService creates a new cart service. A nil strategy selects
// StandardTotals.
func NewService(store storage.Store, cat *catalog.Store, strategy TotalsStrategy, ttl time.Duration, log *logrus.Logger) *Service {
	if strategy == nil {
		strategy = StandardTotals{}
	}
	return &Service{
		catalog:  cat,
		store:    store,
		strategy: strategy,
		ttl:      ttl,
		log:      log,
	}
}

// CartResponse represents a cart snapshot with derived totals
type CartResponse struct {
	Items    []Line `json:"items"`
	Totals   Totals `json:"totals"`
	Currency string `json:"currency"`
}

// AddProductRequest represents an add-to-cart request
type AddProductRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Qty       int    `json:"qty"`
}

// ChangeQtyRequest represents a quantity delta for a product line
type ChangeQtyRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// Get returns the current cart snapshot
func (s *Service) Get(ctx context.Context, sessionID string) *CartResponse {
	return s.respond(s.Lines(ctx, sessionID))
}

// AddProduct adds a product to the cart. An unknown product id is a no-op.
// When a line for the product already exists its quantity is incremented;
// the title and price snapshots are not refreshed. Otherwise a new line is
// appended, snapshotting the localized name and current unit price.
func (s *Service) AddProduct(ctx context.Context, sessionID, lang, productID string, qty int) *CartResponse {
	if qty < 1 {
		qty = 1
	}

	lines := s.Lines(ctx, sessionID)

	p, ok := s.catalog.Product(productID)
	if !ok {
		s.log.WithField("product_id", productID).Debug("add ignored, product not in catalog")
		return s.respond(lines)
	}

	merged := false
	for i := range lines {
		if lines[i].Type == LineTypeProduct && lines[i].ProductID == productID {
			lines[i].Qty += qty
			merged = true
			break
		}
	}

	if !merged {
		lines = append(lines, Line{
			ID:        uuid.New().String(),
			Type:      LineTypeProduct,
			ProductID: productID,
			Title:     s.catalog.ProductName(productID, lang),
			Lang:      lang,
			Price:     p.Price,
			Qty:       qty,
		})
	}

	s.save(ctx, sessionID, lines)
	return s.respond(lines)
}

// RemoveLine removes the line with the given id; an absent id is a no-op
func (s *Service) RemoveLine(ctx context.Context, sessionID, lineID string) *CartResponse {
	lines := s.Lines(ctx, sessionID)

	kept := lines[:0]
	for _, l := range lines {
		if l.ID != lineID {
			kept = append(kept, l)
		}
	}

	s.save(ctx, sessionID, kept)
	return s.respond(kept)
}

// ChangeQty adjusts a product line's quantity by delta, flooring at 1.
// Decrementing past 1 never removes the line; callers that want removal
// must call RemoveLine explicitly.
func (s *Service) ChangeQty(ctx context.Context, sessionID, lineID string, delta int) (*CartResponse, error) {
	lines := s.Lines(ctx, sessionID)

	found := false
	for i := range lines {
		if lines[i].ID != lineID {
			continue
		}
		if lines[i].Type != LineTypeProduct {
			return nil, ErrNotProductLine
		}
		if next := lines[i].Qty + delta; next > 1 {
			lines[i].Qty = next
		} else {
			lines[i].Qty = 1
		}
		found = true
		break
	}
	if !found {
		return nil, ErrLineNotFound
	}

	s.save(ctx, sessionID, lines)
	return s.respond(lines), nil
}

// Clear resets the cart to an empty sequence and deletes the persisted
// cart and customer details.
func (s *Service) Clear(ctx context.Context, sessionID string) *CartResponse {
	s.store.Delete(ctx, storage.CartKey(sessionID), storage.CustomerKey(sessionID))
	return s.respond(nil)
}

// UpsertSet commits a set configuration into the cart. When
// existingLineID matches a set line it is replaced in place, keeping its
// id and position; otherwise a new set line is appended. The line price is
// the configured total for the whole headcount.
func (s *Service) UpsertSet(ctx context.Context, sessionID, lang string, cfg SetConfig, existingLineID string) *CartResponse {
	lines := s.Lines(ctx, sessionID)

	title := s.catalog.SetLabel(cfg.SetID, lang)
	total := cfg.PricePerPerson.Mul(decimal.NewFromInt(int64(cfg.Persons)))

	replaced := false
	if existingLineID != "" {
		for i := range lines {
			if lines[i].ID == existingLineID && lines[i].Type == LineTypeSet {
				lines[i].Title = title
				lines[i].Price = total
				lines[i].SetConfig = &cfg
				replaced = true
				break
			}
		}
	}

	if !replaced {
		lines = append(lines, Line{
			ID:        uuid.New().String(),
			Type:      LineTypeSet,
			Title:     title,
			Lang:      lang,
			Price:     total,
			Qty:       1,
			SetConfig: &cfg,
		})
	}

	s.save(ctx, sessionID, lines)
	return s.respond(lines)
}

// Line returns one cart line by id
func (s *Service) Line(ctx context.Context, sessionID, lineID string) (*Line, bool) {
	for _, l := range s.Lines(ctx, sessionID) {
		if l.ID == lineID {
			return &l, true
		}
	}
	return nil, false
}

// Lines loads the persisted line sequence; a storage miss or failure
// degrades to an empty cart.
func (s *Service) Lines(ctx context.Context, sessionID string) []Line {
	var lines []Line
	s.store.Read(ctx, storage.CartKey(sessionID), &lines)
	return lines
}

// Totals recomputes totals from the current line sequence
func (s *Service) Totals(ctx context.Context, sessionID string) Totals {
	return s.strategy.Totals(s.Lines(ctx, sessionID))
}

func (s *Service) save(ctx context.Context, sessionID string, lines []Line) {
	if lines == nil {
		lines = []Line{}
	}
	s.store.Write(ctx, storage.CartKey(sessionID), lines, s.ttl)
}

func (s *Service) respond(lines []Line) *CartResponse {
	if lines == nil {
		lines = []Line{}
	}
	return &CartResponse{
		Items:    lines,
		Totals:   s.strategy.Totals(lines),
		Currency: s.catalog.Currency(),
	}
}
