// internal/domain/set/session.go
package set

import (
	"github.com/shopspring/decimal"
	"github.com/your-org/catering-storefront/internal/domain/cart"
	"github.com/your-org/catering-storefront/internal/domain/pricing"
)

// Session is the working state of one set configuration edit. It is a
// plain value: mutations never touch the cart until the session is
// saved, and an abandoned session leaves no trace.
type Session struct {
	ID      string               `json:"id"`
	SetID   string               `json:"setId"`
	LineID  string               `json:"lineId,omitempty"`
	Persons int                  `json:"persons"`
	Variant string               `json:"variant"`
	Rows    []pricing.PortionRow `json:"rows"`
	Lang    string               `json:"lang"`
}

// SetPersons updates the headcount, clamping at a minimum of 1
func (s *Session) SetPersons(n int) {
	if n < 1 {
		n = 1
	}
	s.Persons = n
}

// BumpRow adjusts a portion row's per-person quantity by delta,
// flooring at zero and rounding to two decimal places. Rows at zero
// stay in the session so the quantity can be raised again; they are
// dropped from summaries and payloads, not from the edit state.
func (s *Session) BumpRow(productID string, delta decimal.Decimal) {
	for i := range s.Rows {
		if s.Rows[i].ProductID != productID {
			continue
		}
		next := s.Rows[i].QtyPerPerson.Add(delta).Round(2)
		if next.IsNegative() {
			next = decimal.Zero
		}
		s.Rows[i].QtyPerPerson = next
		return
	}
}

// PricePerPerson derives the live per-person price for the current rows
// and variant.
func (s *Session) PricePerPerson(calc *pricing.Calculator) decimal.Decimal {
	return calc.SetPricePerPerson(s.Rows, s.Variant)
}

// TotalPrice derives the live total for the current headcount
func (s *Session) TotalPrice(calc *pricing.Calculator) decimal.Decimal {
	return pricing.SetTotalPrice(s.PricePerPerson(calc), s.Persons)
}

// Config freezes the session into the cart-line configuration shape
func (s *Session) Config(calc *pricing.Calculator) cart.SetConfig {
	rows := make([]pricing.PortionRow, len(s.Rows))
	copy(rows, s.Rows)
	return cart.SetConfig{
		SetID:          s.SetID,
		Persons:        s.Persons,
		Variant:        s.Variant,
		PerPerson:      rows,
		PricePerPerson: s.PricePerPerson(calc),
	}
}
