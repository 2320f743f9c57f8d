// internal/domain/order/entity.go
package order

import (
	"github.com/your-org/catering-storefront/internal/domain/cart"
)

// CustomerDetails is the contact block collected on the review screen.
// All fields are free text; only name and phone are required to submit.
type CustomerDetails struct {
	Name   string `json:"name"`
	Date   string `json:"date"`
	Guests string `json:"guests"`
	Phone  string `json:"phone"`
}

// HasContact reports whether the details are enough to submit an order
func (c CustomerDetails) HasContact() bool {
	return c.Name != "" && c.Phone != ""
}

// Payload is the order document posted to the webhook
type Payload struct {
	CreatedAt   string          `json:"created_at_tbilisi"`
	Currency    string          `json:"currency"`
	TargetEmail string          `json:"target_email,omitempty"`
	Items       []cart.Line     `json:"items"`
	Totals      cart.Totals     `json:"totals"`
	Customer    CustomerDetails `json:"customer"`
}

// Submission status values
const (
	StatusSent    = "sent"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
	StatusPending = "pending"
)

// SubmitResult is what the client needs after a submit: the delivery
// status of the webhook post and the ready-to-open WhatsApp link.
type SubmitResult struct {
	Status      string  `json:"status"`
	WhatsAppURL string  `json:"whatsappUrl"`
	Summary     string  `json:"summary"`
	Payload     Payload `json:"payload"`
}
