// internal/domain/order/service.go
package order

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/catering-storefront/internal/config"
	"github.com/your-org/catering-storefront/internal/domain/cart"
	"github.com/your-org/catering-storefront/internal/domain/catalog"
	"github.com/your-org/catering-storefront/internal/infrastructure/storage"
)

// ErrMissingContact means name or phone is missing from the customer details
var ErrMissingContact = errors.New("name and phone are required")

const timestampLayout = "02/01/2006, 15:04:05"

// Service builds order summaries and submits orders: one POST to the
// configured webhook plus a WhatsApp deep link the client opens itself.
// The webhook is best-effort; a failed post never blocks the link.
type Service struct {
	catalog *catalog.Store
	cart    *cart.Service
	store   storage.Store
	cfg     config.OrderConfig
	client  *http.Client
	log     *logrus.Logger

	now func() time.Time
}

// NewService creates a new order service
func NewService(store storage.Store, cat *catalog.Store, cartSvc *cart.Service, cfg config.OrderConfig, log *logrus.Logger) *Service {
	return &Service{
		catalog: cat,
		cart:    cartSvc,
		store:   store,
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.WebhookTimeout},
		log:     log,
		now:     time.Now,
	}
}

// SaveDetails persists the customer details for the session
func (s *Service) SaveDetails(ctx context.Context, sessionID string, details CustomerDetails) {
	s.store.Write(ctx, storage.CustomerKey(sessionID), details, s.cfg.StateTTL)
}

// Details returns the persisted customer details, empty when none were saved
func (s *Service) Details(ctx context.Context, sessionID string) CustomerDetails {
	var details CustomerDetails
	s.store.Read(ctx, storage.CustomerKey(sessionID), &details)
	return details
}

// Review assembles the full order view for the review screen
func (s *Service) Review(ctx context.Context, sessionID, lang string) (Payload, string, string) {
	details := s.Details(ctx, sessionID)
	payload := s.buildPayload(ctx, sessionID, details)
	summary := s.Summary(payload, lang)
	return payload, summary, s.whatsAppLink(summary)
}

// Submit validates the contact details, saves them, posts the payload to
// the webhook and returns the WhatsApp deep link. The post runs in the
// background; Submit waits at most the configured grace period for the
// outcome and reports "pending" when the webhook is still in flight.
func (s *Service) Submit(ctx context.Context, sessionID, lang string, details CustomerDetails) (*SubmitResult, error) {
	if !details.HasContact() {
		return nil, ErrMissingContact
	}

	s.SaveDetails(ctx, sessionID, details)

	payload := s.buildPayload(ctx, sessionID, details)
	summary := s.Summary(payload, lang)
	result := &SubmitResult{
		Status:      StatusSkipped,
		WhatsAppURL: s.whatsAppLink(summary),
		Summary:     summary,
		Payload:     payload,
	}

	if s.cfg.WebhookURL == "" {
		return result, nil
	}

	done := make(chan string, 1)
	go func() {
		done <- s.postWebhook(payload)
	}()

	select {
	case status := <-done:
		result.Status = status
	case <-time.After(s.cfg.SubmitGrace):
		result.Status = StatusPending
	}
	return result, nil
}

// Summary renders the plain-text order summary sent over WhatsApp
func (s *Service) Summary(p Payload, lang string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order (Tbilisi time: %s)\n", p.CreatedAt)

	blocks := make([]string, 0, len(p.Items))
	for idx, item := range p.Items {
		var details string
		if item.Type == cart.LineTypeProduct {
			details = fmt.Sprintf("%dx", item.Qty)
		} else if item.SetConfig != nil {
			variant := item.SetConfig.Variant
			if variant == "" {
				variant = "adult"
			}
			details = fmt.Sprintf("%d pax, %s", item.SetConfig.Persons, variant)
			for _, row := range item.SetConfig.PerPerson {
				if !row.QtyPerPerson.IsPositive() {
					continue
				}
				name := s.catalog.ProductName(row.ProductID, lang)
				details += fmt.Sprintf("\n  - %s: %s/pers", name, row.QtyPerPerson.String())
			}
		}
		blocks = append(blocks, fmt.Sprintf("%d. %s\n(%s)\nPrice: %s", idx+1, item.Title, details, formatPrice(item.Total())))
	}
	b.WriteString(strings.Join(blocks, "\n\n"))

	fmt.Fprintf(&b, "\n\nTotal: %s\nName: %s\nDate: %s\nGuests: %s\nPhone: %s",
		formatPrice(p.Totals.Total), p.Customer.Name, p.Customer.Date, p.Customer.Guests, p.Customer.Phone)
	return b.String()
}

func (s *Service) buildPayload(ctx context.Context, sessionID string, details CustomerDetails) Payload {
	lines := s.cart.Lines(ctx, sessionID)
	if lines == nil {
		lines = []cart.Line{}
	}
	return Payload{
		CreatedAt:   s.timestamp(),
		Currency:    s.catalog.Currency(),
		TargetEmail: s.cfg.TargetEmail,
		Items:       lines,
		Totals:      s.cart.Totals(ctx, sessionID),
		Customer:    details,
	}
}

// timestamp renders the creation time in Tbilisi local time; when the
// zone database is unavailable it degrades to UTC rather than failing
// the submit.
func (s *Service) timestamp() string {
	t := s.now()
	if loc, err := time.LoadLocation("Asia/Tbilisi"); err == nil {
		t = t.In(loc)
	} else {
		s.log.WithError(err).Warn("timezone data unavailable, using UTC")
		t = t.UTC()
	}
	return t.Format(timestampLayout)
}

func (s *Service) whatsAppLink(summary string) string {
	q := url.Values{}
	q.Set("text", summary)
	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + s.cfg.WhatsAppPhone,
		RawQuery: q.Encode(),
	}
	return u.String()
}

func (s *Service) postWebhook(payload Payload) string {
	body, err := json.Marshal(payload)
	if err != nil {
		s.log.WithError(err).Error("failed to encode order payload")
		return StatusFailed
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.WebhookTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.WebhookURL, bytes.NewReader(body))
	if err != nil {
		s.log.WithError(err).Error("failed to build webhook request")
		return StatusFailed
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.WithError(err).Warn("order webhook post failed")
		return StatusFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.log.WithField("status", resp.StatusCode).Warn("order webhook rejected payload")
		return StatusFailed
	}
	return StatusSent
}

func formatPrice(n decimal.Decimal) string {
	return n.StringFixed(2) + " ₾"
}
