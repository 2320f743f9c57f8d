package order

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/catering-storefront/internal/config"
	"github.com/your-org/catering-storefront/internal/domain/cart"
	"github.com/your-org/catering-storefront/internal/domain/catalog"
	"github.com/your-org/catering-storefront/internal/domain/pricing"
	"github.com/your-org/catering-storefront/internal/infrastructure/storage"
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

func testService(t *testing.T, cfg config.OrderConfig) (*Service, *cart.Service) {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	cat := catalog.NewStore()
	require.NoError(t, cat.Load(strings.NewReader(testDoc)))

	store := storage.NewMemory()
	cartSvc := cart.NewService(store, cat, nil, time.Hour, log)
	return NewService(store, cat, cartSvc, cfg, log), cartSvc
}

func defaultOrderConfig() config.OrderConfig {
	return config.OrderConfig{
		WebhookTimeout: 2 * time.Second,
		SubmitGrace:    time.Second,
		StateTTL:       time.Hour,
	}
}

func testPayload() Payload {
	return Payload{
		CreatedAt: "01/05/2026, 18:30:00",
		Currency:  "GEL",
		Items: []cart.Line{
			{
				ID:    "l1",
				Type:  cart.LineTypeProduct,
				Title: "Khachapuri",
				Price: decimal.RequireFromString("12.5"),
				Qty:   2,
			},
			{
				ID:    "l2",
				Type:  cart.LineTypeSet,
				Title: "Banquet Set",
				Price: decimal.RequireFromString("142.5"),
				Qty:   1,
				SetConfig: &cart.SetConfig{
					SetID:   "banquet",
					Persons: 10,
					Variant: "adult",
					PerPerson: []pricing.PortionRow{
						{ProductID: "khachapuri", QtyPerPerson: decimal.RequireFromString("0.5")},
						{ProductID: "pkhali", QtyPerPerson: decimal.NewFromInt(1)},
						{ProductID: "discontinued", QtyPerPerson: decimal.Zero},
					},
					PricePerPerson: decimal.RequireFromString("14.25"),
				},
			},
		},
		Totals: cart.Totals{
			Subtotal: decimal.RequireFromString("167.5"),
			Total:    decimal.RequireFromString("167.5"),
		},
		Customer: CustomerDetails{
			Name:   "Nino",
			Date:   "2026-06-12",
			Guests: "25",
			Phone:  "+995 555 123456",
		},
	}
}

func TestSummary_Format(t *testing.T) {
	svc, _ := testService(t, defaultOrderConfig())

	got := svc.Summary(testPayload(), "en")

	want := "Order (Tbilisi time: 01/05/2026, 18:30:00)\n" +
		"1. Khachapuri\n(2x)\nPrice: 25.00 ₾\n\n" +
		"2. Banquet Set\n(10 pax, adult\n" +
		"  - Khachapuri: 0.5/pers\n" +
		"  - Pkhali: 1/pers)\n" +
		"Price: 142.50 ₾\n\n" +
		"Total: 167.50 ₾\nName: Nino\nDate: 2026-06-12\nGuests: 25\nPhone: +995 555 123456"

	assert.Equal(t, want, got)
}

func TestSummary_OmitsZeroRows(t *testing.T) {
	svc, _ := testService(t, defaultOrderConfig())

	got := svc.Summary(testPayload(), "en")

	assert.NotContains(t, got, "discontinued")
}

func TestSummary_EmptyVariantReadsAsAdult(t *testing.T) {
	svc, _ := testService(t, defaultOrderConfig())

	p := testPayload()
	p.Items[1].SetConfig.Variant = ""

	assert.Contains(t, svc.Summary(p, "en"), "(10 pax, adult")
}

func TestSubmit_MissingContact(t *testing.T) {
	svc, _ := testService(t, defaultOrderConfig())

	_, err := svc.Submit(context.Background(), "s1", "en", CustomerDetails{Name: "Nino"})
	assert.ErrorIs(t, err, ErrMissingContact)

	_, err = svc.Submit(context.Background(), "s1", "en", CustomerDetails{Phone: "+995"})
	assert.ErrorIs(t, err, ErrMissingContact)
}

func TestSubmit_NoWebhookConfigured(t *testing.T) {
	svc, cartSvc := testService(t, defaultOrderConfig())
	ctx := context.Background()

	cartSvc.AddProduct(ctx, "s1", "en", "khachapuri", 2)

	result, err := svc.Submit(ctx, "s1", "en", CustomerDetails{Name: "Nino", Phone: "+995"})
	require.NoError(t, err)

	assert.Equal(t, StatusSkipped, result.Status)
	assert.True(t, strings.HasPrefix(result.WhatsAppURL, "https://wa.me/?text="))
	assert.NotEmpty(t, result.Summary)
}

func TestSubmit_WebhookSent(t *testing.T) {
	received := make(chan Payload, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var p Payload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		received <- p
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := defaultOrderConfig()
	cfg.WebhookURL = server.URL
	cfg.TargetEmail = "orders@example.com"

	svc, cartSvc := testService(t, cfg)
	ctx := context.Background()

	cartSvc.AddProduct(ctx, "s1", "en", "khachapuri", 2)

	result, err := svc.Submit(ctx, "s1", "en", CustomerDetails{Name: "Nino", Phone: "+995"})
	require.NoError(t, err)
	assert.Equal(t, StatusSent, result.Status)

	p := <-received
	assert.Equal(t, "GEL", p.Currency)
	assert.Equal(t, "orders@example.com", p.TargetEmail)
	assert.NotEmpty(t, p.CreatedAt)
	require.Len(t, p.Items, 1)
	assert.Equal(t, "Nino", p.Customer.Name)
	assert.True(t, p.Totals.Total.Equal(decimal.RequireFromString("25")))
}

func TestSubmit_WebhookRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := defaultOrderConfig()
	cfg.WebhookURL = server.URL

	svc, _ := testService(t, cfg)

	result, err := svc.Submit(context.Background(), "s1", "en", CustomerDetails{Name: "Nino", Phone: "+995"})
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, result.Status)
}

func TestSubmit_SlowWebhookReportsPending(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()
	defer close(release)

	cfg := defaultOrderConfig()
	cfg.WebhookURL = server.URL
	cfg.SubmitGrace = 50 * time.Millisecond

	svc, _ := testService(t, cfg)

	result, err := svc.Submit(context.Background(), "s1", "en", CustomerDetails{Name: "Nino", Phone: "+995"})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, result.Status)
}

func TestSubmit_PersistsCustomerDetails(t *testing.T) {
	svc, _ := testService(t, defaultOrderConfig())
	ctx := context.Background()

	details := CustomerDetails{Name: "Nino", Date: "2026-06-12", Guests: "25", Phone: "+995"}
	_, err := svc.Submit(ctx, "s1", "en", details)
	require.NoError(t, err)

	assert.Equal(t, details, svc.Details(ctx, "s1"))
}

func TestWhatsAppLink(t *testing.T) {
	svc, _ := testService(t, defaultOrderConfig())

	link := svc.whatsAppLink("Order: 2x ხაჭაპური")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/?text="))
	assert.NotContains(t, link, " ")

	cfg := defaultOrderConfig()
	cfg.WhatsAppPhone = "995555123456"
	svc, _ = testService(t, cfg)

	assert.True(t, strings.HasPrefix(svc.whatsAppLink("hi"), "https://wa.me/995555123456?text="))
}

func TestReview(t *testing.T) {
	svc, cartSvc := testService(t, defaultOrderConfig())
	ctx := context.Background()

	cartSvc.AddProduct(ctx, "s1", "en", "pkhali", 3)
	svc.SaveDetails(ctx, "s1", CustomerDetails{Name: "Nino", Phone: "+995"})

	payload, summary, link := svc.Review(ctx, "s1", "en")

	require.Len(t, payload.Items, 1)
	assert.Equal(t, "Nino", payload.Customer.Name)
	assert.Contains(t, summary, "1. Pkhali")
	assert.Contains(t, summary, "Price: 24.00 ₾")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/"))
}
