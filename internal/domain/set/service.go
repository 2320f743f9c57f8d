// internal/domain/set/service.go
package set

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/catering-storefront/internal/domain/cart"
	"github.com/your-org/catering-storefront/internal/domain/catalog"
	"github.com/your-org/catering-storefront/internal/domain/pricing"
	"github.com/your-org/catering-storefront/internal/infrastructure/storage"
)

var (
	// ErrSetNotFound means the catalog has no set with the given id
	ErrSetNotFound = errors.New("set not found")

	// ErrUnknownVariant means the variant is not offered by the set
	ErrUnknownVariant = errors.New("unknown set variant")

	// ErrSessionNotFound means the edit session expired or never existed
	ErrSessionNotFound = errors.New("set edit session not found")
)

// Service runs set configuration edit sessions. Sessions live in
// storage under their own key with a short TTL, isolated from the cart:
// only Save commits the configuration, through the cart engine.
type Service struct {
	catalog *catalog.Store
	calc    *pricing.Calculator
	cart    *cart.Service
	store   storage.Store
	ttl     time.Duration
	log     *logrus.Logger
}

// NewService creates a new set configuration service
func NewService(store storage.Store, cat *catalog.Store, calc *pricing.Calculator, cartSvc *cart.Service, ttl time.Duration, log *logrus.Logger) *Service {
	return &Service{
		catalog: cat,
		calc:    calc,
		cart:    cartSvc,
		store:   store,
		ttl:     ttl,
		log:     log,
	}
}

// View is an edit session snapshot with live derived prices
type View struct {
	Session        Session         `json:"session"`
	PricePerPerson decimal.Decimal `json:"pricePerPerson"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	Currency       string          `json:"currency"`
}

// Begin starts an edit session for a set. When lineID names an existing
// set line in the cart the session is seeded from that line's saved
// configuration; otherwise it starts from the catalog defaults. An
// unknown set id fails fast before any state is created.
func (s *Service) Begin(ctx context.Context, sessionID, lang, setID, lineID string) (*View, error) {
	def, ok := s.catalog.Set(setID)
	if !ok {
		return nil, ErrSetNotFound
	}

	sess := Session{
		ID:      uuid.New().String(),
		SetID:   setID,
		Persons: def.DefaultPersons,
		Rows:    pricing.DeriveRows(def),
		Lang:    lang,
	}
	if sess.Persons < 1 {
		sess.Persons = 1
	}
	if len(def.Variants) > 0 {
		sess.Variant = def.Variants[0]
	}

	if lineID != "" {
		if line, ok := s.cart.Line(ctx, sessionID, lineID); ok && line.Type == cart.LineTypeSet && line.SetConfig != nil && line.SetConfig.SetID == setID {
			sess.LineID = lineID
			sess.Persons = line.SetConfig.Persons
			sess.Variant = line.SetConfig.Variant
			sess.Rows = make([]pricing.PortionRow, len(line.SetConfig.PerPerson))
			copy(sess.Rows, line.SetConfig.PerPerson)
		}
	}

	s.save(ctx, sessionID, &sess)
	return s.view(&sess), nil
}

// Get returns the current state of an edit session
func (s *Service) Get(ctx context.Context, sessionID, editID string) (*View, error) {
	sess, err := s.load(ctx, sessionID, editID)
	if err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// SetPersons updates the session headcount
func (s *Service) SetPersons(ctx context.Context, sessionID, editID string, persons int) (*View, error) {
	sess, err := s.load(ctx, sessionID, editID)
	if err != nil {
		return nil, err
	}
	sess.SetPersons(persons)
	s.save(ctx, sessionID, sess)
	return s.view(sess), nil
}

// SetVariant switches the session to another variant of the set
func (s *Service) SetVariant(ctx context.Context, sessionID, editID, variant string) (*View, error) {
	sess, err := s.load(ctx, sessionID, editID)
	if err != nil {
		return nil, err
	}

	def, ok := s.catalog.Set(sess.SetID)
	if !ok {
		return nil, ErrSetNotFound
	}
	valid := false
	for _, v := range def.Variants {
		if v == variant {
			valid = true
			break
		}
	}
	if !valid {
		return nil, ErrUnknownVariant
	}

	sess.Variant = variant
	s.save(ctx, sessionID, sess)
	return s.view(sess), nil
}

// BumpRow adjusts one portion row's per-person quantity by delta
func (s *Service) BumpRow(ctx context.Context, sessionID, editID, productID string, delta decimal.Decimal) (*View, error) {
	sess, err := s.load(ctx, sessionID, editID)
	if err != nil {
		return nil, err
	}
	sess.BumpRow(productID, delta)
	s.save(ctx, sessionID, sess)
	return s.view(sess), nil
}

// Save commits the session's configuration into the cart and discards
// the session. Sessions started from an existing line replace that line
// in place; fresh sessions append a new set line.
func (s *Service) Save(ctx context.Context, sessionID, editID string) (*cart.CartResponse, error) {
	sess, err := s.load(ctx, sessionID, editID)
	if err != nil {
		return nil, err
	}

	resp := s.cart.UpsertSet(ctx, sessionID, sess.Lang, sess.Config(s.calc), sess.LineID)
	s.store.Delete(ctx, storage.EditSessionKey(sessionID, editID))
	return resp, nil
}

// Abandon discards the session without touching the cart. Discarding an
// already-gone session is a no-op.
func (s *Service) Abandon(ctx context.Context, sessionID, editID string) {
	s.store.Delete(ctx, storage.EditSessionKey(sessionID, editID))
}

func (s *Service) load(ctx context.Context, sessionID, editID string) (*Session, error) {
	var sess Session
	if !s.store.Read(ctx, storage.EditSessionKey(sessionID, editID), &sess) {
		return nil, ErrSessionNotFound
	}
	return &sess, nil
}

func (s *Service) save(ctx context.Context, sessionID string, sess *Session) {
	s.store.Write(ctx, storage.EditSessionKey(sessionID, sess.ID), sess, s.ttl)
}

func (s *Service) view(sess *Session) *View {
	per := sess.PricePerPerson(s.calc)
	return &View{
		Session:        *sess,
		PricePerPerson: per,
		TotalPrice:     pricing.SetTotalPrice(per, sess.Persons),
		Currency:       s.catalog.Currency(),
	}
}
