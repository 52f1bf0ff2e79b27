// internal/domain/checkout/session.go
package checkout

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-cart/internal/domain/cart"
)

// MethodStorage persists the fulfillment method chosen in a browsing session
type MethodStorage interface {
	LoadMethod(ctx context.Context, sessionID string) (string, error)
	SaveMethod(ctx context.Context, sessionID, method string) error
}

// View is everything a renderer needs to draw the cart table and order summary
type View struct {
	Entries         []cart.Entry
	Summary         OrderSummary
	CheckoutEnabled bool
	AddressRequired bool
	ShowPaymentQR   bool
}

// Listener is notified with a fresh View after every state change
type Listener interface {
	Render(ctx context.Context, view View)
}

// ListenerFunc adapts a function to the Listener interface
type ListenerFunc func(ctx context.Context, view View)

// Render calls f
func (f ListenerFunc) Render(ctx context.Context, view View) {
	f(ctx, view)
}

// Session ties a cart store to the selected fulfillment method and keeps
// listeners in sync with both.
type Session struct {
	store     *cart.Store
	method    Method
	methods   MethodStorage
	calc      *Calculator
	logger    logrus.FieldLogger
	listeners []Listener
}

// OpenSession restores the selected method for the store's session. A missing
// or unrecognised stored method selects the default.
func OpenSession(ctx context.Context, store *cart.Store, methods MethodStorage, calc *Calculator, logger logrus.FieldLogger, listeners ...Listener) *Session {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	s := &Session{
		store:     store,
		method:    DefaultMethod,
		methods:   methods,
		calc:      calc,
		logger:    logger.WithField("session_id", store.SessionID()),
		listeners: listeners,
	}

	raw, err := methods.LoadMethod(ctx, store.SessionID())
	switch {
	case errors.Is(err, cart.ErrNotFound):
	case err != nil:
		s.logger.WithError(err).Warn("Fulfillment method unavailable, using default")
	default:
		m, err := ParseMethod(raw)
		if err != nil {
			s.logger.WithField("method", raw).Warn("Ignoring unknown stored fulfillment method")
		}
		s.method = m
	}

	return s
}

// Subscribe registers another listener
func (s *Session) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Store returns the underlying cart store
func (s *Session) Store() *cart.Store {
	return s.store
}

// Method returns the selected fulfillment method
func (s *Session) Method() Method {
	return s.method
}

// View computes the current snapshot
func (s *Session) View() View {
	entries := s.store.Entries()
	return View{
		Entries:         entries,
		Summary:         s.calc.Summarize(entries, s.method),
		CheckoutEnabled: s.calc.IsCheckoutEligible(entries),
		AddressRequired: s.method.RequiresAddress(),
		ShowPaymentQR:   s.method.ShowsPaymentQR(),
	}
}

// Add adds a product to the cart. Listeners are not notified when the price is rejected.
func (s *Session) Add(ctx context.Context, name, price, image string) error {
	if err := s.store.Add(ctx, name, price, image); err != nil {
		return err
	}
	s.notify(ctx)
	return nil
}

// SetQuantity replaces an entry's quantity, removing it below 1
func (s *Session) SetQuantity(ctx context.Context, name string, quantity int) {
	s.store.SetQuantity(ctx, name, quantity)
	s.notify(ctx)
}

// SetQuantityInput applies a raw quantity edit from a form field
func (s *Session) SetQuantityInput(ctx context.Context, name, raw string) {
	s.store.SetQuantityInput(ctx, name, raw)
	s.notify(ctx)
}

// Remove deletes an entry
func (s *Session) Remove(ctx context.Context, name string) {
	s.store.Remove(ctx, name)
	s.notify(ctx)
}

// Clear empties the cart
func (s *Session) Clear(ctx context.Context) {
	s.store.Clear(ctx)
	s.notify(ctx)
}

// SelectMethod switches the fulfillment method. Unknown input selects the
// default rather than failing.
func (s *Session) SelectMethod(ctx context.Context, raw string) Method {
	m, err := ParseMethod(raw)
	if err != nil {
		s.logger.WithField("method", raw).Warn("Unknown fulfillment method, using default")
	}

	s.method = m
	if err := s.methods.SaveMethod(ctx, s.store.SessionID(), string(m)); err != nil {
		s.logger.WithError(err).Warn("Failed to persist fulfillment method")
	}

	s.notify(ctx)
	return m
}

func (s *Session) notify(ctx context.Context) {
	if len(s.listeners) == 0 {
		return
	}
	view := s.View()
	for _, l := range s.listeners {
		l.Render(ctx, view)
	}
}
