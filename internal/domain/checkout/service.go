// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-cart/internal/domain/cart"
)

// OrderForm holds the contact and fulfillment fields collected at checkout
type OrderForm struct {
	Name    string `json:"name" form:"name"`
	Address string `json:"address" form:"address"`
	Phone   string `json:"phone" form:"phone"`
	Method  string `json:"payment_method" form:"payment_method"`
}

// OrderRecord is a finalized, simulated order
type OrderRecord struct {
	OrderNumber string           `json:"order_number"`
	Name        string           `json:"name"`
	Address     *string          `json:"address,omitempty"`
	Phone       string           `json:"phone"`
	Method      Method           `json:"method"`
	Items       []cart.Entry     `json:"items"`
	Summary     OrderSummary     `json:"-"`
	Totals      FormattedSummary `json:"totals"`
	PlacedAt    time.Time        `json:"placed_at"`
}

// Confirmation is what the customer sees after placing an order
type Confirmation struct {
	Record  *OrderRecord `json:"order"`
	Title   string       `json:"title"`
	Message string       `json:"message"`
	HTML    string       `json:"html,omitempty"`
}

// Confirmer receives every placed order
type Confirmer interface {
	Confirm(ctx context.Context, record *OrderRecord) (*Confirmation, error)
}

// Service places orders. Nothing leaves the process; placement clears the
// session cart and hands the record to the confirmer.
type Service struct {
	calc      *Calculator
	confirmer Confirmer
	logger    logrus.FieldLogger
	now       func() time.Time
}

// NewService creates a new checkout service
func NewService(calc *Calculator, confirmer Confirmer, logger logrus.FieldLogger) *Service {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{
		calc:      calc,
		confirmer: confirmer,
		logger:    logger,
		now:       time.Now,
	}
}

// Calculator returns the calculator used for order totals
func (s *Service) Calculator() *Calculator {
	return s.calc
}

// PlaceOrder finalizes the session's cart. An empty cart is rejected with
// ErrEmptyCart and nothing changes.
func (s *Service) PlaceOrder(ctx context.Context, session *Session, form OrderForm) (*Confirmation, error) {
	entries := session.Store().Entries()
	if !s.calc.IsCheckoutEligible(entries) {
		return nil, ErrEmptyCart
	}

	method := session.Method()
	if strings.TrimSpace(form.Method) != "" {
		method = MethodOrDefault(form.Method)
	}

	record := &OrderRecord{
		Name:   strings.TrimSpace(form.Name),
		Phone:  strings.TrimSpace(form.Phone),
		Method: method,
	}
	if record.Name == "" {
		return nil, fmt.Errorf("%w: name", ErrMissingField)
	}
	if record.Phone == "" {
		return nil, fmt.Errorf("%w: phone", ErrMissingField)
	}
	if method.RequiresAddress() {
		address := strings.TrimSpace(form.Address)
		if address == "" {
			return nil, fmt.Errorf("%w: address", ErrMissingField)
		}
		record.Address = &address
	}

	if method != session.Method() {
		session.SelectMethod(ctx, string(method))
	}

	record.Items = entries
	record.Summary = s.calc.Summarize(entries, method)
	record.Totals = record.Summary.Formatted()
	record.PlacedAt = s.now().UTC()
	record.OrderNumber = newOrderNumber(record.PlacedAt)

	session.Clear(ctx)

	s.logger.WithFields(logrus.Fields{
		"order_number": record.OrderNumber,
		"session_id":   session.Store().SessionID(),
		"method":       record.Method,
		"item_count":   record.Summary.ItemCount,
		"total":        record.Summary.Total.StringFixed(2),
	}).Info("Order placed")

	confirmation, err := s.confirmer.Confirm(ctx, record)
	if err != nil {
		s.logger.WithError(err).WithField("order_number", record.OrderNumber).Error("Order confirmation failed")
		return &Confirmation{Record: record, Title: "Order Placed Successfully!"}, nil
	}

	return confirmation, nil
}

func newOrderNumber(at time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", at.Format("20060102"), suffix)
}
