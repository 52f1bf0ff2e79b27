// internal/domain/checkout/calculator.go
package checkout

import (
	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-cart/internal/domain/cart"
)

// Calculator derives order figures from cart entries and a fulfillment method.
// It is stateless; amounts are exact and only rounded when formatted.
type Calculator struct {
	shippingCOD    decimal.Decimal
	currencySymbol string
}

// NewCalculator creates a calculator charging shippingCOD for cash on delivery
func NewCalculator(shippingCOD decimal.Decimal, currencySymbol string) *Calculator {
	return &Calculator{
		shippingCOD:    shippingCOD,
		currencySymbol: currencySymbol,
	}
}

// Subtotal sums unit price times quantity. Entries with an unparseable price or a
// non-positive quantity contribute zero.
func (c *Calculator) Subtotal(entries []cart.Entry) decimal.Decimal {
	subtotal := decimal.Zero
	for _, e := range entries {
		subtotal = subtotal.Add(e.LineTotal())
	}
	return subtotal
}

// ShippingCost returns the shipping charge for m
func (c *Calculator) ShippingCost(m Method) (decimal.Decimal, error) {
	switch m {
	case MethodCashOnDelivery:
		return c.shippingCOD, nil
	case MethodPickup:
		return decimal.Zero, nil
	default:
		return decimal.Zero, ErrUnknownFulfillmentMethod
	}
}

// Total is subtotal plus shipping. An unknown method is charged as the default.
func (c *Calculator) Total(entries []cart.Entry, m Method) decimal.Decimal {
	return c.Subtotal(entries).Add(c.shippingFor(m))
}

// IsCheckoutEligible reports whether the cart holds at least one item
func (c *Calculator) IsCheckoutEligible(entries []cart.Entry) bool {
	return cart.ItemCount(entries) > 0
}

// Summarize computes the complete order summary
func (c *Calculator) Summarize(entries []cart.Entry, m Method) OrderSummary {
	if !m.Valid() {
		m = DefaultMethod
	}

	subtotal := c.Subtotal(entries)
	shipping := c.shippingFor(m)

	return OrderSummary{
		Method:         m,
		ItemCount:      cart.ItemCount(entries),
		Subtotal:       subtotal,
		ShippingCost:   shipping,
		ShippingLabel:  m.ShippingLabel(),
		Total:          subtotal.Add(shipping),
		currencySymbol: c.currencySymbol,
	}
}

func (c *Calculator) shippingFor(m Method) decimal.Decimal {
	cost, err := c.ShippingCost(m)
	if err != nil {
		cost, _ = c.ShippingCost(DefaultMethod)
	}
	return cost
}
