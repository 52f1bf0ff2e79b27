package checkout

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// OrderSummary is derived from the cart on demand and never stored
type OrderSummary struct {
	Method        Method
	ItemCount     int
	Subtotal      decimal.Decimal
	ShippingCost  decimal.Decimal
	ShippingLabel string
	Total         decimal.Decimal

	currencySymbol string
}

// FormattedSummary is the presentation form of an OrderSummary
type FormattedSummary struct {
	Method        Method `json:"method"`
	MethodName    string `json:"method_name"`
	ItemCount     int    `json:"item_count"`
	SubtotalLabel string `json:"subtotal_label"`
	Subtotal      string `json:"subtotal"`
	ShippingLabel string `json:"shipping_label"`
	ShippingCost  string `json:"shipping_cost"`
	Total         string `json:"total"`
}

// Formatted rounds every amount to two decimals for display
func (s OrderSummary) Formatted() FormattedSummary {
	return FormattedSummary{
		Method:        s.Method,
		MethodName:    s.Method.DisplayName(),
		ItemCount:     s.ItemCount,
		SubtotalLabel: fmt.Sprintf("Subtotal (%d items)", s.ItemCount),
		Subtotal:      s.Money(s.Subtotal),
		ShippingLabel: s.ShippingLabel,
		ShippingCost:  s.Money(s.ShippingCost),
		Total:         s.Money(s.Total),
	}
}

// Money formats an amount with the currency symbol and two decimals
func (s OrderSummary) Money(amount decimal.Decimal) string {
	return s.currencySymbol + amount.StringFixed(2)
}
