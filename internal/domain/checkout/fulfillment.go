// internal/domain/checkout/fulfillment.go
package checkout

import (
	"strings"
)

// Method is how an order reaches the customer
type Method string

const (
	MethodCashOnDelivery Method = "cod"
	MethodPickup         Method = "pickup"
)

// DefaultMethod is used whenever no method has been selected
const DefaultMethod = MethodCashOnDelivery

// ParseMethod maps a raw selection to a Method. An empty selection is the default.
func ParseMethod(raw string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(raw))) {
	case "", MethodCashOnDelivery:
		return MethodCashOnDelivery, nil
	case MethodPickup:
		return MethodPickup, nil
	default:
		return DefaultMethod, ErrUnknownFulfillmentMethod
	}
}

// MethodOrDefault is ParseMethod with unknown values folded into the default
func MethodOrDefault(raw string) Method {
	m, _ := ParseMethod(raw)
	return m
}

// Valid reports whether m is one of the known methods
func (m Method) Valid() bool {
	return m == MethodCashOnDelivery || m == MethodPickup
}

// ShippingLabel is the caption of the shipping row in the order summary
func (m Method) ShippingLabel() string {
	if m == MethodPickup {
		return "Shipping (Pickup)"
	}
	return "Shipping (COD)"
}

// DisplayName is the customer facing name of the method
func (m Method) DisplayName() string {
	if m == MethodPickup {
		return "Store Pickup"
	}
	return "Cash on Delivery"
}

// RequiresAddress reports whether a delivery address must be collected
func (m Method) RequiresAddress() bool {
	return m != MethodPickup
}

// ShowsPaymentQR reports whether the e-wallet QR code is offered (paid on pickup)
func (m Method) ShowsPaymentQR() bool {
	return m == MethodPickup
}
