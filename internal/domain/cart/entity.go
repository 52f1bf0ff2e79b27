// internal/domain/cart/entity.go
package cart

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// MaxQuantity caps the quantity of a single entry
	MaxQuantity = 999
	// maxPriceScale is the number of decimal places a price may carry
	maxPriceScale = 10
	// maxPriceExponent bounds exponent notation such as "1e9"
	maxPriceExponent = 9
)

// MaxPrice is the largest accepted unit price
var MaxPrice = decimal.New(1, 9)

// Entry is one distinct product in a session cart
type Entry struct {
	Name     string `json:"name"`
	Price    string `json:"price"` // Price text as accepted at add-time
	Quantity int    `json:"quantity"`
	Image    string `json:"image"`
}

// UnitPrice returns the parsed price, or zero when the stored text is not a valid price
func (e Entry) UnitPrice() decimal.Decimal {
	price, err := ParsePrice(e.Price)
	if err != nil {
		return decimal.Zero
	}
	return price
}

// LineTotal returns unit price times quantity, unrounded
func (e Entry) LineTotal() decimal.Decimal {
	if e.Quantity <= 0 {
		return decimal.Zero
	}
	return e.UnitPrice().Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// ParsePrice validates an untrusted price string. Only non-negative decimal
// amounts up to MaxPrice with at most ten decimal places are accepted.
func ParsePrice(input string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return decimal.Zero, ErrInvalidPrice
	}

	price, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, ErrInvalidPrice
	}
	if price.IsNegative() {
		return decimal.Zero, ErrInvalidPrice
	}
	// Checked before any comparison: comparing rescales both operands.
	if price.Exponent() > maxPriceExponent || price.Exponent() < -maxPriceScale {
		return decimal.Zero, ErrInvalidPrice
	}
	if price.GreaterThan(MaxPrice) {
		return decimal.Zero, ErrInvalidPrice
	}

	return price, nil
}
