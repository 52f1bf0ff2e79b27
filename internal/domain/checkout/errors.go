package checkout

import "errors"

var (
	// ErrUnknownFulfillmentMethod is returned for a method outside {cod, pickup}
	ErrUnknownFulfillmentMethod = errors.New("unknown fulfillment method")
	// ErrEmptyCart is returned when an order is placed with nothing in the cart
	ErrEmptyCart = errors.New("cannot place an empty order")
	// ErrMissingField is returned when a required contact field is blank
	ErrMissingField = errors.New("required field is missing")
)
