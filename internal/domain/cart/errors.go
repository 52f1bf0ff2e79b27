package cart

import "errors"

var (
	// ErrInvalidPrice is returned when a product price is not a finite non-negative number
	ErrInvalidPrice = errors.New("invalid product price")
	// ErrInvalidName is returned when a product has no name to key the cart entry on
	ErrInvalidName = errors.New("product name is required")
	// ErrNotFound is returned by storage drivers when no cart has been saved for a session
	ErrNotFound = errors.New("session cart not found")
)
