package services

import "errors"

var (
	// ErrNotFound covers a missing product, cart, or a cart item that does
	// not belong to the caller's cart.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict is surfaced after bounded internal retries of a
	// concurrent-mutation race.
	ErrConflict = errors.New("conflicting concurrent cart mutation")

	// ErrCheckoutFailed wraps any failure inside the cart-to-order
	// conversion; the cart is left unchanged.
	ErrCheckoutFailed = errors.New("checkout did not complete")
)
