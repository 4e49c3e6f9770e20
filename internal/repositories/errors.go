package repository

import "errors"

// Sentinels surfaced by storage so services can map outcomes to API errors
// without parsing driver messages.
var (
	// ErrEmptyCart aborts a checkout before any write happens.
	ErrEmptyCart = errors.New("cart has no items")

	// ErrInvalidCartItem marks a cart row with a non-positive quantity or a
	// negative unit price.
	ErrInvalidCartItem = errors.New("cart item has invalid quantity or price")

	// ErrInsufficientStock rejects a reservation larger than the free stock.
	ErrInsufficientStock = errors.New("insufficient unreserved stock")
)
