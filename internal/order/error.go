package order

import "errors"

var (
	ErrCartRequired   = errors.New("cart id is required")
	ErrCartNotOwned   = errors.New("unauthorized to access this cart")
	ErrCartNotPending = errors.New("cart is not in a pending state")
	ErrCartEmpty      = errors.New("cart has no items")
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidStatus  = errors.New("invalid order status")
)
