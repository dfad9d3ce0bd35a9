package cart

import "errors"

var (
	// -- Validation & Input --
	ErrCartRequired    = errors.New("cart ID is required")
	ErrProductRequired = errors.New("product ID and quantity are required")
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")
	ErrInvalidStatus   = errors.New("invalid status, must be PENDING, COMPLETED, or CANCELLED")

	// -- Resource state --
	ErrCartNotFound = errors.New("cart not found")
	ErrItemNotFound = errors.New("cart item not found")
)
