package inventory

import "errors"

var (
	ErrProcessRequired     = errors.New("process id is required")
	ErrNoProcess           = errors.New("no production process found")
	ErrInsufficientStock   = errors.New("insufficient material stock for production run")
	ErrTransactionNotFound = errors.New("inventory transaction not found")
	ErrInvalidQuantity     = errors.New("quantity must not be zero")
)
