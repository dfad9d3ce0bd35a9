package material

import "errors"

var (
	// -- Validation & Input --
	ErrNameRequired       = errors.New("material name and quantity in stock are required")
	ErrAdjustmentRequired = errors.New("adjustment value is required")
	ErrInvalidQuantity    = errors.New("quantity must be greater than 0")
	ErrNegativeCost       = errors.New("cost cannot be negative")

	// -- Business rules --
	ErrNegativeStock = errors.New("adjustment would result in negative inventory")

	// -- Resource state --
	ErrMaterialNotFound = errors.New("material not found")
	ErrWrongCompany     = errors.New("material does not belong to your company")
)
