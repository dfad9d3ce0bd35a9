package process

import "errors"

var (
	ErrProcessNotFound  = errors.New("process not found")
	ErrProductRequired  = errors.New("product ID is required")
	ErrNameRequired     = errors.New("process name is required")
	ErrInvalidBatchSize = errors.New("products per batch must be greater than 0")
	ErrMaterialRequired = errors.New("material ID is required")
	ErrInvalidQuantity  = errors.New("quantity needed must be greater than 0")
)
