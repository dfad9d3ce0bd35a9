package company

import "errors"

var (
	ErrNameRequired    = errors.New("company name is required")
	ErrCompanyNotFound = errors.New("company not found")
	ErrProductRequired = errors.New("product id is required")
	ErrGoalNotFound    = errors.New("production goal not found")
	ErrInvalidGoal     = errors.New("goal value must be positive")
	ErrInvalidWindow   = errors.New("effective date must precede end date")
)
