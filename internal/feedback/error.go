package feedback

import "errors"

var (
	ErrMessageRequired  = errors.New("feedback message is required")
	ErrFeedbackNotFound = errors.New("feedback not found")
)
