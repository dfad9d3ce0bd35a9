package feedback

import "time"

type Feedback struct {
	ID          int64     `json:"feedbackId"`
	UserID      int64     `json:"userId"`
	CompanyID   int64     `json:"companyId"`
	Message     string    `json:"message"`
	DateCreated time.Time `json:"dateCreated"`
	Resolved    bool      `json:"resolved"`
}

type CreateFeedbackParams struct {
	Message string `json:"message"`
}
