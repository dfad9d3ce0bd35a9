package company

import "time"

type Company struct {
	ID          int64     `json:"companyId"`
	Name        string    `json:"name"`
	Industry    string    `json:"industry"`
	Description string    `json:"description"`
	LogoURL     string    `json:"logoURL"`
	DateCreated time.Time `json:"dateCreated"`
}

// ProductionGoal is a target output for one product over a date window.
type ProductionGoal struct {
	ID            int64     `json:"productionGoalId"`
	DateCreated   time.Time `json:"dateCreated"`
	GoalValue     int64     `json:"goalValue"`
	ProductID     int64     `json:"productId"`
	CompanyID     int64     `json:"companyId"`
	EffectiveDate time.Time `json:"effectiveDate"`
	EndDate       time.Time `json:"endDate"`
}

type CreateCompanyParams struct {
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Description string `json:"description"`
	LogoURL     string `json:"logoURL"`
}

type UpdateCompanyParams struct {
	Name        *string `json:"name"`
	Industry    *string `json:"industry"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logoURL"`
}

type CreateGoalParams struct {
	GoalValue     int64     `json:"goalValue"`
	ProductID     int64     `json:"productId"`
	EffectiveDate time.Time `json:"effectiveDate"`
	EndDate       time.Time `json:"endDate"`
}

type UpdateGoalParams struct {
	GoalValue     *int64     `json:"goalValue"`
	EffectiveDate *time.Time `json:"effectiveDate"`
	EndDate       *time.Time `json:"endDate"`
}
