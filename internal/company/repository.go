package company

import (
	"context"
	"database/sql"
	"time"
)

type Repository interface {
	GetAll(ctx context.Context) ([]*Company, error)
	GetByID(ctx context.Context, id int64) (*Company, error)
	Create(ctx context.Context, params CreateCompanyParams) (*Company, error)
	Update(ctx context.Context, id int64, params UpdateCompanyParams) (*Company, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]*Company, error)

	GetGoalsByCompanyID(ctx context.Context, companyID int64) ([]*ProductionGoal, error)
	GetGoalByID(ctx context.Context, id, companyID int64) (*ProductionGoal, error)
	GetGoalsByProductID(ctx context.Context, productID, companyID int64) ([]*ProductionGoal, error)
	GetActiveGoals(ctx context.Context, companyID int64, at time.Time) ([]*ProductionGoal, error)
	GetGoalsByDateRange(ctx context.Context, companyID int64, from, to time.Time) ([]*ProductionGoal, error)
	CreateGoal(ctx context.Context, companyID int64, params CreateGoalParams) (*ProductionGoal, error)
	UpdateGoal(ctx context.Context, id, companyID int64, params UpdateGoalParams) (*ProductionGoal, error)
	DeleteGoal(ctx context.Context, id, companyID int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const companyColumns = `company_id, name, industry, description, logo_url, date_created`

func scanCompany(row *sql.Row) (*Company, error) {
	var c Company
	err := row.Scan(&c.ID, &c.Name, &c.Industry, &c.Description, &c.LogoURL, &c.DateCreated)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCompanies(rows *sql.Rows) ([]*Company, error) {
	defer rows.Close()

	var companies []*Company
	for rows.Next() {
		var c Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Industry, &c.Description, &c.LogoURL, &c.DateCreated); err != nil {
			return nil, err
		}
		companies = append(companies, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *repository) GetAll(ctx context.Context) ([]*Company, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+companyColumns+`
		FROM companies
		ORDER BY date_created DESC
	`)
	if err != nil {
		return nil, err
	}
	return scanCompanies(rows)
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Company, error) {
	return scanCompany(r.db.QueryRowContext(ctx, `
		SELECT `+companyColumns+`
		FROM companies
		WHERE company_id = $1
	`, id))
}

func (r *repository) Create(ctx context.Context, params CreateCompanyParams) (*Company, error) {
	return scanCompany(r.db.QueryRowContext(ctx, `
		INSERT INTO companies (name, industry, description, logo_url)
		VALUES ($1, $2, $3, $4)
		RETURNING `+companyColumns+`
	`, params.Name, params.Industry, params.Description, params.LogoURL))
}

func (r *repository) Update(ctx context.Context, id int64, params UpdateCompanyParams) (*Company, error) {
	return scanCompany(r.db.QueryRowContext(ctx, `
		UPDATE companies
		SET
			name = COALESCE($1, name),
			industry = COALESCE($2, industry),
			description = COALESCE($3, description),
			logo_url = COALESCE($4, logo_url)
		WHERE company_id = $5
		RETURNING `+companyColumns+`
	`, params.Name, params.Industry, params.Description, params.LogoURL, id))
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM companies WHERE company_id = $1`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func (r *repository) Search(ctx context.Context, query string) ([]*Company, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+companyColumns+`
		FROM companies
		WHERE name ILIKE $1 OR industry ILIKE $1 OR description ILIKE $1
		ORDER BY name
	`, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	return scanCompanies(rows)
}

const goalColumns = `production_goal_id, date_created, goal_value, product_id, company_id, effective_date, end_date`

func scanGoal(row *sql.Row) (*ProductionGoal, error) {
	var g ProductionGoal
	err := row.Scan(&g.ID, &g.DateCreated, &g.GoalValue, &g.ProductID, &g.CompanyID, &g.EffectiveDate, &g.EndDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func scanGoals(rows *sql.Rows) ([]*ProductionGoal, error) {
	defer rows.Close()

	var goals []*ProductionGoal
	for rows.Next() {
		var g ProductionGoal
		if err := rows.Scan(&g.ID, &g.DateCreated, &g.GoalValue, &g.ProductID, &g.CompanyID, &g.EffectiveDate, &g.EndDate); err != nil {
			return nil, err
		}
		goals = append(goals, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *repository) GetGoalsByCompanyID(ctx context.Context, companyID int64) ([]*ProductionGoal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+goalColumns+`
		FROM production_goals
		WHERE company_id = $1
		ORDER BY date_created DESC
	`, companyID)
	if err != nil {
		return nil, err
	}
	return scanGoals(rows)
}

func (r *repository) GetGoalByID(ctx context.Context, id, companyID int64) (*ProductionGoal, error) {
	return scanGoal(r.db.QueryRowContext(ctx, `
		SELECT `+goalColumns+`
		FROM production_goals
		WHERE production_goal_id = $1 AND company_id = $2
	`, id, companyID))
}

func (r *repository) GetGoalsByProductID(ctx context.Context, productID, companyID int64) ([]*ProductionGoal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+goalColumns+`
		FROM production_goals
		WHERE product_id = $1 AND company_id = $2
		ORDER BY date_created DESC
	`, productID, companyID)
	if err != nil {
		return nil, err
	}
	return scanGoals(rows)
}

func (r *repository) GetActiveGoals(ctx context.Context, companyID int64, at time.Time) ([]*ProductionGoal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+goalColumns+`
		FROM production_goals
		WHERE company_id = $1
		  AND effective_date <= $2
		  AND end_date >= $2
		ORDER BY effective_date
	`, companyID, at)
	if err != nil {
		return nil, err
	}
	return scanGoals(rows)
}

func (r *repository) GetGoalsByDateRange(
	ctx context.Context,
	companyID int64,
	from, to time.Time,
) ([]*ProductionGoal, error) {

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+goalColumns+`
		FROM production_goals
		WHERE company_id = $1
		  AND effective_date >= $2
		  AND end_date <= $3
		ORDER BY effective_date
	`, companyID, from, to)
	if err != nil {
		return nil, err
	}
	return scanGoals(rows)
}

func (r *repository) CreateGoal(ctx context.Context, companyID int64, params CreateGoalParams) (*ProductionGoal, error) {
	return scanGoal(r.db.QueryRowContext(ctx, `
		INSERT INTO production_goals (goal_value, product_id, company_id, effective_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+goalColumns+`
	`, params.GoalValue, params.ProductID, companyID, params.EffectiveDate, params.EndDate))
}

func (r *repository) UpdateGoal(ctx context.Context, id, companyID int64, params UpdateGoalParams) (*ProductionGoal, error) {
	return scanGoal(r.db.QueryRowContext(ctx, `
		UPDATE production_goals
		SET
			goal_value = COALESCE($1, goal_value),
			effective_date = COALESCE($2, effective_date),
			end_date = COALESCE($3, end_date)
		WHERE production_goal_id = $4 AND company_id = $5
		RETURNING `+goalColumns+`
	`, params.GoalValue, params.EffectiveDate, params.EndDate, id, companyID))
}

func (r *repository) DeleteGoal(ctx context.Context, id, companyID int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM production_goals WHERE production_goal_id = $1 AND company_id = $2
	`, id, companyID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrGoalNotFound
	}
	return nil
}
