package company

import (
	"context"
	"strings"
	"time"
)

type Service interface {
	List(ctx context.Context) ([]*Company, error)
	Details(ctx context.Context, id int64) (*Company, error)
	Create(ctx context.Context, params CreateCompanyParams) (*Company, error)
	Update(ctx context.Context, id int64, params UpdateCompanyParams) (*Company, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]*Company, error)

	ListGoals(ctx context.Context, companyID int64) ([]*ProductionGoal, error)
	GoalDetails(ctx context.Context, id, companyID int64) (*ProductionGoal, error)
	GoalsByProduct(ctx context.Context, productID, companyID int64) ([]*ProductionGoal, error)
	ActiveGoals(ctx context.Context, companyID int64) ([]*ProductionGoal, error)
	GoalsByDateRange(ctx context.Context, companyID int64, from, to time.Time) ([]*ProductionGoal, error)
	CreateGoal(ctx context.Context, companyID int64, params CreateGoalParams) (*ProductionGoal, error)
	UpdateGoal(ctx context.Context, id, companyID int64, params UpdateGoalParams) (*ProductionGoal, error)
	DeleteGoal(ctx context.Context, id, companyID int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Company, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) Details(ctx context.Context, id int64) (*Company, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCompanyNotFound
	}
	return c, nil
}

func (s *service) Create(ctx context.Context, params CreateCompanyParams) (*Company, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, ErrNameRequired
	}
	return s.repo.Create(ctx, params)
}

func (s *service) Update(ctx context.Context, id int64, params UpdateCompanyParams) (*Company, error) {
	c, err := s.repo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCompanyNotFound
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Search(ctx context.Context, query string) ([]*Company, error) {
	return s.repo.Search(ctx, query)
}

func (s *service) ListGoals(ctx context.Context, companyID int64) ([]*ProductionGoal, error) {
	return s.repo.GetGoalsByCompanyID(ctx, companyID)
}

func (s *service) GoalDetails(ctx context.Context, id, companyID int64) (*ProductionGoal, error) {
	g, err := s.repo.GetGoalByID(ctx, id, companyID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGoalNotFound
	}
	return g, nil
}

func (s *service) GoalsByProduct(ctx context.Context, productID, companyID int64) ([]*ProductionGoal, error) {
	return s.repo.GetGoalsByProductID(ctx, productID, companyID)
}

func (s *service) ActiveGoals(ctx context.Context, companyID int64) ([]*ProductionGoal, error) {
	return s.repo.GetActiveGoals(ctx, companyID, time.Now())
}

func (s *service) GoalsByDateRange(
	ctx context.Context,
	companyID int64,
	from, to time.Time,
) ([]*ProductionGoal, error) {

	return s.repo.GetGoalsByDateRange(ctx, companyID, from, to)
}

func (s *service) CreateGoal(
	ctx context.Context,
	companyID int64,
	params CreateGoalParams,
) (*ProductionGoal, error) {

	if params.ProductID == 0 {
		return nil, ErrProductRequired
	}
	if params.GoalValue <= 0 {
		return nil, ErrInvalidGoal
	}
	if !params.EffectiveDate.Before(params.EndDate) {
		return nil, ErrInvalidWindow
	}
	return s.repo.CreateGoal(ctx, companyID, params)
}

func (s *service) UpdateGoal(
	ctx context.Context,
	id, companyID int64,
	params UpdateGoalParams,
) (*ProductionGoal, error) {

	if params.GoalValue != nil && *params.GoalValue <= 0 {
		return nil, ErrInvalidGoal
	}

	g, err := s.repo.UpdateGoal(ctx, id, companyID, params)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGoalNotFound
	}
	return g, nil
}

func (s *service) DeleteGoal(ctx context.Context, id, companyID int64) error {
	return s.repo.DeleteGoal(ctx, id, companyID)
}
