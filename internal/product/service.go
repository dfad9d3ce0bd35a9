package product

import (
	"context"
	"strings"
)

// Service defines the business logic for products.
type Service interface {
	List(ctx context.Context, companyID int64) ([]*Product, error)
	Details(ctx context.Context, id int64) (*Product, error)
	Create(ctx context.Context, companyID int64, params CreateProductParams) (*Product, error)
	Update(ctx context.Context, id int64, params UpdateProductParams) (*Product, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, companyID int64, query string) ([]*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, companyID int64) ([]*Product, error) {
	return s.repo.GetByCompanyID(ctx, companyID)
}

func (s *service) Details(ctx context.Context, id int64) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *service) Create(ctx context.Context, companyID int64, params CreateProductParams) (*Product, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, ErrNameRequired
	}
	if params.Price < 0 {
		return nil, ErrNegativePrice
	}
	return s.repo.Create(ctx, companyID, params)
}

func (s *service) Update(ctx context.Context, id int64, params UpdateProductParams) (*Product, error) {
	if params.Price != nil && *params.Price < 0 {
		return nil, ErrNegativePrice
	}

	p, err := s.repo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Search(ctx context.Context, companyID int64, query string) ([]*Product, error) {
	return s.repo.Search(ctx, companyID, query)
}
