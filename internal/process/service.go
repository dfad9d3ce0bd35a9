package process

import (
	"context"
	"strings"
)

// Service defines the business logic for processes and their material
// lists, including the recipe resolution used by the inventory workflows.
type Service interface {
	ResolveForProduct(ctx context.Context, productID int64) (*Resolution, error)
	List(ctx context.Context, companyID int64) ([]*Process, error)
	Materials(ctx context.Context, processID int64) ([]*MaterialRequirement, error)
	UsageByMaterial(ctx context.Context, materialID int64) ([]*Usage, error)
	Create(ctx context.Context, companyID int64, params CreateProcessParams) (*Process, error)
	Update(ctx context.Context, productID int64, params UpdateProcessParams) (*Process, error)
	DeleteByProduct(ctx context.Context, productID int64) error
	AddMaterial(ctx context.Context, processID, companyID int64, entry RequirementsEntry) error
	RemoveMaterial(ctx context.Context, processID, materialID int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ResolveForProduct finds the process producing the given product and its
// material list. Read-only.
func (s *service) ResolveForProduct(ctx context.Context, productID int64) (*Resolution, error) {
	p, err := s.repo.GetByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProcessNotFound
	}

	materials, err := s.repo.GetRequirements(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	return &Resolution{Process: p, Materials: materials}, nil
}

func (s *service) List(ctx context.Context, companyID int64) ([]*Process, error) {
	return s.repo.GetByCompanyID(ctx, companyID)
}

func (s *service) Materials(ctx context.Context, processID int64) ([]*MaterialRequirement, error) {
	return s.repo.GetRequirements(ctx, processID)
}

func (s *service) UsageByMaterial(ctx context.Context, materialID int64) ([]*Usage, error) {
	return s.repo.GetUsageByMaterialID(ctx, materialID)
}

func (s *service) Create(ctx context.Context, companyID int64, params CreateProcessParams) (*Process, error) {
	if params.ProductID == 0 {
		return nil, ErrProductRequired
	}
	if strings.TrimSpace(params.Name) == "" {
		return nil, ErrNameRequired
	}
	if params.ProductsPerBatch <= 0 {
		return nil, ErrInvalidBatchSize
	}

	return s.repo.Create(ctx, companyID, params)
}

func (s *service) Update(ctx context.Context, productID int64, params UpdateProcessParams) (*Process, error) {
	if params.ProductsPerBatch != nil && *params.ProductsPerBatch <= 0 {
		return nil, ErrInvalidBatchSize
	}

	p, err := s.repo.Update(ctx, productID, params)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProcessNotFound
	}
	return p, nil
}

func (s *service) DeleteByProduct(ctx context.Context, productID int64) error {
	return s.repo.DeleteByProductID(ctx, productID)
}

// AddMaterial appends one entry to a process's material list.
func (s *service) AddMaterial(ctx context.Context, processID, companyID int64, entry RequirementsEntry) error {
	if entry.MaterialID == 0 {
		return ErrMaterialRequired
	}
	if entry.QuantityNeeded <= 0 {
		return ErrInvalidQuantity
	}

	p, err := s.repo.GetByID(ctx, processID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProcessNotFound
	}

	return s.repo.AddRequirement(ctx, processID, companyID, entry)
}

func (s *service) RemoveMaterial(ctx context.Context, processID, materialID int64) error {
	return s.repo.DeleteRequirement(ctx, processID, materialID)
}
