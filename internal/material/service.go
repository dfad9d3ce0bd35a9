package material

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mfgops-be/internal/auth"
	"mfgops-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for materials: CRUD, the stock
// ledger adjustment path, and restock transactions.
type Service interface {
	List(ctx context.Context, companyID int64) ([]*Material, error)
	Details(ctx context.Context, id int64) (*Material, error)
	Create(ctx context.Context, companyID int64, params CreateMaterialParams) (*Material, error)
	Update(ctx context.Context, id int64, params UpdateMaterialParams) (*Material, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, companyID int64, query string) ([]*Material, error)

	AdjustQuantity(ctx context.Context, id int64, delta float64, reason string) (*Adjustment, error)
	RecordTransaction(ctx context.Context, identity auth.Identity, params RecordTransactionParams) (*Transaction, error)
	Transactions(ctx context.Context, companyID int64) ([]*Transaction, error)
	TransactionsByDateRange(ctx context.Context, companyID int64, start, end time.Time) ([]*Transaction, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, companyID int64) ([]*Material, error) {
	return s.repo.GetByCompanyID(ctx, companyID)
}

func (s *service) Details(ctx context.Context, id int64) (*Material, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMaterialNotFound
	}
	return m, nil
}

func (s *service) Create(ctx context.Context, companyID int64, params CreateMaterialParams) (*Material, error) {
	if strings.TrimSpace(params.Name) == "" || params.QuantityInStock == nil {
		return nil, ErrNameRequired
	}
	if *params.QuantityInStock < 0 {
		return nil, ErrNegativeStock
	}
	return s.repo.Create(ctx, companyID, params)
}

func (s *service) Update(ctx context.Context, id int64, params UpdateMaterialParams) (*Material, error) {
	if params.QuantityInStock != nil && *params.QuantityInStock < 0 {
		return nil, ErrNegativeStock
	}

	m, err := s.repo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMaterialNotFound
	}
	return m, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Search(ctx context.Context, companyID int64, query string) ([]*Material, error) {
	return s.repo.Search(ctx, companyID, query)
}

// AdjustQuantity applies a signed delta to a material's stock. An
// adjustment that would drive stock negative is rejected before any write.
func (s *service) AdjustQuantity(ctx context.Context, id int64, delta float64, reason string) (*Adjustment, error) {
	// 1. Read current stock
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMaterialNotFound
	}

	// 2. Validate before any mutation
	current := m.QuantityInStock
	next := current + delta
	if next < 0 {
		return nil, ErrNegativeStock
	}

	// 3. Write the new quantity
	updated, err := s.repo.UpdateQuantity(ctx, id, next)
	if err != nil {
		return nil, err
	}

	if reason == "" {
		reason = "Manual adjustment"
	}

	return &Adjustment{
		Material:         updated,
		PreviousQuantity: current,
		Adjustment:       delta,
		Reason:           reason,
	}, nil
}

// RecordTransaction inserts a restock ledger entry and then increments
// the material's stock. The two writes are separate statements: a stock
// update failure after the insert leaves a recorded transaction not yet
// reflected in stock, which is surfaced to the caller rather than hidden.
func (s *service) RecordTransaction(ctx context.Context, identity auth.Identity, params RecordTransactionParams) (*Transaction, error) {
	log := logger.FromCtx(ctx).With(
		zap.Int64("material_id", params.MaterialID),
		zap.Float64("quantity", params.Quantity),
	)

	// 1. Validate before any store access
	if params.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if params.Cost < 0 {
		return nil, ErrNegativeCost
	}

	// 2. Verify the material exists and belongs to the caller's company
	m, err := s.repo.GetByID(ctx, params.MaterialID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMaterialNotFound
	}
	if m.CompanyID != identity.CompanyID {
		return nil, ErrWrongCompany
	}

	// 3. Insert the transaction row
	created, err := s.repo.InsertTransaction(ctx, &Transaction{
		MaterialID: params.MaterialID,
		CompanyID:  identity.CompanyID,
		Cost:       params.Cost,
		Quantity:   params.Quantity,
		Units:      params.Units,
	})
	if err != nil {
		return nil, err
	}

	// 4. Apply the restock. Quantity > 0 so this can never go negative.
	if _, err := s.repo.UpdateQuantity(ctx, params.MaterialID, m.QuantityInStock+params.Quantity); err != nil {
		log.Error("stock update failed after transaction insert", zap.Error(err))
		return nil, fmt.Errorf("transaction %d recorded but stock update failed: %w", created.ID, err)
	}

	log.Info("material transaction recorded", zap.Int64("transaction_id", created.ID))

	return created, nil
}

func (s *service) Transactions(ctx context.Context, companyID int64) ([]*Transaction, error) {
	return s.repo.GetTransactionsByCompanyID(ctx, companyID)
}

func (s *service) TransactionsByDateRange(ctx context.Context, companyID int64, start, end time.Time) ([]*Transaction, error) {
	return s.repo.GetTransactionsByDateRange(ctx, companyID, start, end)
}
