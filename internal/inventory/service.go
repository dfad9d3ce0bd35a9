package inventory

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"mfgops-be/internal/auth"
	"mfgops-be/internal/logger"
	"mfgops-be/internal/order"
	"mfgops-be/internal/process"
	"mfgops-be/internal/product"
)

type Service interface {
	DailyMaterialNeeds(ctx context.Context, identity auth.Identity) ([]*MaterialNeed, error)
	RecordProduction(ctx context.Context, identity auth.Identity, params RecordProductionParams) (*Transaction, error)
	ProductStock(ctx context.Context, identity auth.Identity, productID int64) (*ProductStock, error)
	ListTransactions(ctx context.Context, identity auth.Identity) ([]*Transaction, error)
	TransactionDetails(ctx context.Context, identity auth.Identity, id int64) (*Transaction, error)
	TransactionsByProduct(ctx context.Context, identity auth.Identity, productID int64) ([]*Transaction, error)
	UpdateTransaction(ctx context.Context, identity auth.Identity, id int64, params UpdateTransactionParams) (*Transaction, error)
	DeleteTransaction(ctx context.Context, identity auth.Identity, id int64) error
}

type service struct {
	repo        Repository
	orderRepo   order.Repository
	processRepo process.Repository
	productRepo product.Repository
	policy      ConsumptionPolicy
}

func NewService(
	repo Repository,
	orderRepo order.Repository,
	processRepo process.Repository,
	productRepo product.Repository,
	policy ConsumptionPolicy,
) Service {
	return &service{
		repo:        repo,
		orderRepo:   orderRepo,
		processRepo: processRepo,
		productRepo: productRepo,
		policy:      policy,
	}
}

// DailyMaterialNeeds aggregates raw-material demand for today's paid,
// not-yet-completed orders. Demand for a product scales its recipe by
// quantityNeeded / productsPerBatch. Products without a recipe are
// logged and skipped rather than failing the whole report.
func (s *service) DailyMaterialNeeds(
	ctx context.Context,
	identity auth.Identity,
) ([]*MaterialNeed, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("method", "DailyMaterialNeeds"),
		zap.Int64("company_id", identity.CompanyID),
	)

	// 1. Today's window in server-local time.
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)

	// 2. Per-product demand from today's open paid orders.
	productNeeds, err := s.orderRepo.GetDailyProductNeeds(ctx, identity.CompanyID, start, end)
	if err != nil {
		return nil, err
	}
	if len(productNeeds) == 0 {
		return []*MaterialNeed{}, nil
	}

	// 3. Scale each product's recipe and accumulate per material.
	accumulated := map[int64]*MaterialNeed{}
	for _, need := range productNeeds {
		proc, err := s.processRepo.GetByProductID(ctx, need.ProductID)
		if err != nil {
			log.Warn("failed to load process, skipping product",
				zap.Int64("product_id", need.ProductID),
				zap.Error(err),
			)
			continue
		}
		if proc == nil || proc.ProductsPerBatch <= 0 {
			log.Warn("no usable process for product, skipping",
				zap.Int64("product_id", need.ProductID),
			)
			continue
		}

		requirements, err := s.processRepo.GetRequirements(ctx, proc.ID)
		if err != nil {
			log.Warn("failed to load requirements, skipping product",
				zap.Int64("product_id", need.ProductID),
				zap.Error(err),
			)
			continue
		}

		scale := float64(need.QuantityNeeded) / float64(proc.ProductsPerBatch)
		for _, req := range requirements {
			entry, ok := accumulated[req.MaterialID]
			if !ok {
				// The requirement's units take precedence over the
				// material record's.
				units := req.UnitsNeeded
				if units == "" {
					units = req.MaterialUnits
				}
				entry = &MaterialNeed{
					MaterialID:      req.MaterialID,
					MaterialName:    req.MaterialName,
					QuantityInStock: req.QuantityInStock,
					Units:           units,
				}
				accumulated[req.MaterialID] = entry
			}
			entry.QuantityNeeded += req.QuantityNeeded * scale
		}
	}

	// 4. Stable output order.
	needs := make([]*MaterialNeed, 0, len(accumulated))
	for _, n := range accumulated {
		needs = append(needs, n)
	}
	sort.Slice(needs, func(i, j int) bool {
		return needs[i].MaterialID < needs[j].MaterialID
	})

	log.Info("daily material needs aggregated",
		zap.Int("product_count", len(productNeeds)),
		zap.Int("material_count", len(needs)),
	)
	return needs, nil
}

// RecordProduction debits one batch of materials and credits the
// process's yield as finished goods. Under the clamp policy a material
// balance floors at zero; under reject the run fails before any write.
func (s *service) RecordProduction(
	ctx context.Context,
	identity auth.Identity,
	params RecordProductionParams,
) (*Transaction, error) {

	// 1. Resolve the process and its material list.
	if params.ProcessID == 0 {
		return nil, ErrProcessRequired
	}

	proc, err := s.processRepo.GetByID(ctx, params.ProcessID)
	if err != nil {
		return nil, err
	}
	if proc == nil {
		return nil, ErrNoProcess
	}

	requirements, err := s.processRepo.GetRequirements(ctx, proc.ID)
	if err != nil {
		return nil, err
	}

	// 2. Compute new material balances per policy.
	consumptions := make([]Consumption, 0, len(requirements))
	for _, req := range requirements {
		remaining := req.QuantityInStock - req.QuantityNeeded
		if remaining < 0 {
			if s.policy == PolicyReject {
				return nil, ErrInsufficientStock
			}
			remaining = 0
		}
		consumptions = append(consumptions, Consumption{
			MaterialID:  req.MaterialID,
			NewQuantity: remaining,
		})
	}

	// 3. Apply the credit and all debits atomically.
	reason := params.Reason
	if reason == "" {
		reason = "production run"
	}
	t := &Transaction{
		ProductID: proc.ProductID,
		Quantity:  proc.ProductsPerBatch,
		CompanyID: identity.CompanyID,
		Reason:    reason,
	}
	return s.repo.ApplyProduction(ctx, t, consumptions)
}

func (s *service) ProductStock(
	ctx context.Context,
	identity auth.Identity,
	productID int64,
) (*ProductStock, error) {

	stock, err := s.repo.GetStockByProductID(ctx, productID, identity.CompanyID)
	if err != nil {
		return nil, err
	}

	name, err := s.productRepo.GetName(ctx, productID)
	if err != nil {
		logger.FromCtx(ctx).Warn("failed to resolve product name",
			zap.Int64("product_id", productID),
			zap.Error(err),
		)
		name = ""
	}

	return &ProductStock{
		ProductID:       productID,
		ProductName:     name,
		QuantityInStock: stock,
	}, nil
}

func (s *service) ListTransactions(ctx context.Context, identity auth.Identity) ([]*Transaction, error) {
	return s.repo.GetByCompanyID(ctx, identity.CompanyID)
}

func (s *service) TransactionDetails(
	ctx context.Context,
	identity auth.Identity,
	id int64,
) (*Transaction, error) {

	t, err := s.repo.GetByID(ctx, id, identity.CompanyID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTransactionNotFound
	}
	return t, nil
}

func (s *service) TransactionsByProduct(
	ctx context.Context,
	identity auth.Identity,
	productID int64,
) ([]*Transaction, error) {

	return s.repo.GetByProductID(ctx, productID, identity.CompanyID)
}

func (s *service) UpdateTransaction(
	ctx context.Context,
	identity auth.Identity,
	id int64,
	params UpdateTransactionParams,
) (*Transaction, error) {

	if params.Quantity == nil || *params.Quantity == 0 {
		return nil, ErrInvalidQuantity
	}

	t, err := s.repo.UpdateQuantity(ctx, id, identity.CompanyID, *params.Quantity)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTransactionNotFound
	}
	return t, nil
}

func (s *service) DeleteTransaction(ctx context.Context, identity auth.Identity, id int64) error {
	return s.repo.Delete(ctx, id, identity.CompanyID)
}
