package order

import (
	"context"
	"time"

	"go.uber.org/zap"

	"mfgops-be/internal/auth"
	"mfgops-be/internal/cart"
	"mfgops-be/internal/logger"
)

type Service interface {
	List(ctx context.Context, identity auth.Identity) ([]*Order, error)
	GetDetails(ctx context.Context, identity auth.Identity, orderID int64) (*Details, error)
	DailyOrders(ctx context.Context, identity auth.Identity, day time.Time) ([]*Order, error)
	DateRange(ctx context.Context, identity auth.Identity, from, to time.Time) ([]*Order, error)
	CreateFromCart(ctx context.Context, identity auth.Identity, input CreateFromCartInput) (*ConversionResult, error)
	Update(ctx context.Context, identity auth.Identity, orderID int64, params UpdateOrderParams) (*Order, error)
	UpdateStatus(ctx context.Context, identity auth.Identity, orderID int64, status string) (*Order, error)
	Delete(ctx context.Context, identity auth.Identity, orderID int64) error
}

type service struct {
	repo     Repository
	cartRepo cart.Repository
}

func NewService(repo Repository, cartRepo cart.Repository) Service {
	return &service{repo: repo, cartRepo: cartRepo}
}

var validStatuses = map[string]bool{
	"PENDING":     true,
	"IN_PROGRESS": true,
	"COMPLETED":   true,
	"CANCELLED":   true,
}

func (s *service) List(ctx context.Context, identity auth.Identity) ([]*Order, error) {
	return s.repo.GetByCompanyID(ctx, identity.CompanyID)
}

func (s *service) GetDetails(
	ctx context.Context,
	identity auth.Identity,
	orderID int64,
) (*Details, error) {

	o, err := s.repo.GetByID(ctx, orderID, identity.CompanyID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}

	lines, err := s.repo.GetLines(ctx, orderID, identity.CompanyID)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []*Line{}
	}

	return &Details{Order: o, Products: lines}, nil
}

// dayWindow returns local midnight and end-of-day for the given moment.
func dayWindow(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}

func (s *service) DailyOrders(
	ctx context.Context,
	identity auth.Identity,
	day time.Time,
) ([]*Order, error) {

	start, end := dayWindow(day)
	return s.repo.GetByDateRange(ctx, identity.CompanyID, start, end)
}

// DateRange lists orders between two days inclusive. The bounds widen to
// whole days so an order placed late on the end day still matches.
func (s *service) DateRange(
	ctx context.Context,
	identity auth.Identity,
	from, to time.Time,
) ([]*Order, error) {

	start, _ := dayWindow(from)
	_, end := dayWindow(to)
	return s.repo.GetByDateRange(ctx, identity.CompanyID, start, end)
}

// CreateFromCart converts a pending cart into an order. Checks run
// strictly in order: existence, ownership, status, contents. A missing
// cart is not an error; the caller gets an empty result instead.
func (s *service) CreateFromCart(
	ctx context.Context,
	identity auth.Identity,
	input CreateFromCartInput,
) (*ConversionResult, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("method", "CreateFromCart"),
		zap.Int64("cart_id", input.CartID),
		zap.Int64("user_id", identity.UserID),
	)

	// 1. Cart id is mandatory.
	if input.CartID == 0 {
		return nil, ErrCartRequired
	}

	// 2. A cart that no longer exists yields the empty shape.
	c, err := s.cartRepo.GetByID(ctx, input.CartID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		log.Info("cart not found, returning empty conversion result")
		return &ConversionResult{Lines: []*Line{}, Empty: true}, nil
	}

	// 3. Load cart items before any further checks.
	items, err := s.cartRepo.GetItems(ctx, input.CartID)
	if err != nil {
		return nil, err
	}

	// 4. Only the cart owner may convert it.
	if c.UserID != identity.UserID && identity.Role != "ADMIN" {
		return nil, ErrCartNotOwned
	}

	// 5. Only pending carts convert.
	if c.Status != cart.StatusPending {
		return nil, ErrCartNotPending
	}

	// 6. An existing cart with no items cannot convert.
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	// 7. Totals come from the price snapshots on the cart lines.
	var lines []*Line
	var orderTotal float64
	for _, item := range items {
		lineTotal := item.UnitPrice * float64(item.Quantity)
		lines = append(lines, &Line{
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       lineTotal,
			CompanyID:   c.CompanyID,
			ProductName: item.ProductName,
		})
		orderTotal += lineTotal
	}

	// 8. New orders start unpaid and pending. Notes fall back to the
	// cart's notes when the request carries none.
	delivery := time.Now()
	if input.DeliveryDate != nil {
		delivery = *input.DeliveryDate
	}
	notes := input.Notes
	if notes == nil {
		notes = c.Notes
	}
	o := &Order{
		OrderTotal:           orderTotal,
		Status:               "PENDING",
		Paid:                 false,
		Notes:                notes,
		UserID:               c.UserID,
		ExpectedDeliveryDate: delivery,
		CompanyID:            c.CompanyID,
	}

	// 9-10. Persist order and lines, then complete the cart, all in
	// one transaction.
	created, err := s.repo.CreateWithLines(ctx, o, lines, c.ID)
	if err != nil {
		return nil, err
	}

	return &ConversionResult{Order: created, Lines: lines}, nil
}

func (s *service) Update(
	ctx context.Context,
	identity auth.Identity,
	orderID int64,
	params UpdateOrderParams,
) (*Order, error) {

	if params.Status != nil && !validStatuses[*params.Status] {
		return nil, ErrInvalidStatus
	}

	o, err := s.repo.Update(ctx, orderID, identity.CompanyID, params)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *service) UpdateStatus(
	ctx context.Context,
	identity auth.Identity,
	orderID int64,
	status string,
) (*Order, error) {

	if !validStatuses[status] {
		return nil, ErrInvalidStatus
	}

	o, err := s.repo.UpdateStatus(ctx, orderID, identity.CompanyID, status)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *service) Delete(ctx context.Context, identity auth.Identity, orderID int64) error {
	return s.repo.Delete(ctx, orderID, identity.CompanyID)
}
