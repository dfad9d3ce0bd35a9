package cart

import (
	"context"

	"mfgops-be/internal/auth"
)

// Service defines the business logic for carts and cart items.
type Service interface {
	GetOrCreate(ctx context.Context, identity auth.Identity) (*Cart, error)
	Details(ctx context.Context, cartID int64) (*Details, error)
	MyCart(ctx context.Context, identity auth.Identity) (*Details, error)
	UpdateNotes(ctx context.Context, cartID int64, notes *string) (*Cart, error)
	UpdateStatus(ctx context.Context, cartID int64, status Status) (*Cart, error)
	Delete(ctx context.Context, cartID int64) error

	AddItem(ctx context.Context, identity auth.Identity, cartID, productID, quantity int64) (*Item, error)
	UpdateItemQuantity(ctx context.Context, cartID, productID, quantity int64) (*Item, error)
	RemoveItem(ctx context.Context, cartID, productID int64) error
	Clear(ctx context.Context, cartID int64) error
	ItemCount(ctx context.Context, cartID int64) (int64, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetOrCreate returns the caller's active PENDING cart, creating one if
// none exists. This is how the one-pending-cart-per-user rule is kept.
func (s *service) GetOrCreate(ctx context.Context, identity auth.Identity) (*Cart, error) {
	c, err := s.repo.GetActiveByUserID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return c, nil
	}

	return s.repo.Create(ctx, identity.UserID, identity.CompanyID, nil)
}

func (s *service) Details(ctx context.Context, cartID int64) (*Details, error) {
	c, err := s.repo.GetByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		// Soft success: clients poll this without special-casing 404s.
		return &Details{Cart: nil, Items: []*Item{}}, nil
	}

	items, err := s.repo.GetItems(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	return &Details{Cart: c, Items: items}, nil
}

func (s *service) MyCart(ctx context.Context, identity auth.Identity) (*Details, error) {
	c, err := s.repo.GetActiveByUserID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return &Details{Cart: nil, Items: []*Item{}}, nil
	}

	items, err := s.repo.GetItems(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	return &Details{Cart: c, Items: items}, nil
}

func (s *service) UpdateNotes(ctx context.Context, cartID int64, notes *string) (*Cart, error) {
	c, err := s.repo.UpdateNotes(ctx, cartID, notes)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCartNotFound
	}
	return c, nil
}

func (s *service) UpdateStatus(ctx context.Context, cartID int64, status Status) (*Cart, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	c, err := s.repo.UpdateStatus(ctx, cartID, status)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCartNotFound
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, cartID int64) error {
	return s.repo.Delete(ctx, cartID)
}

// AddItem merges with an existing line for the same product by summing
// quantities instead of inserting a duplicate row.
func (s *service) AddItem(ctx context.Context, identity auth.Identity, cartID, productID, quantity int64) (*Item, error) {
	if productID == 0 || quantity == 0 {
		return nil, ErrProductRequired
	}
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	existing, err := s.repo.GetItem(ctx, cartID, productID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return s.repo.UpdateItemQuantity(ctx, cartID, productID, existing.Quantity+quantity)
	}

	return s.repo.InsertItem(ctx, AddItemParams{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
		CompanyID: identity.CompanyID,
	})
}

// UpdateItemQuantity sets a line's quantity; zero deletes the line.
func (s *service) UpdateItemQuantity(ctx context.Context, cartID, productID, quantity int64) (*Item, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	if quantity == 0 {
		if err := s.repo.DeleteItem(ctx, cartID, productID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	item, err := s.repo.UpdateItemQuantity(ctx, cartID, productID, quantity)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (s *service) RemoveItem(ctx context.Context, cartID, productID int64) error {
	return s.repo.DeleteItem(ctx, cartID, productID)
}

func (s *service) Clear(ctx context.Context, cartID int64) error {
	return s.repo.ClearItems(ctx, cartID)
}

func (s *service) ItemCount(ctx context.Context, cartID int64) (int64, error) {
	return s.repo.CountItems(ctx, cartID)
}
