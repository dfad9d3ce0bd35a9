package cart

import (
	"context"
	"testing"

	"mfgops-be/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetActiveByUserID(ctx context.Context, userID int64) (*Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Cart), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*Cart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Cart), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, userID, companyID int64, notes *string) (*Cart, error) {
	args := m.Called(ctx, userID, companyID, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Cart), args.Error(1)
}

func (m *MockRepository) UpdateNotes(ctx context.Context, id int64, notes *string) (*Cart, error) {
	args := m.Called(ctx, id, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Cart), args.Error(1)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, id int64, status Status) (*Cart, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Cart), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) GetItems(ctx context.Context, cartID int64) ([]*Item, error) {
	args := m.Called(ctx, cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Item), args.Error(1)
}

func (m *MockRepository) GetItem(ctx context.Context, cartID, productID int64) (*Item, error) {
	args := m.Called(ctx, cartID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Item), args.Error(1)
}

func (m *MockRepository) InsertItem(ctx context.Context, params AddItemParams) (*Item, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Item), args.Error(1)
}

func (m *MockRepository) UpdateItemQuantity(ctx context.Context, cartID, productID, quantity int64) (*Item, error) {
	args := m.Called(ctx, cartID, productID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Item), args.Error(1)
}

func (m *MockRepository) DeleteItem(ctx context.Context, cartID, productID int64) error {
	args := m.Called(ctx, cartID, productID)
	return args.Error(0)
}

func (m *MockRepository) ClearItems(ctx context.Context, cartID int64) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

func (m *MockRepository) CountItems(ctx context.Context, cartID int64) (int64, error) {
	args := m.Called(ctx, cartID)
	return args.Get(0).(int64), args.Error(1)
}

func TestService_GetOrCreate(t *testing.T) {
	ctx := context.Background()
	identity := auth.Identity{UserID: 3, CompanyID: 7}

	t.Run("Returns Existing Pending Cart", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		existing := &Cart{ID: 1, UserID: 3, Status: StatusPending}
		repo.On("GetActiveByUserID", ctx, int64(3)).Return(existing, nil)

		c, err := svc.GetOrCreate(ctx, identity)
		assert.NoError(t, err)
		assert.Equal(t, existing, c)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates When None Active", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetActiveByUserID", ctx, int64(3)).Return(nil, nil)
		repo.On("Create", ctx, int64(3), int64(7), (*string)(nil)).
			Return(&Cart{ID: 2, UserID: 3, Status: StatusPending}, nil)

		c, err := svc.GetOrCreate(ctx, identity)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), c.ID)
		repo.AssertExpectations(t)
	})
}

func TestService_MyCart(t *testing.T) {
	ctx := context.Background()
	identity := auth.Identity{UserID: 3, CompanyID: 7}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetActiveByUserID", ctx, int64(3)).
			Return(&Cart{ID: 1, UserID: 3, Status: StatusPending}, nil)
		repo.On("GetItems", ctx, int64(1)).
			Return([]*Item{{CartID: 1, ProductID: 5, Quantity: 2}}, nil)

		details, err := svc.MyCart(ctx, identity)
		assert.NoError(t, err)
		assert.NotNil(t, details.Cart)
		assert.Len(t, details.Items, 1)
	})

	t.Run("No Active Cart Is Soft Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetActiveByUserID", ctx, int64(3)).Return(nil, nil)

		details, err := svc.MyCart(ctx, identity)
		assert.NoError(t, err)
		assert.Nil(t, details.Cart)
		assert.Empty(t, details.Items)
		repo.AssertNotCalled(t, "GetItems", mock.Anything, mock.Anything)
	})
}

func TestService_AddItem(t *testing.T) {
	ctx := context.Background()
	identity := auth.Identity{UserID: 3, CompanyID: 7}

	t.Run("Inserts New Line", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetItem", ctx, int64(1), int64(5)).Return(nil, nil)
		repo.On("InsertItem", ctx, AddItemParams{CartID: 1, ProductID: 5, Quantity: 2, CompanyID: 7}).
			Return(&Item{CartID: 1, ProductID: 5, Quantity: 2}, nil)

		item, err := svc.AddItem(ctx, identity, 1, 5, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), item.Quantity)
		repo.AssertExpectations(t)
	})

	t.Run("Merges With Existing Line", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetItem", ctx, int64(1), int64(5)).
			Return(&Item{CartID: 1, ProductID: 5, Quantity: 3}, nil)
		repo.On("UpdateItemQuantity", ctx, int64(1), int64(5), int64(5)).
			Return(&Item{CartID: 1, ProductID: 5, Quantity: 5}, nil)

		item, err := svc.AddItem(ctx, identity, 1, 5, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), item.Quantity)
		repo.AssertNotCalled(t, "InsertItem", mock.Anything, mock.Anything)
	})

	t.Run("Product Required", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.AddItem(ctx, identity, 1, 0, 2)
		assert.ErrorIs(t, err, ErrProductRequired)
	})

	t.Run("Negative Quantity Rejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.AddItem(ctx, identity, 1, 5, -1)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestService_UpdateItemQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("UpdateItemQuantity", ctx, int64(1), int64(5), int64(4)).
			Return(&Item{CartID: 1, ProductID: 5, Quantity: 4}, nil)

		item, err := svc.UpdateItemQuantity(ctx, 1, 5, 4)
		assert.NoError(t, err)
		assert.Equal(t, int64(4), item.Quantity)
	})

	t.Run("Zero Deletes The Line", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("DeleteItem", ctx, int64(1), int64(5)).Return(nil)

		item, err := svc.UpdateItemQuantity(ctx, 1, 5, 0)
		assert.NoError(t, err)
		assert.Nil(t, item)
		repo.AssertNotCalled(t, "UpdateItemQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Item Not Found", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("UpdateItemQuantity", ctx, int64(1), int64(5), int64(4)).Return(nil, nil)

		_, err := svc.UpdateItemQuantity(ctx, 1, 5, 4)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("UpdateStatus", ctx, int64(1), StatusCancelled).
			Return(&Cart{ID: 1, Status: StatusCancelled}, nil)

		c, err := svc.UpdateStatus(ctx, 1, StatusCancelled)
		assert.NoError(t, err)
		assert.Equal(t, StatusCancelled, c.Status)
	})

	t.Run("Invalid Status", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.UpdateStatus(ctx, 1, Status("SHIPPED"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Cart Not Found", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("UpdateStatus", ctx, int64(1), StatusCompleted).Return(nil, nil)

		_, err := svc.UpdateStatus(ctx, 1, StatusCompleted)
		assert.ErrorIs(t, err, ErrCartNotFound)
	})
}
