package material

import (
	"context"
	"errors"
	"testing"
	"time"

	"mfgops-be/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByCompanyID(ctx context.Context, companyID int64) ([]*Material, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Material), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*Material, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Material), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, companyID int64, params CreateMaterialParams) (*Material, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Material), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int64, params UpdateMaterialParams) (*Material, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Material), args.Error(1)
}

func (m *MockRepository) UpdateQuantity(ctx context.Context, id int64, quantity float64) (*Material, error) {
	args := m.Called(ctx, id, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Material), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) Search(ctx context.Context, companyID int64, query string) ([]*Material, error) {
	args := m.Called(ctx, companyID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Material), args.Error(1)
}

func (m *MockRepository) InsertTransaction(ctx context.Context, t *Transaction) (*Transaction, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Transaction), args.Error(1)
}

func (m *MockRepository) GetTransactionsByCompanyID(ctx context.Context, companyID int64) ([]*Transaction, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Transaction), args.Error(1)
}

func (m *MockRepository) GetTransactionsByDateRange(ctx context.Context, companyID int64, start, end time.Time) ([]*Transaction, error) {
	args := m.Called(ctx, companyID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Transaction), args.Error(1)
}

// --- Tests ---

func TestService_AdjustQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", ctx, int64(1)).
			Return(&Material{ID: 1, Name: "Flour", QuantityInStock: 10, CompanyID: 7}, nil)
		repo.On("UpdateQuantity", ctx, int64(1), 15.0).
			Return(&Material{ID: 1, Name: "Flour", QuantityInStock: 15, CompanyID: 7}, nil)

		adj, err := svc.AdjustQuantity(ctx, 1, 5, "restock delivery")
		assert.NoError(t, err)
		assert.Equal(t, 10.0, adj.PreviousQuantity)
		assert.Equal(t, 5.0, adj.Adjustment)
		assert.Equal(t, 15.0, adj.Material.QuantityInStock)
		assert.Equal(t, "restock delivery", adj.Reason)
		repo.AssertExpectations(t)
	})

	t.Run("Negative Delta Within Stock", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", ctx, int64(1)).
			Return(&Material{ID: 1, QuantityInStock: 10}, nil)
		repo.On("UpdateQuantity", ctx, int64(1), 4.0).
			Return(&Material{ID: 1, QuantityInStock: 4}, nil)

		adj, err := svc.AdjustQuantity(ctx, 1, -6, "")
		assert.NoError(t, err)
		assert.Equal(t, "Manual adjustment", adj.Reason)
		repo.AssertExpectations(t)
	})

	t.Run("Rejects Negative Result Before Write", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", ctx, int64(1)).
			Return(&Material{ID: 1, QuantityInStock: 3}, nil)

		_, err := svc.AdjustQuantity(ctx, 1, -5, "")
		assert.ErrorIs(t, err, ErrNegativeStock)
		repo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Material Not Found", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", ctx, int64(99)).Return(nil, nil)

		_, err := svc.AdjustQuantity(ctx, 99, 5, "")
		assert.ErrorIs(t, err, ErrMaterialNotFound)
	})
}

func TestService_RecordTransaction(t *testing.T) {
	ctx := context.Background()
	identity := auth.Identity{UserID: 3, CompanyID: 7}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", ctx, int64(1)).
			Return(&Material{ID: 1, QuantityInStock: 10, CompanyID: 7}, nil)
		repo.On("InsertTransaction", ctx, mock.MatchedBy(func(tr *Transaction) bool {
			return tr.MaterialID == 1 && tr.Quantity == 25 && tr.CompanyID == 7
		})).Return(&Transaction{ID: 42, MaterialID: 1, Quantity: 25, CompanyID: 7}, nil)
		repo.On("UpdateQuantity", ctx, int64(1), 35.0).
			Return(&Material{ID: 1, QuantityInStock: 35}, nil)

		created, err := svc.RecordTransaction(ctx, identity, RecordTransactionParams{
			MaterialID: 1, Cost: 12.5, Quantity: 25, Units: "kg",
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(42), created.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Rejects Non-Positive Quantity", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.RecordTransaction(ctx, identity, RecordTransactionParams{MaterialID: 1, Quantity: 0})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("Rejects Negative Cost", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.RecordTransaction(ctx, identity, RecordTransactionParams{MaterialID: 1, Quantity: 5, Cost: -1})
		assert.ErrorIs(t, err, ErrNegativeCost)
	})

	t.Run("Wrong Company", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", ctx, int64(1)).
			Return(&Material{ID: 1, CompanyID: 99}, nil)

		_, err := svc.RecordTransaction(ctx, identity, RecordTransactionParams{MaterialID: 1, Quantity: 5})
		assert.ErrorIs(t, err, ErrWrongCompany)
	})

	t.Run("Stock Update Failure Is Surfaced", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", ctx, int64(1)).
			Return(&Material{ID: 1, QuantityInStock: 10, CompanyID: 7}, nil)
		repo.On("InsertTransaction", ctx, mock.Anything).
			Return(&Transaction{ID: 42}, nil)
		repo.On("UpdateQuantity", ctx, int64(1), 15.0).
			Return(nil, errors.New("db error"))

		_, err := svc.RecordTransaction(ctx, identity, RecordTransactionParams{MaterialID: 1, Quantity: 5})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "transaction 42 recorded but stock update failed")
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Requires Name", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		qty := 5.0
		_, err := svc.Create(ctx, 7, CreateMaterialParams{Name: "  ", QuantityInStock: &qty})
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("Rejects Negative Stock", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		qty := -1.0
		_, err := svc.Create(ctx, 7, CreateMaterialParams{Name: "Flour", QuantityInStock: &qty})
		assert.ErrorIs(t, err, ErrNegativeStock)
	})
}
