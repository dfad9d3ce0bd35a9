package company

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetAll(ctx context.Context) ([]*Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Company), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Company), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, params CreateCompanyParams) (*Company, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Company), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int64, params UpdateCompanyParams) (*Company, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Company), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) Search(ctx context.Context, query string) ([]*Company, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Company), args.Error(1)
}

func (m *MockRepository) GetGoalsByCompanyID(ctx context.Context, companyID int64) ([]*ProductionGoal, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ProductionGoal), args.Error(1)
}

func (m *MockRepository) GetGoalByID(ctx context.Context, id, companyID int64) (*ProductionGoal, error) {
	args := m.Called(ctx, id, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ProductionGoal), args.Error(1)
}

func (m *MockRepository) GetGoalsByProductID(ctx context.Context, productID, companyID int64) ([]*ProductionGoal, error) {
	args := m.Called(ctx, productID, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ProductionGoal), args.Error(1)
}

func (m *MockRepository) GetActiveGoals(ctx context.Context, companyID int64, at time.Time) ([]*ProductionGoal, error) {
	args := m.Called(ctx, companyID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ProductionGoal), args.Error(1)
}

func (m *MockRepository) GetGoalsByDateRange(ctx context.Context, companyID int64, from, to time.Time) ([]*ProductionGoal, error) {
	args := m.Called(ctx, companyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ProductionGoal), args.Error(1)
}

func (m *MockRepository) CreateGoal(ctx context.Context, companyID int64, params CreateGoalParams) (*ProductionGoal, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ProductionGoal), args.Error(1)
}

func (m *MockRepository) UpdateGoal(ctx context.Context, id, companyID int64, params UpdateGoalParams) (*ProductionGoal, error) {
	args := m.Called(ctx, id, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ProductionGoal), args.Error(1)
}

func (m *MockRepository) DeleteGoal(ctx context.Context, id, companyID int64) error {
	args := m.Called(ctx, id, companyID)
	return args.Error(0)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		params := CreateCompanyParams{Name: "Acme Woodworks", Industry: "Furniture"}
		repo.On("Create", ctx, params).
			Return(&Company{ID: 7, Name: "Acme Woodworks", Industry: "Furniture"}, nil)

		c, err := svc.Create(ctx, params)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), c.ID)
	})

	t.Run("Name Required", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Create(ctx, CreateCompanyParams{Name: "  "})
		assert.ErrorIs(t, err, ErrNameRequired)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestService_Details(t *testing.T) {
	ctx := context.Background()

	t.Run("Not Found", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", ctx, int64(7)).Return(nil, nil)

		_, err := svc.Details(ctx, 7)
		assert.ErrorIs(t, err, ErrCompanyNotFound)
	})
}

func TestService_CreateGoal(t *testing.T) {
	ctx := context.Background()
	effective := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := effective.AddDate(0, 1, 0)

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		params := CreateGoalParams{
			ProductID:     1,
			GoalValue:     500,
			EffectiveDate: effective,
			EndDate:       end,
		}
		repo.On("CreateGoal", ctx, int64(7), params).
			Return(&ProductionGoal{ID: 9, ProductID: 1, GoalValue: 500, CompanyID: 7}, nil)

		g, err := svc.CreateGoal(ctx, 7, params)
		assert.NoError(t, err)
		assert.Equal(t, int64(9), g.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Product Required", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.CreateGoal(ctx, 7, CreateGoalParams{
			GoalValue: 500, EffectiveDate: effective, EndDate: end,
		})
		assert.ErrorIs(t, err, ErrProductRequired)
	})

	t.Run("Goal Must Be Positive", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.CreateGoal(ctx, 7, CreateGoalParams{
			ProductID: 1, EffectiveDate: effective, EndDate: end,
		})
		assert.ErrorIs(t, err, ErrInvalidGoal)
	})

	t.Run("Window Must Be Ordered", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.CreateGoal(ctx, 7, CreateGoalParams{
			ProductID: 1, GoalValue: 500, EffectiveDate: end, EndDate: effective,
		})
		assert.ErrorIs(t, err, ErrInvalidWindow)
		repo.AssertNotCalled(t, "CreateGoal", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_UpdateGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("Rejects Non-Positive Goal", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		zero := int64(0)
		_, err := svc.UpdateGoal(ctx, 9, 7, UpdateGoalParams{GoalValue: &zero})
		assert.ErrorIs(t, err, ErrInvalidGoal)
	})

	t.Run("Not Found", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("UpdateGoal", ctx, int64(9), int64(7), UpdateGoalParams{}).Return(nil, nil)

		_, err := svc.UpdateGoal(ctx, 9, 7, UpdateGoalParams{})
		assert.ErrorIs(t, err, ErrGoalNotFound)
	})
}
