package company

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mfgops-be/internal/auth"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func goalRequest(role string) *http.Request {
	body := `{"productId":1,"goalValue":500,"effectiveDate":"2024-01-01T00:00:00Z","endDate":"2024-02-01T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/production-goals/", strings.NewReader(body))
	identity := auth.Identity{UserID: 3, CompanyID: 7, Role: role}
	return req.WithContext(auth.WithIdentity(req.Context(), identity))
}

func TestHandler_GoalMutationsRequireManager(t *testing.T) {
	repo := new(MockRepository)
	h := NewHandler(NewService(repo))

	r := chi.NewRouter()
	h.Routes(r)

	t.Run("Worker Is Forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()

		r.ServeHTTP(w, goalRequest("WORKER"))

		assert.Equal(t, http.StatusForbidden, w.Code)
		repo.AssertNotCalled(t, "CreateGoal", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Manager Passes The Gate", func(t *testing.T) {
		repo.On("CreateGoal", mock.Anything, int64(7), mock.Anything).
			Return(&ProductionGoal{ID: 1, ProductID: 1, GoalValue: 500}, nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, goalRequest("MANAGER"))

		assert.Equal(t, http.StatusCreated, w.Code)
		repo.AssertExpectations(t)
	})
}
