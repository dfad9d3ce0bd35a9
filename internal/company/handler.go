package company

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"mfgops-be/internal/auth"
	"mfgops-be/internal/middleware"
	"mfgops-be/internal/respond"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/search", h.search)

	r.Route("/production-goals", func(r chi.Router) {
		r.Get("/company", h.listGoals)
		r.Get("/active", h.activeGoals)
		r.Get("/date-range", h.goalsByDateRange)
		r.Get("/product/{productId}", h.goalsByProduct)
		r.Get("/{id}", h.goalDetails)

		// Goal mutations are a management surface.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole("MANAGER"))
			r.Post("/", h.createGoal)
			r.Put("/{id}", h.updateGoal)
			r.Delete("/{id}", h.deleteGoal)
		})
	})

	r.Get("/{id}", h.details)
	r.Post("/", h.create)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func param(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

func dateQuery(r *http.Request, name string) (time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		t, err = time.Parse(time.RFC3339, raw)
	}
	return t, err == nil
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.List(r.Context())
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, data)
}

func (h *Handler) details(w http.ResponseWriter, r *http.Request) {
	id, ok := param(r, "id")
	if !ok {
		respond.BadRequest(w, "Company ID is required")
		return
	}

	c, err := h.svc.Details(r.Context(), id)
	if errors.Is(err, ErrCompanyNotFound) {
		respond.NotFound(w, "Company not found")
		return
	}
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, c)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		respond.BadRequest(w, "Search query is required")
		return
	}

	data, err := h.svc.Search(r.Context(), query)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, data)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var params CreateCompanyParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	c, err := h.svc.Create(r.Context(), params)
	switch {
	case errors.Is(err, ErrNameRequired):
		respond.BadRequest(w, err.Error())
	case err != nil:
		respond.Internal(w, err)
	default:
		respond.Created(w, "Company created successfully", c)
	}
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := param(r, "id")
	if !ok {
		respond.BadRequest(w, "Company ID is required")
		return
	}

	var params UpdateCompanyParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	c, err := h.svc.Update(r.Context(), id, params)
	switch {
	case errors.Is(err, ErrCompanyNotFound):
		respond.NotFound(w, "Company not found")
	case err != nil:
		respond.Internal(w, err)
	default:
		respond.SuccessMessage(w, "Company updated successfully", c)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := param(r, "id")
	if !ok {
		respond.BadRequest(w, "Company ID is required")
		return
	}

	err := h.svc.Delete(r.Context(), id)
	if errors.Is(err, ErrCompanyNotFound) {
		respond.NotFound(w, "Company not found")
		return
	}
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.SuccessMessage(w, "Company deleted successfully", nil)
}

func (h *Handler) listGoals(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	data, err := h.svc.ListGoals(r.Context(), identity.CompanyID)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, data)
}

func (h *Handler) activeGoals(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	data, err := h.svc.ActiveGoals(r.Context(), identity.CompanyID)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, data)
}

func (h *Handler) goalsByDateRange(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	from, okFrom := dateQuery(r, "startDate")
	to, okTo := dateQuery(r, "endDate")
	if !okFrom || !okTo {
		respond.BadRequest(w, "Both startDate and endDate are required")
		return
	}

	data, err := h.svc.GoalsByDateRange(r.Context(), identity.CompanyID, from, to)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, data)
}

func (h *Handler) goalsByProduct(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	productID, ok := param(r, "productId")
	if !ok {
		respond.BadRequest(w, "Product ID is required")
		return
	}

	data, err := h.svc.GoalsByProduct(r.Context(), productID, identity.CompanyID)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, data)
}

func (h *Handler) goalDetails(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	id, ok := param(r, "id")
	if !ok {
		respond.BadRequest(w, "Production goal ID is required")
		return
	}

	g, err := h.svc.GoalDetails(r.Context(), id, identity.CompanyID)
	if errors.Is(err, ErrGoalNotFound) {
		respond.NotFound(w, "Production goal not found")
		return
	}
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, g)
}

func (h *Handler) createGoal(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	var params CreateGoalParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	g, err := h.svc.CreateGoal(r.Context(), identity.CompanyID, params)
	switch {
	case errors.Is(err, ErrProductRequired),
		errors.Is(err, ErrInvalidGoal),
		errors.Is(err, ErrInvalidWindow):
		respond.BadRequest(w, err.Error())
	case err != nil:
		respond.Internal(w, err)
	default:
		respond.Created(w, "Production goal created successfully", g)
	}
}

func (h *Handler) updateGoal(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	id, ok := param(r, "id")
	if !ok {
		respond.BadRequest(w, "Production goal ID is required")
		return
	}

	var params UpdateGoalParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	g, err := h.svc.UpdateGoal(r.Context(), id, identity.CompanyID, params)
	switch {
	case errors.Is(err, ErrGoalNotFound):
		respond.NotFound(w, "Production goal not found")
	case errors.Is(err, ErrInvalidGoal):
		respond.BadRequest(w, err.Error())
	case err != nil:
		respond.Internal(w, err)
	default:
		respond.SuccessMessage(w, "Production goal updated successfully", g)
	}
}

func (h *Handler) deleteGoal(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	id, ok := param(r, "id")
	if !ok {
		respond.BadRequest(w, "Production goal ID is required")
		return
	}

	err := h.svc.DeleteGoal(r.Context(), id, identity.CompanyID)
	if errors.Is(err, ErrGoalNotFound) {
		respond.NotFound(w, "Production goal not found")
		return
	}
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.SuccessMessage(w, "Production goal deleted successfully", nil)
}
