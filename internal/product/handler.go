package product

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"mfgops-be/internal/auth"
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
	r.Get("/search/query", h.search)
	r.Get("/{id}", h.details)
	r.Post("/createProduct", h.create)
	r.Put("/{id}", h.update)
	r.Delete("/{id}/delete", h.delete)
}

func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFrom(r.Context())

	data, err := h.svc.List(r.Context(), id.CompanyID)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, data)
}

func (h *Handler) details(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respond.BadRequest(w, "Product ID is required")
		return
	}

	p, err := h.svc.Details(r.Context(), id)
	if errors.Is(err, ErrProductNotFound) {
		respond.NotFound(w, "Product not found")
		return
	}
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, p)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	var params CreateProductParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	p, err := h.svc.Create(r.Context(), identity.CompanyID, params)
	switch {
	case errors.Is(err, ErrNameRequired), errors.Is(err, ErrNegativePrice):
		respond.BadRequest(w, err.Error())
	case err != nil:
		respond.Internal(w, err)
	default:
		respond.Created(w, "Product created successfully", p)
	}
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respond.BadRequest(w, "Product ID is required")
		return
	}

	var params UpdateProductParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	p, err := h.svc.Update(r.Context(), id, params)
	switch {
	case errors.Is(err, ErrProductNotFound):
		respond.NotFound(w, "Product not found")
	case errors.Is(err, ErrNegativePrice):
		respond.BadRequest(w, err.Error())
	case err != nil:
		respond.Internal(w, err)
	default:
		respond.SuccessMessage(w, "Product updated successfully", p)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respond.BadRequest(w, "Product ID is required")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respond.Internal(w, err)
		return
	}
	respond.SuccessMessage(w, "Product deleted successfully", nil)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	query := r.URL.Query().Get("query")
	if query == "" {
		respond.BadRequest(w, "Search query is required")
		return
	}

	data, err := h.svc.Search(r.Context(), identity.CompanyID, query)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, data)
}
