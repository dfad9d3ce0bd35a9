package material

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

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

// InventoryRoutes mounts the material side of the /inventory surface.
// The finished-goods transaction routes under the same prefix belong to
// the inventory package.
func (h *Handler) InventoryRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/search/query", h.search)
	r.Post("/createMaterial", h.create)
	r.Get("/{id}", h.details)
	r.Put("/{id}", h.update)
	r.Put("/{id}/adjust", h.adjust)
	r.Delete("/{id}/delete", h.delete)
}

// TransactionRoutes mounts the /material-transactions surface.
func (h *Handler) TransactionRoutes(r chi.Router) {
	r.Get("/", h.transactions)
	r.Get("/range", h.transactionsByRange)
	r.Post("/create", h.recordTransaction)
}

func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	data, err := h.svc.List(r.Context(), identity.CompanyID)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, data)
}

func (h *Handler) details(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respond.BadRequest(w, "Material ID is required")
		return
	}

	m, err := h.svc.Details(r.Context(), id)
	if errors.Is(err, ErrMaterialNotFound) {
		respond.NotFound(w, "Material not found")
		return
	}
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, m)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	var params CreateMaterialParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	m, err := h.svc.Create(r.Context(), identity.CompanyID, params)
	switch {
	case errors.Is(err, ErrNameRequired), errors.Is(err, ErrNegativeStock):
		respond.BadRequest(w, err.Error())
	case err != nil:
		respond.Internal(w, err)
	default:
		respond.Created(w, "Material created successfully", m)
	}
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respond.BadRequest(w, "Material ID is required")
		return
	}

	var params UpdateMaterialParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	m, err := h.svc.Update(r.Context(), id, params)
	switch {
	case errors.Is(err, ErrMaterialNotFound):
		respond.NotFound(w, "Material not found")
	case errors.Is(err, ErrNegativeStock):
		respond.BadRequest(w, err.Error())
	case err != nil:
		respond.Internal(w, err)
	default:
		respond.SuccessMessage(w, "Material updated successfully", m)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respond.BadRequest(w, "Material ID is required")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respond.Internal(w, err)
		return
	}
	respond.SuccessMessage(w, "Material deleted successfully", nil)
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

func (h *Handler) adjust(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respond.BadRequest(w, "Material ID is required")
		return
	}

	var body struct {
		Adjustment *float64 `json:"adjustment"`
		Reason     string   `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}
	if body.Adjustment == nil {
		respond.BadRequest(w, "Adjustment value is required")
		return
	}

	adj, err := h.svc.AdjustQuantity(r.Context(), id, *body.Adjustment, body.Reason)
	switch {
	case errors.Is(err, ErrMaterialNotFound):
		respond.NotFound(w, "Material not found")
	case errors.Is(err, ErrNegativeStock):
		respond.BadRequest(w, err.Error())
	case err != nil:
		respond.Internal(w, err)
	default:
		respond.SuccessMessage(w, "Material quantity adjusted successfully", adj)
	}
}

func (h *Handler) recordTransaction(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	var params RecordTransactionParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}
	if params.MaterialID == 0 || params.Units == "" {
		respond.BadRequest(w, "Missing required fields: materialId, cost, quantity, and units are required")
		return
	}

	created, err := h.svc.RecordTransaction(r.Context(), identity, params)
	switch {
	case errors.Is(err, ErrInvalidQuantity), errors.Is(err, ErrNegativeCost):
		respond.BadRequest(w, err.Error())
	case errors.Is(err, ErrMaterialNotFound):
		respond.NotFound(w, "Material not found")
	case errors.Is(err, ErrWrongCompany):
		respond.Forbidden(w, err.Error())
	case err != nil:
		respond.Internal(w, err)
	default:
		respond.Created(w, "Material transaction created successfully", created)
	}
}

func (h *Handler) transactions(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	data, err := h.svc.Transactions(r.Context(), identity.CompanyID)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, data)
}

func (h *Handler) transactionsByRange(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("startDate"))
	if err != nil {
		respond.BadRequest(w, "startDate and endDate are required in ISO format")
		return
	}
	end, err := time.Parse(time.RFC3339, r.URL.Query().Get("endDate"))
	if err != nil {
		respond.BadRequest(w, "startDate and endDate are required in ISO format")
		return
	}

	data, err := h.svc.TransactionsByDateRange(r.Context(), identity.CompanyID, start, end)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, data)
}
