package process

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
	r.Get("/product/{id}", h.resolveForProduct)
	r.Get("/{id}/materials", h.materials)
	r.Post("/{id}/materials", h.addMaterial)
	r.Delete("/{id}/materials/{materialId}", h.removeMaterial)
	r.Post("/createProcess", h.create)
	r.Put("/{id}", h.update)
	r.Delete("/{id}/delete", h.delete)
}

// MaterialUsageRoute mounts the reverse lookup under the material
// surface: which processes consume a given material.
func (h *Handler) MaterialUsageRoute(r chi.Router) {
	r.Get("/{id}/processes", h.usageByMaterial)
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

func (h *Handler) resolveForProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := idParam(r)
	if !ok {
		respond.BadRequest(w, "Product ID is required")
		return
	}

	res, err := h.svc.ResolveForProduct(r.Context(), productID)
	if errors.Is(err, ErrProcessNotFound) {
		respond.NotFound(w, "Process not found")
		return
	}
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, res)
}

func (h *Handler) materials(w http.ResponseWriter, r *http.Request) {
	processID, ok := idParam(r)
	if !ok {
		respond.BadRequest(w, "Process ID is required")
		return
	}

	data, err := h.svc.Materials(r.Context(), processID)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	if len(data) == 0 {
		respond.NotFound(w, "Process not found")
		return
	}
	respond.Success(w, data)
}

func (h *Handler) usageByMaterial(w http.ResponseWriter, r *http.Request) {
	materialID, ok := idParam(r)
	if !ok {
		respond.BadRequest(w, "Material ID is required")
		return
	}

	data, err := h.svc.UsageByMaterial(r.Context(), materialID)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, data)
}

func (h *Handler) addMaterial(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	processID, ok := idParam(r)
	if !ok {
		respond.BadRequest(w, "Process ID is required")
		return
	}

	var entry RequirementsEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	err := h.svc.AddMaterial(r.Context(), processID, identity.CompanyID, entry)
	switch {
	case errors.Is(err, ErrMaterialRequired), errors.Is(err, ErrInvalidQuantity):
		respond.BadRequest(w, err.Error())
	case errors.Is(err, ErrProcessNotFound):
		respond.NotFound(w, "Process not found")
	case err != nil:
		respond.Internal(w, err)
	default:
		respond.Created(w, "Material added to process successfully", nil)
	}
}

func (h *Handler) removeMaterial(w http.ResponseWriter, r *http.Request) {
	processID, ok := idParam(r)
	if !ok {
		respond.BadRequest(w, "Process ID is required")
		return
	}

	materialID, err := strconv.ParseInt(chi.URLParam(r, "materialId"), 10, 64)
	if err != nil || materialID <= 0 {
		respond.BadRequest(w, "Material ID is required")
		return
	}

	if err := h.svc.RemoveMaterial(r.Context(), processID, materialID); err != nil {
		respond.Internal(w, err)
		return
	}
	respond.SuccessMessage(w, "Material removed from process successfully", nil)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	var params CreateProcessParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	p, err := h.svc.Create(r.Context(), identity.CompanyID, params)
	switch {
	case errors.Is(err, ErrProductRequired), errors.Is(err, ErrNameRequired), errors.Is(err, ErrInvalidBatchSize):
		respond.BadRequest(w, err.Error())
	case err != nil:
		respond.Internal(w, err)
	default:
		respond.Created(w, "Process created successfully", p)
	}
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	productID, ok := idParam(r)
	if !ok {
		respond.BadRequest(w, "Product ID is required")
		return
	}

	var params UpdateProcessParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	p, err := h.svc.Update(r.Context(), productID, params)
	switch {
	case errors.Is(err, ErrProcessNotFound):
		respond.NotFound(w, "Process not found")
	case errors.Is(err, ErrInvalidBatchSize):
		respond.BadRequest(w, err.Error())
	case err != nil:
		respond.Internal(w, err)
	default:
		respond.SuccessMessage(w, "Process updated successfully", p)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	productID, ok := idParam(r)
	if !ok {
		respond.BadRequest(w, "Product ID is required")
		return
	}

	if err := h.svc.DeleteByProduct(r.Context(), productID); err != nil {
		respond.Internal(w, err)
		return
	}
	respond.SuccessMessage(w, "Process deleted successfully", nil)
}
