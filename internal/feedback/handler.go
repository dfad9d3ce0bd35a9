package feedback

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
	r.Post("/", h.create)
	r.Get("/my-feedback", h.myFeedback)
	r.Get("/company", h.companyFeedback)
	r.Patch("/{id}/resolved", h.resolve)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	var params CreateFeedbackParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	f, err := h.svc.Create(r.Context(), identity, params)
	switch {
	case errors.Is(err, ErrMessageRequired):
		respond.BadRequest(w, err.Error())
	case err != nil:
		respond.Internal(w, err)
	default:
		respond.Created(w, "Feedback submitted successfully", f)
	}
}

func (h *Handler) myFeedback(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	data, err := h.svc.MyFeedback(r.Context(), identity)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, data)
}

func (h *Handler) companyFeedback(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	data, err := h.svc.CompanyFeedback(r.Context(), identity)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, data)
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respond.BadRequest(w, "Feedback ID is required")
		return
	}

	f, svcErr := h.svc.Resolve(r.Context(), identity, id)
	if errors.Is(svcErr, ErrFeedbackNotFound) {
		respond.NotFound(w, "Feedback not found")
		return
	}
	if svcErr != nil {
		respond.Internal(w, svcErr)
		return
	}
	respond.SuccessMessage(w, "Feedback marked as resolved", f)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respond.BadRequest(w, "Feedback ID is required")
		return
	}

	svcErr := h.svc.Delete(r.Context(), identity, id)
	if errors.Is(svcErr, ErrFeedbackNotFound) {
		respond.NotFound(w, "Feedback not found")
		return
	}
	if svcErr != nil {
		respond.Internal(w, svcErr)
		return
	}
	respond.SuccessMessage(w, "Feedback deleted successfully", nil)
}
