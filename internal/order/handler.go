package order

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

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/day", h.daily)
	r.Get("/dateRange", h.dateRange)
	r.Get("/{id}", h.details)
	r.Get("/{id}/status", h.status)
	r.Post("/createOrder", h.createFromCart)
	r.Put("/{id}", h.update)
	r.Put("/{id}/status", h.updateStatus)
	r.Delete("/{id}/delete", h.delete)
}

func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
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
	identity, _ := auth.IdentityFrom(r.Context())

	data, err := h.svc.List(r.Context(), identity)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, data)
}

func (h *Handler) details(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	id, ok := idParam(r)
	if !ok {
		respond.BadRequest(w, "Order ID is required")
		return
	}

	d, err := h.svc.GetDetails(r.Context(), identity, id)
	if errors.Is(err, ErrOrderNotFound) {
		respond.NotFound(w, "Order not found")
		return
	}
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, d)
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	id, ok := idParam(r)
	if !ok {
		respond.BadRequest(w, "Order ID is required")
		return
	}

	d, err := h.svc.GetDetails(r.Context(), identity, id)
	if errors.Is(err, ErrOrderNotFound) {
		respond.NotFound(w, "Order not found")
		return
	}
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, map[string]any{
		"orderId": d.Order.ID,
		"status":  d.Order.Status,
	})
}

func (h *Handler) daily(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	day := time.Now()
	if t, ok := dateQuery(r, "date"); ok {
		day = t
	}

	data, err := h.svc.DailyOrders(r.Context(), identity, day)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, data)
}

func (h *Handler) dateRange(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	from, okFrom := dateQuery(r, "start")
	to, okTo := dateQuery(r, "end")
	if !okFrom || !okTo {
		respond.BadRequest(w, "Both start and end dates are required")
		return
	}

	data, err := h.svc.DateRange(r.Context(), identity, from, to)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, data)
}

func (h *Handler) createFromCart(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	var input CreateFromCartInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.svc.CreateFromCart(r.Context(), identity, input)
	switch {
	case errors.Is(err, ErrCartRequired):
		respond.BadRequest(w, err.Error())
	case errors.Is(err, ErrCartNotOwned):
		respond.Forbidden(w, err.Error())
	case errors.Is(err, ErrCartNotPending), errors.Is(err, ErrCartEmpty):
		respond.BadRequest(w, err.Error())
	case err != nil:
		respond.Internal(w, err)
	case result.Empty:
		respond.Success(w, result)
	default:
		respond.Created(w, "Order created successfully", result)
	}
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	id, ok := idParam(r)
	if !ok {
		respond.BadRequest(w, "Order ID is required")
		return
	}

	var params UpdateOrderParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	o, err := h.svc.Update(r.Context(), identity, id, params)
	switch {
	case errors.Is(err, ErrOrderNotFound):
		respond.NotFound(w, "Order not found")
	case errors.Is(err, ErrInvalidStatus):
		respond.BadRequest(w, err.Error())
	case err != nil:
		respond.Internal(w, err)
	default:
		respond.SuccessMessage(w, "Order updated successfully", o)
	}
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	id, ok := idParam(r)
	if !ok {
		respond.BadRequest(w, "Order ID is required")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	o, err := h.svc.UpdateStatus(r.Context(), identity, id, body.Status)
	switch {
	case errors.Is(err, ErrOrderNotFound):
		respond.NotFound(w, "Order not found")
	case errors.Is(err, ErrInvalidStatus):
		respond.BadRequest(w, err.Error())
	case err != nil:
		respond.Internal(w, err)
	default:
		respond.SuccessMessage(w, "Order status updated successfully", o)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	id, ok := idParam(r)
	if !ok {
		respond.BadRequest(w, "Order ID is required")
		return
	}

	err := h.svc.Delete(r.Context(), identity, id)
	if errors.Is(err, ErrOrderNotFound) {
		respond.NotFound(w, "Order not found")
		return
	}
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.SuccessMessage(w, "Order deleted successfully", nil)
}
