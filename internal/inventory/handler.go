package inventory

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

// Routes registers the finished-goods routes. They share the /inventory
// mount with the material routes; every path here is static-prefixed so
// the two sets do not collide.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/needs/today", h.dailyNeeds)
	r.Get("/stock/{productId}", h.productStock)

	r.Route("/transactions", func(r chi.Router) {
		r.Get("/", h.listTransactions)
		r.Post("/", h.recordProduction)
		r.Get("/{id}", h.transactionDetails)
		r.Get("/product/{productId}", h.transactionsByProduct)
		r.Put("/{id}", h.updateTransaction)
		r.Delete("/{id}", h.deleteTransaction)
	})
}

func param(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

func (h *Handler) dailyNeeds(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	needs, err := h.svc.DailyMaterialNeeds(r.Context(), identity)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, needs)
}

func (h *Handler) productStock(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	productID, ok := param(r, "productId")
	if !ok {
		respond.BadRequest(w, "Product ID is required")
		return
	}

	stock, err := h.svc.ProductStock(r.Context(), identity, productID)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, stock)
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	data, err := h.svc.ListTransactions(r.Context(), identity)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, data)
}

func (h *Handler) transactionDetails(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	id, ok := param(r, "id")
	if !ok {
		respond.BadRequest(w, "Transaction ID is required")
		return
	}

	t, err := h.svc.TransactionDetails(r.Context(), identity, id)
	if errors.Is(err, ErrTransactionNotFound) {
		respond.NotFound(w, "Inventory transaction not found")
		return
	}
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, t)
}

func (h *Handler) transactionsByProduct(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	productID, ok := param(r, "productId")
	if !ok {
		respond.BadRequest(w, "Product ID is required")
		return
	}

	data, err := h.svc.TransactionsByProduct(r.Context(), identity, productID)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, data)
}

func (h *Handler) recordProduction(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	var params RecordProductionParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	t, err := h.svc.RecordProduction(r.Context(), identity, params)
	switch {
	case errors.Is(err, ErrProcessRequired), errors.Is(err, ErrInsufficientStock):
		respond.BadRequest(w, err.Error())
	case errors.Is(err, ErrNoProcess):
		respond.NotFound(w, err.Error())
	case err != nil:
		respond.Internal(w, err)
	default:
		respond.Created(w, "Production run recorded successfully", t)
	}
}

func (h *Handler) updateTransaction(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	id, ok := param(r, "id")
	if !ok {
		respond.BadRequest(w, "Transaction ID is required")
		return
	}

	var params UpdateTransactionParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	t, err := h.svc.UpdateTransaction(r.Context(), identity, id, params)
	switch {
	case errors.Is(err, ErrTransactionNotFound):
		respond.NotFound(w, "Inventory transaction not found")
	case errors.Is(err, ErrInvalidQuantity):
		respond.BadRequest(w, err.Error())
	case err != nil:
		respond.Internal(w, err)
	default:
		respond.SuccessMessage(w, "Inventory transaction updated successfully", t)
	}
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	id, ok := param(r, "id")
	if !ok {
		respond.BadRequest(w, "Transaction ID is required")
		return
	}

	err := h.svc.DeleteTransaction(r.Context(), identity, id)
	if errors.Is(err, ErrTransactionNotFound) {
		respond.NotFound(w, "Inventory transaction not found")
		return
	}
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.SuccessMessage(w, "Inventory transaction deleted successfully", nil)
}
