package cart

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
	r.Get("/", h.getOrCreate)
	r.Get("/my-cart", h.myCart)
	r.Get("/{id}", h.details)
	r.Get("/{id}/count", h.itemCount)
	r.Put("/{id}", h.update)
	r.Put("/{id}/status", h.updateStatus)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/items", h.addItem)
	r.Put("/{id}/items/{productId}", h.updateItem)
	r.Delete("/{id}/items/{productId}", h.removeItem)
	r.Delete("/{id}/items", h.clear)
}

func param(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

func (h *Handler) getOrCreate(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	c, err := h.svc.GetOrCreate(r.Context(), identity)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, c)
}

func (h *Handler) myCart(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	details, err := h.svc.MyCart(r.Context(), identity)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, details)
}

func (h *Handler) details(w http.ResponseWriter, r *http.Request) {
	id, ok := param(r, "id")
	if !ok {
		respond.BadRequest(w, "Cart ID is required")
		return
	}

	details, err := h.svc.Details(r.Context(), id)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, details)
}

func (h *Handler) itemCount(w http.ResponseWriter, r *http.Request) {
	id, ok := param(r, "id")
	if !ok {
		respond.BadRequest(w, "Cart ID is required")
		return
	}

	count, err := h.svc.ItemCount(r.Context(), id)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.Success(w, map[string]int64{"itemCount": count})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := param(r, "id")
	if !ok {
		respond.BadRequest(w, "Cart ID is required")
		return
	}

	var body struct {
		Notes *string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	c, err := h.svc.UpdateNotes(r.Context(), id, body.Notes)
	switch {
	case errors.Is(err, ErrCartNotFound):
		respond.NotFound(w, "Cart not found")
	case err != nil:
		respond.Internal(w, err)
	default:
		respond.SuccessMessage(w, "Cart updated successfully", c)
	}
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := param(r, "id")
	if !ok {
		respond.BadRequest(w, "Cart ID is required")
		return
	}

	var body struct {
		Status Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}
	if body.Status == "" {
		respond.BadRequest(w, "Status is required")
		return
	}

	c, err := h.svc.UpdateStatus(r.Context(), id, body.Status)
	switch {
	case errors.Is(err, ErrInvalidStatus):
		respond.BadRequest(w, "Invalid status. Must be PENDING, COMPLETED, or CANCELLED")
	case errors.Is(err, ErrCartNotFound):
		respond.NotFound(w, "Cart not found")
	case err != nil:
		respond.Internal(w, err)
	default:
		respond.SuccessMessage(w, "Cart status updated successfully", c)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := param(r, "id")
	if !ok {
		respond.BadRequest(w, "Cart ID is required")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respond.Internal(w, err)
		return
	}
	respond.SuccessMessage(w, "Cart deleted successfully", nil)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	id, ok := param(r, "id")
	if !ok {
		respond.BadRequest(w, "Cart ID is required")
		return
	}

	var body struct {
		ProductID int64 `json:"productId"`
		Quantity  int64 `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	item, err := h.svc.AddItem(r.Context(), identity, id, body.ProductID, body.Quantity)
	switch {
	case errors.Is(err, ErrProductRequired), errors.Is(err, ErrInvalidQuantity):
		respond.BadRequest(w, err.Error())
	case err != nil:
		respond.Internal(w, err)
	default:
		respond.Created(w, "Item added to cart successfully", item)
	}
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	cartID, ok := param(r, "id")
	if !ok {
		respond.BadRequest(w, "Cart ID and Product ID are required")
		return
	}
	productID, ok := param(r, "productId")
	if !ok {
		respond.BadRequest(w, "Cart ID and Product ID are required")
		return
	}

	var body struct {
		Quantity *int64 `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}
	if body.Quantity == nil {
		respond.BadRequest(w, "Quantity is required")
		return
	}

	item, err := h.svc.UpdateItemQuantity(r.Context(), cartID, productID, *body.Quantity)
	switch {
	case errors.Is(err, ErrInvalidQuantity):
		respond.BadRequest(w, "Quantity cannot be negative")
	case errors.Is(err, ErrItemNotFound):
		respond.NotFound(w, "Cart item not found")
	case err != nil:
		respond.Internal(w, err)
	case item == nil:
		respond.SuccessMessage(w, "Item removed from cart", nil)
	default:
		respond.SuccessMessage(w, "Cart item updated successfully", item)
	}
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	cartID, ok := param(r, "id")
	if !ok {
		respond.BadRequest(w, "Cart ID and Product ID are required")
		return
	}
	productID, ok := param(r, "productId")
	if !ok {
		respond.BadRequest(w, "Cart ID and Product ID are required")
		return
	}

	if err := h.svc.RemoveItem(r.Context(), cartID, productID); err != nil {
		respond.Internal(w, err)
		return
	}
	respond.SuccessMessage(w, "Item removed from cart successfully", nil)
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	id, ok := param(r, "id")
	if !ok {
		respond.BadRequest(w, "Cart ID is required")
		return
	}

	if err := h.svc.Clear(r.Context(), id); err != nil {
		respond.Internal(w, err)
		return
	}
	respond.SuccessMessage(w, "Cart cleared successfully", nil)
}
