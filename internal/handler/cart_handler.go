package handler

import (
	"net/http"

	"addina-shop/internal/model"
	"addina-shop/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart-related HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// List handles GET /api/cart-items requests.
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(w, r, h.logger)
	if !ok {
		return
	}

	items, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Add handles POST /api/cart-items requests. Re-adding a product replaces
// the existing row's quantity.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(w, r, h.logger)
	if !ok {
		return
	}

	var req model.CartItemRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	item, err := h.service.AddItem(r.Context(), userID, &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// Update handles PATCH /api/cart-items/{id} requests.
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(w, r, h.logger)
	if !ok {
		return
	}

	itemID, err := pathID(r, "/api/cart-items/")
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "invalid cart item ID format", h.logger)
		return
	}

	var req model.UpdateCartItemRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	item, err := h.service.UpdateItem(r.Context(), userID, itemID, req.Quantity)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/cart-items/{id} requests.
func (h *CartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(w, r, h.logger)
	if !ok {
		return
	}

	itemID, err := pathID(r, "/api/cart-items/")
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "invalid cart item ID format", h.logger)
		return
	}

	if err := h.service.RemoveItem(r.Context(), userID, itemID); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Clear handles DELETE /api/cart/clear requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeValidation, "method not allowed", h.logger)
		return
	}

	userID, ok := principal(w, r, h.logger)
	if !ok {
		return
	}

	count, err := h.service.Clear(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.ClearResponse{DeletedCount: count})
}

// Total handles GET /api/cart/total requests.
func (h *CartHandler) Total(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeValidation, "method not allowed", h.logger)
		return
	}

	userID, ok := principal(w, r, h.logger)
	if !ok {
		return
	}

	total, err := h.service.Total(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, total)
}
