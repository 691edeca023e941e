package handler

import (
	"net/http"

	"addina-shop/internal/model"
	"addina-shop/internal/service"

	"github.com/rs/zerolog"
)

// WishlistHandler handles wishlist-related HTTP requests.
type WishlistHandler struct {
	service service.WishlistService
	logger  zerolog.Logger
}

// NewWishlistHandler creates a new wishlist handler.
func NewWishlistHandler(service service.WishlistService, logger zerolog.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: service,
		logger:  logger.With().Str("handler", "wishlist").Logger(),
	}
}

// List handles GET /api/wishlist-items requests.
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
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

// Add handles POST /api/wishlist-items requests. Re-adding a product
// returns the existing row.
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(w, r, h.logger)
	if !ok {
		return
	}

	var req model.WishlistItemRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	item, err := h.service.AddItem(r.Context(), userID, req.ProductID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// Delete handles DELETE /api/wishlist-items/{id} requests.
func (h *WishlistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(w, r, h.logger)
	if !ok {
		return
	}

	itemID, err := pathID(r, "/api/wishlist-items/")
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "invalid wishlist item ID format", h.logger)
		return
	}

	if err := h.service.RemoveItem(r.Context(), userID, itemID); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Clear handles DELETE /api/wishlist/clear requests.
func (h *WishlistHandler) Clear(w http.ResponseWriter, r *http.Request) {
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
