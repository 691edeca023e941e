package model

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem represents one product on a user's wishlist. At most one row
// exists per (user, product) pair; re-adding returns the existing row.
type WishlistItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	ProductID uuid.UUID `json:"product_id" db:"product_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// WishlistItemRequest is the payload for POST /api/wishlist-items.
type WishlistItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
}

// WishlistItemResponse embeds the product payload alongside the wishlist row.
type WishlistItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	Product   ProductResponse `json:"product"`
	CreatedAt time.Time       `json:"created_at"`
}
