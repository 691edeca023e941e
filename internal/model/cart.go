package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItem represents one product in a user's cart. At most one row exists
// per (user, product) pair; re-adding a product replaces the quantity.
type CartItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	ProductID uuid.UUID `json:"product_id" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CartItemRequest is the payload for POST /api/cart-items.
type CartItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// UpdateCartItemRequest is the payload for PATCH /api/cart-items/{id}.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartItemResponse embeds the product payload alongside the cart row.
type CartItemResponse struct {
	ID         uuid.UUID       `json:"id"`
	Product    ProductResponse `json:"product"`
	Quantity   int             `json:"quantity"`
	TotalPrice float64         `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// CartItemDetail joins a cart row with its product.
type CartItemDetail struct {
	CartItem
	Product Product
}

// CheckoutLine is a cart row as read under lock during checkout: the
// quantity and the product's current price.
type CheckoutLine struct {
	ProductID uuid.UUID
	Quantity  int
	Price     float64
}

// CartTotal summarises a user's cart.
type CartTotal struct {
	TotalAmount float64 `json:"total_amount"`
	TotalItems  int     `json:"total_items"`
}

// ClearResponse reports how many rows a clear operation removed.
type ClearResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}
