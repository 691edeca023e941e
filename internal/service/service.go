package service

import (
	"context"
	"io"

	"addina-shop/internal/model"

	"github.com/google/uuid"
)

// AuthService defines operations for account lifecycle management.
type AuthService interface {
	// Register validates the request, creates the user with a fresh profile
	// and returns the created account.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)

	// Login verifies credentials (username matched case-insensitively) and
	// issues an access/refresh token pair.
	Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error)

	// Refresh rotates a refresh token: the presented token is consumed and a
	// new pair is issued.
	Refresh(ctx context.Context, refreshToken string) (*model.TokenResponse, error)

	// Me returns the authenticated user's account.
	Me(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

// ProductService defines operations for the public catalogue.
type ProductService interface {
	// GetAll retrieves products newest-first with pagination.
	GetAll(ctx context.Context, limit, offset int) ([]model.ProductResponse, error)

	// GetFeatured retrieves products flagged as new.
	GetFeatured(ctx context.Context) ([]model.ProductResponse, error)

	// GetByID retrieves a single product. Returns model.ErrProductNotFound
	// when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.ProductResponse, error)
}

// CartService defines operations on the authenticated user's cart.
type CartService interface {
	// List retrieves the user's cart with product details.
	List(ctx context.Context, userID uuid.UUID) ([]model.CartItemResponse, error)

	// AddItem upserts a product into the cart: re-adding replaces the
	// quantity of the existing row.
	AddItem(ctx context.Context, userID uuid.UUID, req *model.CartItemRequest) (*model.CartItem, error)

	// UpdateItem replaces the quantity of an existing cart row.
	UpdateItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*model.CartItem, error)

	// RemoveItem deletes a cart row.
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error

	// Clear empties the cart and reports the removed row count.
	Clear(ctx context.Context, userID uuid.UUID) (int64, error)

	// Total sums quantity × current product price across the cart.
	Total(ctx context.Context, userID uuid.UUID) (*model.CartTotal, error)
}

// OrderService defines operations on the authenticated user's orders.
type OrderService interface {
	// CreateFromCart converts the user's cart into an order atomically:
	// order and items are created with prices frozen at their current value
	// and the cart is cleared, all in one transaction. An empty cart fails
	// with model.ErrEmptyCart and changes nothing.
	CreateFromCart(ctx context.Context, userID uuid.UUID) (*model.OrderResponse, error)

	// List retrieves the user's orders newest-first.
	List(ctx context.Context, userID uuid.UUID) ([]model.OrderResponse, error)

	// GetByID retrieves one of the user's orders. Returns
	// model.ErrOrderNotFound when absent or owned by another user.
	GetByID(ctx context.Context, userID, orderID uuid.UUID) (*model.OrderResponse, error)

	// UpdateStatus moves the order to another status within the fixed set.
	UpdateStatus(ctx context.Context, userID, orderID uuid.UUID, status string) (*model.Order, error)
}

// WishlistService defines operations on the authenticated user's wishlist.
type WishlistService interface {
	// List retrieves the user's wishlist with product details.
	List(ctx context.Context, userID uuid.UUID) ([]model.WishlistItemResponse, error)

	// AddItem adds a product with get-or-create semantics: re-adding
	// returns the existing row.
	AddItem(ctx context.Context, userID, productID uuid.UUID) (*model.WishlistItem, error)

	// RemoveItem deletes a wishlist row.
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error

	// Clear empties the wishlist and reports the removed row count.
	Clear(ctx context.Context, userID uuid.UUID) (int64, error)
}

// ProfileService defines operations on the authenticated user's profile.
type ProfileService interface {
	// Me returns the user's profile, creating it when missing.
	Me(ctx context.Context, userID uuid.UUID) (*model.Profile, error)

	// Update sets profile fields.
	Update(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.Profile, error)

	// UploadAvatar stores the avatar in the media store and records its URL
	// on the profile.
	UploadAvatar(ctx context.Context, userID uuid.UUID, filename string, reader io.Reader, size int64, contentType string) (*model.Profile, error)
}
