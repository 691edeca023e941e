package repository

import (
	"context"

	"addina-shop/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// CreateWithProfile inserts a user and its profile row atomically.
	// Duplicate usernames or emails return model.ErrUsernameTaken or
	// model.ErrEmailTaken.
	CreateWithProfile(ctx context.Context, user *model.User) error

	// GetByUsername retrieves a user by username, case-insensitively.
	// Returns nil when no user exists.
	GetByUsername(ctx context.Context, username string) (*model.User, error)

	// GetByID retrieves a user by ID. Returns nil when no user exists.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// ProfileRepository defines the interface for profile data access operations.
type ProfileRepository interface {
	// GetOrCreate returns the user's profile, creating an empty one if the
	// user predates profile auto-creation.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*model.Profile, error)

	// UpdateDisplayName sets the display name on the user's profile.
	UpdateDisplayName(ctx context.Context, userID uuid.UUID, displayName *string) (*model.Profile, error)

	// UpdateAvatarURL sets the avatar reference on the user's profile.
	UpdateAvatarURL(ctx context.Context, userID uuid.UUID, avatarURL string) (*model.Profile, error)
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves products newest-first with pagination support.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetFeatured retrieves products flagged as new.
	GetFeatured(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when no
	// product exists.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// Create inserts a new product.
	Create(ctx context.Context, product *model.Product) error

	// Delete removes a product. Products referenced by order history are
	// protected; deleting one returns model.ErrProductInUse.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CartRepository defines the interface for cart data access operations.
// Every method is scoped to a single user; rows belonging to other users are
// unreachable through this interface.
type CartRepository interface {
	// GetAllForUser retrieves the user's cart rows joined with product data.
	GetAllForUser(ctx context.Context, userID uuid.UUID) ([]model.CartItemDetail, error)

	// Upsert inserts a cart row or replaces the quantity of the existing
	// row for the same (user, product) pair.
	Upsert(ctx context.Context, userID, productID uuid.UUID, quantity int) (*model.CartItem, error)

	// UpdateQuantity replaces the quantity of the user's cart row. Returns
	// model.ErrCartItemNotFound when the row does not exist or belongs to
	// another user.
	UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*model.CartItem, error)

	// Delete removes the user's cart row. Returns model.ErrCartItemNotFound
	// when the row does not exist or belongs to another user.
	Delete(ctx context.Context, userID, itemID uuid.UUID) error

	// DeleteAllForUser empties the user's cart and reports the row count.
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// GetForUpdate reads the user's cart lines with their products' current
	// prices within the transaction, locking the cart rows until commit.
	GetForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) ([]model.CheckoutLine, error)

	// DeleteAllForUserTx empties the user's cart within the transaction.
	DeleteAllForUserTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetAllForUser retrieves the user's orders newest-first, with items.
	GetAllForUser(ctx context.Context, userID uuid.UUID) ([]model.Order, map[uuid.UUID][]model.OrderItemDetail, error)

	// GetByID retrieves the user's order with its items. Returns nil when
	// the order does not exist or belongs to another user.
	GetByID(ctx context.Context, userID, orderID uuid.UUID) (*model.Order, []model.OrderItemDetail, error)

	// UpdateStatus sets the status of the user's order. Returns
	// model.ErrOrderNotFound when the order does not exist or belongs to
	// another user.
	UpdateStatus(ctx context.Context, userID, orderID uuid.UUID, status string) (*model.Order, error)
}

// WishlistRepository defines the interface for wishlist data access operations.
type WishlistRepository interface {
	// GetAllForUser retrieves the user's wishlist joined with product data.
	GetAllForUser(ctx context.Context, userID uuid.UUID) ([]model.WishlistItem, []model.Product, error)

	// GetOrCreate returns the existing row for the (user, product) pair or
	// inserts a new one. Adding a product twice never duplicates the row.
	GetOrCreate(ctx context.Context, userID, productID uuid.UUID) (*model.WishlistItem, error)

	// Delete removes the user's wishlist row. Returns
	// model.ErrWishlistNotFound when the row does not exist or belongs to
	// another user.
	Delete(ctx context.Context, userID, itemID uuid.UUID) error

	// DeleteAllForUser empties the user's wishlist and reports the row count.
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
