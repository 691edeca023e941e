package repository

import (
	"context"
	"fmt"
	"time"

	"addina-shop/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// wishlistRepository implements the WishlistRepository interface using PostgreSQL.
type wishlistRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewWishlistRepository creates a new PostgreSQL-backed wishlist repository.
func NewWishlistRepository(pool *pgxpool.Pool, logger zerolog.Logger) WishlistRepository {
	return &wishlistRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "wishlist").Logger(),
	}
}

// GetAllForUser retrieves the user's wishlist joined with product data.
func (r *wishlistRepository) GetAllForUser(ctx context.Context, userID uuid.UUID) ([]model.WishlistItem, []model.Product, error) {
	query := `
		SELECT wi.id, wi.user_id, wi.product_id, wi.created_at,
		       p.id, p.title, p.description, p.price, p.original_price, p.discount,
		       p.image_url, p.is_new, p.created_at, p.updated_at
		FROM wishlist_items wi
		JOIN products p ON p.id = wi.product_id
		WHERE wi.user_id = $1
		ORDER BY wi.created_at
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to query wishlist items")
		return nil, nil, fmt.Errorf("failed to query wishlist items: %w", err)
	}
	defer rows.Close()

	var items []model.WishlistItem
	var products []model.Product
	for rows.Next() {
		var item model.WishlistItem
		var p model.Product
		err := rows.Scan(
			&item.ID, &item.UserID, &item.ProductID, &item.CreatedAt,
			&p.ID, &p.Title, &p.Description, &p.Price, &p.OriginalPrice,
			&p.Discount, &p.ImageURL, &p.IsNew, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan wishlist row")
			return nil, nil, fmt.Errorf("failed to scan wishlist item: %w", err)
		}
		items = append(items, item)
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating wishlist rows")
		return nil, nil, fmt.Errorf("error iterating wishlist items: %w", err)
	}

	return items, products, nil
}

// GetOrCreate returns the existing row for the (user, product) pair or
// inserts a new one. The conflict clause makes a concurrent double-add
// converge on a single row.
func (r *wishlistRepository) GetOrCreate(ctx context.Context, userID, productID uuid.UUID) (*model.WishlistItem, error) {
	insert := `
		INSERT INTO wishlist_items (id, user_id, product_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, product_id) DO NOTHING
		RETURNING id, user_id, product_id, created_at
	`

	var item model.WishlistItem
	err := r.pool.QueryRow(ctx, insert, uuid.New(), userID, productID, time.Now()).Scan(
		&item.ID, &item.UserID, &item.ProductID, &item.CreatedAt)
	if err == nil {
		r.logger.Debug().Str("wishlist_item_id", item.ID.String()).Msg("wishlist item created")
		return &item, nil
	}
	if err != pgx.ErrNoRows {
		r.logger.Error().Err(err).
			Str("user_id", userID.String()).
			Str("product_id", productID.String()).
			Msg("failed to insert wishlist item")
		return nil, fmt.Errorf("failed to insert wishlist item: %w", err)
	}

	// Conflict: the pair already exists, read the surviving row back.
	query := `
		SELECT id, user_id, product_id, created_at
		FROM wishlist_items
		WHERE user_id = $1 AND product_id = $2
	`

	err = r.pool.QueryRow(ctx, query, userID, productID).Scan(
		&item.ID, &item.UserID, &item.ProductID, &item.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).
			Str("user_id", userID.String()).
			Str("product_id", productID.String()).
			Msg("failed to read back wishlist item")
		return nil, fmt.Errorf("failed to read back wishlist item: %w", err)
	}

	return &item, nil
}

// Delete removes the user's wishlist row.
func (r *wishlistRepository) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM wishlist_items WHERE id = $2 AND user_id = $1`, userID, itemID)
	if err != nil {
		r.logger.Error().Err(err).Str("wishlist_item_id", itemID.String()).Msg("failed to delete wishlist item")
		return fmt.Errorf("failed to delete wishlist item: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrWishlistNotFound
	}

	return nil
}

// DeleteAllForUser empties the user's wishlist.
func (r *wishlistRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM wishlist_items WHERE user_id = $1`, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to clear wishlist")
		return 0, fmt.Errorf("failed to clear wishlist: %w", err)
	}

	return tag.RowsAffected(), nil
}
