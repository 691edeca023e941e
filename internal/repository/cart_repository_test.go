package repository

import (
	"context"
	"testing"

	"addina-shop/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_Upsert(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewCartRepository(pool, zerolog.Nop())

	userID := seedUser(t, pool, "alice")
	product := seedProduct(t, pool, "Lamp", 45.00)

	first, err := repo.Upsert(ctx, userID, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Quantity)

	// Re-adding replaces the quantity on the same row.
	second, err := repo.Upsert(ctx, userID, product.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)

	var count int
	err = pool.QueryRow(ctx, `SELECT COUNT(*) FROM cart_items WHERE user_id = $1`, userID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCartRepository_GetAllForUser(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewCartRepository(pool, zerolog.Nop())

	alice := seedUser(t, pool, "alice")
	bob := seedUser(t, pool, "bob")
	lamp := seedProduct(t, pool, "Lamp", 45.00)
	chair := seedProduct(t, pool, "Chair", 120.00)

	seedCartItem(t, pool, alice, lamp.ID, 2)
	seedCartItem(t, pool, alice, chair.ID, 1)
	seedCartItem(t, pool, bob, lamp.ID, 7)

	details, err := repo.GetAllForUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, details, 2)

	// Product columns come back joined onto each row.
	for _, d := range details {
		assert.Equal(t, alice, d.UserID)
		assert.NotEmpty(t, d.Product.Title)
	}
}

func TestCartRepository_UpdateQuantity_OwnershipScoped(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewCartRepository(pool, zerolog.Nop())

	alice := seedUser(t, pool, "alice")
	bob := seedUser(t, pool, "bob")
	lamp := seedProduct(t, pool, "Lamp", 45.00)

	itemID := seedCartItem(t, pool, alice, lamp.ID, 2)

	updated, err := repo.UpdateQuantity(ctx, alice, itemID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)

	// Another user's row is unreachable.
	_, err = repo.UpdateQuantity(ctx, bob, itemID, 9)
	assert.Equal(t, model.ErrCartItemNotFound, err)

	err = repo.Delete(ctx, bob, itemID)
	assert.Equal(t, model.ErrCartItemNotFound, err)

	// Untouched by the cross-user attempts.
	details, err := repo.GetAllForUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, 4, details[0].Quantity)
}

func TestCartRepository_DeleteAllForUser(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewCartRepository(pool, zerolog.Nop())

	alice := seedUser(t, pool, "alice")
	bob := seedUser(t, pool, "bob")
	lamp := seedProduct(t, pool, "Lamp", 45.00)
	chair := seedProduct(t, pool, "Chair", 120.00)

	seedCartItem(t, pool, alice, lamp.ID, 1)
	seedCartItem(t, pool, alice, chair.ID, 1)
	seedCartItem(t, pool, bob, lamp.ID, 1)

	count, err := repo.DeleteAllForUser(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Bob's cart survives.
	details, err := repo.GetAllForUser(ctx, bob)
	require.NoError(t, err)
	assert.Len(t, details, 1)

	// Clearing an already empty cart reports zero.
	count, err = repo.DeleteAllForUser(ctx, alice)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCartRepository_GetForUpdate(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewCartRepository(pool, zerolog.Nop())

	alice := seedUser(t, pool, "alice")
	lamp := seedProduct(t, pool, "Lamp", 45.00)
	chair := seedProduct(t, pool, "Chair", 120.00)

	seedCartItem(t, pool, alice, lamp.ID, 2)
	seedCartItem(t, pool, alice, chair.ID, 1)

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	lines, err := repo.GetForUpdate(ctx, tx, alice)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	var total float64
	for _, line := range lines {
		total += float64(line.Quantity) * line.Price
	}
	assert.InDelta(t, 210.0, total, 0.0001)

	require.NoError(t, repo.DeleteAllForUserTx(ctx, tx, alice))
	require.NoError(t, tx.Commit(ctx))

	details, err := repo.GetAllForUser(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, details)
}
