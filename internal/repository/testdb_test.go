package repository

import (
	"context"
	"testing"
	"time"

	"addina-shop/internal/database"
	"addina-shop/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer, applies the schema and
// returns a connection pool.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	require.NoError(t, database.Migrate(ctx, pool, zerolog.Nop()))

	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

// seedUser inserts a user row and returns its ID.
func seedUser(t *testing.T, pool *pgxpool.Pool, username string) uuid.UUID {
	ctx := context.Background()
	id := uuid.New()

	_, err := pool.Exec(ctx, `
		INSERT INTO users (id, username, email, password_hash, is_active)
		VALUES ($1, $2, $3, 'x', TRUE)
	`, id, username, username+"@example.com")
	require.NoError(t, err)

	return id
}

// seedProduct inserts a product row and returns it.
func seedProduct(t *testing.T, pool *pgxpool.Pool, title string, price float64) model.Product {
	ctx := context.Background()
	now := time.Now()
	p := model.Product{
		ID:        uuid.New(),
		Title:     title,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx, `
		INSERT INTO products (id, title, price, is_new, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, p.ID, p.Title, p.Price, p.IsNew, p.CreatedAt, p.UpdatedAt)
	require.NoError(t, err)

	return p
}

// seedCartItem inserts a cart row directly.
func seedCartItem(t *testing.T, pool *pgxpool.Pool, userID, productID uuid.UUID, quantity int) uuid.UUID {
	ctx := context.Background()
	id := uuid.New()

	_, err := pool.Exec(ctx, `
		INSERT INTO cart_items (id, user_id, product_id, quantity)
		VALUES ($1, $2, $3, $4)
	`, id, userID, productID, quantity)
	require.NoError(t, err)

	return id
}
