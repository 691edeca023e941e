package repository

import (
	"context"
	"testing"

	"addina-shop/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateWithProfile(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewUserRepository(pool, zerolog.Nop())

	user := &model.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		IsActive:     true,
	}

	require.NoError(t, repo.CreateWithProfile(ctx, user))

	// The profile row is created in the same transaction.
	var count int
	err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM profiles WHERE user_id = $1`, user.ID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Username)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewUserRepository(pool, zerolog.Nop())

	first := &model.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com", PasswordHash: "x", IsActive: true}
	require.NoError(t, repo.CreateWithProfile(ctx, first))

	dup := &model.User{ID: uuid.New(), Username: "alice", Email: "other@example.com", PasswordHash: "x", IsActive: true}
	err := repo.CreateWithProfile(ctx, dup)
	assert.Equal(t, model.ErrUsernameTaken, err)

	// Case only differs; citext still collides.
	caseDup := &model.User{ID: uuid.New(), Username: "ALICE", Email: "third@example.com", PasswordHash: "x", IsActive: true}
	err = repo.CreateWithProfile(ctx, caseDup)
	assert.Equal(t, model.ErrUsernameTaken, err)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewUserRepository(pool, zerolog.Nop())

	first := &model.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com", PasswordHash: "x", IsActive: true}
	require.NoError(t, repo.CreateWithProfile(ctx, first))

	dup := &model.User{ID: uuid.New(), Username: "bob", Email: "alice@example.com", PasswordHash: "x", IsActive: true}
	err := repo.CreateWithProfile(ctx, dup)
	assert.Equal(t, model.ErrEmailTaken, err)
}

func TestUserRepository_GetByUsername_CaseInsensitive(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewUserRepository(pool, zerolog.Nop())

	user := &model.User{ID: uuid.New(), Username: "Alice", Email: "alice@example.com", PasswordHash: "x", IsActive: true}
	require.NoError(t, repo.CreateWithProfile(ctx, user))

	for _, username := range []string{"Alice", "alice", "ALICE"} {
		got, err := repo.GetByUsername(ctx, username)
		require.NoError(t, err)
		require.NotNil(t, got, username)
		assert.Equal(t, user.ID, got.ID)
	}

	missing, err := repo.GetByUsername(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
