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

// profileRepository implements the ProfileRepository interface using PostgreSQL.
type profileRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProfileRepository creates a new PostgreSQL-backed profile repository.
func NewProfileRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProfileRepository {
	return &profileRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "profile").Logger(),
	}
}

const profileColumns = `id, user_id, display_name, avatar_url, created_at, updated_at`

// GetOrCreate returns the user's profile, inserting an empty one when absent.
// Profiles are normally created at registration; the insert covers accounts
// that predate that behaviour.
func (r *profileRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE user_id = $1
	`

	var p model.Profile
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.DisplayName, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt)
	if err == nil {
		return &p, nil
	}
	if err != pgx.ErrNoRows {
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to query profile")
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}

	insert := `
		INSERT INTO profiles (id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (user_id) DO UPDATE SET updated_at = profiles.updated_at
		RETURNING ` + profileColumns + `
	`

	err = r.pool.QueryRow(ctx, insert, uuid.New(), userID, time.Now()).Scan(
		&p.ID, &p.UserID, &p.DisplayName, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to create profile")
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	r.logger.Debug().Str("user_id", userID.String()).Msg("profile created lazily")

	return &p, nil
}

// UpdateDisplayName sets the display name on the user's profile.
func (r *profileRepository) UpdateDisplayName(ctx context.Context, userID uuid.UUID, displayName *string) (*model.Profile, error) {
	query := `
		UPDATE profiles
		SET display_name = $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + profileColumns + `
	`

	var p model.Profile
	err := r.pool.QueryRow(ctx, query, userID, displayName).Scan(
		&p.ID, &p.UserID, &p.DisplayName, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to update display name")
		return nil, fmt.Errorf("failed to update display name: %w", err)
	}

	return &p, nil
}

// UpdateAvatarURL sets the avatar reference on the user's profile.
func (r *profileRepository) UpdateAvatarURL(ctx context.Context, userID uuid.UUID, avatarURL string) (*model.Profile, error) {
	query := `
		UPDATE profiles
		SET avatar_url = $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + profileColumns + `
	`

	var p model.Profile
	err := r.pool.QueryRow(ctx, query, userID, avatarURL).Scan(
		&p.ID, &p.UserID, &p.DisplayName, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to update avatar")
		return nil, fmt.Errorf("failed to update avatar: %w", err)
	}

	return &p, nil
}
