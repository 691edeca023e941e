package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RefreshStore issues opaque refresh tokens and redeems them exactly once.
type RefreshStore interface {
	// Issue creates a new refresh token for the user with the store's TTL.
	Issue(ctx context.Context, userID uuid.UUID) (string, error)

	// Redeem consumes a refresh token and returns the user it belongs to.
	// A redeemed token is deleted; presenting it again fails.
	Redeem(ctx context.Context, token string) (uuid.UUID, error)
}

// ErrRefreshTokenNotFound is returned when a token is unknown or expired.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

const refreshKeyPrefix = "refresh:"

// redisRefreshStore keeps refresh tokens in Redis keyed by the token value,
// expiring them via TTL.
type redisRefreshStore struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedisRefreshStore creates a Redis-backed refresh token store.
func NewRedisRefreshStore(client *redis.Client, ttl time.Duration, logger zerolog.Logger) RefreshStore {
	return &redisRefreshStore{
		client: client,
		ttl:    ttl,
		logger: logger.With().Str("component", "refresh_store").Logger(),
	}
}

func (s *redisRefreshStore) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	token := hex.EncodeToString(buf)

	if err := s.client.Set(ctx, refreshKeyPrefix+token, userID.String(), s.ttl).Err(); err != nil {
		s.logger.Error().Err(err).Msg("failed to store refresh token")
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return token, nil
}

func (s *redisRefreshStore) Redeem(ctx context.Context, token string) (uuid.UUID, error) {
	key := refreshKeyPrefix + token

	value, err := s.client.GetDel(ctx, key).Result()
	if err == redis.Nil {
		return uuid.Nil, ErrRefreshTokenNotFound
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to redeem refresh token")
		return uuid.Nil, fmt.Errorf("failed to redeem refresh token: %w", err)
	}

	userID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("corrupt refresh token entry: %w", err)
	}
	return userID, nil
}
