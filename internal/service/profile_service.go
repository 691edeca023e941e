package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"addina-shop/internal/model"
	"addina-shop/internal/repository"
	"addina-shop/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// profileService implements ProfileService.
type profileService struct {
	profileRepo repository.ProfileRepository
	media       storage.MediaStore
	logger      zerolog.Logger
}

// NewProfileService creates a new profile service. media may be nil when
// object storage is disabled; avatar uploads then fail with a validation
// error instead of a broken write.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	media storage.MediaStore,
	logger zerolog.Logger,
) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		media:       media,
		logger:      logger.With().Str("service", "profile").Logger(),
	}
}

// Me returns the user's profile, creating it when missing.
func (s *profileService) Me(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	profile, err := s.profileRepo.GetOrCreate(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to get profile")
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// Update sets profile fields.
func (s *profileService) Update(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.Profile, error) {
	if req == nil {
		return nil, model.NewValidationError("request body is required")
	}

	profile, err := s.profileRepo.UpdateDisplayName(ctx, userID, req.DisplayName)
	if err != nil {
		if err == model.ErrUserNotFound {
			return nil, err
		}
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to update profile")
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return profile, nil
}

// UploadAvatar stores the avatar in the media store and records its URL.
func (s *profileService) UploadAvatar(ctx context.Context, userID uuid.UUID, filename string, reader io.Reader, size int64, contentType string) (*model.Profile, error) {
	if s.media == nil {
		return nil, model.NewValidationError("media storage is not configured")
	}
	if size <= 0 {
		return nil, model.NewValidationError("avatar file is empty")
	}

	ext := strings.ToLower(path.Ext(filename))
	key := fmt.Sprintf("avatars/%s%s", userID, ext)

	url, err := s.media.Upload(ctx, key, reader, size, contentType)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to upload avatar")
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	profile, err := s.profileRepo.UpdateAvatarURL(ctx, userID, url)
	if err != nil {
		if err == model.ErrUserNotFound {
			return nil, err
		}
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to record avatar URL")
		return nil, fmt.Errorf("failed to record avatar: %w", err)
	}

	s.logger.Info().Str("user_id", userID.String()).Str("avatar_url", url).Msg("avatar updated")

	return profile, nil
}
