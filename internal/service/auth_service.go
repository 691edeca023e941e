package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"addina-shop/internal/auth"
	"addina-shop/internal/model"
	"addina-shop/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const minPasswordLength = 8

// authService implements AuthService.
type authService struct {
	userRepo repository.UserRepository
	issuer   *auth.TokenIssuer
	refresh  auth.RefreshStore
	logger   zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(
	userRepo repository.UserRepository,
	issuer *auth.TokenIssuer,
	refresh auth.RefreshStore,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		userRepo: userRepo,
		issuer:   issuer,
		refresh:  refresh,
		logger:   logger.With().Str("service", "auth").Logger(),
	}
}

// validateRegisterRequest checks the registration payload before any
// mutation is attempted.
func validateRegisterRequest(req *model.RegisterRequest) error {
	if req == nil {
		return model.NewValidationError("request body is required")
	}
	if strings.TrimSpace(req.Username) == "" {
		return model.NewValidationError("username is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return model.NewValidationError("email is required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return model.NewValidationError("email is not a valid address")
	}
	if len(req.Password) < minPasswordLength {
		return model.NewValidationError(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	if req.PasswordConfirm != "" && req.Password != req.PasswordConfirm {
		return model.NewValidationError("passwords do not match")
	}
	return nil
}

// Register validates the request and creates the user with its profile.
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.CreateWithProfile(ctx, user); err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info().
		Str("user_id", user.ID.String()).
		Str("username", user.Username).
		Msg("user registered")

	return user, nil
}

// Login verifies credentials and issues a token pair.
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	if req == nil || req.Username == "" || req.Password == "" {
		return nil, model.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to look up user")
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	// Same failure for unknown user and wrong password.
	if user == nil || !user.IsActive || !auth.CheckPassword(req.Password, user.PasswordHash) {
		s.logger.Warn().Str("username", req.Username).Msg("failed login attempt")
		return nil, model.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// Refresh rotates a refresh token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*model.TokenResponse, error) {
	if refreshToken == "" {
		return nil, model.ErrInvalidRefreshToken
	}

	userID, err := s.refresh.Redeem(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrRefreshTokenNotFound) {
			return nil, model.ErrInvalidRefreshToken
		}
		s.logger.Error().Err(err).Msg("failed to redeem refresh token")
		return nil, fmt.Errorf("failed to refresh session: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to look up user")
		return nil, fmt.Errorf("failed to refresh session: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, model.ErrInvalidRefreshToken
	}

	return s.issueTokens(ctx, user)
}

// Me returns the authenticated user's account.
func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to get user")
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *authService) issueTokens(ctx context.Context, user *model.User) (*model.TokenResponse, error) {
	accessToken, err := s.issuer.Issue(user.ID, user.Username)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to issue access token")
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	refreshToken, err := s.refresh.Issue(ctx, user.ID)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to issue refresh token")
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	s.logger.Debug().Str("user_id", user.ID.String()).Msg("token pair issued")

	return &model.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}
