package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"addina-shop/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TokenResponse), args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*model.TokenResponse, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TokenResponse), args.Error(1)
}

func (m *MockAuthService) Me(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestAuthHandler_Register(t *testing.T) {
	logger := zerolog.Nop()

	user := &model.User{
		ID:        uuid.New(),
		Username:  "alice",
		Email:     "alice@example.com",
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	tests := []struct {
		name           string
		body           string
		mockReturn     *model.User
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			body:           `{"username":"alice","email":"alice@example.com","password":"password123"}`,
			mockReturn:     user,
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "Duplicate username",
			body:           `{"username":"alice","email":"alice@example.com","password":"password123"}`,
			mockError:      model.ErrUsernameTaken,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Validation error",
			body:           `{"username":"","email":"","password":""}`,
			mockError:      model.NewValidationError("username is required"),
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Malformed body",
			body:           `{not json`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			handler := NewAuthHandler(mockService, logger)

			if tt.expectService {
				mockService.On("Register", mock.Anything, mock.AnythingOfType("*model.RegisterRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}

func TestAuthHandler_Register_OmitsPasswordHash(t *testing.T) {
	logger := zerolog.Nop()

	user := &model.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "bcrypt-hash",
		IsActive:     true,
	}

	mockService := new(MockAuthService)
	handler := NewAuthHandler(mockService, logger)

	mockService.On("Register", mock.Anything, mock.AnythingOfType("*model.RegisterRequest")).
		Return(user, nil)

	body := `{"username":"alice","email":"alice@example.com","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "bcrypt-hash")
	assert.NotContains(t, w.Body.String(), "password_hash")
}

func TestAuthHandler_Login(t *testing.T) {
	logger := zerolog.Nop()

	tokens := &model.TokenResponse{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		User:         &model.User{ID: uuid.New(), Username: "alice"},
	}

	tests := []struct {
		name           string
		body           string
		mockReturn     *model.TokenResponse
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			body:           `{"username":"alice","password":"password123"}`,
			mockReturn:     tokens,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Invalid credentials",
			body:           `{"username":"alice","password":"wrong"}`,
			mockError:      model.ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
			expectService:  true,
		},
		{
			name:           "Malformed body",
			body:           `{not json`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			handler := NewAuthHandler(mockService, logger)

			if tt.expectService {
				mockService.On("Login", mock.Anything, mock.AnythingOfType("*model.LoginRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}

func TestAuthHandler_Refresh(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAuthService)
		handler := NewAuthHandler(mockService, logger)

		tokens := &model.TokenResponse{AccessToken: "new-access", RefreshToken: "new-refresh"}
		mockService.On("Refresh", mock.Anything, "old-token").Return(tokens, nil)

		body := `{"refresh_token":"old-token"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.Refresh(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp model.TokenResponse
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "new-refresh", resp.RefreshToken)
	})

	t.Run("Invalid token", func(t *testing.T) {
		mockService := new(MockAuthService)
		handler := NewAuthHandler(mockService, logger)

		mockService.On("Refresh", mock.Anything, "bogus").Return(nil, model.ErrInvalidRefreshToken)

		body := `{"refresh_token":"bogus"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.Refresh(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	logger := zerolog.Nop()

	userID := uuid.New()
	user := &model.User{ID: userID, Username: "alice", IsActive: true}

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAuthService)
		handler := NewAuthHandler(mockService, logger)

		mockService.On("Me", mock.Anything, userID).Return(user, nil)

		req := authedRequest(http.MethodGet, "/api/auth/me", "", userID)
		w := httptest.NewRecorder()

		handler.Me(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		mockService := new(MockAuthService)
		handler := NewAuthHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		w := httptest.NewRecorder()

		handler.Me(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "Me")
	})
}
