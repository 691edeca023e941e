package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"addina-shop/internal/auth"
	"addina-shop/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProfileService is a mock implementation of ProfileService.
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Me(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileService) Update(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.Profile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileService) UploadAvatar(ctx context.Context, userID uuid.UUID, filename string, reader io.Reader, size int64, contentType string) (*model.Profile, error) {
	args := m.Called(ctx, userID, filename, reader, size, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func TestProfileHandler_Me(t *testing.T) {
	logger := zerolog.Nop()

	userID := uuid.New()
	profile := &model.Profile{ID: uuid.New(), UserID: userID}

	t.Run("Get", func(t *testing.T) {
		mockService := new(MockProfileService)
		handler := NewProfileHandler(mockService, logger)

		mockService.On("Me", mock.Anything, userID).Return(profile, nil)

		req := authedRequest(http.MethodGet, "/api/profile/me", "", userID)
		w := httptest.NewRecorder()

		handler.Me(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Update", func(t *testing.T) {
		mockService := new(MockProfileService)
		handler := NewProfileHandler(mockService, logger)

		mockService.On("Update", mock.Anything, userID, mock.AnythingOfType("*model.UpdateProfileRequest")).
			Return(profile, nil)

		req := authedRequest(http.MethodPut, "/api/profile/me", `{"display_name":"Alice"}`, userID)
		w := httptest.NewRecorder()

		handler.Me(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Method not allowed", func(t *testing.T) {
		mockService := new(MockProfileService)
		handler := NewProfileHandler(mockService, logger)

		req := authedRequest(http.MethodDelete, "/api/profile/me", "", userID)
		w := httptest.NewRecorder()

		handler.Me(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestProfileHandler_UploadAvatar(t *testing.T) {
	logger := zerolog.Nop()

	userID := uuid.New()
	profile := &model.Profile{ID: uuid.New(), UserID: userID}

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockProfileService)
		handler := NewProfileHandler(mockService, logger)

		mockService.On("UploadAvatar", mock.Anything, userID, "photo.png",
			mock.Anything, mock.AnythingOfType("int64"), mock.AnythingOfType("string")).
			Return(profile, nil)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreateFormFile("avatar", "photo.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("image-bytes"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/profile/avatar", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req = req.WithContext(auth.WithPrincipal(req.Context(), userID))
		w := httptest.NewRecorder()

		handler.UploadAvatar(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Missing file", func(t *testing.T) {
		mockService := new(MockProfileService)
		handler := NewProfileHandler(mockService, logger)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("other", "value"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/profile/avatar", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req = req.WithContext(auth.WithPrincipal(req.Context(), userID))
		w := httptest.NewRecorder()

		handler.UploadAvatar(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "UploadAvatar")
	})
}
