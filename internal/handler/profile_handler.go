package handler

import (
	"net/http"

	"addina-shop/internal/model"
	"addina-shop/internal/service"

	"github.com/rs/zerolog"
)

// maxAvatarSize caps avatar uploads at 5 MiB.
const maxAvatarSize = 5 << 20

// ProfileHandler handles profile-related HTTP requests.
type ProfileHandler struct {
	service service.ProfileService
	logger  zerolog.Logger
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(service service.ProfileService, logger zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		logger:  logger.With().Str("handler", "profile").Logger(),
	}
}

// Me handles GET and PUT /api/profile/me requests.
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(w, r, h.logger)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		profile, err := h.service.Me(r.Context(), userID)
		if err != nil {
			writeDomainError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, profile)

	case http.MethodPut:
		var req model.UpdateProfileRequest
		if !decodeJSON(w, r, &req, h.logger) {
			return
		}

		profile, err := h.service.Update(r.Context(), userID, &req)
		if err != nil {
			writeDomainError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, profile)

	default:
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeValidation, "method not allowed", h.logger)
	}
}

// UploadAvatar handles POST /api/profile/avatar multipart requests.
func (h *ProfileHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeValidation, "method not allowed", h.logger)
		return
	}

	userID, ok := principal(w, r, h.logger)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "invalid multipart form", h.logger)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "avatar file is required", h.logger)
		return
	}
	defer file.Close()

	profile, err := h.service.UploadAvatar(
		r.Context(), userID, header.Filename, file, header.Size,
		header.Header.Get("Content-Type"))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
