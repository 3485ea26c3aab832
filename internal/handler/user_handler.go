package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/BlogApp/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// maxAvatarSize caps avatar uploads at 5 MiB.
const maxAvatarSize = 5 << 20

// UserHandler serves registration, login and profile endpoints.
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *slog.Logger
}

func NewUserHandler(uc usecase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{userUseCase: uc, logger: logger}
}

// Register handles POST /register.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !bindJSON(w, r, &req, h.logger) {
		return
	}

	view, err := h.userUseCase.Register(r.Context(), usecase.RegisterInput{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Bio:      req.Bio,
	})
	if err != nil {
		respondWithDomainError(w, err, "User not found", h.logger)
		return
	}

	respondWithJSON(w, http.StatusCreated, view, h.logger)
}

// Login handles POST /login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !bindJSON(w, r, &req, h.logger) {
		return
	}

	view, err := h.userUseCase.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondWithDomainError(w, err, "User not found", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, view, h.logger)
}

// GetMe handles GET /me.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := IdentityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Request does not contain an access token.", h.logger)
		return
	}

	view, err := h.userUseCase.GetOwnProfile(r.Context(), userID)
	if err != nil {
		respondWithDomainError(w, err, "User not found", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, view, h.logger)
}

// UpdateMe handles PUT /me with partial update semantics.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := IdentityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Request does not contain an access token.", h.logger)
		return
	}

	var req updateProfileRequest
	if !bindJSON(w, r, &req, h.logger) {
		return
	}

	view, err := h.userUseCase.UpdateProfile(r.Context(), userID, usecase.UpdateProfileInput{
		Name:     req.Name,
		Email:    req.Email,
		Bio:      req.Bio,
		Password: req.Password,
	})
	if err != nil {
		respondWithDomainError(w, err, "User not found", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, view, h.logger)
}

// UploadAvatar handles POST /me/avatar as a multipart upload under the
// "avatar" field.
func (h *UserHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := IdentityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Request does not contain an access token.", h.logger)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarSize)
	file, header, err := r.FormFile("avatar")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Missing 'avatar' file field", h.logger)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	view, err := h.userUseCase.UpdateAvatar(r.Context(), userID, file, contentType)
	if err != nil {
		respondWithDomainError(w, err, "User not found", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, view, h.logger)
}

// GetProfile handles GET /@{username}.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	view, err := h.userUseCase.GetProfile(r.Context(), username)
	if err != nil {
		respondWithDomainError(w, err, "User not found", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, view, h.logger)
}
