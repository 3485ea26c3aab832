package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/BlogApp/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CommentHandler serves the comment endpoints nested under posts.
type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *slog.Logger
}

func NewCommentHandler(uc usecase.CommentUseCase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{commentUseCase: uc, logger: logger}
}

func (h *CommentHandler) pathIDs(w http.ResponseWriter, r *http.Request) (postID, commentID uuid.UUID, ok bool) {
	postID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Post not found", h.logger)
		return uuid.Nil, uuid.Nil, false
	}

	if raw := chi.URLParam(r, "cid"); raw != "" {
		commentID, err = uuid.Parse(raw)
		if err != nil {
			respondWithError(w, http.StatusNotFound, "Comment not found", h.logger)
			return uuid.Nil, uuid.Nil, false
		}
	}
	return postID, commentID, true
}

// List handles GET /posts/{id}/comments.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	postID, _, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	views, err := h.commentUseCase.ListComments(r.Context(), postID)
	if err != nil {
		respondWithDomainError(w, err, "Post not found", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, views, h.logger)
}

// Create handles POST /posts/{id}/comments.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := IdentityFromContext(r.Context())
	postID, _, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	var req commentRequest
	if !bindJSON(w, r, &req, h.logger) {
		return
	}

	view, err := h.commentUseCase.CreateComment(r.Context(), userID, postID, req.Contents)
	if err != nil {
		respondWithDomainError(w, err, "Post not found", h.logger)
		return
	}

	respondWithJSON(w, http.StatusCreated, view, h.logger)
}

// Update handles PUT /posts/{id}/comments/{cid}.
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := IdentityFromContext(r.Context())
	postID, commentID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	var req commentRequest
	if !bindJSON(w, r, &req, h.logger) {
		return
	}

	view, err := h.commentUseCase.UpdateComment(r.Context(), userID, postID, commentID, req.Contents)
	if err != nil {
		respondWithDomainError(w, err, "Comment not found", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, view, h.logger)
}

// Delete handles DELETE /posts/{id}/comments/{cid}.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := IdentityFromContext(r.Context())
	postID, commentID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	deleted, err := h.commentUseCase.DeleteComment(r.Context(), userID, postID, commentID)
	if err != nil {
		respondWithDomainError(w, err, "Comment not found", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"deleted": deleted}, h.logger)
}
