package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GoArmGo/BlogApp/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// paginationMeta mirrors the feed page metadata on the wire. next_num and
// prev_num are null at the edges.
type paginationMeta struct {
	Page    int  `json:"page"`
	Pages   int  `json:"pages"`
	NextNum *int `json:"next_num"`
	PrevNum *int `json:"prev_num"`
	Total   int  `json:"total"`
}

type pagedResponse struct {
	Meta paginationMeta `json:"meta"`
	Data interface{}    `json:"data"`
}

// PostHandler serves the post, favorite and tag endpoints.
type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *slog.Logger
}

func NewPostHandler(uc usecase.PostUseCase, logger *slog.Logger) *PostHandler {
	return &PostHandler{postUseCase: uc, logger: logger}
}

// postID pulls the {id} path parameter. A malformed id cannot name any
// post, so it reads as not found.
func (h *PostHandler) postID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Post not found", h.logger)
		return uuid.Nil, false
	}
	return id, true
}

// List handles GET /posts with optional page and tag query parameters.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page <= 0 {
		page = 1
	}
	tag := r.URL.Query().Get("tag")

	paged, err := h.postUseCase.ListPosts(r.Context(), page, tag, identityOrNil(r.Context()))
	if err != nil {
		respondWithDomainError(w, err, "Post not found", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, pagedResponse{
		Meta: paginationMeta{
			Page:    paged.Page,
			Pages:   paged.Pages,
			NextNum: paged.NextPage,
			PrevNum: paged.PrevPage,
			Total:   paged.Total,
		},
		Data: paged.Items,
	}, h.logger)
}

// Get handles GET /posts/{id}.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	view, err := h.postUseCase.GetPost(r.Context(), id, identityOrNil(r.Context()))
	if err != nil {
		respondWithDomainError(w, err, "Post not found", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, view, h.logger)
}

// Create handles POST /posts.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := IdentityFromContext(r.Context())

	var req createPostRequest
	if !bindJSON(w, r, &req, h.logger) {
		return
	}

	view, err := h.postUseCase.CreatePost(r.Context(), userID, usecase.CreatePostInput{
		Title:       req.Title,
		Description: req.Description,
		Contents:    req.Contents,
		Tags:        req.Tags,
	})
	if err != nil {
		respondWithDomainError(w, err, "Post not found", h.logger)
		return
	}

	respondWithJSON(w, http.StatusCreated, view, h.logger)
}

// Update handles PUT /posts/{id} with partial update semantics.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := IdentityFromContext(r.Context())
	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	var req updatePostRequest
	if !bindJSON(w, r, &req, h.logger) {
		return
	}

	view, err := h.postUseCase.UpdatePost(r.Context(), userID, id, usecase.UpdatePostInput{
		Title:       req.Title,
		Description: req.Description,
		Contents:    req.Contents,
		Tags:        req.Tags,
	})
	if err != nil {
		respondWithDomainError(w, err, "Post not found", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, view, h.logger)
}

// Delete handles DELETE /posts/{id}.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := IdentityFromContext(r.Context())
	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	deleted, err := h.postUseCase.DeletePost(r.Context(), userID, id)
	if err != nil {
		respondWithDomainError(w, err, "Post not found", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"deleted": deleted}, h.logger)
}

// ListByUser handles GET /@{username}/posts.
func (h *PostHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	views, err := h.postUseCase.ListPostsByUser(r.Context(), username, identityOrNil(r.Context()))
	if err != nil {
		respondWithDomainError(w, err, "User not found", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, views, h.logger)
}

// ListFavoritesByUser handles GET /@{username}/favorites.
func (h *PostHandler) ListFavoritesByUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	views, err := h.postUseCase.ListFavoritesByUser(r.Context(), username, identityOrNil(r.Context()))
	if err != nil {
		respondWithDomainError(w, err, "User not found", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, views, h.logger)
}

// Favorite handles POST /posts/{id}/favorite.
func (h *PostHandler) Favorite(w http.ResponseWriter, r *http.Request) {
	h.setFavorite(w, r, true)
}

// Unfavorite handles DELETE /posts/{id}/favorite.
func (h *PostHandler) Unfavorite(w http.ResponseWriter, r *http.Request) {
	h.setFavorite(w, r, false)
}

func (h *PostHandler) setFavorite(w http.ResponseWriter, r *http.Request, favorited bool) {
	userID, _ := IdentityFromContext(r.Context())
	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	view, err := h.postUseCase.SetFavorite(r.Context(), userID, id, favorited)
	if err != nil {
		respondWithDomainError(w, err, "Post not found", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, view, h.logger)
}

// ListTags handles GET /tags.
func (h *PostHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.postUseCase.ListTags(r.Context())
	if err != nil {
		respondWithDomainError(w, err, "Post not found", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, tags, h.logger)
}
