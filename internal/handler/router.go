package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/BlogApp/internal/auth"
	"github.com/GoArmGo/BlogApp/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter assembles the full HTTP surface. Required-auth routes go
// through RequireAuth; read routes that personalize their response go
// through OptionalAuth.
func NewRouter(
	userUC usecase.UserUseCase,
	postUC usecase.PostUseCase,
	commentUC usecase.CommentUseCase,
	tokens *auth.TokenManager,
	requestTimeout time.Duration,
	logger *slog.Logger,
) http.Handler {
	userHandler := NewUserHandler(userUC, logger)
	postHandler := NewPostHandler(postUC, logger)
	commentHandler := NewCommentHandler(commentUC, logger)

	required := RequireAuth(tokens, logger)
	optional := OptionalAuth(tokens, logger)

	r := chi.NewRouter()
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Post("/register", userHandler.Register)
	r.Post("/login", userHandler.Login)
	r.Get("/tags", postHandler.ListTags)

	r.Group(func(r chi.Router) {
		r.Use(required)
		r.Get("/me", userHandler.GetMe)
		r.Put("/me", userHandler.UpdateMe)
		r.Post("/me/avatar", userHandler.UploadAvatar)
		r.Post("/posts", postHandler.Create)
		r.Put("/posts/{id}", postHandler.Update)
		r.Delete("/posts/{id}", postHandler.Delete)
		r.Post("/posts/{id}/favorite", postHandler.Favorite)
		r.Delete("/posts/{id}/favorite", postHandler.Unfavorite)
		r.Post("/posts/{id}/comments", commentHandler.Create)
		r.Put("/posts/{id}/comments/{cid}", commentHandler.Update)
		r.Delete("/posts/{id}/comments/{cid}", commentHandler.Delete)
	})

	r.Group(func(r chi.Router) {
		r.Use(optional)
		r.Get("/@{username}", userHandler.GetProfile)
		r.Get("/@{username}/posts", postHandler.ListByUser)
		r.Get("/@{username}/favorites", postHandler.ListFavoritesByUser)
		r.Get("/posts", postHandler.List)
		r.Get("/posts/{id}", postHandler.Get)
	})

	r.Get("/posts/{id}/comments", commentHandler.List)

	return r
}
