package ports

import (
	"context"
	"io"

	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/google/uuid"
)

// FeedQuery describes one page of the post feed. Page is 1-indexed. An
// empty Tag means no tag filter; RequesterID may be uuid.Nil for anonymous
// requests, in which case IsFavorited is false on every row.
type FeedQuery struct {
	Page        int
	PerPage     int
	Tag         string
	RequesterID uuid.UUID
}

// UserStorage defines the methods for interacting with the users table.
// Absence is always signaled as domain.ErrNotFound, never as a nil row.
type UserStorage interface {
	CreateUser(ctx context.Context, user *domain.User) error
	// SaveUser persists a mutated user and refreshes its modification
	// timestamp.
	SaveUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// PostStorage defines the methods for interacting with posts, tags and the
// favorite relation.
type PostStorage interface {
	CreatePost(ctx context.Context, post *domain.Post) error
	SavePost(ctx context.Context, post *domain.Post) error
	// DeletePost removes the post; its comments and favorite rows go with it.
	DeletePost(ctx context.Context, id uuid.UUID) error
	GetPostByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)

	// GetFeedItemByID returns a single annotated post.
	GetFeedItemByID(ctx context.Context, id, requesterID uuid.UUID) (*domain.PostFeedItem, error)
	// ListFeed returns one page of annotated posts, newest first, plus the
	// total number of posts matching the filter.
	ListFeed(ctx context.Context, q FeedQuery) ([]domain.PostFeedItem, int, error)
	// ListFeedByOwner returns every post of one author, newest first.
	ListFeedByOwner(ctx context.Context, ownerID, requesterID uuid.UUID) ([]domain.PostFeedItem, error)
	// ListFavoritesOf returns every post the given user has favorited,
	// newest first.
	ListFavoritesOf(ctx context.Context, userID, requesterID uuid.UUID) ([]domain.PostFeedItem, error)

	// AddFavorite and RemoveFavorite are idempotent: repeating either is a
	// no-op success.
	AddFavorite(ctx context.Context, userID, postID uuid.UUID) error
	RemoveFavorite(ctx context.Context, userID, postID uuid.UUID) error

	// ListTagCounts returns distinct tags with usage counts, most frequent
	// first, ties broken by tag value ascending.
	ListTagCounts(ctx context.Context) ([]domain.TagCount, error)
}

// CommentStorage defines the methods for interacting with the comments table.
type CommentStorage interface {
	CreateComment(ctx context.Context, comment *domain.Comment) error
	SaveComment(ctx context.Context, comment *domain.Comment) error
	DeleteComment(ctx context.Context, id uuid.UUID) error
	GetCommentByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListCommentsByPost(ctx context.Context, postID uuid.UUID) ([]domain.CommentWithAuthor, error)
}

// FileStorage defines the interface to the object store holding avatar
// files (AWS S3, MinIO).
type FileStorage interface {
	// UploadFile stores the object under key and returns its public URL.
	UploadFile(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)
	DeleteFile(ctx context.Context, key string) error
}
