package usecase

import (
	"context"

	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/google/uuid"
)

// CreatePostInput is the validated post creation payload.
type CreatePostInput struct {
	Title       string
	Description string
	Contents    string
	Tags        []string
}

// UpdatePostInput carries a partial post update. Nil pointers mean "leave
// unchanged".
type UpdatePostInput struct {
	Title       *string
	Description *string
	Contents    *string
	Tags        *[]string
}

// PostUseCase defines the business logic around posts, favorites and tags.
// requesterID is uuid.Nil for anonymous requests; it only personalizes the
// IsFavorited annotation and never gates reads.
type PostUseCase interface {
	// ListPosts returns one page of the feed, newest first, optionally
	// restricted to posts carrying the exact tag.
	ListPosts(ctx context.Context, page int, tag string, requesterID uuid.UUID) (*PagedPosts, error)

	GetPost(ctx context.Context, id, requesterID uuid.UUID) (*PostView, error)

	CreatePost(ctx context.Context, ownerID uuid.UUID, in CreatePostInput) (*PostView, error)

	// UpdatePost applies a partial update. The requester must own the post;
	// a missing post wins over a failed ownership check.
	UpdatePost(ctx context.Context, requesterID, postID uuid.UUID, in UpdatePostInput) (*PostView, error)

	// DeletePost removes the post and everything hanging off it, and
	// returns the deleted id.
	DeletePost(ctx context.Context, requesterID, postID uuid.UUID) (uuid.UUID, error)

	ListPostsByUser(ctx context.Context, username string, requesterID uuid.UUID) ([]PostView, error)

	ListFavoritesByUser(ctx context.Context, username string, requesterID uuid.UUID) ([]PostView, error)

	// SetFavorite adds or removes the requester's favorite. Both directions
	// are idempotent; the returned view reflects the final state.
	SetFavorite(ctx context.Context, requesterID, postID uuid.UUID, favorited bool) (*PostView, error)

	ListTags(ctx context.Context) ([]domain.TagCount, error)
}
