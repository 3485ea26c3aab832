package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CommentUseCase defines the business logic around comments. Every
// operation resolves the parent post first: a missing post is a not-found
// failure regardless of what comes after.
type CommentUseCase interface {
	ListComments(ctx context.Context, postID uuid.UUID) ([]CommentView, error)

	CreateComment(ctx context.Context, authorID, postID uuid.UUID, contents string) (*CommentView, error)

	// UpdateComment replaces the comment body. Only the author may update;
	// the comment must belong to the given post.
	UpdateComment(ctx context.Context, requesterID, postID, commentID uuid.UUID, contents string) (*CommentView, error)

	// DeleteComment removes the comment and returns its id.
	DeleteComment(ctx context.Context, requesterID, postID, commentID uuid.UUID) (uuid.UUID, error)
}
