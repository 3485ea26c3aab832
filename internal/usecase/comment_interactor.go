package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/BlogApp/internal/core/ports"
	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/google/uuid"
)

// commentUseCase implements CommentUseCase.
type commentUseCase struct {
	commentStorage ports.CommentStorage
	postStorage    ports.PostStorage
	userStorage    ports.UserStorage
	logger         *slog.Logger
}

func NewCommentUseCase(
	commentStorage ports.CommentStorage,
	postStorage ports.PostStorage,
	userStorage ports.UserStorage,
	logger *slog.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentStorage: commentStorage,
		postStorage:    postStorage,
		userStorage:    userStorage,
		logger:         logger,
	}
}

func (uc *commentUseCase) ListComments(ctx context.Context, postID uuid.UUID) ([]CommentView, error) {
	if _, err := uc.postStorage.GetPostByID(ctx, postID); err != nil {
		return nil, fmt.Errorf("usecase: loading post: %w", err)
	}

	rows, err := uc.commentStorage.ListCommentsByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("usecase: listing comments: %w", err)
	}

	views := make([]CommentView, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		views = append(views, *newCommentView(&row.Comment, AuthorView{
			ID:        row.AuthorID,
			Name:      row.AuthorName,
			Username:  row.AuthorUsername,
			AvatarURL: row.AuthorAvatarURL,
		}))
	}
	return views, nil
}

func (uc *commentUseCase) CreateComment(ctx context.Context, authorID, postID uuid.UUID, contents string) (*CommentView, error) {
	if _, err := uc.postStorage.GetPostByID(ctx, postID); err != nil {
		return nil, fmt.Errorf("usecase: loading post: %w", err)
	}

	comment := &domain.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Contents: contents,
	}
	if err := uc.commentStorage.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("usecase: creating comment: %w", err)
	}

	uc.logger.Info("comment created", "comment_id", comment.ID, "post_id", postID)
	return uc.commentView(ctx, comment)
}

func (uc *commentUseCase) UpdateComment(ctx context.Context, requesterID, postID, commentID uuid.UUID, contents string) (*CommentView, error) {
	comment, err := uc.resolveComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(requesterID, comment.AuthorID); err != nil {
		return nil, err
	}

	comment.Contents = contents
	if err := uc.commentStorage.SaveComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("usecase: saving comment: %w", err)
	}

	uc.logger.Info("comment updated", "comment_id", comment.ID)
	return uc.commentView(ctx, comment)
}

func (uc *commentUseCase) DeleteComment(ctx context.Context, requesterID, postID, commentID uuid.UUID) (uuid.UUID, error) {
	comment, err := uc.resolveComment(ctx, postID, commentID)
	if err != nil {
		return uuid.Nil, err
	}
	if err := authorizeOwner(requesterID, comment.AuthorID); err != nil {
		return uuid.Nil, err
	}

	if err := uc.commentStorage.DeleteComment(ctx, commentID); err != nil {
		return uuid.Nil, fmt.Errorf("usecase: deleting comment: %w", err)
	}

	uc.logger.Info("comment deleted", "comment_id", commentID)
	return commentID, nil
}

// resolveComment checks the post first, then the comment, and verifies the
// comment actually hangs off that post. A comment addressed through the
// wrong post reads as not found.
func (uc *commentUseCase) resolveComment(ctx context.Context, postID, commentID uuid.UUID) (*domain.Comment, error) {
	if _, err := uc.postStorage.GetPostByID(ctx, postID); err != nil {
		return nil, fmt.Errorf("usecase: loading post: %w", err)
	}

	comment, err := uc.commentStorage.GetCommentByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("usecase: loading comment: %w", err)
	}
	if comment.PostID != postID {
		return nil, domain.ErrNotFound
	}
	return comment, nil
}

func (uc *commentUseCase) commentView(ctx context.Context, comment *domain.Comment) (*CommentView, error) {
	author, err := uc.userStorage.GetUserByID(ctx, comment.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("usecase: loading author: %w", err)
	}
	return newCommentView(comment, AuthorView{
		ID:        author.ID,
		Name:      author.Name,
		Username:  author.Username,
		AvatarURL: author.AvatarURL,
	}), nil
}
