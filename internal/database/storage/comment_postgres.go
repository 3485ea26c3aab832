package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// CommentStorage implements ports.CommentStorage.
type CommentStorage struct {
	gdb    *gorm.DB
	db     *sqlx.DB
	logger *slog.Logger
}

func NewCommentStorage(gdb *gorm.DB, db *sqlx.DB, logger *slog.Logger) *CommentStorage {
	return &CommentStorage{gdb: gdb, db: db, logger: logger}
}

func (s *CommentStorage) CreateComment(ctx context.Context, comment *domain.Comment) error {
	start := time.Now()

	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	now := time.Now()
	comment.CreatedAt = now
	comment.ModifiedAt = now

	if err := s.gdb.WithContext(ctx).Create(comment).Error; err != nil {
		s.logger.Error("failed to insert comment", "post_id", comment.PostID, "error", err)
		return fmt.Errorf("inserting comment: %w", err)
	}

	s.logger.Info("comment created",
		"comment_id", comment.ID,
		"post_id", comment.PostID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (s *CommentStorage) SaveComment(ctx context.Context, comment *domain.Comment) error {
	comment.ModifiedAt = time.Now()

	if err := s.gdb.WithContext(ctx).Save(comment).Error; err != nil {
		s.logger.Error("failed to save comment", "comment_id", comment.ID, "error", err)
		return fmt.Errorf("saving comment: %w", err)
	}
	return nil
}

func (s *CommentStorage) DeleteComment(ctx context.Context, id uuid.UUID) error {
	res := s.gdb.WithContext(ctx).Delete(&domain.Comment{}, "id = ?", id.String())
	if res.Error != nil {
		s.logger.Error("failed to delete comment", "comment_id", id, "error", res.Error)
		return fmt.Errorf("deleting comment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *CommentStorage) GetCommentByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var comment domain.Comment
	err := s.gdb.WithContext(ctx).First(&comment, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		s.logger.Error("failed to get comment by id", "comment_id", id, "error", err)
		return nil, fmt.Errorf("getting comment by id: %w", err)
	}
	return &comment, nil
}

// ListCommentsByPost returns the post's comments with their authors, oldest
// first.
func (s *CommentStorage) ListCommentsByPost(ctx context.Context, postID uuid.UUID) ([]domain.CommentWithAuthor, error) {
	q := `
	SELECT c.id, c.post_id, c.author_id, c.contents, c.created_at, c.modified_at,
	       u.name AS author_name,
	       u.username AS author_username,
	       u.avatar_url AS author_avatar_url
	FROM comments c
	JOIN users u ON u.id = c.author_id
	WHERE c.post_id = $1
	ORDER BY c.created_at ASC
	`

	var comments []domain.CommentWithAuthor
	if err := s.db.SelectContext(ctx, &comments, q, postID); err != nil {
		s.logger.Error("failed to list comments", "post_id", postID, "error", err)
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return comments, nil
}
