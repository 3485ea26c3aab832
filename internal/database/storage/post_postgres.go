package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/BlogApp/internal/core/ports"
	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// feedColumns is the shared projection of the post feed: the post, its
// author and the favorite annotations. The two subqueries run inside the
// page statement, so a page costs one round trip regardless of its size.
const feedColumns = `
	p.id, p.title, p.description, p.contents, p.tags, p.owner_id,
	p.created_at, p.modified_at,
	u.name AS author_name,
	u.username AS author_username,
	u.bio AS author_bio,
	u.avatar_url AS author_avatar_url,
	(SELECT COUNT(*) FROM favorites f WHERE f.post_id = p.id) AS favorites_count,
	EXISTS (
		SELECT 1 FROM favorites f WHERE f.post_id = p.id AND f.user_id = $1
	) AS is_favorited`

// PostStorage implements ports.PostStorage. Entity CRUD goes through GORM;
// the feed projections, the favorite relation and the tag aggregate are raw
// sqlx over the same connection pool.
type PostStorage struct {
	gdb    *gorm.DB
	db     *sqlx.DB
	logger *slog.Logger
}

func NewPostStorage(gdb *gorm.DB, db *sqlx.DB, logger *slog.Logger) *PostStorage {
	return &PostStorage{gdb: gdb, db: db, logger: logger}
}

func (s *PostStorage) CreatePost(ctx context.Context, post *domain.Post) error {
	start := time.Now()

	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	now := time.Now()
	post.CreatedAt = now
	post.ModifiedAt = now
	if post.Tags == nil {
		post.Tags = []string{}
	}

	if err := s.gdb.WithContext(ctx).Create(post).Error; err != nil {
		s.logger.Error("failed to insert post", "error", err)
		return fmt.Errorf("inserting post: %w", err)
	}

	s.logger.Info("post created",
		"post_id", post.ID,
		"owner_id", post.OwnerID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (s *PostStorage) SavePost(ctx context.Context, post *domain.Post) error {
	start := time.Now()

	post.ModifiedAt = time.Now()

	if err := s.gdb.WithContext(ctx).Save(post).Error; err != nil {
		s.logger.Error("failed to save post", "post_id", post.ID, "error", err)
		return fmt.Errorf("saving post: %w", err)
	}

	s.logger.Info("post saved",
		"post_id", post.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// DeletePost removes the post. Comments and favorite rows go with it via
// the ON DELETE CASCADE constraints.
func (s *PostStorage) DeletePost(ctx context.Context, id uuid.UUID) error {
	start := time.Now()

	res := s.gdb.WithContext(ctx).Delete(&domain.Post{}, "id = ?", id.String())
	if res.Error != nil {
		s.logger.Error("failed to delete post", "post_id", id, "error", res.Error)
		return fmt.Errorf("deleting post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	s.logger.Info("post deleted",
		"post_id", id,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (s *PostStorage) GetPostByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	var post domain.Post
	err := s.gdb.WithContext(ctx).First(&post, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		s.logger.Error("failed to get post by id", "post_id", id, "error", err)
		return nil, fmt.Errorf("getting post by id: %w", err)
	}
	return &post, nil
}

// GetFeedItemByID returns a single annotated post.
func (s *PostStorage) GetFeedItemByID(ctx context.Context, id, requesterID uuid.UUID) (*domain.PostFeedItem, error) {
	q := `
	SELECT` + feedColumns + `
	FROM posts p
	JOIN users u ON u.id = p.owner_id
	WHERE p.id = $2
	LIMIT 1
	`

	var item domain.PostFeedItem
	err := s.db.GetContext(ctx, &item, q, requesterID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		s.logger.Error("failed to get feed item", "post_id", id, "error", err)
		return nil, fmt.Errorf("getting feed item: %w", err)
	}
	return &item, nil
}

// ListFeed returns one page of the feed, newest first, plus the total
// number of posts matching the filter. An out-of-range page yields an empty
// slice, not an error.
func (s *PostStorage) ListFeed(ctx context.Context, fq ports.FeedQuery) ([]domain.PostFeedItem, int, error) {
	start := time.Now()
	offset := (fq.Page - 1) * fq.PerPage

	var (
		items []domain.PostFeedItem
		total int
		err   error
	)

	if fq.Tag != "" {
		// Exact, case-sensitive tag match.
		q := `
		SELECT` + feedColumns + `
		FROM posts p
		JOIN users u ON u.id = p.owner_id
		WHERE $2 = ANY (p.tags)
		ORDER BY p.created_at DESC
		LIMIT $3 OFFSET $4
		`
		err = s.db.SelectContext(ctx, &items, q, fq.RequesterID, fq.Tag, fq.PerPage, offset)
		if err == nil {
			err = s.db.GetContext(ctx, &total,
				`SELECT COUNT(*) FROM posts p WHERE $1 = ANY (p.tags)`, fq.Tag)
		}
	} else {
		q := `
		SELECT` + feedColumns + `
		FROM posts p
		JOIN users u ON u.id = p.owner_id
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3
		`
		err = s.db.SelectContext(ctx, &items, q, fq.RequesterID, fq.PerPage, offset)
		if err == nil {
			err = s.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM posts`)
		}
	}

	if err != nil {
		s.logger.Error("failed to list feed", "page", fq.Page, "tag", fq.Tag, "error", err)
		return nil, 0, fmt.Errorf("listing feed: %w", err)
	}

	s.logger.Info("feed listed",
		"page", fq.Page,
		"per_page", fq.PerPage,
		"tag", fq.Tag,
		"count", len(items),
		"total", total,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return items, total, nil
}

// ListFeedByOwner returns every post of one author, newest first.
func (s *PostStorage) ListFeedByOwner(ctx context.Context, ownerID, requesterID uuid.UUID) ([]domain.PostFeedItem, error) {
	q := `
	SELECT` + feedColumns + `
	FROM posts p
	JOIN users u ON u.id = p.owner_id
	WHERE p.owner_id = $2
	ORDER BY p.created_at DESC
	`

	var items []domain.PostFeedItem
	if err := s.db.SelectContext(ctx, &items, q, requesterID, ownerID); err != nil {
		s.logger.Error("failed to list posts by owner", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("listing posts by owner: %w", err)
	}
	return items, nil
}

// ListFavoritesOf returns every post the given user has favorited, newest
// first.
func (s *PostStorage) ListFavoritesOf(ctx context.Context, userID, requesterID uuid.UUID) ([]domain.PostFeedItem, error) {
	q := `
	SELECT` + feedColumns + `
	FROM posts p
	JOIN users u ON u.id = p.owner_id
	JOIN favorites fv ON fv.post_id = p.id AND fv.user_id = $2
	ORDER BY p.created_at DESC
	`

	var items []domain.PostFeedItem
	if err := s.db.SelectContext(ctx, &items, q, requesterID, userID); err != nil {
		s.logger.Error("failed to list favorites", "user_id", userID, "error", err)
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	return items, nil
}

// AddFavorite records the favorite. Adding an existing favorite is a no-op
// success.
func (s *PostStorage) AddFavorite(ctx context.Context, userID, postID uuid.UUID) error {
	q := `
	INSERT INTO favorites (user_id, post_id, created_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (user_id, post_id) DO NOTHING
	`

	if _, err := s.db.ExecContext(ctx, q, userID, postID, time.Now()); err != nil {
		s.logger.Error("failed to add favorite", "user_id", userID, "post_id", postID, "error", err)
		return fmt.Errorf("adding favorite: %w", err)
	}
	return nil
}

// RemoveFavorite deletes the favorite row. Removing a favorite that does
// not exist is a no-op success.
func (s *PostStorage) RemoveFavorite(ctx context.Context, userID, postID uuid.UUID) error {
	q := `DELETE FROM favorites WHERE user_id = $1 AND post_id = $2`

	if _, err := s.db.ExecContext(ctx, q, userID, postID); err != nil {
		s.logger.Error("failed to remove favorite", "user_id", userID, "post_id", postID, "error", err)
		return fmt.Errorf("removing favorite: %w", err)
	}
	return nil
}

// ListTagCounts aggregates tag usage across all posts, most frequent first,
// ties broken by the tag value ascending. Tags are counted exactly as
// stored: duplicates within a post and case variants stay distinct.
func (s *PostStorage) ListTagCounts(ctx context.Context) ([]domain.TagCount, error) {
	start := time.Now()

	q := `
	SELECT t.tag AS tag, COUNT(*) AS count
	FROM posts p, unnest(p.tags) AS t(tag)
	GROUP BY t.tag
	ORDER BY count DESC, tag ASC
	`

	var tags []domain.TagCount
	if err := s.db.SelectContext(ctx, &tags, q); err != nil {
		s.logger.Error("failed to list tag counts", "error", err)
		return nil, fmt.Errorf("listing tag counts: %w", err)
	}

	s.logger.Info("tag counts listed",
		"count", len(tags),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return tags, nil
}
