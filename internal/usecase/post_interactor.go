package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/BlogApp/internal/core/ports"
	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/google/uuid"
)

// postUseCase implements PostUseCase.
type postUseCase struct {
	postStorage ports.PostStorage
	userStorage ports.UserStorage
	pageSize    int
	logger      *slog.Logger
}

func NewPostUseCase(
	postStorage ports.PostStorage,
	userStorage ports.UserStorage,
	pageSize int,
	logger *slog.Logger,
) PostUseCase {
	return &postUseCase{
		postStorage: postStorage,
		userStorage: userStorage,
		pageSize:    pageSize,
		logger:      logger,
	}
}

func (uc *postUseCase) ListPosts(ctx context.Context, page int, tag string, requesterID uuid.UUID) (*PagedPosts, error) {
	if page <= 0 {
		page = 1
	}

	items, total, err := uc.postStorage.ListFeed(ctx, ports.FeedQuery{
		Page:        page,
		PerPage:     uc.pageSize,
		Tag:         tag,
		RequesterID: requesterID,
	})
	if err != nil {
		return nil, fmt.Errorf("usecase: listing posts: %w", err)
	}

	return paginate(newPostViews(items), page, uc.pageSize, total), nil
}

// paginate computes the page metadata. A page past the end carries an empty
// item list and a nil next pointer, never an error.
func paginate(items []PostView, page, perPage, total int) *PagedPosts {
	pages := 0
	if total > 0 {
		pages = (total + perPage - 1) / perPage
	}

	paged := &PagedPosts{
		Page:  page,
		Pages: pages,
		Total: total,
		Items: items,
	}
	if page < pages {
		next := page + 1
		paged.NextPage = &next
	}
	if page > 1 {
		prev := page - 1
		paged.PrevPage = &prev
	}
	return paged
}

func (uc *postUseCase) GetPost(ctx context.Context, id, requesterID uuid.UUID) (*PostView, error) {
	item, err := uc.postStorage.GetFeedItemByID(ctx, id, requesterID)
	if err != nil {
		return nil, fmt.Errorf("usecase: getting post: %w", err)
	}
	return newPostView(item), nil
}

func (uc *postUseCase) CreatePost(ctx context.Context, ownerID uuid.UUID, in CreatePostInput) (*PostView, error) {
	post := &domain.Post{
		Title:       in.Title,
		Description: in.Description,
		Contents:    in.Contents,
		Tags:        in.Tags,
		OwnerID:     ownerID,
	}
	if err := uc.postStorage.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("usecase: creating post: %w", err)
	}

	uc.logger.Info("post created", "post_id", post.ID, "owner_id", ownerID)
	return uc.GetPost(ctx, post.ID, ownerID)
}

func (uc *postUseCase) UpdatePost(ctx context.Context, requesterID, postID uuid.UUID, in UpdatePostInput) (*PostView, error) {
	post, err := uc.postStorage.GetPostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("usecase: loading post: %w", err)
	}
	if err := authorizeOwner(requesterID, post.OwnerID); err != nil {
		return nil, err
	}

	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Description != nil {
		post.Description = *in.Description
	}
	if in.Contents != nil {
		post.Contents = *in.Contents
	}
	if in.Tags != nil {
		post.Tags = *in.Tags
	}

	if err := uc.postStorage.SavePost(ctx, post); err != nil {
		return nil, fmt.Errorf("usecase: saving post: %w", err)
	}

	uc.logger.Info("post updated", "post_id", post.ID)
	return uc.GetPost(ctx, post.ID, requesterID)
}

func (uc *postUseCase) DeletePost(ctx context.Context, requesterID, postID uuid.UUID) (uuid.UUID, error) {
	post, err := uc.postStorage.GetPostByID(ctx, postID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("usecase: loading post: %w", err)
	}
	if err := authorizeOwner(requesterID, post.OwnerID); err != nil {
		return uuid.Nil, err
	}

	if err := uc.postStorage.DeletePost(ctx, postID); err != nil {
		return uuid.Nil, fmt.Errorf("usecase: deleting post: %w", err)
	}

	uc.logger.Info("post deleted", "post_id", postID, "owner_id", requesterID)
	return postID, nil
}

func (uc *postUseCase) ListPostsByUser(ctx context.Context, username string, requesterID uuid.UUID) ([]PostView, error) {
	user, err := uc.userStorage.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("usecase: resolving user: %w", err)
	}

	items, err := uc.postStorage.ListFeedByOwner(ctx, user.ID, requesterID)
	if err != nil {
		return nil, fmt.Errorf("usecase: listing posts by user: %w", err)
	}
	return newPostViews(items), nil
}

func (uc *postUseCase) ListFavoritesByUser(ctx context.Context, username string, requesterID uuid.UUID) ([]PostView, error) {
	user, err := uc.userStorage.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("usecase: resolving user: %w", err)
	}

	items, err := uc.postStorage.ListFavoritesOf(ctx, user.ID, requesterID)
	if err != nil {
		return nil, fmt.Errorf("usecase: listing favorites: %w", err)
	}
	return newPostViews(items), nil
}

func (uc *postUseCase) SetFavorite(ctx context.Context, requesterID, postID uuid.UUID, favorited bool) (*PostView, error) {
	// Existence check first so a missing post is a 404, not a silent no-op.
	if _, err := uc.postStorage.GetPostByID(ctx, postID); err != nil {
		return nil, fmt.Errorf("usecase: loading post: %w", err)
	}

	var err error
	if favorited {
		err = uc.postStorage.AddFavorite(ctx, requesterID, postID)
	} else {
		err = uc.postStorage.RemoveFavorite(ctx, requesterID, postID)
	}
	if err != nil {
		return nil, fmt.Errorf("usecase: toggling favorite: %w", err)
	}

	uc.logger.Info("favorite toggled", "post_id", postID, "user_id", requesterID, "favorited", favorited)
	return uc.GetPost(ctx, postID, requesterID)
}

func (uc *postUseCase) ListTags(ctx context.Context) ([]domain.TagCount, error) {
	tags, err := uc.postStorage.ListTagCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: listing tags: %w", err)
	}
	return tags, nil
}
