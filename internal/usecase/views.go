package usecase

import (
	"time"

	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/google/uuid"
)

// View models returned to the handler layer. These are explicit
// projections: each view is built by a dedicated function from the stored
// entities, never by toggling fields on the entity itself.

// UserView is the owner-facing projection of a user, returned by login,
// /me and profile updates. Token is only set on login.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Token     string    `json:"token,omitempty"`
}

// ProfileView is the public projection of a user: no email, no token.
type ProfileView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Bio       string    `json:"bio,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
}

// AuthView is the registration response.
type AuthView struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// AuthorView is the nested author projection inside posts and comments.
type AuthorView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Bio       string    `json:"bio,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
}

// PostView is the annotated post projection.
type PostView struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Contents       string     `json:"contents"`
	Tags           []string   `json:"tags"`
	Author         AuthorView `json:"author"`
	CreatedAt      time.Time  `json:"created_at"`
	ModifiedAt     time.Time  `json:"modified_at"`
	FavoritesCount int        `json:"favorites_count"`
	IsFavorited    bool       `json:"is_favorited"`
}

// CommentView is the comment projection with its author nested.
type CommentView struct {
	ID         uuid.UUID  `json:"id"`
	Contents   string     `json:"contents"`
	Author     AuthorView `json:"author"`
	CreatedAt  time.Time  `json:"created_at"`
	ModifiedAt time.Time  `json:"modified_at"`
}

// PagedPosts carries one feed page plus its pagination metadata. Pages is
// the total page count; NextPage and PrevPage are nil at the edges.
type PagedPosts struct {
	Page     int
	Pages    int
	NextPage *int
	PrevPage *int
	Total    int
	Items    []PostView
}

func newUserView(u *domain.User) *UserView {
	return &UserView{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Email:     u.Email,
		Bio:       u.Bio,
		AvatarURL: u.AvatarURL,
	}
}

func newProfileView(u *domain.User) *ProfileView {
	return &ProfileView{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Bio:       u.Bio,
		AvatarURL: u.AvatarURL,
	}
}

func newPostView(item *domain.PostFeedItem) *PostView {
	return &PostView{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Contents:    item.Contents,
		Tags:        append([]string{}, item.Tags...),
		Author: AuthorView{
			ID:        item.OwnerID,
			Name:      item.AuthorName,
			Username:  item.AuthorUsername,
			Bio:       item.AuthorBio,
			AvatarURL: item.AuthorAvatarURL,
		},
		CreatedAt:      item.CreatedAt,
		ModifiedAt:     item.ModifiedAt,
		FavoritesCount: item.FavoritesCount,
		IsFavorited:    item.IsFavorited,
	}
}

func newPostViews(items []domain.PostFeedItem) []PostView {
	views := make([]PostView, 0, len(items))
	for i := range items {
		views = append(views, *newPostView(&items[i]))
	}
	return views
}

func newCommentView(c *domain.Comment, author AuthorView) *CommentView {
	return &CommentView{
		ID:         c.ID,
		Contents:   c.Contents,
		Author:     author,
		CreatedAt:  c.CreatedAt,
		ModifiedAt: c.ModifiedAt,
	}
}
