package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Post maps to the 'posts' table. Tags live in a text[] column and are kept
// exactly as submitted: duplicates and letter case are preserved.
type Post struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	Title       string         `json:"title" db:"title"`
	Description string         `json:"description" db:"description"`
	Contents    string         `json:"contents" db:"contents"`
	Tags        pq.StringArray `json:"tags" db:"tags" gorm:"type:text[]"`
	OwnerID     uuid.UUID      `json:"owner_id" db:"owner_id"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	ModifiedAt  time.Time      `json:"modified_at" db:"modified_at"`
}

func (Post) TableName() string {
	return "posts"
}

// Comment maps to the 'comments' table. Its post and author references are
// immutable after creation.
type Comment struct {
	ID         uuid.UUID `json:"id" db:"id"`
	PostID     uuid.UUID `json:"post_id" db:"post_id"`
	AuthorID   uuid.UUID `json:"author_id" db:"author_id"`
	Contents   string    `json:"contents" db:"contents"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	ModifiedAt time.Time `json:"modified_at" db:"modified_at"`
}

func (Comment) TableName() string {
	return "comments"
}

// Favorite maps to the 'favorites' join table between users and posts.
type Favorite struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	PostID    uuid.UUID `json:"post_id" db:"post_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// TagCount is a row of the distinct-tag aggregation.
type TagCount struct {
	Tag   string `json:"tag" db:"tag"`
	Count int    `json:"count" db:"count"`
}
