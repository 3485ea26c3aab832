package domain

// PostFeedItem is one row of the post projection: the post joined with its
// author and annotated with the favorite fields. FavoritesCount is the
// current cardinality of the favorite relation; IsFavorited reflects the
// requesting identity at read time and is false for anonymous requests.
// Both are computed by the page query itself, never per item.
type PostFeedItem struct {
	Post
	AuthorName      string `db:"author_name"`
	AuthorUsername  string `db:"author_username"`
	AuthorBio       string `db:"author_bio"`
	AuthorAvatarURL string `db:"author_avatar_url"`
	FavoritesCount  int    `db:"favorites_count"`
	IsFavorited     bool   `db:"is_favorited"`
}

// CommentWithAuthor is one row of the comment listing projection.
type CommentWithAuthor struct {
	Comment
	AuthorName      string `db:"author_name"`
	AuthorUsername  string `db:"author_username"`
	AuthorAvatarURL string `db:"author_avatar_url"`
}
