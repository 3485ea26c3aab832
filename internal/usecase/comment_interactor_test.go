package usecase

import (
	"context"
	"testing"

	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commentFixture struct {
	uc     CommentUseCase
	postUC PostUseCase
	users  *mockUserStorage
}

func newCommentFixture(t *testing.T) *commentFixture {
	t.Helper()
	clock := newMockClock()
	users := newMockUserStorage(clock)
	posts := newMockPostStorage(users, clock)
	comments := newMockCommentStorage(users, clock)

	return &commentFixture{
		uc:     NewCommentUseCase(comments, posts, users, testLogger()),
		postUC: NewPostUseCase(posts, users, 5, testLogger()),
		users:  users,
	}
}

func (f *commentFixture) addUser(t *testing.T, username string) *domain.User {
	t.Helper()
	user := &domain.User{Name: username, Username: username, Email: username + "@example.com"}
	require.NoError(t, f.users.CreateUser(context.Background(), user))
	return user
}

func (f *commentFixture) addPost(t *testing.T, ownerID uuid.UUID) *PostView {
	t.Helper()
	view, err := f.postUC.CreatePost(context.Background(), ownerID, CreatePostInput{Title: "t", Contents: "c"})
	require.NoError(t, err)
	return view
}

func TestCreateAndListComments(t *testing.T) {
	f := newCommentFixture(t)
	ctx := context.Background()
	author := f.addUser(t, "alice")
	commenter := f.addUser(t, "bob")
	post := f.addPost(t, author.ID)

	_, err := f.uc.CreateComment(ctx, commenter.ID, uuid.New(), "lost")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	first, err := f.uc.CreateComment(ctx, commenter.ID, post.ID, "first!")
	require.NoError(t, err)
	assert.Equal(t, "first!", first.Contents)
	assert.Equal(t, "bob", first.Author.Username)

	_, err = f.uc.CreateComment(ctx, author.ID, post.ID, "thanks")
	require.NoError(t, err)

	comments, err := f.uc.ListComments(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	// Oldest first.
	assert.Equal(t, "first!", comments[0].Contents)
	assert.Equal(t, "thanks", comments[1].Contents)
	assert.Equal(t, "alice", comments[1].Author.Username)

	_, err = f.uc.ListComments(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateCommentOwnership(t *testing.T) {
	f := newCommentFixture(t)
	ctx := context.Background()
	author := f.addUser(t, "alice")
	commenter := f.addUser(t, "bob")
	post := f.addPost(t, author.ID)

	comment, err := f.uc.CreateComment(ctx, commenter.ID, post.ID, "original")
	require.NoError(t, err)

	// Owning the post does not grant rights over someone else's comment.
	_, err = f.uc.UpdateComment(ctx, author.ID, post.ID, comment.ID, "edited")
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	updated, err := f.uc.UpdateComment(ctx, commenter.ID, post.ID, comment.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Contents)

	_, err = f.uc.UpdateComment(ctx, commenter.ID, post.ID, uuid.New(), "edited")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCommentAddressedThroughWrongPost(t *testing.T) {
	f := newCommentFixture(t)
	ctx := context.Background()
	author := f.addUser(t, "alice")
	postA := f.addPost(t, author.ID)
	postB := f.addPost(t, author.ID)

	comment, err := f.uc.CreateComment(ctx, author.ID, postA.ID, "on post A")
	require.NoError(t, err)

	_, err = f.uc.UpdateComment(ctx, author.ID, postB.ID, comment.ID, "edited")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.DeleteComment(ctx, author.ID, postB.ID, comment.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteComment(t *testing.T) {
	f := newCommentFixture(t)
	ctx := context.Background()
	author := f.addUser(t, "alice")
	commenter := f.addUser(t, "bob")
	post := f.addPost(t, author.ID)

	comment, err := f.uc.CreateComment(ctx, commenter.ID, post.ID, "delete me")
	require.NoError(t, err)

	_, err = f.uc.DeleteComment(ctx, author.ID, post.ID, comment.ID)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	deleted, err := f.uc.DeleteComment(ctx, commenter.ID, post.ID, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, comment.ID, deleted)

	comments, err := f.uc.ListComments(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}
