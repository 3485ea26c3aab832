package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/GoArmGo/BlogApp/internal/auth"
	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type userFixture struct {
	uc        UserUseCase
	users     *mockUserStorage
	files     *mockFileStorage
	publisher *mockCleanupPublisher
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()
	clock := newMockClock()
	users := newMockUserStorage(clock)
	files := newMockFileStorage()
	publisher := &mockCleanupPublisher{}
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	return &userFixture{
		uc:        NewUserUseCase(users, files, publisher, hasher, tokens, testLogger()),
		users:     users,
		files:     files,
		publisher: publisher,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	authView, err := f.uc.Register(ctx, RegisterInput{
		Name:     "Alice Doe",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pw",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", authView.Username)
	assert.NotEmpty(t, authView.Token)

	view, err := f.uc.Login(ctx, LoginInput{Email: "alice@example.com", Password: "s3cret-pw"})
	require.NoError(t, err)
	assert.Equal(t, "alice", view.Username)
	assert.Equal(t, "alice@example.com", view.Email)
	assert.NotEmpty(t, view.Token)

	_, err = f.uc.Login(ctx, LoginInput{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = f.uc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "s3cret-pw"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	_, err := f.uc.Register(ctx, RegisterInput{
		Name: "Alice", Username: "alice", Email: "alice@example.com", Password: "pw123456",
	})
	require.NoError(t, err)

	_, err = f.uc.Register(ctx, RegisterInput{
		Name: "Other", Username: "other", Email: "alice@example.com", Password: "pw123456",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	_, err = f.uc.Register(ctx, RegisterInput{
		Name: "Other", Username: "alice", Email: "other@example.com", Password: "pw123456",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestGetProfileHidesEmail(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	_, err := f.uc.Register(ctx, RegisterInput{
		Name: "Alice", Username: "alice", Email: "alice@example.com", Password: "pw123456", Bio: "hi there",
	})
	require.NoError(t, err)

	profile, err := f.uc.GetProfile(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "Alice", profile.Name)
	assert.Equal(t, "hi there", profile.Bio)

	_, err = f.uc.GetProfile(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateProfilePartial(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	_, err := f.uc.Register(ctx, RegisterInput{
		Name: "Alice", Username: "alice", Email: "alice@example.com", Password: "pw123456", Bio: "old bio",
	})
	require.NoError(t, err)
	user, err := f.users.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)

	bio := "new bio"
	view, err := f.uc.UpdateProfile(ctx, user.ID, UpdateProfileInput{Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, "new bio", view.Bio)
	assert.Equal(t, "Alice", view.Name)
	assert.Equal(t, "alice@example.com", view.Email)
	assert.Equal(t, "alice", view.Username)
}

func TestUpdateProfilePassword(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	_, err := f.uc.Register(ctx, RegisterInput{
		Name: "Alice", Username: "alice", Email: "alice@example.com", Password: "old-password",
	})
	require.NoError(t, err)
	user, err := f.users.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)

	newPassword := "new-password"
	_, err = f.uc.UpdateProfile(ctx, user.ID, UpdateProfileInput{Password: &newPassword})
	require.NoError(t, err)

	_, err = f.uc.Login(ctx, LoginInput{Email: "alice@example.com", Password: "new-password"})
	assert.NoError(t, err)

	_, err = f.uc.Login(ctx, LoginInput{Email: "alice@example.com", Password: "old-password"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUpdateAvatarSchedulesOldFileCleanup(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	_, err := f.uc.Register(ctx, RegisterInput{
		Name: "Alice", Username: "alice", Email: "alice@example.com", Password: "pw123456",
	})
	require.NoError(t, err)
	user, err := f.users.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)

	view, err := f.uc.UpdateAvatar(ctx, user.ID, strings.NewReader("first image"), "image/png")
	require.NoError(t, err)
	assert.NotEmpty(t, view.AvatarURL)
	require.Len(t, f.files.uploads, 1)
	// No previous avatar, nothing to clean up.
	assert.Empty(t, f.publisher.published)

	firstKey := f.files.uploads[0]

	_, err = f.uc.UpdateAvatar(ctx, user.ID, strings.NewReader("second image"), "image/png")
	require.NoError(t, err)
	require.Len(t, f.files.uploads, 2)
	require.Len(t, f.publisher.published, 1)
	assert.Equal(t, firstKey, f.publisher.published[0].ObjectKey)
	assert.Equal(t, user.ID.String(), f.publisher.published[0].UserID)
}

func TestUpdateAvatarNoCleanupWhenSaveFails(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	_, err := f.uc.Register(ctx, RegisterInput{
		Name: "Alice", Username: "alice", Email: "alice@example.com", Password: "pw123456",
	})
	require.NoError(t, err)
	user, err := f.users.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)

	_, err = f.uc.UpdateAvatar(ctx, user.ID, strings.NewReader("first image"), "image/png")
	require.NoError(t, err)

	f.users.saveErr = errors.New("connection reset")
	_, err = f.uc.UpdateAvatar(ctx, user.ID, strings.NewReader("second image"), "image/png")
	require.Error(t, err)

	// The reference save never landed, so the old file must stay untouched.
	assert.Empty(t, f.publisher.published)
}
