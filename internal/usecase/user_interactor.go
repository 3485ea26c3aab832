package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/GoArmGo/BlogApp/internal/auth"
	"github.com/GoArmGo/BlogApp/internal/core/ports"
	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/GoArmGo/BlogApp/internal/messaging/payloads"
	"github.com/google/uuid"
)

// userUseCase implements UserUseCase.
type userUseCase struct {
	userStorage  ports.UserStorage
	fileStorage  ports.FileStorage
	cleanupQueue ports.AvatarCleanupPublisher
	hasher       *auth.PasswordHasher
	tokens       *auth.TokenManager
	logger       *slog.Logger
}

func NewUserUseCase(
	userStorage ports.UserStorage,
	fileStorage ports.FileStorage,
	cleanupQueue ports.AvatarCleanupPublisher,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenManager,
	logger *slog.Logger,
) UserUseCase {
	return &userUseCase{
		userStorage:  userStorage,
		fileStorage:  fileStorage,
		cleanupQueue: cleanupQueue,
		hasher:       hasher,
		tokens:       tokens,
		logger:       logger,
	}
}

func (uc *userUseCase) Register(ctx context.Context, in RegisterInput) (*AuthView, error) {
	// Pre-checks give friendly errors for the common case; the storage
	// layer still translates constraint violations for the racy one.
	if _, err := uc.userStorage.GetUserByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("usecase: checking email: %w", err)
	}
	if _, err := uc.userStorage.GetUserByUsername(ctx, in.Username); err == nil {
		return nil, domain.ErrDuplicateUsername
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("usecase: checking username: %w", err)
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("usecase: %w", err)
	}

	user := &domain.User{
		Name:         in.Name,
		Username:     in.Username,
		Email:        in.Email,
		Bio:          in.Bio,
		PasswordHash: hash,
	}
	if err := uc.userStorage.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("usecase: creating user: %w", err)
	}

	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("usecase: issuing token: %w", err)
	}

	uc.logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return &AuthView{Token: token, Username: user.Username}, nil
}

func (uc *userUseCase) Login(ctx context.Context, in LoginInput) (*UserView, error) {
	user, err := uc.userStorage.GetUserByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("usecase: looking up user: %w", err)
	}

	if !uc.hasher.Verify(user.PasswordHash, in.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("usecase: issuing token: %w", err)
	}

	view := newUserView(user)
	view.Token = token

	uc.logger.Info("user logged in", "user_id", user.ID)
	return view, nil
}

func (uc *userUseCase) GetProfile(ctx context.Context, username string) (*ProfileView, error) {
	user, err := uc.userStorage.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("usecase: getting profile: %w", err)
	}
	return newProfileView(user), nil
}

func (uc *userUseCase) GetOwnProfile(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	user, err := uc.userStorage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("usecase: getting own profile: %w", err)
	}
	return newUserView(user), nil
}

// UpdateProfile applies only the fields present in the input; everything
// else keeps its prior value.
func (uc *userUseCase) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (*UserView, error) {
	user, err := uc.userStorage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("usecase: loading user: %w", err)
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.Password != nil {
		hash, err := uc.hasher.Hash(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("usecase: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := uc.userStorage.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("usecase: saving user: %w", err)
	}

	uc.logger.Info("profile updated", "user_id", user.ID)
	return newUserView(user), nil
}

// UpdateAvatar uploads the new object first, then saves the new reference,
// and only after a successful save publishes the old key for cleanup. A
// short orphan window for the new object is acceptable; deleting the old
// file before the save commits is not.
func (uc *userUseCase) UpdateAvatar(ctx context.Context, userID uuid.UUID, file io.Reader, contentType string) (*UserView, error) {
	user, err := uc.userStorage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("usecase: loading user: %w", err)
	}

	oldKey := user.AvatarKey
	newKey := fmt.Sprintf("avatars/%s/%s", userID, uuid.New())

	url, err := uc.fileStorage.UploadFile(ctx, newKey, file, contentType)
	if err != nil {
		return nil, fmt.Errorf("usecase: uploading avatar: %w", err)
	}

	user.AvatarURL = url
	user.AvatarKey = newKey
	if err := uc.userStorage.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("usecase: saving avatar reference: %w", err)
	}

	if oldKey != "" {
		payload := payloads.AvatarCleanupPayload{
			UserID:    userID.String(),
			ObjectKey: oldKey,
		}
		if err := uc.cleanupQueue.PublishAvatarCleanup(ctx, payload); err != nil {
			// The new avatar is already live; a stranded old object is a
			// storage leak, not a correctness problem.
			uc.logger.Error("failed to publish avatar cleanup", "user_id", userID, "key", oldKey, "error", err)
		}
	}

	uc.logger.Info("avatar updated", "user_id", user.ID, "key", newKey)
	return newUserView(user), nil
}
