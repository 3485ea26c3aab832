package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// RegisterInput is the validated registration payload.
type RegisterInput struct {
	Name     string
	Username string
	Email    string
	Password string
	Bio      string
}

// LoginInput is the validated login payload.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput carries a partial profile update. Nil pointers mean
// "leave unchanged"; an omitted field never clears a value.
type UpdateProfileInput struct {
	Name     *string
	Email    *string
	Bio      *string
	Password *string
}

// UserUseCase defines the business logic around identity and profiles.
type UserUseCase interface {
	// Register creates the user and returns a fresh token. Duplicate email
	// or username fails with the corresponding domain error.
	Register(ctx context.Context, in RegisterInput) (*AuthView, error)

	// Login verifies the credentials and returns the user view with a
	// fresh token. Unknown email and wrong password are indistinguishable.
	Login(ctx context.Context, in LoginInput) (*UserView, error)

	// GetProfile returns the public projection of a user.
	GetProfile(ctx context.Context, username string) (*ProfileView, error)

	GetOwnProfile(ctx context.Context, userID uuid.UUID) (*UserView, error)

	// UpdateProfile applies a partial update to the requester's own user.
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (*UserView, error)

	// UpdateAvatar uploads the new avatar object, saves the new reference
	// and only then schedules the old object for deletion. The old file is
	// never removed before the new reference is durably stored.
	UpdateAvatar(ctx context.Context, userID uuid.UUID, file io.Reader, contentType string) (*UserView, error)
}
