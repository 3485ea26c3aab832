package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserStorage implements ports.UserStorage on top of GORM.
type UserStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewUserStorage(db *gorm.DB, logger *slog.Logger) *UserStorage {
	return &UserStorage{db: db, logger: logger}
}

// CreateUser inserts a new user. Both timestamps are set to the same
// instant. Unique-constraint violations come back as the duplicate domain
// errors.
func (s *UserStorage) CreateUser(ctx context.Context, user *domain.User) error {
	start := time.Now()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.ModifiedAt = now

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if translated := translateConstraint(err); translated != err {
			s.logger.Warn("duplicate user registration rejected", "email", user.Email, "username", user.Username)
			return translated
		}
		s.logger.Error("failed to insert user", "error", err)
		return fmt.Errorf("inserting user: %w", err)
	}

	s.logger.Info("user created",
		"user_id", user.ID,
		"username", user.Username,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// SaveUser persists a mutated user and refreshes its modification timestamp.
func (s *UserStorage) SaveUser(ctx context.Context, user *domain.User) error {
	start := time.Now()

	user.ModifiedAt = time.Now()

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		if translated := translateConstraint(err); translated != err {
			return translated
		}
		s.logger.Error("failed to save user", "user_id", user.ID, "error", err)
		return fmt.Errorf("saving user: %w", err)
	}

	s.logger.Info("user saved",
		"user_id", user.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (s *UserStorage) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.getUser(ctx, "id = ?", id.String())
}

func (s *UserStorage) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getUser(ctx, "email = ?", email)
}

func (s *UserStorage) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.getUser(ctx, "username = ?", username)
}

func (s *UserStorage) getUser(ctx context.Context, cond string, arg any) (*domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).Where(cond, arg).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		s.logger.Error("failed to get user", "cond", cond, "error", err)
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return &user, nil
}
