package domain

import (
	"time"

	"github.com/google/uuid"
)

// User maps to the 'users' table. The password is only ever stored as a
// bcrypt hash; the plaintext never leaves the register/login path.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	Bio          string    `json:"bio,omitempty" db:"bio"`
	AvatarURL    string    `json:"avatar_url,omitempty" db:"avatar_url"`
	AvatarKey    string    `json:"-" db:"avatar_key"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	ModifiedAt   time.Time `json:"modified_at" db:"modified_at"`
}

func (User) TableName() string {
	return "users"
}
