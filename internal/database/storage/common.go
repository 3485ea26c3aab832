package storage

import (
	"errors"

	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL error code for unique-constraint
// violations. Races on registration land here even though the usecase
// pre-checks, so the translation must never be skipped.
const uniqueViolation = "23505"

// translateConstraint maps a raw PostgreSQL constraint violation onto the
// matching domain error. Unrelated errors pass through unchanged.
func translateConstraint(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		switch pqErr.Constraint {
		case "users_email_key":
			return domain.ErrDuplicateEmail
		case "users_username_key":
			return domain.ErrDuplicateUsername
		}
	}
	return err
}
