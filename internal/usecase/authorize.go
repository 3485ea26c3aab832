package usecase

import (
	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/google/uuid"
)

// authorizeOwner is the single ownership rule of the system: the requester
// must be the resource owner. It runs strictly after the existence check,
// so a missing resource surfaces as ErrNotFound and never as a permission
// failure.
func authorizeOwner(requesterID, ownerID uuid.UUID) error {
	if requesterID != ownerID {
		return domain.ErrPermissionDenied
	}
	return nil
}
