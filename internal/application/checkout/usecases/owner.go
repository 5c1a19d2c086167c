package usecases

import (
	"github.com/inkpress-io/inkpress/internal/domain/cart"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
)

func resolveOwner(userID *uint, sessionID *string) (cart.OwnerKey, error) {
	if userID != nil && *userID != 0 {
		return cart.NewUserOwner(*userID)
	}
	if sessionID != nil && *sessionID != "" {
		return cart.NewSessionOwner(*sessionID)
	}
	return cart.OwnerKey{}, apperrors.NewValidationError("Either a user or a session is required")
}
