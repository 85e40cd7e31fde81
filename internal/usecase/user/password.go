package user

import (
	"context"

	"github.com/BruksfildServices01/foodgram/internal/auth"
	domain "github.com/BruksfildServices01/foodgram/internal/domain/user"
	"github.com/BruksfildServices01/foodgram/internal/httperr"
	"github.com/BruksfildServices01/foodgram/internal/validators"
)

type SetPassword struct {
	repo domain.Repository
}

func NewSetPassword(repo domain.Repository) *SetPassword {
	return &SetPassword{repo: repo}
}

func (uc *SetPassword) Execute(
	ctx context.Context,
	userID uint,
	currentPassword string,
	newPassword string,
) error {

	u, err := loadUser(ctx, uc.repo, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(u.PasswordHash, currentPassword) {
		return httperr.Validation("invalid_current_password", "Current password is incorrect.")
	}
	if !validators.IsPasswordValid(newPassword) {
		return httperr.Validation("weak_password", "Password must be at least 8 characters.")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return uc.repo.UpdateUser(ctx, u)
}
