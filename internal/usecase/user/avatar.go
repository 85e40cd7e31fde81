package user

import (
	"context"

	domain "github.com/BruksfildServices01/foodgram/internal/domain/user"
	"github.com/BruksfildServices01/foodgram/internal/httperr"
	"github.com/BruksfildServices01/foodgram/internal/models"
	"github.com/BruksfildServices01/foodgram/internal/storage"
)

type Avatar struct {
	repo   domain.Repository
	images *storage.Uploader
}

func NewAvatar(repo domain.Repository, images *storage.Uploader) *Avatar {
	return &Avatar{repo: repo, images: images}
}

// Set stores a new avatar and removes the previous one.
func (uc *Avatar) Set(
	ctx context.Context,
	userID uint,
	payload string,
) (*models.User, error) {

	if payload == "" {
		return nil, httperr.Validation("avatar_required", "Avatar image is required.")
	}

	u, err := loadUser(ctx, uc.repo, userID)
	if err != nil {
		return nil, err
	}

	key, err := uc.images.Upload(ctx, storage.PrefixAvatars, payload)
	if err != nil {
		return nil, err
	}

	previous := u.Avatar
	u.Avatar = &key
	if err := uc.repo.UpdateUser(ctx, u); err != nil {
		uc.images.Discard(ctx, key)
		return nil, err
	}

	if previous != nil {
		uc.images.Discard(ctx, *previous)
	}
	return u, nil
}

func (uc *Avatar) Delete(
	ctx context.Context,
	userID uint,
) error {

	u, err := loadUser(ctx, uc.repo, userID)
	if err != nil {
		return err
	}
	if u.Avatar == nil || *u.Avatar == "" {
		return httperr.NotFound("avatar_not_found", "No avatar to delete.")
	}

	key := *u.Avatar
	u.Avatar = nil
	if err := uc.repo.UpdateUser(ctx, u); err != nil {
		return err
	}

	uc.images.Discard(ctx, key)
	return nil
}
