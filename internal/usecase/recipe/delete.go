package recipe

import (
	"context"
	"net/http"

	domain "github.com/BruksfildServices01/foodgram/internal/domain/recipe"
	"github.com/BruksfildServices01/foodgram/internal/httperr"
	"github.com/BruksfildServices01/foodgram/internal/permissions"
	"github.com/BruksfildServices01/foodgram/internal/storage"
)

type DeleteRecipe struct {
	repo   domain.Repository
	images *storage.Uploader
}

func NewDeleteRecipe(
	repo domain.Repository,
	images *storage.Uploader,
) *DeleteRecipe {
	return &DeleteRecipe{
		repo:   repo,
		images: images,
	}
}

func (uc *DeleteRecipe) Execute(
	ctx context.Context,
	requester permissions.Requester,
	recipeID uint,
) error {

	rec, err := loadOwned(ctx, uc.repo, http.MethodDelete, requester, recipeID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteRecipe(ctx, rec.ID); err != nil {
		if httperr.IsRecordNotFound(err) {
			return errRecipeNotFound
		}
		return err
	}

	uc.images.Discard(ctx, rec.Image)
	return nil
}
