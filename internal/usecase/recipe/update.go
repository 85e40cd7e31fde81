package recipe

import (
	"context"
	"net/http"

	domain "github.com/BruksfildServices01/foodgram/internal/domain/recipe"
	"github.com/BruksfildServices01/foodgram/internal/httperr"
	"github.com/BruksfildServices01/foodgram/internal/permissions"
	"github.com/BruksfildServices01/foodgram/internal/storage"
)

// UpdateRecipeInput carries a partial update. Nil fields are left as they
// are; non-nil Tags or Ingredients replace the current set wholesale.
type UpdateRecipeInput struct {
	Requester permissions.Requester
	RecipeID  uint

	Name        *string
	Text        *string
	CookingTime *int
	Image       *string

	TagIDs      *[]uint
	Ingredients *[]domain.IngredientInput
}

type UpdateRecipe struct {
	repo   domain.Repository
	images *storage.Uploader
}

func NewUpdateRecipe(
	repo domain.Repository,
	images *storage.Uploader,
) *UpdateRecipe {
	return &UpdateRecipe{
		repo:   repo,
		images: images,
	}
}

func (uc *UpdateRecipe) Execute(
	ctx context.Context,
	in UpdateRecipeInput,
) (*domain.Detail, error) {

	rec, err := loadOwned(ctx, uc.repo, http.MethodPatch, in.Requester, in.RecipeID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name, err := validateName(*in.Name)
		if err != nil {
			return nil, err
		}
		rec.Name = name
	}
	if in.Text != nil {
		if err := validateText(*in.Text); err != nil {
			return nil, err
		}
		rec.Text = *in.Text
	}
	if in.CookingTime != nil {
		if err := validateCookingTime(*in.CookingTime); err != nil {
			return nil, err
		}
		rec.CookingTime = *in.CookingTime
	}

	var lines []domain.IngredientLine
	if in.Ingredients != nil {
		if lines, err = resolveIngredients(ctx, uc.repo, *in.Ingredients); err != nil {
			return nil, err
		}
	}

	var tagIDs []uint
	if in.TagIDs != nil {
		if tagIDs, err = resolveTags(ctx, uc.repo, *in.TagIDs); err != nil {
			return nil, err
		}
	}

	oldImage := rec.Image
	newImage := ""
	if in.Image != nil {
		if *in.Image == "" {
			return nil, httperr.Validation("image_required", "Recipe image cannot be empty.")
		}
		if newImage, err = uc.images.Upload(ctx, storage.PrefixRecipes, *in.Image); err != nil {
			return nil, err
		}
		rec.Image = newImage
	}

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := tx.UpdateRecipe(ctx, rec); err != nil {
			if httperr.IsUniqueViolation(err) {
				return nameTaken()
			}
			return err
		}
		if in.Ingredients != nil {
			if err := tx.ReplaceIngredients(ctx, rec.ID, lines); err != nil {
				return err
			}
		}
		if in.TagIDs != nil {
			if err := tx.ReplaceTags(ctx, rec.ID, tagIDs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.images.Discard(ctx, newImage)
		return nil, err
	}

	if newImage != "" {
		uc.images.Discard(ctx, oldImage)
	}

	updated, err := uc.repo.GetRecipe(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	return detailOf(ctx, uc.repo, in.Requester, updated)
}
