package recipe

import (
	"context"

	domain "github.com/BruksfildServices01/foodgram/internal/domain/recipe"
	"github.com/BruksfildServices01/foodgram/internal/httperr"
	"github.com/BruksfildServices01/foodgram/internal/models"
)

// MarkRecipe adds and removes favorites and shopping cart entries.
type MarkRecipe struct {
	repo domain.Repository
	kind domain.MarkKind
}

func NewMarkRecipe(repo domain.Repository, kind domain.MarkKind) *MarkRecipe {
	return &MarkRecipe{repo: repo, kind: kind}
}

// Add marks the recipe and returns it. Marking twice is a conflict.
func (uc *MarkRecipe) Add(
	ctx context.Context,
	userID uint,
	recipeID uint,
) (*models.Recipe, error) {

	rec, err := uc.repo.GetRecipe(ctx, recipeID)
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			return nil, errRecipeNotFound
		}
		return nil, err
	}

	if err := uc.repo.AddMark(ctx, uc.kind, userID, recipeID); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, uc.alreadyMarked()
		}
		return nil, err
	}
	return rec, nil
}

// Remove unmarks the recipe; an absent mark is not-found.
func (uc *MarkRecipe) Remove(
	ctx context.Context,
	userID uint,
	recipeID uint,
) error {

	exists, err := uc.repo.RecipeExists(ctx, recipeID)
	if err != nil {
		return err
	}
	if !exists {
		return errRecipeNotFound
	}

	removed, err := uc.repo.RemoveMark(ctx, uc.kind, userID, recipeID)
	if err != nil {
		return err
	}
	if !removed {
		if uc.kind == domain.MarkShoppingCart {
			return httperr.NotFound("not_in_shopping_cart", "Recipe is not in the shopping cart.")
		}
		return httperr.NotFound("not_favorited", "Recipe is not in favorites.")
	}
	return nil
}

func (uc *MarkRecipe) alreadyMarked() error {
	if uc.kind == domain.MarkShoppingCart {
		return httperr.Conflict("already_in_shopping_cart", "Recipe is already in the shopping cart.")
	}
	return httperr.Conflict("already_favorited", "Recipe is already in favorites.")
}
