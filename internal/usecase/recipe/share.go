package recipe

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/foodgram/internal/domain/recipe"
	"github.com/BruksfildServices01/foodgram/internal/httperr"
	"github.com/BruksfildServices01/foodgram/internal/shortlink"
)

// ShareRecipe issues and resolves short link codes for recipes.
type ShareRecipe struct {
	repo  domain.Repository
	links *shortlink.Service
}

func NewShareRecipe(repo domain.Repository, links *shortlink.Service) *ShareRecipe {
	return &ShareRecipe{repo: repo, links: links}
}

func (uc *ShareRecipe) Link(
	ctx context.Context,
	recipeID uint,
) (string, error) {

	exists, err := uc.repo.RecipeExists(ctx, recipeID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", errRecipeNotFound
	}
	return uc.links.Shorten(ctx, recipeID)
}

func (uc *ShareRecipe) Resolve(
	ctx context.Context,
	code string,
) (uint, error) {

	id, err := uc.links.Resolve(ctx, code)
	if err != nil {
		if errors.Is(err, shortlink.ErrNotFound) {
			return 0, httperr.NotFound("short_link_not_found", "Short link not found.")
		}
		return 0, err
	}
	return id, nil
}
