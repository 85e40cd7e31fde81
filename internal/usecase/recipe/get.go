package recipe

import (
	"context"

	domain "github.com/BruksfildServices01/foodgram/internal/domain/recipe"
	"github.com/BruksfildServices01/foodgram/internal/httperr"
	"github.com/BruksfildServices01/foodgram/internal/permissions"
)

type GetRecipe struct {
	repo domain.Repository
}

func NewGetRecipe(repo domain.Repository) *GetRecipe {
	return &GetRecipe{repo: repo}
}

func (uc *GetRecipe) Execute(
	ctx context.Context,
	requester permissions.Requester,
	recipeID uint,
) (*domain.Detail, error) {

	rec, err := uc.repo.GetRecipe(ctx, recipeID)
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			return nil, errRecipeNotFound
		}
		return nil, err
	}
	return detailOf(ctx, uc.repo, requester, rec)
}

type ListRecipes struct {
	repo domain.Repository
}

func NewListRecipes(repo domain.Repository) *ListRecipes {
	return &ListRecipes{repo: repo}
}

func (uc *ListRecipes) Execute(
	ctx context.Context,
	requester permissions.Requester,
	filter domain.ListFilter,
	offset int,
	limit int,
) ([]domain.Detail, int64, error) {

	recipes, total, err := uc.repo.ListRecipes(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	details, err := withFlags(ctx, uc.repo, requester, recipes)
	if err != nil {
		return nil, 0, err
	}
	return details, total, nil
}
