package recipe

import (
	"context"

	domain "github.com/BruksfildServices01/foodgram/internal/domain/recipe"
	"github.com/BruksfildServices01/foodgram/internal/models"
	"github.com/BruksfildServices01/foodgram/internal/permissions"
)

// withFlags pairs recipes with the requester-relative flags, using one
// query per flag for the whole batch.
func withFlags(
	ctx context.Context,
	repo domain.Repository,
	requester permissions.Requester,
	recipes []models.Recipe,
) ([]domain.Detail, error) {

	out := make([]domain.Detail, 0, len(recipes))
	if !requester.Authenticated() {
		for i := range recipes {
			out = append(out, domain.Detail{Recipe: &recipes[i]})
		}
		return out, nil
	}

	recipeIDs := make([]uint, 0, len(recipes))
	authorIDs := make([]uint, 0, len(recipes))
	for _, r := range recipes {
		recipeIDs = append(recipeIDs, r.ID)
		authorIDs = append(authorIDs, r.AuthorID)
	}

	favorited, err := repo.MarkedRecipeIDs(ctx, domain.MarkFavorite, requester.UserID, recipeIDs)
	if err != nil {
		return nil, err
	}
	inCart, err := repo.MarkedRecipeIDs(ctx, domain.MarkShoppingCart, requester.UserID, recipeIDs)
	if err != nil {
		return nil, err
	}
	followed, err := repo.FollowedAuthorIDs(ctx, requester.UserID, domain.DedupeIDs(authorIDs))
	if err != nil {
		return nil, err
	}

	for i := range recipes {
		r := &recipes[i]
		out = append(out, domain.Detail{
			Recipe:           r,
			IsFavorited:      favorited[r.ID],
			IsInShoppingCart: inCart[r.ID],
			AuthorSubscribed: followed[r.AuthorID],
		})
	}
	return out, nil
}

func detailOf(
	ctx context.Context,
	repo domain.Repository,
	requester permissions.Requester,
	rec *models.Recipe,
) (*domain.Detail, error) {

	details, err := withFlags(ctx, repo, requester, []models.Recipe{*rec})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}
