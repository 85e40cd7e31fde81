package recipe

import (
	"context"

	domain "github.com/BruksfildServices01/foodgram/internal/domain/recipe"
	"github.com/BruksfildServices01/foodgram/internal/httperr"
)

type DownloadShoppingList struct {
	repo domain.Repository
}

func NewDownloadShoppingList(repo domain.Repository) *DownloadShoppingList {
	return &DownloadShoppingList{repo: repo}
}

// Execute renders the aggregated ingredients of the user's cart.
func (uc *DownloadShoppingList) Execute(
	ctx context.Context,
	userID uint,
) (string, error) {

	lines, err := uc.repo.ShoppingList(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", httperr.Validation("shopping_cart_empty", "The shopping cart is empty.")
	}
	return domain.RenderShoppingList(lines), nil
}
