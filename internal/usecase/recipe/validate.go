package recipe

import (
	"context"
	"strings"
	"unicode/utf8"

	domain "github.com/BruksfildServices01/foodgram/internal/domain/recipe"
	"github.com/BruksfildServices01/foodgram/internal/httperr"
	"github.com/BruksfildServices01/foodgram/internal/models"
	"github.com/BruksfildServices01/foodgram/internal/permissions"
)

const maxNameLength = 256

var errRecipeNotFound = httperr.NotFound("recipe_not_found", "Recipe not found.")

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", httperr.Validation("name_required", "Recipe name is required.")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", httperr.Validation("name_too_long", "Recipe name must be at most 256 characters.")
	}
	return name, nil
}

func validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return httperr.Validation("text_required", "Recipe text is required.")
	}
	return nil
}

func validateCookingTime(minutes int) error {
	if minutes < 1 {
		return httperr.Validation("invalid_cooking_time", "Cooking time must be at least 1 minute.")
	}
	return nil
}

// resolveIngredients validates the rows and checks every ingredient exists.
func resolveIngredients(
	ctx context.Context,
	repo domain.Repository,
	in []domain.IngredientInput,
) ([]domain.IngredientLine, error) {

	lines, err := domain.ValidateIngredients(in)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.IngredientID)
	}

	found, err := repo.ExistingIngredientIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(ids) {
		return nil, httperr.NotFound("ingredient_not_found", "One or more ingredients do not exist.")
	}
	return lines, nil
}

// resolveTags drops duplicates and ids that match no tag.
func resolveTags(
	ctx context.Context,
	repo domain.Repository,
	ids []uint,
) ([]uint, error) {

	ids = domain.DedupeIDs(ids)
	found, err := repo.ExistingTagIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	known := make(map[uint]bool, len(found))
	for _, id := range found {
		known[id] = true
	}

	out := make([]uint, 0, len(found))
	for _, id := range ids {
		if known[id] {
			out = append(out, id)
		}
	}
	return out, nil
}

// loadOwned fetches a recipe and checks the requester may modify it.
func loadOwned(
	ctx context.Context,
	repo domain.Repository,
	method string,
	requester permissions.Requester,
	id uint,
) (*models.Recipe, error) {

	rec, err := repo.GetRecipe(ctx, id)
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			return nil, errRecipeNotFound
		}
		return nil, err
	}

	if !permissions.AuthorOrReadOnlyObject(method, requester, rec.AuthorID) {
		return nil, httperr.Forbidden("not_recipe_author", "Only the author can change this recipe.")
	}
	return rec, nil
}

func nameTaken() error {
	return httperr.Conflict("recipe_exists", "You already have a recipe with this name.")
}
