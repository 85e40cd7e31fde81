package recipe

import (
	"context"
	"net/http"

	domain "github.com/BruksfildServices01/foodgram/internal/domain/recipe"
	"github.com/BruksfildServices01/foodgram/internal/httperr"
	"github.com/BruksfildServices01/foodgram/internal/models"
	"github.com/BruksfildServices01/foodgram/internal/permissions"
	"github.com/BruksfildServices01/foodgram/internal/storage"
)

// ======================================================
// INPUT
// ======================================================

type CreateRecipeInput struct {
	Requester permissions.Requester

	Name        string
	Text        string
	CookingTime int
	Image       string

	TagIDs      []uint
	Ingredients []domain.IngredientInput
}

// ======================================================
// USE CASE
// ======================================================

type CreateRecipe struct {
	repo   domain.Repository
	images *storage.Uploader
}

func NewCreateRecipe(
	repo domain.Repository,
	images *storage.Uploader,
) *CreateRecipe {
	return &CreateRecipe{
		repo:   repo,
		images: images,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateRecipe) Execute(
	ctx context.Context,
	in CreateRecipeInput,
) (*domain.Detail, error) {

	if !permissions.AuthorOrReadOnly(http.MethodPost, in.Requester) {
		return nil, httperr.Unauthorized("not_authenticated", "Authentication credentials were not provided.")
	}

	// --------------------------------------------------
	// Scalar fields
	// --------------------------------------------------
	name, err := validateName(in.Name)
	if err != nil {
		return nil, err
	}
	if err := validateText(in.Text); err != nil {
		return nil, err
	}
	if err := validateCookingTime(in.CookingTime); err != nil {
		return nil, err
	}
	if in.Image == "" {
		return nil, httperr.Validation("image_required", "Recipe image is required.")
	}

	// --------------------------------------------------
	// Composition
	// --------------------------------------------------
	lines, err := resolveIngredients(ctx, uc.repo, in.Ingredients)
	if err != nil {
		return nil, err
	}
	tagIDs, err := resolveTags(ctx, uc.repo, in.TagIDs)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Image, then everything else in one transaction
	// --------------------------------------------------
	key, err := uc.images.Upload(ctx, storage.PrefixRecipes, in.Image)
	if err != nil {
		return nil, err
	}

	rec := &models.Recipe{
		AuthorID:    in.Requester.UserID,
		Name:        name,
		Text:        in.Text,
		Image:       key,
		CookingTime: in.CookingTime,
	}

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := tx.CreateRecipe(ctx, rec); err != nil {
			if httperr.IsUniqueViolation(err) {
				return nameTaken()
			}
			return err
		}
		if err := tx.ReplaceIngredients(ctx, rec.ID, lines); err != nil {
			return err
		}
		return tx.ReplaceTags(ctx, rec.ID, tagIDs)
	})
	if err != nil {
		uc.images.Discard(ctx, key)
		return nil, err
	}

	created, err := uc.repo.GetRecipe(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	return detailOf(ctx, uc.repo, in.Requester, created)
}
