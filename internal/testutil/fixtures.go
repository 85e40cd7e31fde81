package testutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/foodgram/internal/models"
)

func CreateUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	name := username
	u := &models.User{
		Email:        fmt.Sprintf("%s@example.com", username),
		Username:     &name,
		FirstName:    "First",
		LastName:     "Last",
		Role:         models.RoleUser,
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func CreateIngredient(t *testing.T, db *gorm.DB, name, unit string) *models.Ingredient {
	t.Helper()

	ing := &models.Ingredient{Name: name, MeasurementUnit: unit}
	require.NoError(t, db.Create(ing).Error)
	return ing
}

func CreateTag(t *testing.T, db *gorm.DB, name, slug string) *models.Tag {
	t.Helper()

	tag := &models.Tag{Name: name, Slug: slug}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

// IngredientUse is one (ingredient, amount) pair for CreateRecipe.
type IngredientUse struct {
	Ingredient *models.Ingredient
	Amount     int
}

// CreateRecipe inserts a recipe with its tag links and ingredient rows.
func CreateRecipe(
	t *testing.T,
	db *gorm.DB,
	author *models.User,
	name string,
	tags []*models.Tag,
	ingredients ...IngredientUse,
) *models.Recipe {
	t.Helper()

	rec := &models.Recipe{
		AuthorID:    author.ID,
		Name:        name,
		Text:        "Mix and serve.",
		Image:       "recipes/" + name + ".webp",
		CookingTime: 10,
	}
	require.NoError(t, db.Omit(clause.Associations).Create(rec).Error)

	for _, tag := range tags {
		require.NoError(t, db.Omit(clause.Associations).
			Create(&models.RecipeTag{RecipeID: rec.ID, TagID: tag.ID}).Error)
	}
	for _, use := range ingredients {
		require.NoError(t, db.Omit(clause.Associations).Create(&models.IngredientAmount{
			RecipeID:     rec.ID,
			IngredientID: use.Ingredient.ID,
			Amount:       use.Amount,
		}).Error)
	}
	return rec
}
