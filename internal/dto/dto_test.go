package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/foodgram/internal/domain/recipe"
	"github.com/BruksfildServices01/foodgram/internal/models"
)

func media(key string) string { return "http://cdn.test/" + key }

func TestUser_AvatarNullWhenMissing(t *testing.T) {
	name := "alice"
	u := &models.User{ID: 1, Email: "a@example.com", Username: &name}

	raw, err := json.Marshal(User(u, false, media))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"email":"a@example.com","id":1,"username":"alice",
		"first_name":"","last_name":"","is_subscribed":false,"avatar":null
	}`, string(raw))

	key := "avatars/a.webp"
	u.Avatar = &key
	out := User(u, true, media)
	require.NotNil(t, out.Avatar)
	assert.Equal(t, "http://cdn.test/avatars/a.webp", *out.Avatar)
	assert.True(t, out.IsSubscribed)
}

func TestRecipe_FlattensIngredients(t *testing.T) {
	r := &models.Recipe{
		ID:          4,
		Name:        "Omelette",
		Text:        "Beat **eggs**.",
		Image:       "recipes/o.webp",
		CookingTime: 5,
		Author:      models.User{ID: 2, Email: "chef@example.com"},
		Tags:        []models.Tag{{ID: 1, Name: "Breakfast", Slug: "breakfast"}},
		IngredientAmounts: []models.IngredientAmount{
			{Amount: 3, Ingredient: models.Ingredient{ID: 9, Name: "eggs", MeasurementUnit: "pcs"}},
		},
	}

	out := Recipe(recipe.Detail{Recipe: r, IsFavorited: true}, media)

	assert.Equal(t, []RecipeIngredientDTO{{ID: 9, Name: "eggs", MeasurementUnit: "pcs", Amount: 3}}, out.Ingredients)
	assert.Equal(t, "http://cdn.test/recipes/o.webp", out.Image)
	assert.Contains(t, out.TextHTML, "<strong>eggs</strong>")
	assert.True(t, out.IsFavorited)
	assert.False(t, out.IsInShoppingCart)
	assert.Equal(t, []TagDTO{{ID: 1, Name: "Breakfast", Slug: "breakfast"}}, out.Tags)
}

func TestFollow_AlwaysSubscribed(t *testing.T) {
	author := &models.User{ID: 3, Email: "b@example.com"}
	recipes := []models.Recipe{{ID: 7, Name: "Bread", Image: "recipes/b.webp", CookingTime: 60}}

	out := Follow(author, recipes, 12, media)

	assert.True(t, out.IsSubscribed)
	assert.Equal(t, int64(12), out.RecipesCount)
	assert.Equal(t, []RecipeShortDTO{{ID: 7, Name: "Bread", Image: "http://cdn.test/recipes/b.webp", CookingTime: 60}}, out.Recipes)

	raw, err := json.Marshal(ShortLinkDTO{ShortLink: "http://x/s/abcd"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"short-link":"http://x/s/abcd"}`, string(raw))
}
