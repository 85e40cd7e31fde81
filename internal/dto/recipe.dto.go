package dto

import (
	"github.com/BruksfildServices01/foodgram/internal/domain/recipe"
	"github.com/BruksfildServices01/foodgram/internal/markdown"
	"github.com/BruksfildServices01/foodgram/internal/models"
)

type RecipeIngredientDTO struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

type RecipeDTO struct {
	ID               uint                  `json:"id"`
	Tags             []TagDTO              `json:"tags"`
	Author           UserDTO               `json:"author"`
	Ingredients      []RecipeIngredientDTO `json:"ingredients"`
	IsFavorited      bool                  `json:"is_favorited"`
	IsInShoppingCart bool                  `json:"is_in_shopping_cart"`
	Name             string                `json:"name"`
	Image            string                `json:"image"`
	Text             string                `json:"text"`
	TextHTML         string                `json:"text_html"`
	CookingTime      int                   `json:"cooking_time"`
}

type RecipeShortDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

type ShortLinkDTO struct {
	ShortLink string `json:"short-link"`
}

func Recipe(d recipe.Detail, media MediaURL) RecipeDTO {
	r := d.Recipe

	tags := make([]TagDTO, 0, len(r.Tags))
	for i := range r.Tags {
		tags = append(tags, Tag(&r.Tags[i]))
	}

	ingredients := make([]RecipeIngredientDTO, 0, len(r.IngredientAmounts))
	for _, ia := range r.IngredientAmounts {
		ingredients = append(ingredients, RecipeIngredientDTO{
			ID:              ia.Ingredient.ID,
			Name:            ia.Ingredient.Name,
			MeasurementUnit: ia.Ingredient.MeasurementUnit,
			Amount:          ia.Amount,
		})
	}

	return RecipeDTO{
		ID:               r.ID,
		Tags:             tags,
		Author:           User(&r.Author, d.AuthorSubscribed, media),
		Ingredients:      ingredients,
		IsFavorited:      d.IsFavorited,
		IsInShoppingCart: d.IsInShoppingCart,
		Name:             r.Name,
		Image:            media(r.Image),
		Text:             r.Text,
		TextHTML:         markdown.ToHTML(r.Text),
		CookingTime:      r.CookingTime,
	}
}

func Recipes(details []recipe.Detail, media MediaURL) []RecipeDTO {
	out := make([]RecipeDTO, 0, len(details))
	for _, d := range details {
		out = append(out, Recipe(d, media))
	}
	return out
}

func RecipeShort(r *models.Recipe, media MediaURL) RecipeShortDTO {
	return RecipeShortDTO{
		ID:          r.ID,
		Name:        r.Name,
		Image:       media(r.Image),
		CookingTime: r.CookingTime,
	}
}
