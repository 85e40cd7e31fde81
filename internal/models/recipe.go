package models

import "time"

type Recipe struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AuthorID uint `gorm:"not null;uniqueIndex:idx_recipes_name_author" json:"author_id"`
	Author   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`

	Name        string `gorm:"size:256;not null;index;uniqueIndex:idx_recipes_name_author" json:"name"`
	Text        string `gorm:"type:text;not null" json:"text"`
	Image       string `gorm:"size:255;not null" json:"image"`
	CookingTime int    `gorm:"not null;check:chk_recipes_cooking_time,cooking_time >= 1" json:"cooking_time"`

	Tags              []Tag              `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE;" json:"tags"`
	IngredientAmounts []IngredientAmount `gorm:"constraint:OnDelete:CASCADE;" json:"ingredients"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecipeTag is the explicit join row behind Recipe.Tags.
type RecipeTag struct {
	RecipeID uint `gorm:"primaryKey"`
	TagID    uint `gorm:"primaryKey"`

	Recipe Recipe `gorm:"constraint:OnDelete:CASCADE;"`
	Tag    Tag    `gorm:"constraint:OnDelete:CASCADE;"`
}

// IngredientAmount links one recipe to one ingredient with a quantity.
type IngredientAmount struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RecipeID     uint       `gorm:"not null;uniqueIndex:idx_ingredient_recipe" json:"recipe_id"`
	IngredientID uint       `gorm:"not null;uniqueIndex:idx_ingredient_recipe" json:"ingredient_id"`
	Ingredient   Ingredient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"ingredient"`

	Amount int `gorm:"not null;check:chk_ingredient_amounts_amount,amount >= 1" json:"amount"`
}
