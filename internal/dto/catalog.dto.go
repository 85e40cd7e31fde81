package dto

import "github.com/BruksfildServices01/foodgram/internal/models"

type TagDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type IngredientDTO struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

func Tag(t *models.Tag) TagDTO {
	return TagDTO{ID: t.ID, Name: t.Name, Slug: t.Slug}
}

func Ingredient(i *models.Ingredient) IngredientDTO {
	return IngredientDTO{ID: i.ID, Name: i.Name, MeasurementUnit: i.MeasurementUnit}
}
