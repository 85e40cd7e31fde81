package fixtures

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/foodgram/internal/models"
)

const batchSize = 500

// LoadIngredients inserts the rows whose (name, unit) pair is not stored yet,
// including pairs repeated within rows. It returns how many rows were
// inserted.
func LoadIngredients(ctx context.Context, db *gorm.DB, rows []IngredientRow) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	var inserted int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seen, err := existingIngredients(tx, rows)
		if err != nil {
			return err
		}

		items := make([]models.Ingredient, 0, len(rows))
		for _, r := range rows {
			key := ingredientKey{r.Name, r.MeasurementUnit}
			if seen[key] {
				continue
			}
			seen[key] = true
			items = append(items, models.Ingredient{Name: r.Name, MeasurementUnit: r.MeasurementUnit})
		}
		if len(items) == 0 {
			return nil
		}

		res := tx.CreateInBatches(&items, batchSize)
		inserted = res.RowsAffected
		return res.Error
	})
	return inserted, err
}

type ingredientKey struct {
	name string
	unit string
}

// existingIngredients returns the stored pairs among the names in rows.
func existingIngredients(tx *gorm.DB, rows []IngredientRow) (map[ingredientKey]bool, error) {
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
	}

	seen := make(map[ingredientKey]bool, len(rows))
	for start := 0; start < len(names); start += batchSize {
		end := min(start+batchSize, len(names))

		var stored []models.Ingredient
		if err := tx.
			Select("name", "measurement_unit").
			Where("name IN ?", names[start:end]).
			Find(&stored).Error; err != nil {
			return nil, err
		}
		for _, ing := range stored {
			seen[ingredientKey{ing.Name, ing.MeasurementUnit}] = true
		}
	}
	return seen, nil
}

// LoadTags upserts by slug, refreshing the name of existing tags.
func LoadTags(ctx context.Context, db *gorm.DB, rows []TagRow) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	items := make([]models.Tag, 0, len(rows))
	for _, r := range rows {
		items = append(items, models.Tag{Name: r.Name, Slug: r.Slug})
	}

	res := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name"}),
		}).
		CreateInBatches(&items, batchSize)
	return res.RowsAffected, res.Error
}
