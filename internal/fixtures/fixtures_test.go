package fixtures

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/foodgram/internal/models"
	"github.com/BruksfildServices01/foodgram/internal/testutil"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadIngredients_Formats(t *testing.T) {
	want := []IngredientRow{
		{Name: "eggs", MeasurementUnit: "pcs"},
		{Name: "flour", MeasurementUnit: "g"},
	}

	files := map[string]string{
		"ingredients.json": `[{"name":"eggs","measurement_unit":"pcs"},{"name":"flour","measurement_unit":"g"}]`,
		"ingredients.yaml": "- name: eggs\n  measurement_unit: pcs\n- name: flour\n  measurement_unit: g\n",
		"ingredients.csv":  "name,measurement_unit\neggs,pcs\nflour, g\n",
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			rows, err := ReadIngredients(write(t, name, content))
			require.NoError(t, err)
			assert.Equal(t, want, rows)
		})
	}
}

func TestReadIngredients_CSVWithoutHeader(t *testing.T) {
	rows, err := ReadIngredients(write(t, "i.csv", "salt,g\n,pcs\n"))
	require.NoError(t, err)
	assert.Equal(t, []IngredientRow{{Name: "salt", MeasurementUnit: "g"}}, rows)
}

func TestRead_Errors(t *testing.T) {
	_, err := ReadTags(write(t, "tags.txt", "x"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = ReadTags(write(t, "tags.csv", "only-one-column\n"))
	assert.Error(t, err)
}

func TestLoad_Idempotent(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	rows := []IngredientRow{{"eggs", "pcs"}, {"flour", "g"}}
	n, err := LoadIngredients(ctx, db, rows)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = LoadIngredients(ctx, db, append(rows, IngredientRow{"milk", "ml"}, IngredientRow{"milk", "ml"}))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = LoadIngredients(ctx, db, []IngredientRow{{"milk", "l"}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var count int64
	db.Model(&models.Ingredient{}).Count(&count)
	assert.Equal(t, int64(4), count)

	_, err = LoadTags(ctx, db, []TagRow{{"Breakfast", "breakfast"}})
	require.NoError(t, err)
	_, err = LoadTags(ctx, db, []TagRow{{"Morning", "breakfast"}})
	require.NoError(t, err)

	var tags []models.Tag
	require.NoError(t, db.Find(&tags).Error)
	require.Len(t, tags, 1)
	assert.Equal(t, "Morning", tags[0].Name)
}
