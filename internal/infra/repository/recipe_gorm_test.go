package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	domain "github.com/BruksfildServices01/foodgram/internal/domain/recipe"
	"github.com/BruksfildServices01/foodgram/internal/models"
	"github.com/BruksfildServices01/foodgram/internal/testutil"
)

func ids(recipes []models.Recipe) []uint {
	out := make([]uint, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.ID)
	}
	return out
}

func TestListRecipes_TagIntersection(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRecipeGormRepository(db)
	ctx := context.Background()

	author := testutil.CreateUser(t, db, "chef")
	breakfast := testutil.CreateTag(t, db, "Breakfast", "breakfast")
	quick := testutil.CreateTag(t, db, "Quick", "quick")

	both := testutil.CreateRecipe(t, db, author, "omelette", []*models.Tag{breakfast, quick})
	testutil.CreateRecipe(t, db, author, "porridge", []*models.Tag{breakfast})
	testutil.CreateRecipe(t, db, author, "toast", nil)

	got, total, err := repo.ListRecipes(ctx, domain.ListFilter{TagSlugs: []string{"breakfast", "quick"}}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, []uint{both.ID}, ids(got))

	got, total, err = repo.ListRecipes(ctx, domain.ListFilter{TagSlugs: []string{"breakfast"}}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, got, 2)
}

func TestListRecipes_NewestFirstWithPaging(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRecipeGormRepository(db)
	author := testutil.CreateUser(t, db, "chef")

	first := testutil.CreateRecipe(t, db, author, "a", nil)
	second := testutil.CreateRecipe(t, db, author, "b", nil)
	third := testutil.CreateRecipe(t, db, author, "c", nil)

	got, total, err := repo.ListRecipes(context.Background(), domain.ListFilter{}, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []uint{third.ID, second.ID}, ids(got))

	got, _, err = repo.ListRecipes(context.Background(), domain.ListFilter{}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint{first.ID}, ids(got))
}

func TestListRecipes_AuthorAndMarks(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRecipeGormRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	ra := testutil.CreateRecipe(t, db, alice, "soup", nil)
	rb := testutil.CreateRecipe(t, db, bob, "salad", nil)

	require.NoError(t, repo.AddMark(ctx, domain.MarkFavorite, alice.ID, rb.ID))
	require.NoError(t, repo.AddMark(ctx, domain.MarkShoppingCart, alice.ID, ra.ID))

	got, _, err := repo.ListRecipes(ctx, domain.ListFilter{AuthorID: &bob.ID}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []uint{rb.ID}, ids(got))

	got, _, err = repo.ListRecipes(ctx, domain.ListFilter{FavoritedBy: &alice.ID}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []uint{rb.ID}, ids(got))

	got, _, err = repo.ListRecipes(ctx, domain.ListFilter{InCartOf: &alice.ID}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []uint{ra.ID}, ids(got))

	got, _, err = repo.ListRecipes(ctx, domain.ListFilter{FavoritedBy: &bob.ID}, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMarks_DuplicateAndRemove(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRecipeGormRepository(db)
	ctx := context.Background()

	u := testutil.CreateUser(t, db, "u")
	r := testutil.CreateRecipe(t, db, u, "pie", nil)

	require.NoError(t, repo.AddMark(ctx, domain.MarkFavorite, u.ID, r.ID))
	err := repo.AddMark(ctx, domain.MarkFavorite, u.ID, r.ID)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	marked, err := repo.MarkedRecipeIDs(ctx, domain.MarkFavorite, u.ID, []uint{r.ID})
	require.NoError(t, err)
	assert.True(t, marked[r.ID])

	removed, err := repo.RemoveMark(ctx, domain.MarkFavorite, u.ID, r.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.RemoveMark(ctx, domain.MarkFavorite, u.ID, r.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestReplaceAndGetRecipe(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRecipeGormRepository(db)
	ctx := context.Background()

	u := testutil.CreateUser(t, db, "u")
	eggs := testutil.CreateIngredient(t, db, "eggs", "pcs")
	milk := testutil.CreateIngredient(t, db, "milk", "ml")
	tag := testutil.CreateTag(t, db, "Breakfast", "breakfast")
	r := testutil.CreateRecipe(t, db, u, "omelette", nil, testutil.IngredientUse{Ingredient: eggs, Amount: 1})

	err := repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := tx.ReplaceIngredients(ctx, r.ID, []domain.IngredientLine{
			{IngredientID: eggs.ID, Amount: 3},
			{IngredientID: milk.ID, Amount: 100},
		}); err != nil {
			return err
		}
		return tx.ReplaceTags(ctx, r.ID, []uint{tag.ID})
	})
	require.NoError(t, err)

	got, err := repo.GetRecipe(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "u", got.Author.UsernameOrEmpty())
	require.Len(t, got.IngredientAmounts, 2)
	assert.Equal(t, "eggs", got.IngredientAmounts[0].Ingredient.Name)
	assert.Equal(t, 3, got.IngredientAmounts[0].Amount)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "breakfast", got.Tags[0].Slug)
}

func TestDeleteRecipe_RemovesDependents(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRecipeGormRepository(db)
	ctx := context.Background()

	u := testutil.CreateUser(t, db, "u")
	eggs := testutil.CreateIngredient(t, db, "eggs", "pcs")
	tag := testutil.CreateTag(t, db, "Breakfast", "breakfast")
	r := testutil.CreateRecipe(t, db, u, "omelette", []*models.Tag{tag}, testutil.IngredientUse{Ingredient: eggs, Amount: 2})
	require.NoError(t, repo.AddMark(ctx, domain.MarkShoppingCart, u.ID, r.ID))

	require.NoError(t, repo.DeleteRecipe(ctx, r.ID))

	exists, err := repo.RecipeExists(ctx, r.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	var n int64
	db.Model(&models.IngredientAmount{}).Count(&n)
	assert.Zero(t, n)
	db.Model(&models.RecipeTag{}).Count(&n)
	assert.Zero(t, n)
	db.Model(&models.ShoppingCartItem{}).Count(&n)
	assert.Zero(t, n)

	assert.ErrorIs(t, repo.DeleteRecipe(ctx, r.ID), gorm.ErrRecordNotFound)
}

func TestShoppingList_Aggregates(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRecipeGormRepository(db)
	ctx := context.Background()

	u := testutil.CreateUser(t, db, "u")
	eggs := testutil.CreateIngredient(t, db, "eggs", "pcs")
	flour := testutil.CreateIngredient(t, db, "flour", "g")

	r1 := testutil.CreateRecipe(t, db, u, "pancakes", nil,
		testutil.IngredientUse{Ingredient: eggs, Amount: 2},
		testutil.IngredientUse{Ingredient: flour, Amount: 200},
	)
	r2 := testutil.CreateRecipe(t, db, u, "omelette", nil,
		testutil.IngredientUse{Ingredient: eggs, Amount: 3},
	)
	testutil.CreateRecipe(t, db, u, "bread", nil,
		testutil.IngredientUse{Ingredient: flour, Amount: 500},
	)

	require.NoError(t, repo.AddMark(ctx, domain.MarkShoppingCart, u.ID, r1.ID))
	require.NoError(t, repo.AddMark(ctx, domain.MarkShoppingCart, u.ID, r2.ID))

	lines, err := repo.ShoppingList(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.ShoppingListLine{
		{Name: "eggs", MeasurementUnit: "pcs", Amount: 5},
		{Name: "flour", MeasurementUnit: "g", Amount: 200},
	}, lines)
}

func TestShoppingList_PostgresQuery(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT i.name, i.measurement_unit, SUM(ia.amount) AS amount FROM shopping_cart_items c " +
			"JOIN ingredient_amounts ia ON ia.recipe_id = c.recipe_id " +
			"JOIN ingredients i ON i.id = ia.ingredient_id WHERE c.user_id = $1 " +
			"GROUP BY i.name, i.measurement_unit ORDER BY i.name, i.measurement_unit",
	)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"name", "measurement_unit", "amount"}).
			AddRow("eggs", "pcs", 5).
			AddRow("milk", "ml", 250))

	lines, err := NewRecipeGormRepository(gdb).ShoppingList(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, []domain.ShoppingListLine{
		{Name: "eggs", MeasurementUnit: "pcs", Amount: 5},
		{Name: "milk", MeasurementUnit: "ml", Amount: 250},
	}, lines)
	assert.NoError(t, mock.ExpectationsWereMet())
}
