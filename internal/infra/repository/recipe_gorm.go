package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/foodgram/internal/domain/recipe"
	"github.com/BruksfildServices01/foodgram/internal/models"
)

type RecipeGormRepository struct {
	db *gorm.DB
}

func NewRecipeGormRepository(db *gorm.DB) *RecipeGormRepository {
	return &RecipeGormRepository{db: db}
}

func (r *RecipeGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&RecipeGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Recipe
// --------------------------------------------------

func withRecipeDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tags.id ASC")
		}).
		Preload("IngredientAmounts", func(db *gorm.DB) *gorm.DB {
			return db.Order("ingredient_amounts.id ASC")
		}).
		Preload("IngredientAmounts.Ingredient")
}

func (r *RecipeGormRepository) GetRecipe(
	ctx context.Context,
	id uint,
) (*models.Recipe, error) {

	var rec models.Recipe
	if err := r.db.WithContext(ctx).
		Scopes(withRecipeDetails).
		First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *RecipeGormRepository) RecipeExists(
	ctx context.Context,
	id uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *RecipeGormRepository) filtered(f domain.ListFilter) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if f.AuthorID != nil {
			q = q.Where("recipes.author_id = ?", *f.AuthorID)
		}

		if len(f.TagSlugs) > 0 {
			withAllTags := r.db.
				Table("recipe_tags").
				Select("recipe_tags.recipe_id").
				Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
				Where("tags.slug IN ?", f.TagSlugs).
				Group("recipe_tags.recipe_id").
				Having("COUNT(DISTINCT tags.slug) = ?", len(f.TagSlugs))
			q = q.Where("recipes.id IN (?)", withAllTags)
		}

		if f.FavoritedBy != nil {
			q = q.Where("recipes.id IN (?)", r.db.
				Model(&models.Favorite{}).
				Select("recipe_id").
				Where("user_id = ?", *f.FavoritedBy))
		}

		if f.InCartOf != nil {
			q = q.Where("recipes.id IN (?)", r.db.
				Model(&models.ShoppingCartItem{}).
				Select("recipe_id").
				Where("user_id = ?", *f.InCartOf))
		}

		return q
	}
}

func (r *RecipeGormRepository) ListRecipes(
	ctx context.Context,
	filter domain.ListFilter,
	offset int,
	limit int,
) ([]models.Recipe, int64, error) {

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Scopes(r.filtered(filter)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []models.Recipe
	if err := r.db.WithContext(ctx).
		Scopes(r.filtered(filter), withRecipeDetails).
		Order("recipes.id DESC").
		Offset(offset).
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, total, nil
}

func (r *RecipeGormRepository) CreateRecipe(
	ctx context.Context,
	rec *models.Recipe,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(rec).Error
}

func (r *RecipeGormRepository) UpdateRecipe(
	ctx context.Context,
	rec *models.Recipe,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Recipe{ID: rec.ID}).
		Updates(map[string]any{
			"name":         rec.Name,
			"text":         rec.Text,
			"image":        rec.Image,
			"cooking_time": rec.CookingTime,
		}).Error
}

// DeleteRecipe removes the recipe and every row that points at it.
func (r *RecipeGormRepository) DeleteRecipe(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, dep := range []any{
			&models.IngredientAmount{},
			&models.RecipeTag{},
			&models.Favorite{},
			&models.ShoppingCartItem{},
		} {
			if err := tx.Where("recipe_id = ?", id).Delete(dep).Error; err != nil {
				return err
			}
		}

		res := tx.Delete(&models.Recipe{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// --------------------------------------------------
// Composition
// --------------------------------------------------

func (r *RecipeGormRepository) ReplaceIngredients(
	ctx context.Context,
	recipeID uint,
	lines []domain.IngredientLine,
) error {

	db := r.db.WithContext(ctx)
	if err := db.Where("recipe_id = ?", recipeID).Delete(&models.IngredientAmount{}).Error; err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}

	rows := make([]models.IngredientAmount, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, models.IngredientAmount{
			RecipeID:     recipeID,
			IngredientID: l.IngredientID,
			Amount:       l.Amount,
		})
	}
	return db.Omit(clause.Associations).Create(&rows).Error
}

func (r *RecipeGormRepository) ReplaceTags(
	ctx context.Context,
	recipeID uint,
	tagIDs []uint,
) error {

	db := r.db.WithContext(ctx)
	if err := db.Where("recipe_id = ?", recipeID).Delete(&models.RecipeTag{}).Error; err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}

	rows := make([]models.RecipeTag, 0, len(tagIDs))
	for _, id := range tagIDs {
		rows = append(rows, models.RecipeTag{RecipeID: recipeID, TagID: id})
	}
	return db.Omit(clause.Associations).Create(&rows).Error
}

func (r *RecipeGormRepository) ExistingIngredientIDs(
	ctx context.Context,
	ids []uint,
) ([]uint, error) {
	return r.existingIDs(ctx, &models.Ingredient{}, ids)
}

func (r *RecipeGormRepository) ExistingTagIDs(
	ctx context.Context,
	ids []uint,
) ([]uint, error) {
	return r.existingIDs(ctx, &models.Tag{}, ids)
}

func (r *RecipeGormRepository) existingIDs(
	ctx context.Context,
	model any,
	ids []uint,
) ([]uint, error) {

	found := []uint{}
	if len(ids) == 0 {
		return found, nil
	}
	if err := r.db.WithContext(ctx).
		Model(model).
		Where("id IN ?", ids).
		Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// --------------------------------------------------
// Marks
// --------------------------------------------------

func markModel(kind domain.MarkKind) any {
	if kind == domain.MarkShoppingCart {
		return &models.ShoppingCartItem{}
	}
	return &models.Favorite{}
}

func (r *RecipeGormRepository) AddMark(
	ctx context.Context,
	kind domain.MarkKind,
	userID uint,
	recipeID uint,
) error {

	var row any
	if kind == domain.MarkShoppingCart {
		row = &models.ShoppingCartItem{UserID: userID, RecipeID: recipeID}
	} else {
		row = &models.Favorite{UserID: userID, RecipeID: recipeID}
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error
}

func (r *RecipeGormRepository) RemoveMark(
	ctx context.Context,
	kind domain.MarkKind,
	userID uint,
	recipeID uint,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(markModel(kind))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *RecipeGormRepository) MarkedRecipeIDs(
	ctx context.Context,
	kind domain.MarkKind,
	userID uint,
	recipeIDs []uint,
) (map[uint]bool, error) {

	out := map[uint]bool{}
	if userID == 0 || len(recipeIDs) == 0 {
		return out, nil
	}

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(markModel(kind)).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids).Error; err != nil {
		return nil, err
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func (r *RecipeGormRepository) FollowedAuthorIDs(
	ctx context.Context,
	userID uint,
	authorIDs []uint,
) (map[uint]bool, error) {
	return followedAuthorIDs(ctx, r.db, userID, authorIDs)
}

// --------------------------------------------------
// Shopping list
// --------------------------------------------------

// shoppingListQuery sums every ingredient over the user's cart, grouped by
// (name, unit) and ordered by name.
func shoppingListQuery(userID uint) (string, []any, error) {
	return sq.
		Select("i.name", "i.measurement_unit", "SUM(ia.amount) AS amount").
		From("shopping_cart_items c").
		Join("ingredient_amounts ia ON ia.recipe_id = c.recipe_id").
		Join("ingredients i ON i.id = ia.ingredient_id").
		Where(sq.Eq{"c.user_id": userID}).
		GroupBy("i.name", "i.measurement_unit").
		OrderBy("i.name", "i.measurement_unit").
		ToSql()
}

func (r *RecipeGormRepository) ShoppingList(
	ctx context.Context,
	userID uint,
) ([]domain.ShoppingListLine, error) {

	query, args, err := shoppingListQuery(userID)
	if err != nil {
		return nil, err
	}

	var lines []domain.ShoppingListLine
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// Compile-time check
var _ domain.Repository = (*RecipeGormRepository)(nil)
