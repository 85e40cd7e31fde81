package recipe

import (
	"context"

	"github.com/BruksfildServices01/foodgram/internal/models"
)

// MarkKind selects one of the per-user recipe marks.
type MarkKind int

const (
	MarkFavorite MarkKind = iota
	MarkShoppingCart
)

func (k MarkKind) String() string {
	if k == MarkShoppingCart {
		return "shopping_cart"
	}
	return "favorite"
}

type Repository interface {
	// Transaction runs fn against a repository bound to one transaction.
	// A returned error rolls everything back.
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Recipe --------
	GetRecipe(
		ctx context.Context,
		id uint,
	) (*models.Recipe, error)

	RecipeExists(
		ctx context.Context,
		id uint,
	) (bool, error)

	ListRecipes(
		ctx context.Context,
		filter ListFilter,
		offset int,
		limit int,
	) ([]models.Recipe, int64, error)

	CreateRecipe(
		ctx context.Context,
		r *models.Recipe,
	) error

	UpdateRecipe(
		ctx context.Context,
		r *models.Recipe,
	) error

	DeleteRecipe(
		ctx context.Context,
		id uint,
	) error

	// -------- Composition --------
	ReplaceIngredients(
		ctx context.Context,
		recipeID uint,
		lines []IngredientLine,
	) error

	ReplaceTags(
		ctx context.Context,
		recipeID uint,
		tagIDs []uint,
	) error

	ExistingIngredientIDs(
		ctx context.Context,
		ids []uint,
	) ([]uint, error)

	ExistingTagIDs(
		ctx context.Context,
		ids []uint,
	) ([]uint, error)

	// -------- Marks --------
	AddMark(
		ctx context.Context,
		kind MarkKind,
		userID uint,
		recipeID uint,
	) error

	// RemoveMark reports whether a mark was actually removed.
	RemoveMark(
		ctx context.Context,
		kind MarkKind,
		userID uint,
		recipeID uint,
	) (bool, error)

	MarkedRecipeIDs(
		ctx context.Context,
		kind MarkKind,
		userID uint,
		recipeIDs []uint,
	) (map[uint]bool, error)

	FollowedAuthorIDs(
		ctx context.Context,
		userID uint,
		authorIDs []uint,
	) (map[uint]bool, error)

	// -------- Shopping list --------
	ShoppingList(
		ctx context.Context,
		userID uint,
	) ([]ShoppingListLine, error)
}

// Detail is a recipe together with the flags relative to one requester.
type Detail struct {
	Recipe           *models.Recipe
	IsFavorited      bool
	IsInShoppingCart bool
	AuthorSubscribed bool
}
