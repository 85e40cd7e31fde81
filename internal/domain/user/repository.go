package user

import (
	"context"

	"github.com/BruksfildServices01/foodgram/internal/models"
)

type Repository interface {
	// -------- Accounts --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	ListUsers(
		ctx context.Context,
		offset int,
		limit int,
	) ([]models.User, int64, error)

	CreateUser(
		ctx context.Context,
		u *models.User,
	) error

	UpdateUser(
		ctx context.Context,
		u *models.User,
	) error

	// EmailTaken and UsernameTaken ignore the account with id exceptID.
	EmailTaken(
		ctx context.Context,
		email string,
		exceptID uint,
	) (bool, error)

	UsernameTaken(
		ctx context.Context,
		username string,
		exceptID uint,
	) (bool, error)

	// -------- Follows --------
	Follow(
		ctx context.Context,
		userID uint,
		authorID uint,
	) error

	// Unfollow reports whether an edge was removed.
	Unfollow(
		ctx context.Context,
		userID uint,
		authorID uint,
	) (bool, error)

	FollowedAuthorIDs(
		ctx context.Context,
		userID uint,
		authorIDs []uint,
	) (map[uint]bool, error)

	ListSubscriptions(
		ctx context.Context,
		userID uint,
		offset int,
		limit int,
	) ([]models.User, int64, error)

	// -------- Author recipes --------

	// AuthorRecipes returns each author's recipes newest first, at most
	// limit per author. A negative limit means no cap.
	AuthorRecipes(
		ctx context.Context,
		authorIDs []uint,
		limit int,
	) (map[uint][]models.Recipe, error)

	RecipeCounts(
		ctx context.Context,
		authorIDs []uint,
	) (map[uint]int64, error)
}

// Profile is a user together with the requester-relative subscription flag.
type Profile struct {
	User       *models.User
	Subscribed bool
}

// Subscription is one followed author with a slice of their recipes.
type Subscription struct {
	Author       *models.User
	Recipes      []models.Recipe
	RecipesCount int64
}
