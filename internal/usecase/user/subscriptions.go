package user

import (
	"context"

	domain "github.com/BruksfildServices01/foodgram/internal/domain/user"
	"github.com/BruksfildServices01/foodgram/internal/httperr"
	"github.com/BruksfildServices01/foodgram/internal/models"
)

type Subscriptions struct {
	repo domain.Repository
}

func NewSubscriptions(repo domain.Repository) *Subscriptions {
	return &Subscriptions{repo: repo}
}

// Subscribe makes userID follow authorID and returns the followed author
// with at most recipesLimit recipes (negative: all).
func (uc *Subscriptions) Subscribe(
	ctx context.Context,
	userID uint,
	authorID uint,
	recipesLimit int,
) (*domain.Subscription, error) {

	if userID == authorID {
		return nil, httperr.Validation("self_subscription", "You cannot subscribe to yourself.")
	}

	author, err := loadUser(ctx, uc.repo, authorID)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Follow(ctx, userID, authorID); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.Conflict("already_subscribed", "You are already subscribed to this user.")
		}
		if httperr.IsCheckViolation(err) {
			return nil, httperr.Validation("self_subscription", "You cannot subscribe to yourself.")
		}
		return nil, err
	}

	subs, err := uc.withRecipes(ctx, []*models.User{author}, recipesLimit)
	if err != nil {
		return nil, err
	}
	return &subs[0], nil
}

func (uc *Subscriptions) Unsubscribe(
	ctx context.Context,
	userID uint,
	authorID uint,
) error {

	if _, err := loadUser(ctx, uc.repo, authorID); err != nil {
		return err
	}

	removed, err := uc.repo.Unfollow(ctx, userID, authorID)
	if err != nil {
		return err
	}
	if !removed {
		return httperr.NotFound("not_subscribed", "You are not subscribed to this user.")
	}
	return nil
}

func (uc *Subscriptions) List(
	ctx context.Context,
	userID uint,
	offset int,
	limit int,
	recipesLimit int,
) ([]domain.Subscription, int64, error) {

	authors, total, err := uc.repo.ListSubscriptions(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	ptrs := make([]*models.User, 0, len(authors))
	for i := range authors {
		ptrs = append(ptrs, &authors[i])
	}

	subs, err := uc.withRecipes(ctx, ptrs, recipesLimit)
	if err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

func (uc *Subscriptions) withRecipes(
	ctx context.Context,
	authors []*models.User,
	recipesLimit int,
) ([]domain.Subscription, error) {

	ids := make([]uint, 0, len(authors))
	for _, a := range authors {
		ids = append(ids, a.ID)
	}

	recipes, err := uc.repo.AuthorRecipes(ctx, ids, recipesLimit)
	if err != nil {
		return nil, err
	}
	counts, err := uc.repo.RecipeCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Subscription, 0, len(authors))
	for _, a := range authors {
		out = append(out, domain.Subscription{
			Author:       a,
			Recipes:      recipes[a.ID],
			RecipesCount: counts[a.ID],
		})
	}
	return out, nil
}
