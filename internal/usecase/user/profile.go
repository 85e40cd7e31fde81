package user

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/foodgram/internal/domain/user"
	"github.com/BruksfildServices01/foodgram/internal/httperr"
	"github.com/BruksfildServices01/foodgram/internal/models"
	"github.com/BruksfildServices01/foodgram/internal/permissions"
)

var errUserNotFound = httperr.NotFound("user_not_found", "User not found.")

// Profiles reads user profiles with the requester's subscription flag.
type Profiles struct {
	repo domain.Repository
}

func NewProfiles(repo domain.Repository) *Profiles {
	return &Profiles{repo: repo}
}

func (uc *Profiles) Get(
	ctx context.Context,
	requester permissions.Requester,
	id uint,
) (*domain.Profile, error) {

	u, err := loadUser(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}

	followed, err := uc.repo.FollowedAuthorIDs(ctx, requester.UserID, []uint{u.ID})
	if err != nil {
		return nil, err
	}
	return &domain.Profile{User: u, Subscribed: followed[u.ID]}, nil
}

func (uc *Profiles) List(
	ctx context.Context,
	requester permissions.Requester,
	offset int,
	limit int,
) ([]domain.Profile, int64, error) {

	users, total, err := uc.repo.ListUsers(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uint, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	followed, err := uc.repo.FollowedAuthorIDs(ctx, requester.UserID, ids)
	if err != nil {
		return nil, 0, err
	}

	out := make([]domain.Profile, 0, len(users))
	for i := range users {
		out = append(out, domain.Profile{User: &users[i], Subscribed: followed[users[i].ID]})
	}
	return out, total, nil
}

// ======================================================
// UPDATE ME
// ======================================================

type UpdateProfileInput struct {
	UserID uint

	Email     *string
	Username  *string
	FirstName *string
	LastName  *string
}

type UpdateProfile struct {
	repo        domain.Repository
	checkDomain bool
}

func NewUpdateProfile(repo domain.Repository, checkDomain bool) *UpdateProfile {
	return &UpdateProfile{repo: repo, checkDomain: checkDomain}
}

func (uc *UpdateProfile) Execute(
	ctx context.Context,
	in UpdateProfileInput,
) (*models.User, error) {

	u, err := loadUser(ctx, uc.repo, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		email, err := checkEmail(ctx, uc.repo, *in.Email, u.ID, uc.checkDomain)
		if err != nil {
			return nil, err
		}
		u.Email = email
	}
	if in.Username != nil {
		username, err := checkUsername(ctx, uc.repo, *in.Username, u.ID)
		if err != nil {
			return nil, err
		}
		u.Username = username
	}
	if in.FirstName != nil {
		if err := checkName("first_name", *in.FirstName); err != nil {
			return nil, err
		}
		u.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		if err := checkName("last_name", *in.LastName); err != nil {
			return nil, err
		}
		u.LastName = strings.TrimSpace(*in.LastName)
	}

	if err := uc.repo.UpdateUser(ctx, u); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.Conflict("account_exists", "A user with this email or username already exists.")
		}
		return nil, err
	}
	return u, nil
}

func loadUser(ctx context.Context, repo domain.Repository, id uint) (*models.User, error) {
	u, err := repo.GetUser(ctx, id)
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			return nil, errUserNotFound
		}
		return nil, err
	}
	return u, nil
}
