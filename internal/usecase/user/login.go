package user

import (
	"context"

	"github.com/BruksfildServices01/foodgram/internal/auth"
	domain "github.com/BruksfildServices01/foodgram/internal/domain/user"
	"github.com/BruksfildServices01/foodgram/internal/httperr"
	"github.com/BruksfildServices01/foodgram/internal/validators"
)

type Login struct {
	repo   domain.Repository
	tokens *auth.Tokens
}

func NewLogin(repo domain.Repository, tokens *auth.Tokens) *Login {
	return &Login{repo: repo, tokens: tokens}
}

// Execute checks the credentials and issues a token. Unknown emails and
// wrong passwords produce the same error.
func (uc *Login) Execute(
	ctx context.Context,
	email string,
	password string,
) (string, error) {

	invalid := httperr.Validation("invalid_credentials", "Unable to log in with provided credentials.")

	u, err := uc.repo.GetUserByEmail(ctx, validators.NormalizeEmail(email))
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			return "", invalid
		}
		return "", err
	}

	if !auth.CheckPassword(u.PasswordHash, password) {
		return "", invalid
	}
	return uc.tokens.Issue(u)
}
