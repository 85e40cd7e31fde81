package user

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/foodgram/internal/auth"
	domain "github.com/BruksfildServices01/foodgram/internal/domain/user"
	"github.com/BruksfildServices01/foodgram/internal/httperr"
	"github.com/BruksfildServices01/foodgram/internal/models"
	"github.com/BruksfildServices01/foodgram/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string

	// Role defaults to models.RoleUser. The HTTP layer never sets it.
	Role models.Role
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	repo        domain.Repository
	checkDomain bool
}

// NewRegister builds the registration use case. checkDomain enables the
// DNS lookup of the email domain.
func NewRegister(
	repo domain.Repository,
	checkDomain bool,
) *Register {
	return &Register{
		repo:        repo,
		checkDomain: checkDomain,
	}
}

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.User, error) {

	email, err := checkEmail(ctx, uc.repo, in.Email, 0, uc.checkDomain)
	if err != nil {
		return nil, err
	}
	username, err := checkUsername(ctx, uc.repo, in.Username, 0)
	if err != nil {
		return nil, err
	}
	if err := checkName("first_name", in.FirstName); err != nil {
		return nil, err
	}
	if err := checkName("last_name", in.LastName); err != nil {
		return nil, err
	}
	if !validators.IsPasswordValid(in.Password) {
		return nil, httperr.Validation("weak_password", "Password must be at least 8 characters.")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	role := in.Role
	if !role.Valid() {
		role = models.RoleUser
	}

	u := &models.User{
		Email:        email,
		Username:     username,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Role:         role,
		PasswordHash: hash,
	}
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.Conflict("account_exists", "A user with this email or username already exists.")
		}
		return nil, err
	}
	return u, nil
}

// ======================================================
// SHARED CHECKS
// ======================================================

// reservedUsernames collide with routes under /api/users.
var reservedUsernames = map[string]bool{"me": true}

func checkEmail(
	ctx context.Context,
	repo domain.Repository,
	raw string,
	exceptID uint,
	checkDomain bool,
) (string, error) {

	email := validators.NormalizeEmail(raw)
	if !validators.IsEmailValid(email) {
		return "", httperr.Validation("invalid_email", "Enter a valid email address.")
	}
	if checkDomain && !validators.IsEmailDomainValid(email) {
		return "", httperr.Validation("invalid_email_domain", "Email domain does not accept mail.")
	}

	taken, err := repo.EmailTaken(ctx, email, exceptID)
	if err != nil {
		return "", err
	}
	if taken {
		return "", httperr.Validation("email_taken", "A user with this email already exists.")
	}
	return email, nil
}

// checkUsername returns nil for a blank username, which is stored as NULL.
func checkUsername(
	ctx context.Context,
	repo domain.Repository,
	raw string,
	exceptID uint,
) (*string, error) {

	username := strings.TrimSpace(raw)
	if username == "" {
		return nil, nil
	}
	if !validators.IsUsernameValid(username) {
		return nil, httperr.Validation("invalid_username", "Username may contain only letters, digits and @/./+/-/_.")
	}
	if reservedUsernames[strings.ToLower(username)] {
		return nil, httperr.Validation("invalid_username", "This username is reserved.")
	}

	taken, err := repo.UsernameTaken(ctx, username, exceptID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.Validation("username_taken", "A user with this username already exists.")
	}
	return &username, nil
}

func checkName(field, value string) error {
	if utf8.RuneCountInString(strings.TrimSpace(value)) > validators.MaxUsernameLength {
		return httperr.Validation("invalid_"+field, field+" must be at most 150 characters.")
	}
	return nil
}
