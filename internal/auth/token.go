package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/foodgram/internal/cache"
	"github.com/BruksfildServices01/foodgram/internal/models"
)

var (
	ErrInvalidToken = errors.New("auth: invalid token")
	ErrRevokedToken = errors.New("auth: token revoked")
)

const revokedPrefix = "revoked:"

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Identity is what a verified token proves about its bearer.
type Identity struct {
	UserID    uint
	Role      models.Role
	TokenID   string
	ExpiresAt time.Time
}

// Tokens issues, verifies and revokes HS256 access tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	store  cache.Store
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration, store cache.Store) *Tokens {
	return &Tokens{
		secret: []byte(secret),
		ttl:    ttl,
		store:  store,
		now:    time.Now,
	}
}

func (t *Tokens) Issue(user *models.User) (string, error) {
	now := t.now()
	claims := Claims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uintToString(user.ID),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *Tokens) Verify(ctx context.Context, raw string) (*Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, ok := stringToUint(claims.Subject)
	if !ok || claims.ID == "" || claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}

	if _, err := t.store.Get(ctx, revokedPrefix+claims.ID); err == nil {
		return nil, ErrRevokedToken
	} else if !errors.Is(err, cache.ErrMiss) {
		return nil, err
	}

	return &Identity{
		UserID:    userID,
		Role:      models.ParseRole(claims.Role),
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Revoke blacklists a token id until the token would have expired anyway.
func (t *Tokens) Revoke(ctx context.Context, id *Identity) error {
	ttl := id.ExpiresAt.Sub(t.now())
	if ttl <= 0 {
		return nil
	}
	return t.store.Set(ctx, revokedPrefix+id.TokenID, "1", ttl)
}
