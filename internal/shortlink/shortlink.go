// Package shortlink maps recipe ids to short codes.
//
// A code is the URL-safe base64 form of md5(decimal id), cut to four
// characters. When a different recipe already owns those four characters the
// code grows one character at a time until it is free, so a stored code never
// changes meaning while it lives in the store.
package shortlink

import (
	"context"
	"crypto/md5"
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/foodgram/internal/cache"
)

const (
	MinLength = 4
	maxLength = 22 // unpadded base64 of a 16-byte digest

	keyPrefix = "shortlink:"
)

var (
	ErrNotFound  = errors.New("shortlink: code not found")
	ErrExhausted = errors.New("shortlink: no free code")
)

// Code returns the first n characters of the code space for id.
func Code(id uint, n int) string {
	sum := md5.Sum([]byte(strconv.FormatUint(uint64(id), 10)))
	full := strings.TrimRight(base64.URLEncoding.EncodeToString(sum[:]), "=")
	if n > len(full) {
		n = len(full)
	}
	return full[:n]
}

type Service struct {
	store cache.Store
	ttl   time.Duration
}

// New builds a Service. A zero ttl keeps links until the store drops them.
func New(store cache.Store, ttl time.Duration) *Service {
	return &Service{store: store, ttl: ttl}
}

// Shorten returns the code for recipeID, registering it when needed.
func (s *Service) Shorten(ctx context.Context, recipeID uint) (string, error) {
	want := strconv.FormatUint(uint64(recipeID), 10)

	for n := MinLength; n <= maxLength; n++ {
		code := Code(recipeID, n)
		key := keyPrefix + code

		ok, err := s.store.SetNX(ctx, key, want, s.ttl)
		if err != nil {
			return "", err
		}
		if ok {
			return code, nil
		}

		got, err := s.store.Get(ctx, key)
		switch {
		case errors.Is(err, cache.ErrMiss):
			// expired between SetNX and Get
			if err := s.store.Set(ctx, key, want, s.ttl); err != nil {
				return "", err
			}
			return code, nil
		case err != nil:
			return "", err
		case got == want:
			if s.ttl > 0 {
				if err := s.store.Set(ctx, key, want, s.ttl); err != nil {
					return "", err
				}
			}
			return code, nil
		}
	}

	return "", ErrExhausted
}

// Resolve returns the recipe id a code was registered for.
func (s *Service) Resolve(ctx context.Context, code string) (uint, error) {
	if len(code) < MinLength || len(code) > maxLength {
		return 0, ErrNotFound
	}

	v, err := s.store.Get(ctx, keyPrefix+code)
	if errors.Is(err, cache.ErrMiss) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, ErrNotFound
	}
	return uint(id), nil
}
