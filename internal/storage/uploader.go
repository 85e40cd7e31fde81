package storage

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/foodgram/internal/httperr"
	"github.com/BruksfildServices01/foodgram/internal/imaging"
	"github.com/BruksfildServices01/foodgram/internal/logger"
)

const (
	PrefixRecipes = "recipes"
	PrefixAvatars = "avatars"
)

// Uploader converts submitted images and writes them to an ImageStore.
type Uploader struct {
	proc  *imaging.Processor
	store ImageStore
}

func NewUploader(proc *imaging.Processor, store ImageStore) *Uploader {
	return &Uploader{proc: proc, store: store}
}

// Upload processes a base64 or data-URI payload and returns its storage
// key. Undecodable payloads are reported as validation errors.
func (u *Uploader) Upload(ctx context.Context, prefix, payload string) (string, error) {
	data, err := u.proc.Process(payload)
	if err != nil {
		if errors.Is(err, imaging.ErrEmpty) ||
			errors.Is(err, imaging.ErrEncoding) ||
			errors.Is(err, imaging.ErrUnsupported) {
			return "", httperr.Validation("invalid_image", "Image must be a base64 encoded PNG, JPEG, GIF or WebP.")
		}
		return "", err
	}

	return u.store.Put(ctx, prefix, data, imaging.ContentType, imaging.Extension)
}

// Discard deletes key, logging instead of failing. Empty keys are ignored.
func (u *Uploader) Discard(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := u.store.Delete(ctx, key); err != nil {
		logger.Warn("failed to delete stored image",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

func (u *Uploader) URL(key string) string {
	return u.store.URL(key)
}
