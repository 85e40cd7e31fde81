// Package storage keeps uploaded images and turns their keys into URLs.
package storage

import (
	"context"
	"path"

	"github.com/google/uuid"
)

type ImageStore interface {
	// Put stores data under a fresh key inside prefix and returns the key.
	Put(ctx context.Context, prefix string, data []byte, contentType, ext string) (string, error)
	Delete(ctx context.Context, key string) error
	// URL returns the public location of key, absolute or rooted at "/".
	URL(key string) string
}

func newKey(prefix, ext string) string {
	return path.Join(prefix, uuid.NewString()+ext)
}
