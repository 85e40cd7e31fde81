package testutil

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/foodgram/internal/imaging"
	"github.com/BruksfildServices01/foodgram/internal/storage"
)

// PNGDataURI returns a small solid-color PNG as a data URI.
func PNGDataURI(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 80, B: 20, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

// NewUploader stores images under a temporary directory served at /media.
func NewUploader(t *testing.T) (*storage.Uploader, *storage.LocalStore) {
	t.Helper()

	store, err := storage.NewLocalStore(t.TempDir(), "/media")
	require.NoError(t, err)
	return storage.NewUploader(imaging.NewProcessor(64), store), store
}
