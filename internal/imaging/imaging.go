// Package imaging turns client-supplied base64 images into bounded WebP
// payloads ready for storage.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const ContentType = "image/webp"

// Extension is the file suffix of every processed image.
const Extension = ".webp"

var (
	ErrEmpty       = errors.New("imaging: empty payload")
	ErrEncoding    = errors.New("imaging: payload is not valid base64")
	ErrUnsupported = errors.New("imaging: unsupported image format")
)

type Processor struct {
	maxSide int
	quality float32
}

// NewProcessor bounds the longest side to maxSide pixels; zero disables
// resizing.
func NewProcessor(maxSide int) *Processor {
	return &Processor{maxSide: maxSide, quality: 80}
}

// DecodeBase64 accepts either a bare base64 string or a data URI such as
// "data:image/png;base64,....".
func DecodeBase64(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, ErrEmpty
	}

	if strings.HasPrefix(payload, "data:") {
		comma := strings.IndexByte(payload, ',')
		if comma < 0 || !strings.Contains(payload[:comma], ";base64") {
			return nil, ErrEncoding
		}
		payload = payload[comma+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(payload)
	}
	if err != nil {
		return nil, ErrEncoding
	}
	if len(raw) == 0 {
		return nil, ErrEmpty
	}
	return raw, nil
}

// Process decodes a base64 image, scales it down if needed and re-encodes
// it as WebP.
func (p *Processor) Process(payload string) ([]byte, error) {
	raw, err := DecodeBase64(payload)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrUnsupported
	}

	img = p.bound(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: p.quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Processor) bound(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if p.maxSide <= 0 || (w <= p.maxSide && h <= p.maxSide) {
		return src
	}

	nw, nh := p.maxSide, p.maxSide
	if w >= h {
		nh = max(1, h*p.maxSide/w)
	} else {
		nw = max(1, w*p.maxSide/h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
