package remove

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"

	"github.com/chaos-io/bgremove/remove/rembg"
)

// testImage builds a gradient so the encoded file clears the validator's
// size floor even at small dimensions.
func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{
				R: uint8(x * 255 / max(w-1, 1)),
				G: uint8(y * 255 / max(h-1, 1)),
				B: uint8((x + y) % 256),
				A: 255,
			})
		}
	}
	return img
}

func writeTestImage(t *testing.T, path string, w, h int, format imaging.Format) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()
	require.NoError(t, imaging.Encode(f, testImage(w, h), format))
}

// resultPNG encodes a w×h image with a transparent border, the shape of a
// background-removed result.
func resultPNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := testImage(w, h)
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.NRGBA{})
	}

	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

type stubEngine struct {
	removeFn func(ctx context.Context, img []byte, opts rembg.Options) ([]byte, error)
	pingErr  error
}

func (s *stubEngine) Remove(ctx context.Context, img []byte, opts rembg.Options) ([]byte, error) {
	return s.removeFn(ctx, img, opts)
}

func (s *stubEngine) Ping(ctx context.Context) error {
	return s.pingErr
}

// passthroughEngine answers every call with the same pre-encoded result.
func passthroughEngine(result []byte) *stubEngine {
	return &stubEngine{
		removeFn: func(ctx context.Context, img []byte, opts rembg.Options) ([]byte, error) {
			return result, nil
		},
	}
}
