package remove

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"github.com/segmentio/ksuid"

	"github.com/chaos-io/bgremove/remove/rembg"
)

// Processor runs the single-image pipeline: validate, normalize to NRGBA,
// round-trip through the segmentation engine, write a lossless PNG. Failures
// never escape as panics; every step reports through the returned error.
type Processor struct {
	cfg    Config
	engine rembg.Engine
}

func NewProcessor(cfg Config, engine rembg.Engine) *Processor {
	return &Processor{cfg: cfg, engine: engine}
}

// Remove processes inputPath into outputPath. The destination directory is
// created as needed and an existing output file is overwritten.
func (p *Processor) Remove(ctx context.Context, inputPath, outputPath string) error {
	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("%w: %s", ErrMissingInput, inputPath)
	}
	if !IsValidImage(inputPath) {
		return fmt.Errorf("%w: %s", ErrInvalidImage, inputPath)
	}

	job := ksuid.New().String()
	slog.Debug("processing image", "job", job, "input", inputPath, "model", p.cfg.Model)

	src, err := imaging.Open(inputPath)
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	// 统一转成 NRGBA, 保证 alpha 通道来源明确
	normalized := toNRGBA(src)
	if p.cfg.MaxEdge > 0 {
		normalized = resizeWithinMax(normalized, p.cfg.MaxEdge)
	}

	// PNG 往返, alpha 无损
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, normalized, imaging.PNG); err != nil {
		return fmt.Errorf("encode image: %w", err)
	}

	out, err := p.engine.Remove(ctx, buf.Bytes(), p.cfg.options())
	if err != nil {
		return fmt.Errorf("remove background: %w", err)
	}

	result, err := imaging.Decode(bytes.NewReader(out))
	if err != nil {
		return fmt.Errorf("decode engine result: %w", err)
	}
	final := toNRGBA(result)

	if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	err = imaging.Save(final, outputPath, imaging.PNGCompressionLevel(png.BestCompression))
	if err != nil {
		return fmt.Errorf("save image: %w", err)
	}

	slog.Debug("saved image", "job", job, "output", outputPath)
	return nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba
	}
	b := img.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)
	return dst
}

// resizeWithinMax 缩放（最长边 <= maxSize）
func resizeWithinMax(img *image.NRGBA, maxSize int) *image.NRGBA {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	longest := max(w, h)

	if longest <= maxSize {
		return img
	}

	scale := float64(maxSize) / float64(longest)
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)

	resized := resize.Resize(uint(newW), uint(newH), img, resize.Lanczos3)
	return toNRGBA(resized)
}
