package remove

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/segmentio/ksuid"
)

// Tally counts batch outcomes in enumeration order.
type Tally struct {
	Succeeded int
	Failed    int
}

func (t Tally) Total() int {
	return t.Succeeded + t.Failed
}

// RemoveDir recursively processes every supported image under inputRoot,
// mirroring the relative layout under outputRoot. One file failing never
// aborts the batch; cancellation is observed between files. A missing
// inputRoot returns a zero tally and ErrMissingInput without creating the
// output tree.
func (p *Processor) RemoveDir(ctx context.Context, inputRoot, outputRoot string) (Tally, error) {
	var tally Tally

	if info, err := os.Stat(inputRoot); err != nil || !info.IsDir() {
		return tally, fmt.Errorf("%w: %s", ErrMissingInput, inputRoot)
	}

	files, err := collectImages(inputRoot)
	if err != nil {
		return tally, fmt.Errorf("walk %s: %w", inputRoot, err)
	}
	if len(files) == 0 {
		fmt.Printf("No images found under: %s\n", inputRoot)
		return tally, nil
	}

	batch := ksuid.New().String()
	slog.Debug("starting batch", "batch", batch, "root", inputRoot, "files", len(files))
	fmt.Printf("Found %d images\n", len(files))

	for i, file := range files {
		if ctx.Err() != nil {
			return tally, ctx.Err()
		}

		output := outputPath(inputRoot, outputRoot, file, p.cfg.Suffix)
		fmt.Printf("[%d/%d] %s\n", i+1, len(files), file)

		if err := p.Remove(ctx, file, output); err != nil {
			fmt.Printf("  failed: %v\n", err)
			slog.Debug("file failed", "batch", batch, "input", file, "error", err)
			tally.Failed++
			continue
		}
		fmt.Printf("  saved: %s\n", output)
		tally.Succeeded++
	}

	return tally, nil
}

// collectImages 收集所有支持的图片文件
func collectImages(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if IsSupportedExtension(path) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// outputPath mirrors the relative path under outputRoot, swapping the
// extension for <suffix>.png.
func outputPath(inputRoot, outputRoot, file, suffix string) string {
	rel, err := filepath.Rel(inputRoot, file)
	if err != nil {
		rel = filepath.Base(file)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	return filepath.Join(outputRoot, rel+suffix+".png")
}
