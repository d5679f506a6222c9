package remove

import (
	"image"
	"os"
	"path/filepath"
	"strings"

	// Register the decoders for every supported input format. JPEG, PNG
	// and GIF come with the imaging import in processor.go; the rest live
	// in x/image.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// IsSupportedExtension 检查扩展名是否受支持 (case-insensitive).
func IsSupportedExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := SupportedExtensions[ext]
	return ok
}

// IsValidImage reports whether path is an existing regular file, large
// enough to be a real image, and with a decodable header. Decode errors
// mean "not an image", they are never propagated.
func IsValidImage(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if info.Size() < minImageSize {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer func() {
		_ = f.Close()
	}()

	_, _, err = image.DecodeConfig(f)
	return err == nil
}
