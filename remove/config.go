package remove

import (
	"github.com/chaos-io/bgremove/remove/rembg"
)

const (
	// DefaultSuffix is appended to output basenames, marking the
	// background-removed variants.
	DefaultSuffix = "_sem_fundo"

	// minImageSize 低于该字节数的文件直接视为损坏
	minImageSize = 100
)

// SupportedExtensions 支持的图片格式 (lower case, with dot).
var SupportedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".bmp":  {},
	".tiff": {},
	".webp": {},
}

// Config carries the processing knobs. The matting thresholds keep the
// reference defaults of the u2net pipeline.
type Config struct {
	Model        string
	AlphaMatting bool

	ForegroundThreshold int
	BackgroundThreshold int
	ErodeSize           int

	// MaxEdge downscales the longest edge before inference when > 0.
	// Zero keeps the original resolution.
	MaxEdge int

	Suffix string
}

func DefaultConfig() Config {
	return Config{
		Model:               rembg.DefaultModel,
		AlphaMatting:        true,
		ForegroundThreshold: 240,
		BackgroundThreshold: 10,
		ErodeSize:           10,
		Suffix:              DefaultSuffix,
	}
}

func (c Config) options() rembg.Options {
	return rembg.Options{
		Model:               c.Model,
		AlphaMatting:        c.AlphaMatting,
		ForegroundThreshold: c.ForegroundThreshold,
		BackgroundThreshold: c.BackgroundThreshold,
		ErodeSize:           c.ErodeSize,
	}
}
