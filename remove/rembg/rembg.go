package rembg

import (
	"context"
)

const DefaultModel = "u2net"

// Options are the tuning knobs forwarded to the segmentation engine.
// The matting thresholds are opaque constants of the model, not derived here.
type Options struct {
	Model        string
	AlphaMatting bool
	// Only consulted when AlphaMatting is set.
	ForegroundThreshold int
	BackgroundThreshold int
	ErodeSize           int
}

func DefaultOptions() Options {
	return Options{
		Model:               DefaultModel,
		AlphaMatting:        true,
		ForegroundThreshold: 240,
		BackgroundThreshold: 10,
		ErodeSize:           10,
	}
}

// Engine removes the background from an encoded image and returns the
// processed bytes. Implementations must report on malformed input.
type Engine interface {
	Remove(ctx context.Context, img []byte, opts Options) ([]byte, error)
	Ping(ctx context.Context) error
}
