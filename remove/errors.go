package remove

import "errors"

// The closed failure set. Anything else escaping the pipeline is wrapped
// and counts as a processing failure.
var (
	ErrMissingInput = errors.New("input path does not exist")
	ErrInvalidImage = errors.New("not a valid image")
)
