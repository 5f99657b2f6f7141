package classifier

import "errors"

var (
	// ErrInferenceFailed signals that the model endpoint could not be
	// reached, returned a non-2xx status, or produced a response the
	// adapter cannot interpret.
	ErrInferenceFailed = errors.New("model inference failed")

	// ErrEmptyPrediction signals a syntactically valid model response
	// that contains no class scores to resolve.
	ErrEmptyPrediction = errors.New("model returned no class scores")
)
