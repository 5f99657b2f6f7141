// Package classifier adapts a pretrained text-classification model into the
// three-valued verdict domain used by the verification service.
//
// The model itself is an external collaborator reached over HTTP; this
// package owns only the label-to-status resolution policy and the transport
// plumbing around it.
package classifier

import (
	"context"

	"github.com/veridict/veridict/models"
)

// Classifier turns raw text into a verdict with a confidence score.
//
// Implementations never emit [models.StatusUncertain]: that value is part of
// the status schema for external overrides, but the resolution policy in this
// package always lands on real or fake.
type Classifier interface {
	// Classify runs text through the model and resolves the predicted class
	// into a [models.Prediction]. Confidence is the arg-max probability
	// scaled to 0..100 and truncated to an integer.
	Classify(ctx context.Context, text string) (models.Prediction, error)
}
