package classifier

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/veridict/veridict/models"
)

// Lexicons for human-readable label names. A label containing any negative
// token resolves to fake, any positive token to real. Negative tokens are
// matched first: "inauthentic" contains "authentic" and must still read as
// fake.
var (
	positiveLexicon = []string{"real", "true", "authentic", "positive"}
	negativeLexicon = []string{"fake", "false", "inauthentic", "negative"}
)

// resolveStatus maps a predicted class onto the verdict domain.
//
// Resolution is a fixed two-branch strategy, in priority order:
//  1. lexicon match on the model's label name (case-insensitive substring,
//     negative tokens before positive ones);
//  2. fallback on class ids: predicted id equal to realLabelID means real,
//     anything else means fake.
func resolveStatus(label string, predictedID, realLabelID int) models.Status {
	lowered := strings.ToLower(label)

	for _, token := range negativeLexicon {
		if strings.Contains(lowered, token) {
			return models.StatusFake
		}
	}
	for _, token := range positiveLexicon {
		if strings.Contains(lowered, token) {
			return models.StatusReal
		}
	}

	if predictedID == realLabelID {
		return models.StatusReal
	}
	return models.StatusFake
}

// parseLabelID extracts the trailing integer from generic label names such
// as "LABEL_1" or "class 3". Returns fallback when the label carries no
// trailing digits.
func parseLabelID(label string, fallback int) int {
	trimmed := strings.TrimRightFunc(label, unicode.IsSpace)

	end := len(trimmed)
	start := end
	for start > 0 && trimmed[start-1] >= '0' && trimmed[start-1] <= '9' {
		start--
	}
	if start == end {
		return fallback
	}

	id, err := strconv.Atoi(trimmed[start:end])
	if err != nil {
		return fallback
	}
	return id
}
