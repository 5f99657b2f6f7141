package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/veridict/veridict/internal/config"
	"github.com/veridict/veridict/internal/logger"
	"github.com/veridict/veridict/internal/utils"
	"github.com/veridict/veridict/models"
)

// maxInputRunes caps the text sent to the model. Longer inputs are truncated
// on a rune boundary so multi-byte characters are never split.
const maxInputRunes = 4096

// classScore is one entry of the model's probability distribution.
type classScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// inferenceRequest is the payload accepted by the model endpoint.
type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

type httpClassifier struct {
	client      *utils.HTTPClient
	realLabelID int

	logger *logger.Logger
}

// NewHTTPClassifier constructs an HTTP implementation of [Classifier].
// It normalises and validates the model endpoint URL from cfg.Address and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if cfg.Address is empty or cannot be parsed as a valid
// URL.
func NewHTTPClassifier(cfg config.Classifier, logger *logger.Logger) (Classifier, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid classifier address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpClassifier{
		client:      client,
		realLabelID: cfg.RealLabelID,
		logger:      logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Classify implements [Classifier]. It POSTs the (rune-truncated) text to the
// model endpoint, takes the arg-max entry of the returned distribution, and
// resolves it into a verdict via the lexicon-then-id policy.
//
// Any transport failure, non-2xx status, or undecodable body is wrapped in
// [ErrInferenceFailed].
func (h *httpClassifier) Classify(ctx context.Context, text string) (models.Prediction, error) {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(inferenceRequest{Inputs: truncateRunes(text, maxInputRunes)}).
		Post("/")
	if err != nil {
		log.Err(err).
			Str("func", "httpClassifier.Classify").
			Msg("model request failed")
		return models.Prediction{}, fmt.Errorf("%w: %w", ErrInferenceFailed, err)
	}
	if resp.IsError() {
		log.Error().
			Str("func", "httpClassifier.Classify").
			Int("status", resp.StatusCode()).
			Msg("model returned an error status")
		return models.Prediction{}, fmt.Errorf("%w: model endpoint returned %d", ErrInferenceFailed, resp.StatusCode())
	}

	scores, err := decodeScores(resp.Body())
	if err != nil {
		log.Err(err).
			Str("func", "httpClassifier.Classify").
			Msg("failed to decode model response")
		return models.Prediction{}, fmt.Errorf("%w: %w", ErrInferenceFailed, err)
	}

	return h.resolve(scores), nil
}

// decodeScores accepts both response shapes seen in the wild: a pipeline
// batch ([[{label, score}]]) and a bare distribution ([{label, score}]).
func decodeScores(body []byte) ([]classScore, error) {
	var batch [][]classScore
	if err := json.Unmarshal(body, &batch); err == nil {
		if len(batch) == 0 || len(batch[0]) == 0 {
			return nil, ErrEmptyPrediction
		}
		return batch[0], nil
	}

	var flat []classScore
	if err := json.Unmarshal(body, &flat); err != nil {
		return nil, fmt.Errorf("unexpected response shape: %w", err)
	}
	if len(flat) == 0 {
		return nil, ErrEmptyPrediction
	}
	return flat, nil
}

// resolve picks the arg-max class and maps it to a verdict. When the label
// name carries no trailing class id, the entry's position in the distribution
// is used as the id for the configured-id fallback.
func (h *httpClassifier) resolve(scores []classScore) models.Prediction {
	best := 0
	for i := range scores {
		if scores[i].Score > scores[best].Score {
			best = i
		}
	}

	top := scores[best]
	predictedID := parseLabelID(top.Label, best)

	return models.Prediction{
		Status:     resolveStatus(top.Label, predictedID, h.realLabelID),
		Confidence: int(top.Score * 100),
	}
}

func truncateRunes(s string, limit int) string {
	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}
	return s
}
