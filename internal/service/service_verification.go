package service

import (
	"context"
	"fmt"
	"time"

	"github.com/veridict/veridict/internal/classifier"
	"github.com/veridict/veridict/internal/logger"
	"github.com/veridict/veridict/internal/store"
	"github.com/veridict/veridict/internal/utils"
	"github.com/veridict/veridict/models"
)

const (
	// titleRuneLimit caps the derived title of a free-text submission.
	titleRuneLimit = 80

	// snippetRuneLimit caps the stored preview of a free-text submission.
	snippetRuneLimit = 500

	// defaultHistoryLimit is applied when the caller does not cap the
	// history listing.
	defaultHistoryLimit = 100

	// maxHistoryLimit caps the limit query parameter. The value reaches a
	// slice allocation in the repository, so it must never be trusted raw.
	maxHistoryLimit = 1000

	// credibilityOffset is subtracted from the model confidence to produce
	// the displayed credibility score.
	credibilityOffset = 5
)

// Static analysis strings attached to every verification. The model exposes
// no per-request explanation, so these are fixed display values, not
// computed findings.
const (
	analysisLanguagePattern   = "Neutral tone"
	analysisFactCheck         = "Matched with sources A, B, C"
	analysisSourceReliability = "High"
)

// direct text submissions have no URL to display as their source.
const directTextSource = "Direct text submission"

// fallback title for submissions whose text is somehow blank after selection.
const fallbackTitle = "Text submission"

// verificationService is the concrete implementation of VerificationService.
// It orchestrates the classifier call, synthesises the verification record,
// and persists it best-effort through a VerificationRepository.
type verificationService struct {
	verificationRepository store.VerificationRepository
	classifier             classifier.Classifier
	uuidGenerator          *utils.UUIDGenerator

	logger *logger.Logger
}

// NewVerificationService constructs a VerificationService wired to the given
// repository and classifier.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewVerificationService(verificationRepository store.VerificationRepository, clf classifier.Classifier, logger *logger.Logger) VerificationService {
	return &verificationService{
		verificationRepository: verificationRepository,
		classifier:             clf,
		uuidGenerator:          utils.NewUUIDGenerator(),
		logger:                 logger,
	}
}

// Verify classifies the submitted content and returns the full verification
// record.
//
// The operation is two independently-failable steps with an explicit policy:
// compute the result, then attempt to persist it. A persistence failure is
// logged and swallowed, never surfaced to the client, so the computed verdict
// survives a database outage.
//
// Returns the verification or:
//   - ErrInvalidDataProvided if neither text nor url is present.
//   - A wrapped classifier error (see classifier.ErrInferenceFailed) if the
//     model call fails.
func (v *verificationService) Verify(ctx context.Context, req models.VerifyRequest) (models.Verification, error) {
	log := logger.FromContext(ctx)

	content := req.Content()
	if content == "" {
		log.Error().Msg("verify request carries neither text nor url")
		return models.Verification{}, ErrInvalidDataProvided
	}

	prediction, err := v.classifier.Classify(ctx, content)
	if err != nil {
		log.Err(err).Msg("classification failed")
		return models.Verification{}, fmt.Errorf("classification failed: %w", err)
	}

	record := v.buildRecord(req, content, prediction)

	if insertErr := v.verificationRepository.InsertVerification(ctx, record); insertErr != nil {
		log.Err(insertErr).
			Str("verification_id", record.ID).
			Msg("verification not persisted, returning computed result anyway")
	}

	return record, nil
}

// History lists past verifications newest first, reshaped for display.
//
// A storage failure degrades to an empty listing: history is a convenience
// view and must not fail a page render because the database is away.
func (v *verificationService) History(ctx context.Context, req models.HistoryRequest) ([]models.VerificationSummary, error) {
	log := logger.FromContext(ctx)

	if req.Limit == 0 {
		req.Limit = defaultHistoryLimit
	}
	if req.Limit > maxHistoryLimit {
		req.Limit = maxHistoryLimit
	}

	records, err := v.verificationRepository.ListVerifications(ctx, req)
	if err != nil {
		log.Err(err).
			Str("user_id", req.UserID).
			Msg("history listing failed, degrading to empty")
		return []models.VerificationSummary{}, nil
	}

	summaries := make([]models.VerificationSummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, models.SummaryOf(record))
	}

	return summaries, nil
}

// buildRecord synthesises the persisted verification from the request, the
// scored content, and the model's prediction.
func (v *verificationService) buildRecord(req models.VerifyRequest, content string, prediction models.Prediction) models.Verification {
	now := time.Now().UTC()

	inputType := req.InputType
	if inputType != models.InputTypeURL {
		inputType = models.InputTypeText
	}

	record := models.Verification{
		ID:             v.uuidGenerator.Generate(),
		Title:          deriveTitle(req, inputType),
		Source:         directTextSource,
		Status:         prediction.Status,
		Confidence:     prediction.Confidence,
		BlockchainHash: utils.CosmeticHash(content, now),
		Analysis: models.Analysis{
			CredibilityScore:  clamp(prediction.Confidence-credibilityOffset, 0, 100),
			LanguagePattern:   analysisLanguagePattern,
			FactCheck:         analysisFactCheck,
			SourceReliability: analysisSourceReliability,
		},
		InputType: inputType,
		Timestamp: now,
	}

	if inputType == models.InputTypeURL {
		record.Source = req.URL
	}

	if req.UserID != "" {
		userID := req.UserID
		record.UserID = &userID
	}

	if req.URL != "" {
		url := req.URL
		record.InputURL = &url
	}

	if req.Text != "" {
		snippet := truncateRunes(req.Text, snippetRuneLimit)
		record.InputSnippet = &snippet
	}

	return record
}

// deriveTitle picks the display title: the URL itself for link submissions,
// the leading runes of the text otherwise.
func deriveTitle(req models.VerifyRequest, inputType models.InputType) string {
	if inputType == models.InputTypeURL {
		return req.URL
	}
	if req.Text != "" {
		return truncateRunes(req.Text, titleRuneLimit)
	}
	return fallbackTitle
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

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
