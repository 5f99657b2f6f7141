// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veridict Authors

package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/veridict/veridict/internal/classifier"
	"github.com/veridict/veridict/internal/service"
	"github.com/veridict/veridict/models"
)

func sampleRecord() models.Verification {
	return models.Verification{
		ID:             "v-1",
		Title:          "breaking story",
		Source:         "Direct text submission",
		Status:         models.StatusFake,
		Confidence:     88,
		BlockchainHash: "0xdeadbeefdeadbeefdeadbeefdeadbeef...",
		Analysis: models.Analysis{
			CredibilityScore:  83,
			LanguagePattern:   "Neutral tone",
			FactCheck:         "Matched with sources A, B, C",
			SourceReliability: "High",
		},
		InputType: models.InputTypeText,
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// ─────────────────────────────────────────────
// verify
// ─────────────────────────────────────────────

func TestVerify_ReturnsVerdictWithoutIdentityFields(t *testing.T) {
	h, _, verification := newTestHandler(t)

	verification.EXPECT().
		Verify(gomock.Any(), models.VerifyRequest{InputType: models.InputTypeText, Text: "breaking story"}).
		Return(sampleRecord(), nil)

	body := jsonBody(t, models.VerifyRequest{InputType: models.InputTypeText, Text: "breaking story"})
	rec := serveJSON(h, http.MethodPost, "/verify", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.VerifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusFake, resp.Status)
	assert.Equal(t, 88, resp.Confidence)
	assert.Equal(t, 83, resp.Analysis.CredibilityScore)
	assert.NotEmpty(t, resp.BlockchainHash)

	// the persisted record's id is not part of the verify response
	assert.NotContains(t, rec.Body.String(), `"id"`)
}

func TestVerify_BothPrefixesServed(t *testing.T) {
	h, _, verification := newTestHandler(t)

	verification.EXPECT().
		Verify(gomock.Any(), gomock.Any()).
		Return(sampleRecord(), nil).
		Times(2)

	body := jsonBody(t, models.VerifyRequest{InputType: models.InputTypeText, Text: "story"})

	assert.Equal(t, http.StatusOK, serveJSON(h, http.MethodPost, "/verify", body).Code)
	assert.Equal(t, http.StatusOK, serveJSON(h, http.MethodPost, "/api/verify", body).Code)
}

func TestVerify_NoInput(t *testing.T) {
	h, _, verification := newTestHandler(t)

	verification.EXPECT().
		Verify(gomock.Any(), gomock.Any()).
		Return(models.Verification{}, service.ErrInvalidDataProvided)

	rec := serveJSON(h, http.MethodPost, "/verify", jsonBody(t, models.VerifyRequest{}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerify_InferenceFailure(t *testing.T) {
	h, _, verification := newTestHandler(t)

	verification.EXPECT().
		Verify(gomock.Any(), gomock.Any()).
		Return(models.Verification{}, classifier.ErrInferenceFailed)

	rec := serveJSON(h, http.MethodPost, "/verify", jsonBody(t, models.VerifyRequest{InputType: models.InputTypeText, Text: "story"}))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

// ─────────────────────────────────────────────
// verifications
// ─────────────────────────────────────────────

func TestVerifications_PassesQueryParameters(t *testing.T) {
	h, _, verification := newTestHandler(t)

	verification.EXPECT().
		History(gomock.Any(), models.HistoryRequest{UserID: "u-1", Limit: 25}).
		Return([]models.VerificationSummary{{ID: "v-1", Verifier: models.VerifierLabel}}, nil)

	rec := serveJSON(h, http.MethodGet, "/verifications?userId=u-1&limit=25", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.VerificationSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, models.VerifierLabel, got[0].Verifier)
}

func TestVerifications_EmptyHistoryRendersEmptyArray(t *testing.T) {
	h, _, verification := newTestHandler(t)

	verification.EXPECT().
		History(gomock.Any(), models.HistoryRequest{}).
		Return([]models.VerificationSummary{}, nil)

	rec := serveJSON(h, http.MethodGet, "/api/verifications", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestVerifications_InvalidLimit(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := serveJSON(h, http.MethodGet, "/verifications?limit=banana", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
