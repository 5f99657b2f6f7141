// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veridict Authors

package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridict/veridict/internal/config"
	"github.com/veridict/veridict/internal/logger"
	"github.com/veridict/veridict/models"
)

func newTestClassifier(t *testing.T, serverURL string, realLabelID int) *httpClassifier {
	t.Helper()
	cfg := config.Classifier{
		Address:        serverURL,
		RealLabelID:    realLabelID,
		RequestTimeout: 5 * time.Second,
	}

	c, err := NewHTTPClassifier(cfg, logger.Nop())
	require.NoError(t, err)
	return c.(*httpClassifier)
}

func TestNewHTTPClassifier_InvalidAddress(t *testing.T) {
	_, err := NewHTTPClassifier(config.Classifier{Address: "   "}, logger.Nop())
	require.Error(t, err)
}

func TestClassify_NamedLabels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req inferenceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "breaking story", req.Inputs)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[[{"label":"FAKE","score":0.92},{"label":"REAL","score":0.08}]]`))
	}))
	defer srv.Close()

	c := newTestClassifier(t, srv.URL, 1)
	got, err := c.Classify(context.Background(), "breaking story")

	require.NoError(t, err)
	assert.Equal(t, models.StatusFake, got.Status)
	assert.Equal(t, 92, got.Confidence)
}

func TestClassify_GenericLabelsFallBackToRealID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[[{"label":"LABEL_0","score":0.35},{"label":"LABEL_1","score":0.65}]]`))
	}))
	defer srv.Close()

	c := newTestClassifier(t, srv.URL, 1)
	got, err := c.Classify(context.Background(), "some text")

	require.NoError(t, err)
	assert.Equal(t, models.StatusReal, got.Status)
	assert.Equal(t, 65, got.Confidence)
}

func TestClassify_FlatResponseShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"label":"LABEL_0","score":0.81},{"label":"LABEL_1","score":0.19}]`))
	}))
	defer srv.Close()

	c := newTestClassifier(t, srv.URL, 1)
	got, err := c.Classify(context.Background(), "some text")

	require.NoError(t, err)
	assert.Equal(t, models.StatusFake, got.Status)
	assert.Equal(t, 81, got.Confidence)
}

func TestClassify_PositionalIDWhenLabelHasNoDigits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[[{"label":"alpha","score":0.30},{"label":"beta","score":0.70}]]`))
	}))
	defer srv.Close()

	c := newTestClassifier(t, srv.URL, 1)
	got, err := c.Classify(context.Background(), "some text")

	require.NoError(t, err)
	assert.Equal(t, models.StatusReal, got.Status)
}

func TestClassify_TruncatesLongInput(t *testing.T) {
	var received string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req inferenceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		received = req.Inputs
		_, _ = w.Write([]byte(`[[{"label":"REAL","score":0.9}]]`))
	}))
	defer srv.Close()

	c := newTestClassifier(t, srv.URL, 1)
	_, err := c.Classify(context.Background(), strings.Repeat("я", maxInputRunes+100))

	require.NoError(t, err)
	assert.Equal(t, maxInputRunes, len([]rune(received)))
}

func TestClassify_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClassifier(t, srv.URL, 1)
	_, err := c.Classify(context.Background(), "some text")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInferenceFailed)
}

func TestClassify_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := newTestClassifier(t, srv.URL, 1)
	_, err := c.Classify(context.Background(), "some text")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInferenceFailed)
}

func TestClassify_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"oops": true}`))
	}))
	defer srv.Close()

	c := newTestClassifier(t, srv.URL, 1)
	_, err := c.Classify(context.Background(), "some text")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInferenceFailed)
}

func TestClassify_EmptyDistribution(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[[]]`))
	}))
	defer srv.Close()

	c := newTestClassifier(t, srv.URL, 1)
	_, err := c.Classify(context.Background(), "some text")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInferenceFailed)
	assert.ErrorIs(t, err, ErrEmptyPrediction)
}

func TestDecodeScores_EmptyBatch(t *testing.T) {
	_, err := decodeScores([]byte(`[]`))
	assert.ErrorIs(t, err, ErrEmptyPrediction)
}
