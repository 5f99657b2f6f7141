package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridict/veridict/internal/logger"
	"github.com/veridict/veridict/internal/service"
)

func newBareHandler() *Handler {
	return NewHandler(&service.Services{}, logger.Nop())
}

func TestWithTraceID_GeneratesHeaderWhenAbsent(t *testing.T) {
	h := newBareHandler()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestWithTraceID_EchoesIncomingHeader(t *testing.T) {
	h := newBareHandler()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}

func TestResponseWriter_CapturesStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusTeapot)
	w.WriteHeader(http.StatusOK) // second call must be ignored

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)

	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusTeapot, w.status)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestResponseWriter_ImplicitOKOnWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, err := w.Write([]byte("body"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.status)
}
