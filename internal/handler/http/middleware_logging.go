package http

import (
	"net/http"
	"time"

	"github.com/veridict/veridict/internal/logger"
)

// withLogging emits one access-log line per request: method, uri, status,
// response size, and wall time. It expects withTraceID to have already bound
// a correlated logger to the request context.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
