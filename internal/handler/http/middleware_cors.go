package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS allows any origin. The API is expected to sit behind a dev proxy
// or be called directly from a browser frontend on another port.
var withCORS = cors.Handler(cors.Options{
	AllowedOrigins:   []string{"*"},
	AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	AllowedHeaders:   []string{"Accept", "Content-Type", "X-Trace-ID"},
	AllowCredentials: false,
	MaxAge:           300,
})
