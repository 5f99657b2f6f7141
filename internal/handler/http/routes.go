package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init wires the API routes. Every endpoint is mounted both bare and under
// the /api prefix so the server works with and without a frontend proxy
// rewrite in front of it.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withCORS)

	api := func(r chi.Router) {
		r.Post("/verify", h.verify)
		r.Get("/verifications", h.verifications)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.signup)
			r.Post("/login", h.login)
			r.Post("/logout", h.logout)
			r.Get("/me", h.currentUser)
		})
	}

	router.Group(api)
	router.Route("/api", api)

	return router
}
