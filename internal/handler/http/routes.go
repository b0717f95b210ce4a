package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)
	router.Use(withGZip)

	router.Get("/", h.welcome)
	router.Get("/health", h.health)

	router.Route("/api", func(r chi.Router) {
		r.Get("/messages", h.listMessages)
		r.Post("/messages", h.createMessage)
		r.Get("/users", h.listUsers)
		r.Post("/users", h.createUser)
		r.Get("/users/{id}", h.getUser)
	})

	return router
}
