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

	router.Get("/", h.index)
	router.Get("/logo", h.logo)

	router.Route("/api", func(r chi.Router) {
		r.Get("/addons", h.listAddons)
		r.Post("/addons", h.proposeAddons)
		r.Get("/changes/{changeID}", h.changeStatus)
	})

	return router
}
