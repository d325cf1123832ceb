package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
		r.Get("/api/version", h.version)

		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Post("/api/user/logout", h.logout)
	})

	// routes that need a resolved session
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/me", h.me)
		r.Put("/api/user/loan-length", h.updateLoanLength)

		r.Post("/api/items", h.addItem)
		r.Get("/api/items", h.listItems)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
