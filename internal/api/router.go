// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router sets up HTTP routes using the chi router.
type Router struct {
	handler *Handler
	config  *RouterConfig
}

// NewRouter creates a Router. A nil config means DefaultRouterConfig.
func NewRouter(handler *Handler, config *RouterConfig) *Router {
	if config == nil {
		config = DefaultRouterConfig()
	}
	return &Router{handler: handler, config: config}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied in order
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.Recoverer)
	r.Use(RequestLogging())

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).NotFound("route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).Error(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	})

	writeLimit := router.config.WriteRateLimit()

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.config.CORS())
		r.Use(APISecurityHeaders())
		r.Use(PrometheusMetrics())
		if router.config.Timeout > 0 {
			r.Use(chimiddleware.Timeout(router.config.Timeout))
		}

		r.Get("/health", router.handler.Health)

		r.Route("/movies", func(r chi.Router) {
			r.Get("/", router.handler.ListMovies)
			r.With(writeLimit).Post("/", router.handler.CreateMovie)
			r.Get("/{id}", router.handler.GetMovie)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", router.handler.ListUsers)
			r.With(writeLimit).Post("/", router.handler.CreateUser)
			r.Get("/{id}", router.handler.GetUser)
			r.Get("/{id}/recommendations", router.handler.GetRecommendations)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
