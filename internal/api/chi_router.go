// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/newsrec/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router. A nil mw uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// Setup builds the HTTP handler.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(router.chiMiddleware.CORS())
	r.Use(APISecurityHeaders())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusNotFound, ErrCodeNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed")
	})

	h := router.handler

	r.Get("/", h.Root)
	r.Handle("/metrics", promhttp.Handler())
	r.With(router.chiMiddleware.RateLimitCustom(RateLimitHealth)).Get("/health", h.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.Compression)

		r.Post("/recommend", h.Recommend)
		r.With(router.chiMiddleware.RateLimitCustom(RateLimitSummarize)).Post("/summarize", h.Summarize)
		r.Get("/news", h.News)
		r.Get("/news/trending", h.Trending)
		r.Get("/scrape", h.Scrape)
		r.Get("/health", h.Health)
	})

	// Unversioned routes kept for existing clients.
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Post("/recommend", h.Recommend)
		r.With(router.chiMiddleware.RateLimitCustom(RateLimitSummarize)).Post("/summarize", h.Summarize)
	})

	return r
}
