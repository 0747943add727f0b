// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

/*
Package middleware provides HTTP middleware components for the API server.

Key Components:

  - RequestID: UUID-based request tracking, propagated into the logging context
  - PrometheusMetrics: request count, latency and in-flight instrumentation
  - Compression: gzip for clients that accept it
  - AccessLog: one structured log event per request

All middleware use the standard func(http.Handler) http.Handler shape and
compose with chi:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)

PrometheusMetrics labels requests by chi route pattern rather than raw path,
so query strings and path parameters do not create new series.
*/
package middleware
