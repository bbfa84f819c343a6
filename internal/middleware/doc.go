// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

/*
Package middleware provides the HTTP middleware shared by the API router.

All middleware uses the func(http.Handler) http.Handler shape so it plugs
into chi's r.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)          // X-Request-ID plus logging context
	r.Use(middleware.PrometheusMetrics)  // openday_api_* collectors
	r.Use(middleware.AccessLog(500 * time.Millisecond))

Key Components:

  - RequestID: reuses or generates a UUID request ID, echoes it in the
    response and seeds the logging context with request and correlation IDs
  - PrometheusMetrics: request totals, latency and in-flight gauge; the
    endpoint label is the chi route pattern to keep cardinality bounded
  - AccessLog: one zerolog line per request, warn for slow requests and
    error for 5xx responses

Gzip, CORS and rate limiting come from chi/middleware, go-chi/cors and
go-chi/httprate respectively and are wired in internal/api.
*/
package middleware
