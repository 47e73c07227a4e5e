// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package middleware provides HTTP middleware for the Cinematch server.

All middleware use the func(http.Handler) http.Handler shape so they can be
passed directly to chi's r.Use().

Key Components:

  - RequestID: propagates or generates X-Request-ID and stores it in the
    logging context so component logs carry request_id
  - PrometheusMetrics: request counts, latency, and in-flight gauge labelled
    by chi route pattern
  - AccessLog: per-request debug log line, warn when slower than a threshold
  - Compression: gzip for HTML pages (poster data URIs make them large)

Typical stack:

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.AccessLog(time.Second))
	r.Group(func(r chi.Router) {
	    r.Use(middleware.PrometheusMetrics)
	    r.Use(middleware.Compression)
	    r.Get("/", pageHandler)
	})
*/
package middleware
