// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinematch/internal/logging"
)

// DefaultSlowThreshold is the latency above which requests log at warn.
// Recommendation pages wait on up to five poster fetches.
const DefaultSlowThreshold = 5 * time.Second

// AccessLog logs every request at debug and requests slower than threshold
// at warn. A non-positive threshold disables the slow-request warning.
func AccessLog(threshold time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapper := newStatusRecorder(w)

			next.ServeHTTP(wrapper, r)

			duration := time.Since(start)
			logger := logging.Ctx(r.Context())

			event := logger.Debug()
			msg := "Request completed"
			if threshold > 0 && duration > threshold {
				event = logger.Warn().Dur("threshold", threshold)
				msg = "Slow request detected"
			}

			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", wrapper.statusCode).
				Dur("duration", duration).
				Msg(msg)
		})
	}
}
