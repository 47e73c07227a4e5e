// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"time"
)

// HealthLive handles liveness probes. It succeeds while the process serves.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probes. The service is ready once a
// non-empty catalog is loaded.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	catalogSize := h.recommender.Index().Len()
	ready := catalogSize > 0

	data := map[string]interface{}{
		"ready":           ready,
		"catalog_size":    catalogSize,
		"posters_enabled": h.posters.Enabled(),
		"uptime":          time.Since(h.startTime).Seconds(),
	}

	rw := NewResponseWriter(w, r)
	if !ready {
		rw.ErrorWithData(http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Catalog is empty", nil, data)
		return
	}
	rw.Success(data)
}
