// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation lookups",
		},
		[]string{"result"}, // "ok", "not_found"
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Duration of a single recommendation lookup",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
	)

	// Poster Fetch Metrics
	PosterFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poster_fetch_total",
			Help: "Total number of poster fetches by outcome",
		},
		[]string{"outcome"}, // "ok", "cache_hit", "metadata", "no_poster_path", "image", "decode", "rejected", "disabled"
	)

	PosterFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "poster_fetch_duration_seconds",
			Help:    "Duration of a poster fetch including fallback",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		},
	)

	PosterBatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "poster_batch_size",
			Help:    "Number of posters fetched concurrently per batch",
			Buckets: []float64{1, 2, 5, 10, 20, 50},
		},
	)

	// Poster Cache Metrics
	PosterCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "poster_cache_hits_total",
			Help: "Total number of poster cache hits",
		},
	)

	PosterCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "poster_cache_misses_total",
			Help: "Total number of poster cache misses",
		},
	)

	PosterCacheGCRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poster_cache_gc_runs_total",
			Help: "Total number of poster cache value-log GC runs",
		},
		[]string{"result"}, // "rewritten", "noop", "error"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one recommendation lookup.
func RecordRecommendation(found bool, duration time.Duration) {
	result := "ok"
	if !found {
		result = "not_found"
	}
	RecommendRequests.WithLabelValues(result).Inc()
	RecommendDuration.Observe(duration.Seconds())
}

// RecordPosterFetch records the outcome of one poster fetch.
func RecordPosterFetch(outcome string, duration time.Duration) {
	PosterFetches.WithLabelValues(outcome).Inc()
	PosterFetchDuration.Observe(duration.Seconds())
}

// RecordPosterBatch records the size of a concurrent poster batch.
func RecordPosterBatch(size int) {
	PosterBatchSize.Observe(float64(size))
}

// RecordPosterCacheLookup records a poster cache hit or miss.
func RecordPosterCacheLookup(hit bool) {
	if hit {
		PosterCacheHits.Inc()
	} else {
		PosterCacheMisses.Inc()
	}
}

// RecordPosterCacheGC records one value-log GC pass.
func RecordPosterCacheGC(result string) {
	PosterCacheGCRuns.WithLabelValues(result).Inc()
}
