// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/movies", "200"))

	RecordAPIRequest("GET", "/api/v1/movies", "200", 15*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/movies", "200"))
	if after-before != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("active requests = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests = %v, want %v", got, before)
	}
}

func TestRecordRecommendation(t *testing.T) {
	tests := []struct {
		name  string
		found bool
		label string
	}{
		{"found", true, "ok"},
		{"not found", false, "not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(RecommendRequests.WithLabelValues(tt.label))
			RecordRecommendation(tt.found, time.Microsecond)
			after := testutil.ToFloat64(RecommendRequests.WithLabelValues(tt.label))
			if after-before != 1 {
				t.Errorf("recommend_requests_total{result=%q} delta = %v, want 1", tt.label, after-before)
			}
		})
	}
}

func TestRecordPosterFetch(t *testing.T) {
	for _, outcome := range []string{"ok", "cache_hit", "no_poster_path", "metadata", "image", "decode", "rejected"} {
		t.Run(outcome, func(t *testing.T) {
			before := testutil.ToFloat64(PosterFetches.WithLabelValues(outcome))
			RecordPosterFetch(outcome, 10*time.Millisecond)
			after := testutil.ToFloat64(PosterFetches.WithLabelValues(outcome))
			if after-before != 1 {
				t.Errorf("poster_fetch_total{outcome=%q} delta = %v, want 1", outcome, after-before)
			}
		})
	}
}

func TestRecordPosterCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(PosterCacheHits)
	misses := testutil.ToFloat64(PosterCacheMisses)

	RecordPosterCacheLookup(true)
	RecordPosterCacheLookup(false)
	RecordPosterCacheLookup(false)

	if got := testutil.ToFloat64(PosterCacheHits) - hits; got != 1 {
		t.Errorf("hits delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(PosterCacheMisses) - misses; got != 2 {
		t.Errorf("misses delta = %v, want 2", got)
	}
}

func TestCircuitBreakerMetrics(t *testing.T) {
	name := "tmdb_test"

	CircuitBreakerState.WithLabelValues(name).Set(2)
	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues(name)); got != 2 {
		t.Errorf("circuit_breaker_state = %v, want 2", got)
	}

	CircuitBreakerRequests.WithLabelValues(name, "rejected").Inc()
	if got := testutil.ToFloat64(CircuitBreakerRequests.WithLabelValues(name, "rejected")); got != 1 {
		t.Errorf("circuit_breaker_requests_total = %v, want 1", got)
	}

	CircuitBreakerTransitions.WithLabelValues(name, "closed", "open").Inc()
	if got := testutil.ToFloat64(CircuitBreakerTransitions.WithLabelValues(name, "closed", "open")); got != 1 {
		t.Errorf("transitions = %v, want 1", got)
	}
}

func TestRecordPosterBatchAndGC(t *testing.T) {
	RecordPosterBatch(5)
	if n := testutil.CollectAndCount(PosterBatchSize); n != 1 {
		t.Errorf("poster_batch_size collected %d series, want 1", n)
	}

	before := testutil.ToFloat64(PosterCacheGCRuns.WithLabelValues("noop"))
	RecordPosterCacheGC("noop")
	if got := testutil.ToFloat64(PosterCacheGCRuns.WithLabelValues("noop")) - before; got != 1 {
		t.Errorf("gc runs delta = %v, want 1", got)
	}
}
