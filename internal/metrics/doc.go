// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package metrics defines the Prometheus metrics exported by Cinematch.

All collectors are registered on the default registry through promauto and
exposed at /metrics by the API router.

# Metric Families

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests

Recommendations:
  - recommend_requests_total{result}: result is "ok" or "not_found"
  - recommend_duration_seconds

Posters:
  - poster_fetch_total{outcome}: "ok", "cache_hit", or the failing stage
  - poster_fetch_duration_seconds
  - poster_batch_size

Poster cache:
  - poster_cache_hits_total, poster_cache_misses_total
  - poster_cache_gc_runs_total{result}

Circuit breaker:
  - circuit_breaker_state{name} (0=closed, 1=half-open, 2=open)
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

# Example Alert

	- alert: TMDBBreakerOpen
	  expr: circuit_breaker_state{name="tmdb"} > 1
	  for: 2m
	  annotations:
	    summary: "TMDB circuit breaker open, posters are placeholders"
*/
package metrics
