// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package poster

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
)

// BreakerConfig holds circuit breaker windows.
type BreakerConfig struct {
	Name     string
	Interval time.Duration // count reset period while closed
	Timeout  time.Duration // open period before probing
}

// BreakerSource wraps a Source with circuit breaker protection so a failing
// TMDB degrades to placeholders without waiting on timeouts.
type BreakerSource struct {
	source Source
	cb     *gobreaker.CircuitBreaker[interface{}]
	name   string
}

// Ensure BreakerSource implements Source
var _ Source = (*BreakerSource)(nil)

// NewBreakerSource creates a circuit breaker around source.
// Circuit breaker configuration:
// - Max 3 concurrent requests in half-open state
// - Opens after 60% failure rate with minimum 10 requests
// - 4xx responses and missing poster paths count as successes
func NewBreakerSource(source Source, cfg BreakerConfig) *BreakerSource {
	name := cfg.Name
	if name == "" {
		name = "tmdb"
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Minute
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    interval,
		Timeout:     timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6

			if shouldTrip {
				logging.Warn().
					Str("breaker", name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening TMDB circuit")
			}

			return shouldTrip
		},

		IsSuccessful: isBreakerSuccess,

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &BreakerSource{source: source, cb: cb, name: name}
}

// isBreakerSuccess decides which errors say nothing about TMDB health.
// A caller that goes away cancels its context; that is not a TMDB failure.
func isBreakerSuccess(err error) bool {
	if err == nil || errors.Is(err, ErrNoPosterPath) || errors.Is(err, context.Canceled) {
		return true
	}
	var se *StatusError
	if errors.As(err, &se) && se.ClientError() && se.StatusCode != 429 {
		return true
	}
	return false
}

// IsRejected reports whether err came from an open or saturated breaker.
func IsRejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// execute wraps a TMDB call with circuit breaker protection
func (b *BreakerSource) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := b.cb.Execute(fn)

	if err != nil {
		switch {
		case IsRejected(err):
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
		case isBreakerSuccess(err):
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
		default:
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
			counts := b.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(counts.ConsecutiveFailures))
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)

	return result, nil
}

// PosterPath resolves a poster path with circuit breaker protection
func (b *BreakerSource) PosterPath(ctx context.Context, movieID int64) (string, error) {
	result, err := b.execute(func() (interface{}, error) {
		return b.source.PosterPath(ctx, movieID)
	})
	if err != nil {
		return "", err
	}
	path, ok := result.(string)
	if !ok {
		return "", errors.New("circuit breaker: unexpected result type for PosterPath")
	}
	return path, nil
}

// Image downloads a poster image with circuit breaker protection
func (b *BreakerSource) Image(ctx context.Context, posterPath string) ([]byte, error) {
	result, err := b.execute(func() (interface{}, error) {
		return b.source.Image(ctx, posterPath)
	})
	if err != nil {
		return nil, err
	}
	data, ok := result.([]byte)
	if !ok {
		return nil, errors.New("circuit breaker: unexpected result type for Image")
	}
	return data, nil
}

// State returns the current breaker state as a string.
func (b *BreakerSource) State() string {
	return stateToString(b.cb.State())
}

// stateToFloat converts circuit breaker state to a metric value
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
