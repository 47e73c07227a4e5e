// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
)

// GarbageCollector runs one value-log GC pass and reports how many files
// were rewritten. Satisfied by *cache.BadgerStore.
type GarbageCollector interface {
	RunGC(ctx context.Context) (int, error)
}

// DefaultGCInterval is used when a non-positive interval is configured.
const DefaultGCInterval = 10 * time.Minute

// GC outcomes recorded in poster_cache_gc_runs_total.
const (
	gcResultRewritten = "rewritten"
	gcResultNoop      = "noop"
	gcResultError     = "error"
)

// CacheGCService periodically reclaims poster cache disk space. GC errors
// are logged and counted but do not stop the service.
type CacheGCService struct {
	gc       GarbageCollector
	interval time.Duration
	logger   zerolog.Logger
}

// NewCacheGCService creates a GC service running every interval.
func NewCacheGCService(gc GarbageCollector, interval time.Duration) *CacheGCService {
	if interval <= 0 {
		interval = DefaultGCInterval
	}
	return &CacheGCService{
		gc:       gc,
		interval: interval,
		logger:   logging.WithComponent("poster-cache-gc"),
	}
}

// Serve implements suture.Service.
func (s *CacheGCService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("Poster cache GC service starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Poster cache GC service shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

// runOnce performs one GC cycle and records its outcome.
func (s *CacheGCService) runOnce(ctx context.Context) {
	start := time.Now()
	rewritten, err := s.gc.RunGC(ctx)

	switch {
	case err != nil && errors.Is(err, ctx.Err()):
		return
	case err != nil:
		metrics.RecordPosterCacheGC(gcResultError)
		s.logger.Warn().Err(err).Int("rewritten", rewritten).Msg("Poster cache GC failed")
	case rewritten > 0:
		metrics.RecordPosterCacheGC(gcResultRewritten)
		s.logger.Info().Int("rewritten", rewritten).Dur("duration", time.Since(start)).Msg("Poster cache GC reclaimed space")
	default:
		metrics.RecordPosterCacheGC(gcResultNoop)
		s.logger.Debug().Msg("Poster cache GC had nothing to rewrite")
	}
}

// String implements fmt.Stringer for suture logs.
func (s *CacheGCService) String() string {
	return "poster-cache-gc"
}
