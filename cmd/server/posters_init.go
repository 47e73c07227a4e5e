// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"fmt"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/poster"
)

// PosterComponents holds the poster pipeline and the resources it owns.
type PosterComponents struct {
	Fetcher *poster.Fetcher

	// Store is nil when caching is disabled.
	Store cache.PosterStore

	// Disk is set only for the badger-backed cache, which needs periodic GC.
	Disk *cache.BadgerStore
}

// Close releases the poster cache.
func (p *PosterComponents) Close() {
	if p.Store == nil {
		return
	}
	if err := p.Store.Close(); err != nil {
		logging.Warn().Err(err).Msg("Failed to close poster cache")
	}
}

// initPosters builds the cache store and TMDB source from configuration.
// A disabled TMDB yields a fetcher that serves placeholders only.
func initPosters(cfg *config.Config) (*PosterComponents, error) {
	pc := &PosterComponents{}

	switch {
	case cfg.PosterCache.Enabled:
		store, err := cache.OpenBadgerStore(cfg.PosterCache.Path, cfg.PosterCache.TTL)
		if err != nil {
			return nil, fmt.Errorf("open poster cache at %s: %w", cfg.PosterCache.Path, err)
		}
		pc.Store = store
		pc.Disk = store
		logging.Info().Str("path", cfg.PosterCache.Path).Dur("ttl", cfg.PosterCache.TTL).Msg("Poster disk cache opened")
	case cfg.PosterCache.MemoryEntries > 0:
		pc.Store = cache.NewLRUStore(cfg.PosterCache.MemoryEntries, cfg.PosterCache.TTL)
		logging.Info().Int("entries", cfg.PosterCache.MemoryEntries).Msg("Poster memory cache enabled")
	default:
		logging.Info().Msg("Poster cache disabled")
	}

	var source poster.Source
	if cfg.TMDB.Enabled {
		client := poster.NewTMDBClient(poster.TMDBConfig{
			APIBaseURL:   cfg.TMDB.APIBaseURL,
			ImageBaseURL: cfg.TMDB.ImageBaseURL,
			BearerToken:  cfg.TMDB.BearerToken,
			Language:     cfg.TMDB.Language,
			Timeout:      cfg.TMDB.Timeout,
			RateLimit:    cfg.TMDB.RateLimit,
			RateBurst:    cfg.TMDB.RateBurst,
		})
		source = poster.NewBreakerSource(client, poster.BreakerConfig{
			Name:     "tmdb",
			Interval: cfg.TMDB.BreakerInterval,
			Timeout:  cfg.TMDB.BreakerTimeout,
		})
		logging.Info().Str("api", cfg.TMDB.APIBaseURL).Msg("TMDB poster source enabled")
	} else {
		logging.Info().Msg("TMDB disabled, posters will be placeholders")
	}

	pc.Fetcher = poster.NewFetcher(source, pc.Store)
	return pc, nil
}
