// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package cache stores downloaded poster image bytes keyed by movie id.
//
// Two PosterStore implementations are provided:
//   - LRUStore: bounded in-memory LRU with TTL, used when no persistent
//     cache is configured
//   - BadgerStore: persistent BadgerDB store with per-entry TTL, enabled
//     with POSTER_CACHE_ENABLED=true
//
// Only successfully downloaded images are stored. Placeholders are produced
// locally and never reach a store.
//
// BadgerStore needs periodic value-log garbage collection; RunGC is driven
// by a supervised service (see internal/supervisor/services).
package cache
