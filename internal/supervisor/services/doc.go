// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package services adapts Cinematch components to suture.Service so the
supervisor tree can start, restart, and stop them.

  - HTTPServerService: runs an *http.Server, shutting it down gracefully
    when the supervisor context is canceled
  - CacheGCService: periodically runs badger value-log GC on the poster
    cache and records the outcome in Prometheus

Each service implements fmt.Stringer so suture logs a readable name.
*/
package services
