// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package main is the entry point for the Cinematch server.

Cinematch serves content-based movie recommendations from two offline-built
artifacts: a movie catalog and a precomputed item-to-item similarity matrix.
Each recommendation can be decorated with a poster fetched from TMDB.

# Application Architecture

	RootSupervisor ("cinematch")
	├── DataSupervisor ("data-layer")
	│   └── Poster cache GC (only with the on-disk cache)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and an optional YAML file
 2. Logging: zerolog with JSON/console output modes
 3. Artifacts: catalog and similarity matrix, validated against each other
 4. Recommender: top-K lookup over the similarity rows
 5. Posters: cache store, TMDB client behind a circuit breaker
 6. Supervisor Tree: Suture v4 process supervision
 7. HTTP Server: Chi router with middleware stack

Startup fails if the artifacts cannot be loaded. A missing or failing TMDB
never prevents startup; posters degrade to placeholders.

# Configuration

Commonly used environment variables:
  - CATALOG_PATH, SIMILARITY_PATH: artifact locations (.json or .msgpack)
  - TMDB_ENABLED, TMDB_BEARER_TOKEN: poster retrieval
  - RECOMMEND_K: number of recommendations (default: 5)
  - POSTER_CACHE_ENABLED, POSTER_CACHE_PATH: on-disk poster cache
  - HTTP_PORT: listen port (default: 8501)

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and drains in-flight requests, then the poster cache is closed.
*/
package main
