// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package config provides centralized configuration management for Cinematch.

Configuration is loaded with Koanf v2 in three layers, each overriding the
previous one:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file (CONFIG_PATH, ./config.yaml, /etc/cinematch/config.yaml)
 3. Environment variables, mapped explicitly by envTransformFunc

Unmapped environment variables are ignored so unrelated process environment
never leaks into the configuration.

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8501)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development or production (default: development)

Artifacts:
  - CATALOG_PATH: Movie catalog file, .json or .msgpack (required)
  - SIMILARITY_PATH: Similarity matrix file, .json or .msgpack (required)

TMDB:
  - TMDB_ENABLED: Fetch posters remotely (default: true)
  - TMDB_BEARER_TOKEN: API read access token (required when enabled)
  - TMDB_API_BASE_URL: Metadata API base (default: https://api.themoviedb.org/3)
  - TMDB_IMAGE_BASE_URL: Image base (default: https://image.tmdb.org/t/p/w500)
  - TMDB_LANGUAGE: Metadata language (default: en-US)
  - TMDB_TIMEOUT: Per-call timeout (default: 10s)
  - TMDB_RATE_LIMIT / TMDB_RATE_BURST: Outbound request rate (default: 40/s, burst 10)
  - TMDB_BREAKER_INTERVAL / TMDB_BREAKER_TIMEOUT: Circuit breaker windows

Recommendations:
  - RECOMMEND_K: Number of recommendations (default: 5)

Poster cache:
  - POSTER_CACHE_ENABLED: Persist posters in BadgerDB (default: false)
  - POSTER_CACHE_MEMORY_ENTRIES: In-memory LRU size when not persisted (default: 256, 0 disables)
  - POSTER_CACHE_PATH, POSTER_CACHE_TTL, POSTER_CACHE_GC_INTERVAL

Security:
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT, CORS_ORIGINS

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Thread Safety

Config is immutable after Load() and safe for concurrent reads.
*/
package config
