// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional config file, and environment variables.
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load configuration")
//	}
//	idx, err := catalog.Load(cfg.Artifacts.CatalogPath, cfg.Artifacts.SimilarityPath)
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Artifacts   ArtifactsConfig   `koanf:"artifacts"`
	TMDB        TMDBConfig        `koanf:"tmdb"`
	Recommend   RecommendConfig   `koanf:"recommend"`
	PosterCache PosterCacheConfig `koanf:"poster_cache"`
	Security    SecurityConfig    `koanf:"security"`
	Logging     LoggingConfig     `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development" or "production"
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ArtifactsConfig points at the offline-built catalog and similarity files.
// The format of each file is chosen by its extension.
type ArtifactsConfig struct {
	CatalogPath    string `koanf:"catalog_path"`
	SimilarityPath string `koanf:"similarity_path"`
}

// TMDBConfig holds settings for the remote movie metadata and image API.
type TMDBConfig struct {
	Enabled      bool          `koanf:"enabled"`
	APIBaseURL   string        `koanf:"api_base_url"`
	ImageBaseURL string        `koanf:"image_base_url"`
	BearerToken  string        `koanf:"bearer_token"`
	Language     string        `koanf:"language"`
	Timeout      time.Duration `koanf:"timeout"` // applies to each remote call separately

	// Outbound rate limit (token bucket)
	RateLimit float64 `koanf:"rate_limit"`
	RateBurst int     `koanf:"rate_burst"`

	// Circuit breaker windows
	BreakerInterval time.Duration `koanf:"breaker_interval"`
	BreakerTimeout  time.Duration `koanf:"breaker_timeout"`
}

// RecommendConfig holds recommendation settings
type RecommendConfig struct {
	K int `koanf:"k"`
}

// PosterCacheConfig configures poster caching. With Enabled the cache is a
// persistent BadgerDB at Path; otherwise an in-memory LRU of MemoryEntries
// posters is used (0 disables caching).
type PosterCacheConfig struct {
	Enabled       bool          `koanf:"enabled"`
	MemoryEntries int           `koanf:"memory_entries"`
	Path          string        `koanf:"path"`
	TTL           time.Duration `koanf:"ttl"`
	GCInterval    time.Duration `koanf:"gc_interval"`
}

// SecurityConfig holds inbound rate limiting and CORS settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error
	Format string `koanf:"format"` // json or console
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, config file and environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
