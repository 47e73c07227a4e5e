// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/tomtom215/cinematch/internal/logging"
)

// Bounds for validated settings
const (
	minRecommendK = 1
	maxRecommendK = 50

	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateArtifacts(); err != nil {
		return err
	}

	if err := c.validateTMDB(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validatePosterCache(); err != nil {
		return err
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// supportedArtifactExts lists the file extensions the catalog loader understands
var supportedArtifactExts = map[string]bool{
	".json":    true,
	".msgpack": true,
	".mpk":     true,
}

// validateArtifacts validates artifact paths. Existence is checked at load time.
func (c *Config) validateArtifacts() error {
	if c.Artifacts.CatalogPath == "" {
		return fmt.Errorf("CATALOG_PATH is required")
	}
	if c.Artifacts.SimilarityPath == "" {
		return fmt.Errorf("SIMILARITY_PATH is required")
	}
	if !supportedArtifactExts[strings.ToLower(filepath.Ext(c.Artifacts.CatalogPath))] {
		return fmt.Errorf("CATALOG_PATH must end in .json, .msgpack or .mpk")
	}
	if !supportedArtifactExts[strings.ToLower(filepath.Ext(c.Artifacts.SimilarityPath))] {
		return fmt.Errorf("SIMILARITY_PATH must end in .json, .msgpack or .mpk")
	}
	return nil
}

// validateTMDB validates remote poster API configuration (only if enabled)
func (c *Config) validateTMDB() error {
	if !c.TMDB.Enabled {
		return nil
	}

	if c.TMDB.BearerToken == "" {
		return fmt.Errorf("TMDB_BEARER_TOKEN is required when TMDB_ENABLED=true")
	}
	if err := validateBaseURL(c.TMDB.APIBaseURL, "TMDB_API_BASE_URL"); err != nil {
		return err
	}
	if err := validateBaseURL(c.TMDB.ImageBaseURL, "TMDB_IMAGE_BASE_URL"); err != nil {
		return err
	}
	if c.TMDB.Timeout <= 0 {
		return fmt.Errorf("TMDB_TIMEOUT must be positive")
	}
	if c.TMDB.RateLimit <= 0 {
		return fmt.Errorf("TMDB_RATE_LIMIT must be positive")
	}
	if c.TMDB.RateBurst < 1 {
		return fmt.Errorf("TMDB_RATE_BURST must be at least 1")
	}
	if c.TMDB.BreakerTimeout <= 0 {
		return fmt.Errorf("TMDB_BREAKER_TIMEOUT must be positive")
	}
	return nil
}

// validateRecommend validates recommendation settings
func (c *Config) validateRecommend() error {
	if c.Recommend.K < minRecommendK || c.Recommend.K > maxRecommendK {
		return fmt.Errorf("RECOMMEND_K must be between %d and %d", minRecommendK, maxRecommendK)
	}
	return nil
}

// validatePosterCache validates the poster cache (only if enabled)
func (c *Config) validatePosterCache() error {
	if c.PosterCache.MemoryEntries < 0 {
		return fmt.Errorf("POSTER_CACHE_MEMORY_ENTRIES must not be negative")
	}
	if !c.PosterCache.Enabled {
		return nil
	}
	if c.PosterCache.Path == "" {
		return fmt.Errorf("POSTER_CACHE_PATH is required when POSTER_CACHE_ENABLED=true")
	}
	if c.PosterCache.TTL <= 0 {
		return fmt.Errorf("POSTER_CACHE_TTL must be positive")
	}
	if c.PosterCache.GCInterval <= 0 {
		return fmt.Errorf("POSTER_CACHE_GC_INTERVAL must be positive")
	}
	return nil
}

// validateRateLimits validates inbound rate limiting bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	format := strings.ToLower(c.Logging.Format)
	if format != "json" && format != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console")
	}
	return nil
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

// ShouldWarnAboutCORS reports wildcard CORS in production, logged at startup.
func (c *Config) ShouldWarnAboutCORS() bool {
	if !c.IsProduction() {
		return false
	}
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// LoggingSettings converts the logging section into logging.Config.
func (c *Config) LoggingSettings() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Logging.Level
	cfg.Format = c.Logging.Format
	cfg.Caller = c.Logging.Caller
	return cfg
}
