// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// setRequiredEnv sets the minimum environment for a valid configuration.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("CATALOG_PATH", "/data/movies.json")
	t.Setenv("SIMILARITY_PATH", "/data/similarity.msgpack")
	t.Setenv("TMDB_BEARER_TOKEN", "test-token")
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8501 {
		t.Errorf("Server.Port = %d, want 8501", cfg.Server.Port)
	}
	if !cfg.TMDB.Enabled {
		t.Error("TMDB.Enabled should be true by default")
	}
	if cfg.TMDB.BearerToken != "" {
		t.Error("TMDB.BearerToken must be empty by default")
	}
	if cfg.TMDB.APIBaseURL != "https://api.themoviedb.org/3" {
		t.Errorf("TMDB.APIBaseURL = %q", cfg.TMDB.APIBaseURL)
	}
	if cfg.TMDB.ImageBaseURL != "https://image.tmdb.org/t/p/w500" {
		t.Errorf("TMDB.ImageBaseURL = %q", cfg.TMDB.ImageBaseURL)
	}
	if cfg.TMDB.Language != "en-US" {
		t.Errorf("TMDB.Language = %q, want en-US", cfg.TMDB.Language)
	}
	if cfg.TMDB.Timeout != 10*time.Second {
		t.Errorf("TMDB.Timeout = %v, want 10s", cfg.TMDB.Timeout)
	}
	if cfg.Recommend.K != 5 {
		t.Errorf("Recommend.K = %d, want 5", cfg.Recommend.K)
	}
	if cfg.PosterCache.Enabled {
		t.Error("PosterCache.Enabled should be false by default")
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"TMDB_BEARER_TOKEN", "tmdb.bearer_token"},
		{"TMDB_TIMEOUT", "tmdb.timeout"},
		{"CATALOG_PATH", "artifacts.catalog_path"},
		{"SIMILARITY_PATH", "artifacts.similarity_path"},
		{"RECOMMEND_K", "recommend.k"},
		{"POSTER_CACHE_TTL", "poster_cache.ttl"},
		{"HTTP_PORT", "server.port"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},
		{"HOME", ""},
		{"PATH", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := envTransformFunc(tt.input); result != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	defer func() {
		if err := os.Chdir(origDir); err != nil {
			t.Errorf("Failed to restore working directory: %v", err)
		}
	}()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	t.Run("no config file exists", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "")
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		configPath := filepath.Join(tmpDir, "config.yaml")
		if err := os.WriteFile(configPath, []byte("recommend:\n  k: 5\n"), 0o644); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		defer os.Remove(configPath)

		t.Setenv(ConfigPathEnvVar, "")
		if result := findConfigFile(); result != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", result)
		}
	})

	t.Run("CONFIG_PATH takes precedence", func(t *testing.T) {
		customPath := filepath.Join(tmpDir, "custom.yaml")
		if err := os.WriteFile(customPath, []byte("recommend:\n  k: 5\n"), 0o644); err != nil {
			t.Fatalf("Failed to create custom config file: %v", err)
		}
		defer os.Remove(customPath)

		t.Setenv(ConfigPathEnvVar, customPath)
		if result := findConfigFile(); result != customPath {
			t.Errorf("findConfigFile() = %q, want %q", result, customPath)
		}
	})

	t.Run("CONFIG_PATH with non-existent file", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("RECOMMEND_K", "8")
	t.Setenv("TMDB_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.TMDB.BearerToken != "test-token" {
		t.Errorf("TMDB.BearerToken = %q, want test-token", cfg.TMDB.BearerToken)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Recommend.K != 8 {
		t.Errorf("Recommend.K = %d, want 8", cfg.Recommend.K)
	}
	if cfg.TMDB.Timeout != 3*time.Second {
		t.Errorf("TMDB.Timeout = %v, want 3s", cfg.TMDB.Timeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[0] != want[0] || cfg.Security.CORSOrigins[1] != want[1] {
		t.Errorf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}

	// Defaults survive for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.TMDB.Language != "en-US" {
		t.Errorf("TMDB.Language = %q, want en-US (default)", cfg.TMDB.Language)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	configContent := `
artifacts:
  catalog_path: "/srv/movies.msgpack"
  similarity_path: "/srv/similarity.msgpack"

tmdb:
  bearer_token: "file-token"
  language: "de-DE"

server:
  port: 8888

poster_cache:
  enabled: true
  path: "/srv/posters"

logging:
  level: "warn"
`
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Artifacts.CatalogPath != "/srv/movies.msgpack" {
		t.Errorf("Artifacts.CatalogPath = %q", cfg.Artifacts.CatalogPath)
	}
	if cfg.TMDB.BearerToken != "file-token" {
		t.Errorf("TMDB.BearerToken = %q, want file-token", cfg.TMDB.BearerToken)
	}
	if cfg.TMDB.Language != "de-DE" {
		t.Errorf("TMDB.Language = %q, want de-DE", cfg.TMDB.Language)
	}
	if cfg.Server.Port != 8888 {
		t.Errorf("Server.Port = %d, want 8888", cfg.Server.Port)
	}
	if !cfg.PosterCache.Enabled || cfg.PosterCache.Path != "/srv/posters" {
		t.Errorf("PosterCache = %+v", cfg.PosterCache)
	}
	if cfg.PosterCache.TTL != 7*24*time.Hour {
		t.Errorf("PosterCache.TTL = %v, want default 168h", cfg.PosterCache.TTL)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	configContent := `
artifacts:
  catalog_path: "/srv/movies.json"
  similarity_path: "/srv/similarity.json"
tmdb:
  bearer_token: "file-token"
server:
  port: 8888
`
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("TMDB_BEARER_TOKEN", "env-token")
	t.Setenv("HTTP_PORT", "9999")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Artifacts.CatalogPath != "/srv/movies.json" {
		t.Errorf("Artifacts.CatalogPath = %q (from file)", cfg.Artifacts.CatalogPath)
	}
	if cfg.TMDB.BearerToken != "env-token" {
		t.Errorf("TMDB.BearerToken = %q, want env-token (env override)", cfg.TMDB.BearerToken)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999 (env override)", cfg.Server.Port)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		errMsg  string
	}{
		{
			name:    "missing token",
			envVars: map[string]string{"TMDB_BEARER_TOKEN": ""},
			errMsg:  "TMDB_BEARER_TOKEN",
		},
		{
			name:    "missing catalog",
			envVars: map[string]string{"CATALOG_PATH": ""},
			errMsg:  "CATALOG_PATH",
		},
		{
			name:    "unsupported similarity format",
			envVars: map[string]string{"SIMILARITY_PATH": "/data/similarity.pkl"},
			errMsg:  "SIMILARITY_PATH",
		},
		{
			name:    "k out of range",
			envVars: map[string]string{"RECOMMEND_K": "0"},
			errMsg:  "RECOMMEND_K",
		},
		{
			name:    "bad api url",
			envVars: map[string]string{"TMDB_API_BASE_URL": "ftp://example.com"},
			errMsg:  "TMDB_API_BASE_URL",
		},
		{
			name:    "bad log level",
			envVars: map[string]string{"LOG_LEVEL": "loud"},
			errMsg:  "LOG_LEVEL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatal("LoadWithKoanf() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error = %q, want it to mention %s", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestLoadWithKoanfTMDBDisabled(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TMDB_BEARER_TOKEN", "")
	t.Setenv("TMDB_ENABLED", "false")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.TMDB.Enabled {
		t.Error("TMDB.Enabled = true, want false")
	}
}
