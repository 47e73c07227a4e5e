// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/poster"
)

func TestInitPosters(t *testing.T) {
	tests := []struct {
		name        string
		cache       config.PosterCacheConfig
		tmdb        bool
		wantStore   bool
		wantDisk    bool
		wantEnabled bool
	}{
		{name: "everything disabled"},
		{
			name:      "memory cache",
			cache:     config.PosterCacheConfig{MemoryEntries: 16, TTL: time.Hour},
			wantStore: true,
		},
		{
			name:        "disk cache with tmdb",
			cache:       config.PosterCacheConfig{Enabled: true, TTL: time.Hour},
			tmdb:        true,
			wantStore:   true,
			wantDisk:    true,
			wantEnabled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PosterCache: tt.cache}
			if cfg.PosterCache.Enabled {
				cfg.PosterCache.Path = filepath.Join(t.TempDir(), "posters")
			}
			cfg.TMDB = config.TMDBConfig{
				Enabled:      tt.tmdb,
				APIBaseURL:   "http://127.0.0.1:1",
				ImageBaseURL: "http://127.0.0.1:1",
				BearerToken:  "test-token",
				Timeout:      time.Second,
			}

			pc, err := initPosters(cfg)
			if err != nil {
				t.Fatalf("initPosters() error = %v", err)
			}
			defer pc.Close()

			if (pc.Store != nil) != tt.wantStore {
				t.Errorf("Store set = %v, want %v", pc.Store != nil, tt.wantStore)
			}
			if (pc.Disk != nil) != tt.wantDisk {
				t.Errorf("Disk set = %v, want %v", pc.Disk != nil, tt.wantDisk)
			}
			if got := pc.Fetcher.Enabled(); got != tt.wantEnabled {
				t.Errorf("Fetcher.Enabled() = %v, want %v", got, tt.wantEnabled)
			}
		})
	}
}

func TestInitPosters_DisabledServesPlaceholder(t *testing.T) {
	pc, err := initPosters(&config.Config{})
	if err != nil {
		t.Fatalf("initPosters() error = %v", err)
	}
	defer pc.Close()

	p := pc.Fetcher.FetchPoster(context.Background(), 42)
	if !p.Placeholder {
		t.Error("expected placeholder when TMDB is disabled")
	}
	if p.Stage != poster.StageDisabled {
		t.Errorf("Stage = %q, want %q", p.Stage, poster.StageDisabled)
	}
	if p.MovieID != 42 {
		t.Errorf("MovieID = %d, want 42", p.MovieID)
	}
}

func TestInitPosters_BadDiskPath(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{PosterCache: config.PosterCacheConfig{
		Enabled: true,
		// A regular file cannot host a badger directory.
		Path: filepath.Join(dir, "file"),
	}}
	if err := os.WriteFile(cfg.PosterCache.Path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := initPosters(cfg); err == nil {
		t.Fatal("expected error for unusable cache path")
	}
}

func TestMiddlewareConfig(t *testing.T) {
	cfg := &config.Config{Security: config.SecurityConfig{
		RateLimitReqs:     7,
		RateLimitWindow:   time.Second,
		RateLimitDisabled: true,
		CORSOrigins:       []string{"https://example.com"},
	}}

	mw := middlewareConfig(cfg)
	if mw.RateLimitRequests != 7 || mw.RateLimitWindow != time.Second || !mw.RateLimitDisabled {
		t.Errorf("rate limit not mapped: %+v", mw)
	}
	if len(mw.CORSAllowedOrigins) != 1 || mw.CORSAllowedOrigins[0] != "https://example.com" {
		t.Errorf("CORSAllowedOrigins = %v", mw.CORSAllowedOrigins)
	}
	if len(mw.CORSAllowedMethods) == 0 {
		t.Error("expected default CORS methods to be kept")
	}
}
