// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/cinematch/internal/api"
	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/supervisor"
	"github.com/tomtom215/cinematch/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logging is not configured yet; the package default writes JSON to stderr.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.LoggingSettings())
	logging.Info().
		Str("env", cfg.Server.Environment).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting Cinematch")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows all origins in production; set CORS_ORIGINS to restrict it")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// === ARTIFACTS ===

	idx, err := catalog.Load(cfg.Artifacts.CatalogPath, cfg.Artifacts.SimilarityPath)
	if err != nil {
		logging.Fatal().Err(err).
			Str("catalog", cfg.Artifacts.CatalogPath).
			Str("similarity", cfg.Artifacts.SimilarityPath).
			Msg("Failed to load recommendation artifacts")
	}

	recommender, err := recommend.NewRecommender(idx, cfg.Recommend.K)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommender")
	}
	logging.Info().Int("movies", idx.Len()).Int("k", recommender.K()).Msg("Recommender ready")

	// === POSTERS ===

	posters, err := initPosters(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize poster pipeline")
	}
	defer posters.Close()

	// === HTTP ===

	handler, err := api.NewHandler(recommender, posters.Fetcher)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create API handler")
	}

	router := api.NewRouter(handler, middlewareConfig(cfg))
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	// === SUPERVISOR TREE ===

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if posters.Disk != nil {
		tree.AddDataService(services.NewCacheGCService(posters.Disk, cfg.PosterCache.GCInterval))
		logging.Info().Dur("interval", cfg.PosterCache.GCInterval).Msg("Poster cache GC service added")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, services.DefaultShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}

// middlewareConfig maps security settings onto the router middleware.
func middlewareConfig(cfg *config.Config) *api.ChiMiddlewareConfig {
	mw := api.DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mw.RateLimitRequests = cfg.Security.RateLimitReqs
	mw.RateLimitWindow = cfg.Security.RateLimitWindow
	mw.RateLimitDisabled = cfg.Security.RateLimitDisabled
	return mw
}
