// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"

	_ "github.com/tomtom215/photomap/docs" // Import generated swagger docs
	"github.com/tomtom215/photomap/internal/api"
	"github.com/tomtom215/photomap/internal/config"
	"github.com/tomtom215/photomap/internal/database"
	"github.com/tomtom215/photomap/internal/geocode"
	"github.com/tomtom215/photomap/internal/logging"
	"github.com/tomtom215/photomap/internal/mapview"
	"github.com/tomtom215/photomap/internal/supervisor"
	"github.com/tomtom215/photomap/internal/supervisor/services"
	"github.com/tomtom215/photomap/internal/viewer"
	ws "github.com/tomtom215/photomap/internal/websocket"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("driver", cfg.Database.Driver).
		Str("db_path", cfg.Database.Path).
		Str("adapter", cfg.Map.Adapter).
		Str("geocoder", cfg.Geocoder.BaseURL).
		Msg("Configuration loaded")

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server failed")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run(cfg *config.Config) error {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	geocoder, cacheDB, err := buildGeocoder(&cfg.Geocoder)
	if err != nil {
		return err
	}
	if cacheDB != nil {
		defer func() {
			if err := cacheDB.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing geocode cache")
			}
		}()
	}

	adapters, err := mapview.NewRegistry(&cfg.Map)
	if err != nil {
		return fmt.Errorf("initialize map adapters: %w", err)
	}

	wsHub := ws.NewHub()

	svc := viewer.New(db, geocoder, adapters, viewer.Options{
		CountryHint: cfg.Geocoder.CountryHint,
		TileURL:     cfg.Map.TileURL,
		Notifier:    wsHub,
	})

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	handler := api.NewHandler(svc, db, wsHub, cfg)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridges zerolog to slog for sutureslog.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	if cfg.Database.Watch && db.Path() != database.MemoryPath {
		tree.AddDataService(services.NewDBWatcherService(db.Path(), services.DefaultDebounce, func() {
			gen := svc.Reload()
			logging.Info().Uint64("generation", gen).Msg("Photo database changed on disk, cache invalidated")
		}))
		logging.Info().Str("path", db.Path()).Msg("Database file watcher enabled")
	}

	tree.AddAPIService(services.NewHubService(wsHub))
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

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
	for _, s := range unstopped {
		logging.Warn().Str("service", s.Name).Msg("Service failed to stop within timeout")
	}
	return nil
}

// buildGeocoder assembles client, circuit breaker and the optional
// persistent cache. The returned badger handle is nil when caching is off.
func buildGeocoder(cfg *config.GeocoderConfig) (geocode.Geocoder, *badger.DB, error) {
	var g geocode.Geocoder = geocode.NewBreakerClient(geocode.NewClient(cfg), cfg.Breaker)

	if cfg.CacheDir == "" {
		logging.Info().Msg("Geocode cache disabled (GEOCODER_CACHE_DIR not set)")
		return g, nil, nil
	}

	cacheDB, err := geocode.OpenCacheDB(cfg.CacheDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open geocode cache: %w", err)
	}
	logging.Info().Str("dir", cfg.CacheDir).Dur("ttl", cfg.CacheTTL).Msg("Geocode cache enabled")
	return geocode.NewCachedGeocoder(g, cacheDB, cfg.CacheTTL), cacheDB, nil
}
