// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

// Package main is the entry point for the RecipeVault server.
//
// RecipeVault is a self-hosted personal recipe catalog: a shared read-only
// recipe set plus one private set and one favorites list per registered user,
// with ingredient search and random-pick helpers, all persisted as flat JSON
// files under a single data directory.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: environment variables over an optional YAML file over
//     built-in defaults (Koanf v2)
//  2. Store: the JSON data directory (recipes.json, users.json, per-user files)
//  3. Services: accounts (Argon2id + JWT sessions) and the recipe catalog
//  4. HTTP Server: chi REST API under /api/v1 plus /metrics
//
// # Configuration
//
// Key environment variables (see internal/config for the full list):
//   - HTTP_HOST / HTTP_PORT: bind address (default 0.0.0.0:8176)
//   - DATA_DIR: directory for the JSON collections (default ./data)
//   - JWT_SECRET: 32+ character secret for session tokens (required)
//   - SESSION_TIMEOUT: token lifetime (default 24h)
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting new connections and waits up to 10 seconds for in-flight
// requests to complete.
//
// # Example Usage
//
//	export JWT_SECRET=$(openssl rand -base64 32)
//	export DATA_DIR=/var/lib/recipevault
//	./recipevault
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/recipevault/internal/accounts"
	"github.com/tomtom215/recipevault/internal/api"
	"github.com/tomtom215/recipevault/internal/auth"
	"github.com/tomtom215/recipevault/internal/catalog"
	"github.com/tomtom215/recipevault/internal/config"
	"github.com/tomtom215/recipevault/internal/logging"
	"github.com/tomtom215/recipevault/internal/metrics"
	"github.com/tomtom215/recipevault/internal/store"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	logging.Info().
		Str("version", version).
		Str("data_dir", cfg.Data.Dir).
		Msg("Starting RecipeVault")

	st, err := store.New(cfg.Data.Dir)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize data directory")
	}

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize JWT manager")
	}

	accountsSvc := accounts.NewService(st, jwtManager)
	catalogSvc := catalog.NewService(st)

	router := api.NewRouter(
		api.NewHandlers(accountsSvc, catalogSvc, version),
		api.NewChiMiddleware(&cfg.Security),
		auth.NewMiddleware(jwtManager),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	metrics.SetAppInfo(version, runtime.Version())
	go trackUptime()

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server failed")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed, forcing close")
		_ = server.Close()
	}

	logging.Info().Msg("Application stopped gracefully")
}

// trackUptime feeds the uptime gauge once a minute.
func trackUptime() {
	started := time.Now()
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		metrics.AppUptime.Set(time.Since(started).Seconds())
	}
}
