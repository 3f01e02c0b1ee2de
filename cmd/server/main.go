// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"strconv"
	"syscall"
	"time"

	_ "github.com/tomtom215/wisata/docs" // swagger document for /swagger/*
	"github.com/tomtom215/wisata/internal/api"
	"github.com/tomtom215/wisata/internal/config"
	"github.com/tomtom215/wisata/internal/logging"
	"github.com/tomtom215/wisata/internal/metrics"
	"github.com/tomtom215/wisata/internal/supervisor"
	"github.com/tomtom215/wisata/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// artifactLoadTimeout bounds the startup bundle load.
const artifactLoadTimeout = 2 * time.Minute

func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("artifact_dir", cfg.Artifacts.Dir).
		Bool("verify_checksums", cfg.Artifacts.VerifyChecksums).
		Msg("Starting Wisata with supervisor tree")
	warnProductionSettings(cfg)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), artifactLoadTimeout)
	engine, err := initEngine(loadCtx, cfg, logging.Logger())
	cancelLoad()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load model bundle")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: cfg.Supervisor.FailureThreshold,
		FailureBackoff:   cfg.Supervisor.FailureBackoff,
		ShutdownTimeout:  cfg.Supervisor.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	handler := api.NewHandler(engine, cfg.Recommend, version)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.Security)))

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	server := &http.Server{
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	tree.AddRuntimeService(services.NewUptimeService(startTime, 0))
	tree.AddAPIService(services.NewHTTPServerService(server, addr, cfg.Supervisor.ShutdownTimeout))
	logging.Info().Str("addr", addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// warnProductionSettings flags development defaults left on in production.
func warnProductionSettings(cfg *config.Config) {
	if !cfg.IsProduction() {
		return
	}
	if slices.Contains(cfg.Security.CORSOrigins, "*") {
		logging.Warn().Msg("CORS allows every origin in production; set CORS_ORIGINS")
	}
	if !cfg.Artifacts.VerifyChecksums {
		logging.Warn().Msg("Artifact checksum verification is disabled in production")
	}
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("API rate limiting is disabled in production")
	}
}
