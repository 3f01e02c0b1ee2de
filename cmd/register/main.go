// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package main

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wisata/internal/config"
	"github.com/tomtom215/wisata/internal/database"
	"github.com/tomtom215/wisata/internal/logging"
	"github.com/tomtom215/wisata/internal/mlflow"
	"github.com/tomtom215/wisata/internal/recommend"
	"github.com/tomtom215/wisata/internal/recommend/storage"
)

type options struct {
	writeManifest bool
	timeout       time.Duration
}

func main() {
	var opts options
	flag.BoolVar(&opts.writeManifest, "write-manifest", true, "rebuild manifest.json in the artifact directory and upload it")
	flag.DurationVar(&opts.timeout, "timeout", 10*time.Minute, "overall deadline for loading and registering")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithTimeout(ctx, opts.timeout)

	result, err := run(ctx, cfg, opts, logging.Logger())
	cancel()
	stop()
	if err != nil {
		logging.Fatal().Err(err).Msg("Registration failed")
	}

	logging.Info().
		Str("experiment_id", result.ExperimentID).
		Str("run_id", result.RunID).
		Str("model", result.ModelName).
		Str("version", result.ModelVersion).
		Strs("uploaded", result.Uploaded).
		Msg("Bundle registered")
}

// run loads the bundle, refreshes its manifest and registers it.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func run(ctx context.Context, cfg *config.Config, opts options, logger zerolog.Logger) (*mlflow.Result, error) {
	stats, err := loadStats(ctx, cfg.Artifacts, logger)
	if err != nil {
		return nil, err
	}

	files := storage.ArtifactFiles(cfg.Artifacts)
	manifest, err := storage.BuildManifest(cfg.Artifacts.Dir, files)
	if err != nil {
		return nil, fmt.Errorf("build manifest: %w", err)
	}
	if opts.writeManifest {
		path := cfg.Artifacts.Path(cfg.Artifacts.Manifest)
		if err := manifest.Write(path); err != nil {
			return nil, err
		}
		logger.Info().Str("path", path).Str("version", manifest.Version).Msg("Manifest written")
	}

	reg := buildRegistration(cfg.Artifacts, stats, manifest, opts.writeManifest)

	client := mlflow.NewClient(cfg.MLflow)
	return mlflow.NewRegistrar(client, cfg.MLflow, logger).Register(ctx, reg)
}

// loadStats loads the bundle the way the server does. Checksums are not
// verified: the manifest is about to be rebuilt.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func loadStats(ctx context.Context, artifacts config.ArtifactsConfig, logger zerolog.Logger) (recommend.StoreStats, error) {
	db, err := database.Open(ctx)
	if err != nil {
		return recommend.StoreStats{}, fmt.Errorf("open metadata reader: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn().Err(err).Msg("Error closing metadata reader")
		}
	}()

	artifacts.VerifyChecksums = false
	bundle, err := storage.Load(ctx, storage.Options{
		Artifacts: artifacts,
		Metadata:  db,
		Logger:    logging.WithComponent("storage"),
	})
	if err != nil {
		return recommend.StoreStats{}, fmt.Errorf("load bundle: %w", err)
	}
	return bundle.Store.Stats(), nil
}

// buildRegistration describes the bundle for the tracking server: file names
// and vocabulary sizes as params, sizes as metrics, checksums as tags.
func buildRegistration(a config.ArtifactsConfig, stats recommend.StoreStats, manifest *storage.Manifest, includeManifest bool) mlflow.Registration {
	files := storage.ArtifactFiles(a)

	params := map[string]string{
		"user_encoder":       a.UserEncoder,
		"place_encoder":      a.PlaceEncoder,
		"prediction_matrix":  a.PredictionMatrix,
		"content_similarity": a.ContentSimilarity,
		"place_metadata":     a.PlaceMetadata,
		"user_vocabulary":    strconv.Itoa(stats.Users),
		"place_vocabulary":   strconv.Itoa(stats.Places),
	}

	tags := map[string]string{
		"bundle_version": manifest.Version,
	}
	for name, digest := range manifest.Files {
		tags["sha256."+name] = digest.SHA256
	}

	if includeManifest {
		files = append(files, a.Manifest)
	}

	return mlflow.Registration{
		Dir:    a.Dir,
		Files:  files,
		Params: params,
		Metrics: map[string]float64{
			"num_users":    float64(stats.Users),
			"num_places":   float64(stats.Places),
			"catalog_rows": float64(stats.CatalogRows),
		},
		Tags: tags,
	}
}
