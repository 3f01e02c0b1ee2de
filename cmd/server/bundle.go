// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wisata/internal/config"
	"github.com/tomtom215/wisata/internal/database"
	"github.com/tomtom215/wisata/internal/logging"
	"github.com/tomtom215/wisata/internal/metrics"
	"github.com/tomtom215/wisata/internal/recommend"
	"github.com/tomtom215/wisata/internal/recommend/storage"
)

// initEngine loads the artifact bundle and builds the scoring engine. The
// DuckDB connection only lives for the metadata read.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initEngine(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*recommend.Engine, error) {
	db, err := database.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("open metadata reader: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn().Err(err).Msg("Error closing metadata reader")
		}
	}()

	bundle, err := storage.Load(ctx, storage.Options{
		Artifacts: cfg.Artifacts,
		Metadata:  db,
		Logger:    logging.WithComponent("storage"),
	})
	if err != nil {
		return nil, err
	}

	for name, d := range bundle.LoadDurations {
		metrics.RecordArtifactLoad(name, d)
	}
	stats := bundle.Store.Stats()
	metrics.SetBundleSizes(stats.Users, stats.Places, stats.CatalogRows)

	engine, err := recommend.NewEngine(bundle.Store, engineConfig(cfg.Recommend), logger)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	return engine, nil
}

func engineConfig(rc config.RecommendConfig) *recommend.Config {
	return &recommend.Config{
		DefaultTopK:         rc.DefaultTopK,
		MaxTopK:             rc.MaxTopK,
		HybridPoolSize:      rc.HybridPoolSize,
		ProfileDepth:        rc.ProfileDepth,
		DefaultRadiusKm:     rc.DefaultRadiusKm,
		SimilarityPrecision: rc.SimilarityPrecision,
		DistancePrecision:   rc.DistancePrecision,
	}
}
