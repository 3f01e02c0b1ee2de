// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/wisata/internal/config"
	"github.com/tomtom215/wisata/internal/recommend"
)

// Artifact names, used as log fields and metric labels.
const (
	ArtifactUserEncoder   = "user_encoder"
	ArtifactPlaceEncoder  = "place_encoder"
	ArtifactPrediction    = "prediction_matrix"
	ArtifactSimilarity    = "content_similarity"
	ArtifactPlaceMetadata = "place_metadata"
)

// MetadataLoader reads the place metadata table. database.DB implements it.
type MetadataLoader interface {
	LoadPlaceMetadata(ctx context.Context, path string) ([]recommend.Place, error)
}

// Options configures Load.
type Options struct {
	Artifacts config.ArtifactsConfig
	Metadata  MetadataLoader
	Logger    zerolog.Logger
}

// Bundle is a loaded artifact bundle.
type Bundle struct {
	Store *recommend.ModelStore

	// Manifest is nil when the bundle has no manifest.json.
	Manifest *Manifest

	// LoadDurations holds the decode time of each artifact by name.
	LoadDurations map[string]time.Duration
}

// ArtifactFiles lists the configured artifact file names in a fixed order.
func ArtifactFiles(a config.ArtifactsConfig) []string {
	return []string{a.UserEncoder, a.PlaceEncoder, a.PredictionMatrix, a.ContentSimilarity, a.PlaceMetadata}
}

// Load verifies and decodes the bundle described by opts. Any missing,
// corrupt or inconsistent artifact fails the whole load.
//
//nolint:gocritic // Options carries a zerolog.Logger by value
func Load(ctx context.Context, opts Options) (*Bundle, error) {
	if opts.Metadata == nil {
		return nil, errors.New("storage: metadata loader is required")
	}
	a := opts.Artifacts
	logger := opts.Logger.With().Str("dir", a.Dir).Logger()

	manifest, err := loadManifest(a)
	if err != nil {
		return nil, err
	}
	switch {
	case manifest == nil:
		logger.Debug().Msg("No artifact manifest, skipping checksum verification")
	case a.VerifyChecksums:
		if err := manifest.Verify(a.Dir, ArtifactFiles(a)); err != nil {
			return nil, err
		}
		logger.Debug().Str("version", manifest.Version).Msg("Artifact checksums verified")
	}

	var (
		users, places       *recommend.LabelEncoder
		predictions, simMat *recommend.Matrix
		rows                []recommend.Place

		mu        sync.Mutex
		durations = make(map[string]time.Duration, 5)
	)

	g, gctx := errgroup.WithContext(ctx)
	timed := func(name string, fn func() error) func() error {
		return func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			if err := fn(); err != nil {
				return fmt.Errorf("load %s: %w", name, err)
			}
			elapsed := time.Since(start)
			mu.Lock()
			durations[name] = elapsed
			mu.Unlock()
			return nil
		}
	}

	g.Go(timed(ArtifactUserEncoder, func() (err error) {
		users, err = ReadEncoder(a.Path(a.UserEncoder))
		return err
	}))
	g.Go(timed(ArtifactPlaceEncoder, func() (err error) {
		places, err = ReadEncoder(a.Path(a.PlaceEncoder))
		return err
	}))
	g.Go(timed(ArtifactPrediction, func() (err error) {
		predictions, err = ReadMatrix(a.Path(a.PredictionMatrix))
		return err
	}))
	g.Go(timed(ArtifactSimilarity, func() (err error) {
		simMat, err = ReadMatrix(a.Path(a.ContentSimilarity))
		return err
	}))
	g.Go(timed(ArtifactPlaceMetadata, func() (err error) {
		rows, err = opts.Metadata.LoadPlaceMetadata(gctx, a.Path(a.PlaceMetadata))
		return err
	}))

	if err := g.Wait(); err != nil {
		return nil, err
	}

	store, err := recommend.NewModelStore(users, places, predictions, simMat, recommend.NewCatalog(rows))
	if err != nil {
		return nil, fmt.Errorf("assemble bundle: %w", err)
	}
	if manifest != nil {
		store = store.WithVersion(manifest.Version)
	}

	stats := store.Stats()
	logger.Info().
		Int("users", stats.Users).
		Int("places", stats.Places).
		Int("catalog_rows", stats.CatalogRows).
		Str("version", stats.Version).
		Msg("Artifact bundle loaded")

	return &Bundle{Store: store, Manifest: manifest, LoadDurations: durations}, nil
}

// loadManifest returns nil when no manifest is configured or present.
func loadManifest(a config.ArtifactsConfig) (*Manifest, error) {
	if a.Manifest == "" {
		return nil, nil
	}
	path := a.Path(a.Manifest)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	m, err := ReadManifest(path)
	if err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}
	return m, nil
}
