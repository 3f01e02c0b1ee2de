// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package mlflow

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wisata/internal/config"
)

// modelArtifactDir is the run-relative directory artifacts are uploaded to
// and the model version is registered from.
const modelArtifactDir = "model"

// finalizeTimeout bounds the run status update after the main flow ends.
const finalizeTimeout = 10 * time.Second

// Registration describes one bundle to register.
type Registration struct {
	// Dir holds the artifact files.
	Dir string

	// Files are uploaded in order, relative to Dir.
	Files []string

	Params  map[string]string
	Metrics map[string]float64
	Tags    map[string]string
}

// Result reports what was created.
type Result struct {
	ExperimentID string
	RunID        string
	ArtifactURI  string
	ModelName    string
	ModelVersion string
	Uploaded     []string
}

// Registrar runs the registration flow against one tracking server.
type Registrar struct {
	client *Client
	cfg    config.MLflowConfig
	logger zerolog.Logger
}

// NewRegistrar creates a registrar.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewRegistrar(client *Client, cfg config.MLflowConfig, logger zerolog.Logger) *Registrar {
	return &Registrar{
		client: client,
		cfg:    cfg,
		logger: logger.With().Str("component", "mlflow").Str("tracking_uri", client.BaseURL()).Logger(),
	}
}

// Register logs the bundle as a run and registers it as a new model version.
// A run that was created is always closed, FINISHED on success and FAILED
// otherwise.
func (r *Registrar) Register(ctx context.Context, reg Registration) (result *Result, err error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	experimentID, err := r.ensureExperiment(ctx)
	if err != nil {
		return nil, err
	}

	run, err := r.client.CreateRun(ctx, experimentID, r.cfg.RunName, nil)
	if err != nil {
		return nil, fmt.Errorf("create run: %w", err)
	}
	runID := run.Info.RunID
	logger := r.logger.With().Str("run_id", runID).Logger()
	logger.Info().Str("experiment_id", experimentID).Str("artifact_uri", run.Info.ArtifactURI).Msg("Run created")

	defer func() {
		status := RunStatusFinished
		if err != nil {
			status = RunStatusFailed
		}
		finalizeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalizeTimeout)
		defer cancel()
		if updateErr := r.client.UpdateRun(finalizeCtx, runID, status); updateErr != nil {
			logger.Error().Err(updateErr).Str("status", status).Msg("Failed to close run")
			if err == nil {
				err = fmt.Errorf("close run: %w", updateErr)
				result = nil
			}
		}
	}()

	if err := r.client.LogBatch(ctx, runID, paramsFrom(reg.Params), metricsFrom(reg.Metrics), tagsFrom(reg.Tags)); err != nil {
		return nil, fmt.Errorf("log batch: %w", err)
	}

	res := &Result{
		ExperimentID: experimentID,
		RunID:        runID,
		ArtifactURI:  run.Info.ArtifactURI,
		ModelName:    r.cfg.RegisteredModelName,
	}

	if IsProxiedArtifactURI(run.Info.ArtifactURI) {
		for _, name := range reg.Files {
			if err := r.upload(ctx, run.Info.ArtifactURI, reg.Dir, name); err != nil {
				return nil, err
			}
			res.Uploaded = append(res.Uploaded, name)
		}
		logger.Info().Int("files", len(res.Uploaded)).Msg("Artifacts uploaded")
	} else {
		logger.Warn().Str("artifact_uri", run.Info.ArtifactURI).Msg("Run artifact store is not proxied by the tracking server, skipping upload")
	}

	if err := r.ensureRegisteredModel(ctx); err != nil {
		return nil, err
	}

	source := run.Info.ArtifactURI + "/" + modelArtifactDir
	version, err := r.client.CreateModelVersion(ctx, r.cfg.RegisteredModelName, source, runID)
	if err != nil {
		return nil, fmt.Errorf("create model version: %w", err)
	}
	res.ModelVersion = version.Version

	logger.Info().Str("model", r.cfg.RegisteredModelName).Str("version", version.Version).Msg("Model version registered")
	return res, nil
}

func (r *Registrar) ensureExperiment(ctx context.Context) (string, error) {
	name := r.cfg.ExperimentName
	exp, err := r.client.GetExperimentByName(ctx, name)
	if err == nil {
		return exp.ExperimentID, nil
	}
	if !IsNotFound(err) {
		return "", fmt.Errorf("get experiment %q: %w", name, err)
	}

	id, err := r.client.CreateExperiment(ctx, name)
	if err == nil {
		r.logger.Info().Str("experiment", name).Str("experiment_id", id).Msg("Experiment created")
		return id, nil
	}
	if !IsAlreadyExists(err) {
		return "", fmt.Errorf("create experiment %q: %w", name, err)
	}

	// Created concurrently by another client.
	exp, err = r.client.GetExperimentByName(ctx, name)
	if err != nil {
		return "", fmt.Errorf("get experiment %q: %w", name, err)
	}
	return exp.ExperimentID, nil
}

func (r *Registrar) ensureRegisteredModel(ctx context.Context) error {
	_, err := r.client.CreateRegisteredModel(ctx, r.cfg.RegisteredModelName)
	switch {
	case err == nil:
		r.logger.Info().Str("model", r.cfg.RegisteredModelName).Msg("Registered model created")
		return nil
	case IsAlreadyExists(err):
		return nil
	default:
		return fmt.Errorf("create registered model %q: %w", r.cfg.RegisteredModelName, err)
	}
}

func (r *Registrar) upload(ctx context.Context, artifactURI, dir, name string) error {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, name)
	}
	content, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return fmt.Errorf("read artifact %s: %w", name, err)
	}
	if err := r.client.UploadArtifact(ctx, artifactURI, modelArtifactDir+"/"+filepath.Base(name), content); err != nil {
		return fmt.Errorf("upload artifact %s: %w", name, err)
	}
	return nil
}

func paramsFrom(m map[string]string) []Param {
	out := make([]Param, 0, len(m))
	for _, k := range sortedKeys(m) {
		out = append(out, Param{Key: k, Value: m[k]})
	}
	return out
}

func tagsFrom(m map[string]string) []Tag {
	out := make([]Tag, 0, len(m))
	for _, k := range sortedKeys(m) {
		out = append(out, Tag{Key: k, Value: m[k]})
	}
	return out
}

func metricsFrom(m map[string]float64) []Metric {
	now := time.Now().UnixMilli()
	out := make([]Metric, 0, len(m))
	for _, k := range sortedKeys(m) {
		out = append(out, Metric{Key: k, Value: m[k], Timestamp: now})
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ErrNoFiles is returned by Validate when a registration names no artifacts.
var ErrNoFiles = errors.New("registration has no artifact files")

// Validate checks that every file exists.
func (reg *Registration) Validate() error {
	if len(reg.Files) == 0 {
		return ErrNoFiles
	}
	for _, name := range reg.Files {
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(reg.Dir, name)
		}
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("artifact %s: %w", name, err)
		}
	}
	return nil
}
