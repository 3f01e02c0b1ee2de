// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

// Package config loads Wisata's configuration.
//
// Configuration is layered with Koanf v2:
//  1. Defaults: built-in values for every setting
//  2. Config file: optional YAML (CONFIG_PATH, ./config.yaml, /etc/wisata/config.yaml)
//  3. Environment variables: override any setting (HTTP_PORT, ARTIFACT_DIR, ...)
//
// The resulting Config is validated once and is read-only afterwards.
package config

import (
	"path/filepath"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Artifacts  ArtifactsConfig  `koanf:"artifacts"`
	Recommend  RecommendConfig  `koanf:"recommend"`
	Security   SecurityConfig   `koanf:"security"`
	Logging    LoggingConfig    `koanf:"logging"`
	MLflow     MLflowConfig     `koanf:"mlflow"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging, production
}

// ArtifactsConfig locates the trained model bundle on disk.
type ArtifactsConfig struct {
	Dir               string `koanf:"dir"`
	UserEncoder       string `koanf:"user_encoder"`
	PlaceEncoder      string `koanf:"place_encoder"`
	PredictionMatrix  string `koanf:"prediction_matrix"`
	ContentSimilarity string `koanf:"content_similarity"`
	PlaceMetadata     string `koanf:"place_metadata"`
	Manifest          string `koanf:"manifest"`

	// VerifyChecksums compares every artifact against manifest.json when
	// the manifest exists.
	VerifyChecksums bool `koanf:"verify_checksums"`
}

// Path joins an artifact file name onto the bundle directory.
func (a ArtifactsConfig) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(a.Dir, name)
}

// RecommendConfig holds scoring defaults and request limits.
type RecommendConfig struct {
	DefaultTopK         int     `koanf:"default_top_k"`
	MaxTopK             int     `koanf:"max_top_k"`
	HybridPoolSize      int     `koanf:"hybrid_pool_size"`
	ProfileDepth        int     `koanf:"profile_depth"`
	DefaultRadiusKm     float64 `koanf:"default_radius_km"`
	MaxRadiusKm         float64 `koanf:"max_radius_km"`
	SimilarityPrecision int     `koanf:"similarity_precision"`
	DistancePrecision   int     `koanf:"distance_precision"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json (production) or console (development).
	Format string `koanf:"format"`

	// Caller adds file:line to every entry.
	Caller bool `koanf:"caller"`
}

// MLflowConfig holds the tracking server settings used by the register command.
type MLflowConfig struct {
	TrackingURI         string        `koanf:"tracking_uri"`
	ExperimentName      string        `koanf:"experiment_name"`
	RegisteredModelName string        `koanf:"registered_model_name"`
	RunName             string        `koanf:"run_name"`
	Timeout             time.Duration `koanf:"timeout"`
}

// SupervisorConfig mirrors supervisor.TreeConfig.
type SupervisorConfig struct {
	FailureThreshold float64       `koanf:"failure_threshold"`
	FailureBackoff   time.Duration `koanf:"failure_backoff"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout"`
}

// Load reads configuration from defaults, the optional config file and the
// environment, in that order of increasing precedence.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
