// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package config

import (
	"fmt"
	"time"
)

// Validate checks that the configuration is complete and within bounds.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateArtifacts(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateMLflow(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateArtifacts() error {
	if c.Artifacts.Dir == "" {
		return fmt.Errorf("ARTIFACT_DIR is required")
	}
	required := map[string]string{
		"ARTIFACT_USER_ENCODER":   c.Artifacts.UserEncoder,
		"ARTIFACT_PLACE_ENCODER":  c.Artifacts.PlaceEncoder,
		"ARTIFACT_PREDICTION":     c.Artifacts.PredictionMatrix,
		"ARTIFACT_SIMILARITY":     c.Artifacts.ContentSimilarity,
		"ARTIFACT_PLACE_METADATA": c.Artifacts.PlaceMetadata,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.DefaultTopK < 1 {
		return fmt.Errorf("RECOMMEND_DEFAULT_TOP_K must be positive, got %d", r.DefaultTopK)
	}
	if r.MaxTopK < r.DefaultTopK {
		return fmt.Errorf("RECOMMEND_MAX_TOP_K (%d) must be >= RECOMMEND_DEFAULT_TOP_K (%d)", r.MaxTopK, r.DefaultTopK)
	}
	if r.HybridPoolSize < 1 {
		return fmt.Errorf("RECOMMEND_HYBRID_POOL_SIZE must be positive, got %d", r.HybridPoolSize)
	}
	if r.ProfileDepth < 1 {
		return fmt.Errorf("RECOMMEND_PROFILE_DEPTH must be positive, got %d", r.ProfileDepth)
	}
	if r.DefaultRadiusKm <= 0 {
		return fmt.Errorf("RECOMMEND_DEFAULT_RADIUS_KM must be positive, got %g", r.DefaultRadiusKm)
	}
	if r.MaxRadiusKm < r.DefaultRadiusKm {
		return fmt.Errorf("RECOMMEND_MAX_RADIUS_KM (%g) must be >= RECOMMEND_DEFAULT_RADIUS_KM (%g)", r.MaxRadiusKm, r.DefaultRadiusKm)
	}
	if r.SimilarityPrecision < 0 || r.DistancePrecision < 0 {
		return fmt.Errorf("recommend precisions must be non-negative")
	}
	return nil
}

const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateMLflow() error {
	if err := validateTrackingURI(c.MLflow.TrackingURI, "MLFLOW_TRACKING_URI"); err != nil {
		return err
	}
	if c.MLflow.ExperimentName == "" {
		return fmt.Errorf("MLFLOW_EXPERIMENT_NAME is required")
	}
	if c.MLflow.RegisteredModelName == "" {
		return fmt.Errorf("MLFLOW_REGISTERED_MODEL is required")
	}
	if c.MLflow.Timeout <= 0 {
		return fmt.Errorf("MLFLOW_TIMEOUT must be positive")
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
