// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists config file locations in priority order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/wisata/config.yaml",
	"/etc/wisata/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8000,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Artifacts: ArtifactsConfig{
			Dir:               "models/model_tourism",
			UserEncoder:       "user_encoder.json",
			PlaceEncoder:      "place_encoder.json",
			PredictionMatrix:  "prediction_matrix.json",
			ContentSimilarity: "content_similarity.json",
			PlaceMetadata:     "place_metadata.csv",
			Manifest:          "manifest.json",
			VerifyChecksums:   true,
		},
		Recommend: RecommendConfig{
			DefaultTopK:         5,
			MaxTopK:             100,
			HybridPoolSize:      20,
			ProfileDepth:        10,
			DefaultRadiusKm:     20,
			MaxRadiusKm:         20000,
			SimilarityPrecision: 3,
			DistancePrecision:   2,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		MLflow: MLflowConfig{
			TrackingURI:         "http://mlflow_server:5001",
			ExperimentName:      "tourism-indonesia",
			RegisteredModelName: "tourism-classifier",
			RunName:             "tourism-artifacts",
			Timeout:             30 * time.Second,
		},
		Supervisor: SupervisorConfig{
			FailureThreshold: 5,
			FailureBackoff:   15 * time.Second,
			ShutdownTimeout:  10 * time.Second,
		},
	}
}

// LoadWithKoanf loads configuration with Koanf v2. Precedence is
// ENV > file > defaults.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are parsed from comma-separated env values.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	// Server
	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	// Artifacts
	"artifact_dir":              "artifacts.dir",
	"artifact_user_encoder":     "artifacts.user_encoder",
	"artifact_place_encoder":    "artifacts.place_encoder",
	"artifact_prediction":       "artifacts.prediction_matrix",
	"artifact_similarity":       "artifacts.content_similarity",
	"artifact_place_metadata":   "artifacts.place_metadata",
	"artifact_manifest":         "artifacts.manifest",
	"artifact_verify_checksums": "artifacts.verify_checksums",

	// Recommend
	"recommend_default_top_k":     "recommend.default_top_k",
	"recommend_max_top_k":         "recommend.max_top_k",
	"recommend_hybrid_pool_size":  "recommend.hybrid_pool_size",
	"recommend_profile_depth":     "recommend.profile_depth",
	"recommend_default_radius_km": "recommend.default_radius_km",
	"recommend_max_radius_km":     "recommend.max_radius_km",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// MLflow
	"mlflow_tracking_uri":     "mlflow.tracking_uri",
	"mlflow_experiment_name":  "mlflow.experiment_name",
	"mlflow_registered_model": "mlflow.registered_model_name",
	"mlflow_run_name":         "mlflow.run_name",
	"mlflow_timeout":          "mlflow.timeout",

	// Supervisor
	"supervisor_failure_threshold": "supervisor.failure_threshold",
	"supervisor_failure_backoff":   "supervisor.failure_backoff",
	"supervisor_shutdown_timeout":  "supervisor.shutdown_timeout",
}

// envTransformFunc maps an environment variable name to its koanf path.
// Unmapped names return "" so that unrelated variables are skipped.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - ARTIFACT_DIR -> artifacts.dir
//   - MLFLOW_TRACKING_URI -> mlflow.tracking_uri
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
