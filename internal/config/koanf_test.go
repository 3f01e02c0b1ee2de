// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Artifacts.Dir != "models/model_tourism" {
		t.Errorf("Artifacts.Dir = %q, want models/model_tourism", cfg.Artifacts.Dir)
	}
	if !cfg.Artifacts.VerifyChecksums {
		t.Error("Artifacts.VerifyChecksums should default to true")
	}
	if cfg.Recommend.DefaultTopK != 5 {
		t.Errorf("Recommend.DefaultTopK = %d, want 5", cfg.Recommend.DefaultTopK)
	}
	if cfg.Recommend.HybridPoolSize != 20 {
		t.Errorf("Recommend.HybridPoolSize = %d, want 20", cfg.Recommend.HybridPoolSize)
	}
	if cfg.Recommend.ProfileDepth != 10 {
		t.Errorf("Recommend.ProfileDepth = %d, want 10", cfg.Recommend.ProfileDepth)
	}
	if cfg.Recommend.DefaultRadiusKm != 20 {
		t.Errorf("Recommend.DefaultRadiusKm = %g, want 20", cfg.Recommend.DefaultRadiusKm)
	}
	if cfg.MLflow.TrackingURI != "http://mlflow_server:5001" {
		t.Errorf("MLflow.TrackingURI = %q", cfg.MLflow.TrackingURI)
	}
	if cfg.MLflow.ExperimentName != "tourism-indonesia" {
		t.Errorf("MLflow.ExperimentName = %q", cfg.MLflow.ExperimentName)
	}
	if cfg.MLflow.RegisteredModelName != "tourism-classifier" {
		t.Errorf("MLflow.RegisteredModelName = %q", cfg.MLflow.RegisteredModelName)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"*"}) {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ARTIFACT_DIR", "/srv/models")
	t.Setenv("RECOMMEND_DEFAULT_TOP_K", "7")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("MLFLOW_TRACKING_URI", "http://localhost:5000")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Artifacts.Dir != "/srv/models" {
		t.Errorf("Artifacts.Dir = %q, want /srv/models", cfg.Artifacts.Dir)
	}
	if cfg.Recommend.DefaultTopK != 7 {
		t.Errorf("Recommend.DefaultTopK = %d, want 7", cfg.Recommend.DefaultTopK)
	}
	if cfg.Security.RateLimitWindow != 30*time.Second {
		t.Errorf("Security.RateLimitWindow = %v, want 30s", cfg.Security.RateLimitWindow)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if cfg.MLflow.TrackingURI != "http://localhost:5000" {
		t.Errorf("MLflow.TrackingURI = %q", cfg.MLflow.TrackingURI)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadWithKoanf_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 8123
artifacts:
  dir: /data/bundle
  verify_checksums: false
recommend:
  hybrid_pool_size: 30
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "8124")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8124 {
		t.Errorf("Server.Port = %d, want env value 8124", cfg.Server.Port)
	}
	if cfg.Artifacts.Dir != "/data/bundle" {
		t.Errorf("Artifacts.Dir = %q, want /data/bundle", cfg.Artifacts.Dir)
	}
	if cfg.Artifacts.VerifyChecksums {
		t.Error("Artifacts.VerifyChecksums = true, want false from file")
	}
	if cfg.Recommend.HybridPoolSize != 30 {
		t.Errorf("Recommend.HybridPoolSize = %d, want 30", cfg.Recommend.HybridPoolSize)
	}
	if cfg.Recommend.DefaultTopK != 5 {
		t.Errorf("Recommend.DefaultTopK = %d, want default 5", cfg.Recommend.DefaultTopK)
	}
}

func TestLoadWithKoanf_InvalidEnv(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("HTTP_PORT", "70000")

	if _, err := LoadWithKoanf(); err == nil {
		t.Fatal("expected validation error for HTTP_PORT=70000")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"ARTIFACT_DIR", "artifacts.dir"},
		{"MLFLOW_TRACKING_URI", "mlflow.tracking_uri"},
		{"RECOMMEND_HYBRID_POOL_SIZE", "recommend.hybrid_pool_size"},
		{"LOG_FORMAT", "logging.format"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tt.key); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestArtifactsConfig_Path(t *testing.T) {
	t.Parallel()

	a := ArtifactsConfig{Dir: "/srv/models"}
	if got := a.Path("user_encoder.json"); got != filepath.Join("/srv/models", "user_encoder.json") {
		t.Errorf("Path(relative) = %q", got)
	}
	if got := a.Path("/abs/place_metadata.csv"); got != "/abs/place_metadata.csv" {
		t.Errorf("Path(absolute) = %q", got)
	}
}
