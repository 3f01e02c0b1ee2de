// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package recommend

import "fmt"

// Config holds scoring defaults and limits.
type Config struct {
	// DefaultTopK is used when a caller asks for zero or fewer results.
	// Default: 5.
	DefaultTopK int `json:"default_top_k"`

	// MaxTopK caps every result count.
	// Default: 100.
	MaxTopK int `json:"max_top_k"`

	// HybridPoolSize is the number of collaborative results the hybrid
	// operation filters by category.
	// Default: 20.
	HybridPoolSize int `json:"hybrid_pool_size"`

	// ProfileDepth is the number of top-ranked places counted in a profile.
	// Default: 10.
	ProfileDepth int `json:"profile_depth"`

	// DefaultRadiusKm is used when Nearby is called with a zero radius.
	// Default: 20.
	DefaultRadiusKm float64 `json:"default_radius_km"`

	// SimilarityPrecision is the number of decimals kept in similarity scores.
	// Default: 3.
	SimilarityPrecision int `json:"similarity_precision"`

	// DistancePrecision is the number of decimals kept in distances.
	// Default: 2.
	DistancePrecision int `json:"distance_precision"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultTopK:         5,
		MaxTopK:             100,
		HybridPoolSize:      20,
		ProfileDepth:        10,
		DefaultRadiusKm:     20,
		SimilarityPrecision: 3,
		DistancePrecision:   2,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.DefaultTopK < 1 {
		return fmt.Errorf("default_top_k must be positive, got %d", c.DefaultTopK)
	}
	if c.MaxTopK < c.DefaultTopK {
		return fmt.Errorf("max_top_k (%d) must be >= default_top_k (%d)", c.MaxTopK, c.DefaultTopK)
	}
	if c.HybridPoolSize < 1 {
		return fmt.Errorf("hybrid_pool_size must be positive, got %d", c.HybridPoolSize)
	}
	if c.ProfileDepth < 1 {
		return fmt.Errorf("profile_depth must be positive, got %d", c.ProfileDepth)
	}
	if !(c.DefaultRadiusKm > 0) {
		return fmt.Errorf("default_radius_km must be positive, got %g", c.DefaultRadiusKm)
	}
	if c.SimilarityPrecision < 0 || c.DistancePrecision < 0 {
		return fmt.Errorf("precisions must be non-negative")
	}
	return nil
}
