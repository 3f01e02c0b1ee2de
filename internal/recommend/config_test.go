// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package recommend

import (
	"math"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Config)
		wantError bool
	}{
		{name: "defaults", modify: func(*Config) {}},
		{name: "zero default k", modify: func(c *Config) { c.DefaultTopK = 0 }, wantError: true},
		{name: "max below default", modify: func(c *Config) { c.MaxTopK = 4 }, wantError: true},
		{name: "zero pool", modify: func(c *Config) { c.HybridPoolSize = 0 }, wantError: true},
		{name: "zero profile depth", modify: func(c *Config) { c.ProfileDepth = 0 }, wantError: true},
		{name: "zero radius", modify: func(c *Config) { c.DefaultRadiusKm = 0 }, wantError: true},
		{name: "NaN radius", modify: func(c *Config) { c.DefaultRadiusKm = math.NaN() }, wantError: true},
		{name: "negative precision", modify: func(c *Config) { c.DistancePrecision = -1 }, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}
