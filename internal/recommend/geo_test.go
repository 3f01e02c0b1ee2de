// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package recommend

import (
	"math"
	"testing"
)

func TestGeodesicDistanceKm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		tolerance              float64
	}{
		{
			name: "Flinders Peak to Buninyong",
			lat1: -37.95103341666667, lon1: 144.42486788888889,
			lat2: -37.65282113888889, lon2: 143.92649552777778,
			want: 54.972271, tolerance: 1e-3,
		},
		{
			name: "one degree along the equator",
			lat1: 0, lon1: 0, lat2: 0, lon2: 1,
			want: 111.319491, tolerance: 1e-6,
		},
		{
			name: "across the antimeridian",
			lat1: 0, lon1: 179.5, lat2: 0, lon2: -179.5,
			want: 111.319491, tolerance: 1e-6,
		},
		{
			name: "Monas to Pantai Ancol",
			lat1: -6.1754, lon1: 106.8272, lat2: -6.1223, lon2: 106.8330,
			want: 5.907157, tolerance: 1e-5,
		},
		{
			name: "same point",
			lat1: -8.4095, lon1: 115.1889, lat2: -8.4095, lon2: 115.1889,
			want: 0, tolerance: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := GeodesicDistanceKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("GeodesicDistanceKm() = %.6f, want %.6f ± %g", got, tt.want, tt.tolerance)
			}
			back := GeodesicDistanceKm(tt.lat2, tt.lon2, tt.lat1, tt.lon1)
			if math.Abs(got-back) > 1e-9 {
				t.Errorf("distance is not symmetric: %v vs %v", got, back)
			}
		})
	}
}

func TestGeodesicDistanceKm_AntipodalFallback(t *testing.T) {
	t.Parallel()

	if _, ok := vincentyInverse(0, 0, 0, 180); ok {
		t.Fatal("expected Vincenty to fail for antipodal equatorial points")
	}

	got := GeodesicDistanceKm(0, 0, 0, 180)
	want := HaversineDistanceKm(0, 0, 0, 180)
	if got != want {
		t.Errorf("fallback = %v, want haversine %v", got, want)
	}
	if math.Abs(want-math.Pi*meanEarthRadiusKm) > 1e-9 {
		t.Errorf("haversine half circumference = %v, want %v", want, math.Pi*meanEarthRadiusKm)
	}
}

func TestValidCoordinate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lat, lon float64
		want     bool
	}{
		{0, 0, true},
		{-90, 180, true},
		{90, -180, true},
		{90.0001, 0, false},
		{0, -180.5, false},
		{math.NaN(), 0, false},
		{0, math.Inf(1), false},
	}
	for _, tt := range tests {
		if got := ValidCoordinate(tt.lat, tt.lon); got != tt.want {
			t.Errorf("ValidCoordinate(%v, %v) = %v, want %v", tt.lat, tt.lon, got, tt.want)
		}
	}
}
