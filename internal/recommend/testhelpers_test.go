// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package recommend

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
)

// Place 13 has predictions but no metadata. Place 15 has metadata but no
// predictions. Place 14 has no coordinates.
var testPlaces = []Place{
	{ID: 11, Name: "Monumen Nasional", Category: "Budaya", City: "Jakarta", Lat: -6.1754, Lon: 106.8272, HasCoords: true},
	{ID: 10, Name: "Taman Mini Indonesia Indah", Category: "Taman Hiburan", City: "Jakarta", Lat: -6.3025, Lon: 106.8952, HasCoords: true},
	{ID: 12, Name: "Pantai Ancol", Category: "Bahari", City: "Jakarta", Lat: -6.1223, Lon: 106.8330, HasCoords: true},
	{ID: 14, Name: "Museum Fatahillah", Category: "Budaya", City: "Jakarta"},
	{ID: 15, Name: "Kebun Raya Bogor", Category: "Cagar Alam", City: "Bogor", Lat: -6.5971, Lon: 106.8060, HasCoords: true},
}

var testSimilarity = []float64{
	1.0, 0.2, 0.5, 0.8, 0.1,
	0.2, 1.0, 0.33333, 0.1, 0.4,
	0.5, 0.33333, 1.0, 0.5, 0.0,
	0.8, 0.1, 0.5, 1.0, 0.1,
	0.1, 0.4, 0.0, 0.1, 1.0,
}

var (
	testUserIDs  = []int64{1, 2, 3}
	testPlaceIDs = []int64{10, 11, 12, 13, 14}
)

// Columns follow testPlaceIDs.
var testPredictions = []float64{
	0.1, 0.9, 0.3, 0.95, 0.05, // user 1
	0.5, 0.5, math.NaN(), 0.2, 0.6, // user 2
	0.9, 0.8, 0.7, 0.6, math.NaN(), // user 3
}

func newTestStore(t *testing.T) *ModelStore {
	t.Helper()

	users, err := NewLabelEncoder(testUserIDs)
	if err != nil {
		t.Fatalf("user encoder: %v", err)
	}
	places, err := NewLabelEncoder(testPlaceIDs)
	if err != nil {
		t.Fatalf("place encoder: %v", err)
	}
	predictions, err := NewMatrix(len(testUserIDs), len(testPlaceIDs), testPredictions)
	if err != nil {
		t.Fatalf("predictions: %v", err)
	}
	similarity, err := NewMatrix(len(testPlaces), len(testPlaces), testSimilarity)
	if err != nil {
		t.Fatalf("similarity: %v", err)
	}

	store, err := NewModelStore(users, places, predictions, similarity, NewCatalog(testPlaces))
	if err != nil {
		t.Fatalf("NewModelStore: %v", err)
	}
	return store
}

func newTestEngine(t *testing.T, mutate func(*Config)) *Engine {
	t.Helper()

	cfg := DefaultConfig()
	if mutate != nil {
		mutate(cfg)
	}
	engine, err := NewEngine(newTestStore(t), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return engine
}

func recommendationIDs(recs []Recommendation) []int64 {
	ids := make([]int64, len(recs))
	for i, r := range recs {
		ids[i] = r.PlaceID
	}
	return ids
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
