// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/wisata/internal/config"
	"github.com/tomtom215/wisata/internal/models"
	"github.com/tomtom215/wisata/internal/recommend"
)

// Catalog rows: Monas, TMII, Ancol, Fatahillah (no coordinates).
var fixturePlaces = []recommend.Place{
	{ID: 11, Name: "Monumen Nasional", Category: "Budaya", City: "Jakarta", Lat: -6.1754, Lon: 106.8272, HasCoords: true},
	{ID: 10, Name: "Taman Mini Indonesia Indah", Category: "Taman Hiburan", City: "Jakarta", Lat: -6.3025, Lon: 106.8952, HasCoords: true},
	{ID: 12, Name: "Pantai Ancol", Category: "Bahari", City: "Jakarta", Lat: -6.1223, Lon: 106.8330, HasCoords: true},
	{ID: 14, Name: "Museum Fatahillah", Category: "Budaya", City: "Jakarta"},
}

var fixtureSimilarity = []float64{
	1.0, 0.2, 0.5, 0.8,
	0.2, 1.0, 0.3, 0.1,
	0.5, 0.3, 1.0, 0.4,
	0.8, 0.1, 0.4, 1.0,
}

// Prediction columns are place ids 10, 11, 12, 14.
var fixturePredictions = []float64{
	0.1, 0.9, 0.3, 0.8, // user 1 ranks 11, 14, 12, 10
	0.9, 0.1, 0.5, 0.2, // user 2 ranks 10, 12, 14, 11
}

func testLimits() config.RecommendConfig {
	return config.RecommendConfig{
		DefaultTopK:         5,
		MaxTopK:             100,
		HybridPoolSize:      20,
		ProfileDepth:        10,
		DefaultRadiusKm:     20,
		MaxRadiusKm:         20000,
		SimilarityPrecision: 3,
		DistancePrecision:   2,
	}
}

func newTestEngine(t *testing.T) *recommend.Engine {
	t.Helper()
	return newTestEngineWithSimilarity(t, fixtureSimilarity)
}

func newTestEngineWithSimilarity(t *testing.T, sim []float64) *recommend.Engine {
	t.Helper()

	users, err := recommend.NewLabelEncoder([]int64{1, 2})
	if err != nil {
		t.Fatalf("user encoder: %v", err)
	}
	places, err := recommend.NewLabelEncoder([]int64{10, 11, 12, 14})
	if err != nil {
		t.Fatalf("place encoder: %v", err)
	}
	predictions, err := recommend.NewMatrix(2, 4, fixturePredictions)
	if err != nil {
		t.Fatalf("predictions: %v", err)
	}
	similarity, err := recommend.NewMatrix(4, 4, sim)
	if err != nil {
		t.Fatalf("similarity: %v", err)
	}
	store, err := recommend.NewModelStore(users, places, predictions, similarity, recommend.NewCatalog(fixturePlaces))
	if err != nil {
		t.Fatalf("NewModelStore: %v", err)
	}

	engine, err := recommend.NewEngine(store.WithVersion("20260101T000000Z"), nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return engine
}

// newTestServer returns the full router over the fixture engine with rate
// limiting disabled.
func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	return newTestServerFor(t, newTestEngine(t))
}

func newTestServerFor(t *testing.T, engine *recommend.Engine) http.Handler {
	t.Helper()

	handler := NewHandler(engine, testLimits(), "test")
	mw := NewChiMiddleware(&ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{"https://maps.example.com"},
		CORSAllowedMethods: []string{http.MethodGet},
		RateLimitDisabled:  true,
	})
	return NewRouter(handler, mw).SetupChi()
}

type testEnvelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func doGet(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var env testEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("GET %s: decode body %q: %v", target, w.Body.String(), err)
	}
	return w, env
}

func decodeData(t *testing.T, env testEnvelope, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
}

func placeIDs(places []models.Place) []int64 {
	ids := make([]int64, len(places))
	for i, p := range places {
		ids[i] = p.PlaceID
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
