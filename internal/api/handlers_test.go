// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package api

import (
	"math"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wisata/internal/models"
)

func TestRoot(t *testing.T) {
	t.Parallel()

	w, env := doGet(t, newTestServer(t), "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if env.Status != "success" {
		t.Errorf("envelope status = %q, want success", env.Status)
	}

	var msg models.RootMessage
	decodeData(t, env, &msg)
	if msg.Message != RootMessageText {
		t.Errorf("message = %q, want %q", msg.Message, RootMessageText)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header not set")
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	t.Run("loaded", func(t *testing.T) {
		t.Parallel()

		w, env := doGet(t, newTestServer(t), "/health")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var health models.HealthStatus
		decodeData(t, env, &health)
		if health.Status != "healthy" || !health.ModelLoaded {
			t.Errorf("health = %+v, want healthy and loaded", health)
		}
		if health.Users != 2 || health.Places != 4 || health.CatalogRows != 4 {
			t.Errorf("sizes = %d/%d/%d, want 2/4/4", health.Users, health.Places, health.CatalogRows)
		}
		if health.BundleVersion != "20260101T000000Z" {
			t.Errorf("BundleVersion = %q", health.BundleVersion)
		}
		if health.Version != "test" {
			t.Errorf("Version = %q, want test", health.Version)
		}
	})

	t.Run("not loaded", func(t *testing.T) {
		t.Parallel()

		router := NewRouter(NewHandler(nil, testLimits(), "test"), nil).SetupChi()
		w, env := doGet(t, router, "/health")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d, want 503", w.Code)
		}
		if env.Error == nil || env.Error.Code != CodeNotReady {
			t.Errorf("error = %+v, want NOT_READY", env.Error)
		}

		var health models.HealthStatus
		decodeData(t, env, &health)
		if health.ModelLoaded {
			t.Error("ModelLoaded = true, want false")
		}
	})
}

func TestRecommend(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	tests := []struct {
		name   string
		target string
		want   []int64
	}{
		{"legacy path", "/recommend/1?top_k=2", []int64{11, 14}},
		{"versioned path", "/api/v1/recommend/1?top_k=2", []int64{11, 14}},
		{"default count", "/api/v1/recommend/2", []int64{10, 12, 14, 11}},
		{"count above vocabulary", "/api/v1/recommend/2?top_k=50", []int64{10, 12, 14, 11}},
		{"unknown user", "/api/v1/recommend/999", []int64{}},
		{"negative user id", "/api/v1/recommend/-3", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, env := doGet(t, server, tt.target)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
			}

			var resp models.RecommendResponse
			decodeData(t, env, &resp)
			if resp.Places == nil {
				t.Fatal("places is null, want a list")
			}
			if got := placeIDs(resp.Places); !equalIDs(got, tt.want) {
				t.Errorf("places = %v, want %v", got, tt.want)
			}
			if resp.Count != len(tt.want) {
				t.Errorf("count = %d, want %d", resp.Count, len(tt.want))
			}
		})
	}
}

func TestRecommend_PlaceFields(t *testing.T) {
	t.Parallel()

	_, env := doGet(t, newTestServer(t), "/api/v1/recommend/1?top_k=1")

	var resp models.RecommendResponse
	decodeData(t, env, &resp)
	want := models.Place{PlaceID: 11, Name: "Monumen Nasional", Category: "Budaya", City: "Jakarta"}
	if len(resp.Places) != 1 || resp.Places[0] != want {
		t.Errorf("places = %+v, want [%+v]", resp.Places, want)
	}
	if resp.UserID != 1 {
		t.Errorf("user_id = %d, want 1", resp.UserID)
	}
}

func TestBadRequests(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	tests := []struct {
		name      string
		target    string
		wantCode  string
		wantField string
	}{
		{"non-integer user", "/api/v1/recommend/abc", CodeInvalidUserID, ""},
		{"non-integer user legacy", "/recommend/1.5", CodeInvalidUserID, ""},
		{"non-integer profile user", "/api/v1/users/x/profile", CodeInvalidUserID, ""},
		{"non-integer hybrid user", "/api/v1/hybrid/x", CodeInvalidUserID, ""},
		{"zero top_k", "/api/v1/recommend/1?top_k=0", CodeValidationError, "top_k"},
		{"negative top_k", "/api/v1/recommend/1?top_k=-1", CodeValidationError, "top_k"},
		{"top_k above max", "/api/v1/recommend/1?top_k=101", CodeValidationError, "top_k"},
		{"non-numeric top_k", "/api/v1/recommend/1?top_k=five", CodeValidationError, "top_k"},
		{"zero top_n", "/api/v1/hybrid/1?top_n=0", CodeValidationError, "top_n"},
		{"control characters in name", "/api/v1/similar?name=a%0Ab", CodeValidationError, "name"},
		{"similar top_n above max", "/api/v1/similar?name=pantai&top_n=500", CodeValidationError, "top_n"},
		{"missing lat", "/api/v1/nearby?lon=106.8", CodeValidationError, "lat"},
		{"missing lon", "/api/v1/nearby?lat=-6.1", CodeValidationError, "lon"},
		{"latitude out of range", "/api/v1/nearby?lat=91&lon=106.8", CodeValidationError, "lat"},
		{"longitude out of range", "/api/v1/nearby?lat=-6.1&lon=181", CodeValidationError, "lon"},
		{"non-numeric lat", "/api/v1/nearby?lat=north&lon=106.8", CodeValidationError, "lat"},
		{"zero radius", "/api/v1/nearby?lat=-6.1&lon=106.8&radius_km=0", CodeValidationError, "radius_km"},
		{"radius above max", "/api/v1/nearby?lat=-6.1&lon=106.8&radius_km=20001", CodeValidationError, "radius_km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, env := doGet(t, server, tt.target)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
			}
			if env.Status != "error" || env.Error == nil {
				t.Fatalf("envelope = %+v, want error", env)
			}
			if env.Error.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", env.Error.Code, tt.wantCode)
			}
			if tt.wantField != "" && env.Error.Details["field"] != tt.wantField {
				t.Errorf("details.field = %v, want %q (message %q)", env.Error.Details["field"], tt.wantField, env.Error.Message)
			}
			if cc := w.Header().Get("Cache-Control"); cc != "no-store" {
				t.Errorf("Cache-Control = %q, want no-store", cc)
			}
		})
	}
}

func TestSimilar(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	tests := []struct {
		name       string
		target     string
		wantMatch  int64
		wantIDs    []int64
		wantScores []float64
	}{
		{
			name:       "case-insensitive fragment",
			target:     "/api/v1/similar?name=MONUMEN",
			wantMatch:  11,
			wantIDs:    []int64{14, 12, 10},
			wantScores: []float64{0.8, 0.5, 0.2},
		},
		{
			name:       "first match wins",
			target:     "/api/v1/similar?name=taman",
			wantMatch:  10,
			wantIDs:    []int64{12, 11, 14},
			wantScores: []float64{0.3, 0.2, 0.1},
		},
		{
			name:       "top_n",
			target:     "/api/v1/similar?name=monumen&top_n=1",
			wantMatch:  11,
			wantIDs:    []int64{14},
			wantScores: []float64{0.8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, env := doGet(t, server, tt.target)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
			}

			var resp models.SimilarResponse
			decodeData(t, env, &resp)
			if resp.MatchedPlace == nil || resp.MatchedPlace.PlaceID != tt.wantMatch {
				t.Fatalf("matched_place = %+v, want %d", resp.MatchedPlace, tt.wantMatch)
			}

			ids := make([]int64, len(resp.Places))
			scores := make([]float64, len(resp.Places))
			for i, p := range resp.Places {
				ids[i] = p.PlaceID
				scores[i] = p.SimilarityScore
			}
			if !equalIDs(ids, tt.wantIDs) {
				t.Errorf("ids = %v, want %v", ids, tt.wantIDs)
			}
			if !reflect.DeepEqual(scores, tt.wantScores) {
				t.Errorf("scores = %v, want %v", scores, tt.wantScores)
			}
		})
	}
}

func TestSimilar_NoMatch(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	tests := []struct {
		name      string
		target    string
		wantQuery string
	}{
		{"unknown name", "/api/v1/similar?name=borobudur", "borobudur"},
		{"missing name", "/api/v1/similar", ""},
		{"empty name", "/api/v1/similar?name=", ""},
		{"blank name", "/api/v1/similar?name=%20%20", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, env := doGet(t, server, tt.target)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}

			var resp models.SimilarResponse
			decodeData(t, env, &resp)
			if resp.MatchedPlace != nil {
				t.Errorf("matched_place = %+v, want null", resp.MatchedPlace)
			}
			if resp.Places == nil || len(resp.Places) != 0 || resp.Count != 0 {
				t.Errorf("places = %v (count %d), want empty list", resp.Places, resp.Count)
			}
			if resp.Query != tt.wantQuery {
				t.Errorf("query = %q, want %q", resp.Query, tt.wantQuery)
			}
		})
	}
}

func TestSimilar_MissingSimilarityCell(t *testing.T) {
	t.Parallel()

	sim := append([]float64(nil), fixtureSimilarity...)
	sim[3] = math.NaN() // Monas -> Fatahillah
	server := newTestServerFor(t, newTestEngineWithSimilarity(t, sim))

	w, env := doGet(t, server, "/api/v1/similar?name=monumen&top_n=5")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}

	var resp models.SimilarResponse
	decodeData(t, env, &resp)
	ids := make([]int64, len(resp.Places))
	for i, p := range resp.Places {
		ids[i] = p.PlaceID
	}
	if !equalIDs(ids, []int64{12, 10}) {
		t.Errorf("ids = %v, want [12 10]", ids)
	}
}

func TestProfile(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	tests := []struct {
		name   string
		target string
		want   map[string]int
	}{
		{"known user", "/api/v1/users/1/profile", map[string]int{"Budaya": 2, "Bahari": 1, "Taman Hiburan": 1}},
		{"unknown user", "/api/v1/users/42/profile", map[string]int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, env := doGet(t, server, tt.target)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}

			var resp models.ProfileResponse
			decodeData(t, env, &resp)
			if !reflect.DeepEqual(resp.Categories, tt.want) {
				t.Errorf("categories = %v, want %v", resp.Categories, tt.want)
			}
		})
	}
}

func TestHybrid(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	tests := []struct {
		name         string
		target       string
		wantIDs      []int64
		wantCategory string
	}{
		{"favourite first in ranking", "/api/v1/hybrid/1", []int64{11, 14}, "Budaya"},
		{"favourite later in ranking", "/api/v1/hybrid/2", []int64{14, 11}, "Budaya"},
		{"top_n", "/api/v1/hybrid/2?top_n=1", []int64{14}, "Budaya"},
		{"unknown user", "/api/v1/hybrid/77", []int64{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, env := doGet(t, server, tt.target)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}

			var resp models.RecommendResponse
			decodeData(t, env, &resp)
			if got := placeIDs(resp.Places); !equalIDs(got, tt.wantIDs) {
				t.Errorf("places = %v, want %v", got, tt.wantIDs)
			}
			if resp.Category != tt.wantCategory {
				t.Errorf("category = %q, want %q", resp.Category, tt.wantCategory)
			}
		})
	}
}

func TestNearby(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	tests := []struct {
		name       string
		target     string
		wantIDs    []int64
		wantDist   []float64
		wantRadius float64
	}{
		{
			name:       "explicit radius",
			target:     "/api/v1/nearby?lat=-6.1754&lon=106.8272&radius_km=10",
			wantIDs:    []int64{11, 12},
			wantDist:   []float64{0, 5.91},
			wantRadius: 10,
		},
		{
			name:       "default radius",
			target:     "/api/v1/nearby?lat=-6.1754&lon=106.8272",
			wantIDs:    []int64{11, 12, 10},
			wantDist:   []float64{0, 5.91, 15.94},
			wantRadius: 20,
		},
		{
			name:       "nothing in range",
			target:     "/api/v1/nearby?lat=0&lon=0&radius_km=1",
			wantIDs:    []int64{},
			wantDist:   []float64{},
			wantRadius: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, env := doGet(t, server, tt.target)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
			}

			var resp models.NearbyResponse
			decodeData(t, env, &resp)
			if resp.RadiusKm != tt.wantRadius {
				t.Errorf("radius_km = %v, want %v", resp.RadiusKm, tt.wantRadius)
			}
			if resp.Places == nil {
				t.Fatal("places is null, want a list")
			}

			ids := make([]int64, len(resp.Places))
			dists := make([]float64, len(resp.Places))
			for i, p := range resp.Places {
				ids[i] = p.PlaceID
				dists[i] = p.DistanceKm
			}
			if !equalIDs(ids, tt.wantIDs) {
				t.Errorf("ids = %v, want %v", ids, tt.wantIDs)
			}
			if !reflect.DeepEqual(dists, tt.wantDist) {
				t.Errorf("distances = %v, want %v", dists, tt.wantDist)
			}
		})
	}
}

func TestNotReady(t *testing.T) {
	t.Parallel()

	router := NewRouter(NewHandler(nil, testLimits(), "test"), nil).SetupChi()

	for _, target := range []string{
		"/recommend/1",
		"/api/v1/recommend/1",
		"/api/v1/similar?name=pantai",
		"/api/v1/users/1/profile",
		"/api/v1/hybrid/1",
		"/api/v1/nearby?lat=0&lon=0",
	} {
		w, env := doGet(t, router, target)
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("GET %s status = %d, want 503", target, w.Code)
			continue
		}
		if env.Error == nil || env.Error.Code != CodeNotReady {
			t.Errorf("GET %s error = %+v, want NOT_READY", target, env.Error)
		}
	}
}

func TestRouting_Errors(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantCode   string
	}{
		{"post to recommend", http.MethodPost, "/api/v1/recommend/1", http.StatusMethodNotAllowed, CodeMethodNotAllowed},
		{"delete root", http.MethodDelete, "/", http.StatusMethodNotAllowed, CodeMethodNotAllowed},
		{"unknown path", http.MethodGet, "/api/v1/unknown", http.StatusNotFound, CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, tt.target, nil)
			w := httptest.NewRecorder()
			server.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}

			var env testEnvelope
			if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want %s", env.Error, tt.wantCode)
			}
		})
	}
}

func TestResponseCache(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	for _, target := range []string{
		"/api/v1/similar?name=Pantai&top_n=2",
		"/api/v1/nearby?lat=-6.1754&lon=106.8272&radius_km=10",
	} {
		_, first := doGet(t, server, target)
		if first.Metadata.Cached {
			t.Errorf("GET %s: first response marked cached", target)
		}

		w, second := doGet(t, server, target)
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s: status = %d, want 200", target, w.Code)
		}
		if !second.Metadata.Cached {
			t.Errorf("GET %s: repeated response not marked cached", target)
		}
		if string(first.Data) != string(second.Data) {
			t.Errorf("GET %s: cached data %s differs from %s", target, second.Data, first.Data)
		}
	}

	_, env := doGet(t, server, "/health")
	var health models.HealthStatus
	decodeData(t, env, &health)
	want := models.CacheStats{Entries: 2, Hits: 2, Misses: 2}
	if health.ResponseCache == nil || *health.ResponseCache != want {
		t.Errorf("response_cache = %+v, want %+v", health.ResponseCache, want)
	}
}
