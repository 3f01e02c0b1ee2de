// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("GET", "/api/v1/test-record", "200")
	before := testutil.ToFloat64(counter)

	RecordAPIRequest("GET", "/api/v1/test-record", "200", 3*time.Millisecond)
	RecordAPIRequest("GET", "/api/v1/test-record", "200", 7*time.Millisecond)

	if got := testutil.ToFloat64(counter) - before; got != 2 {
		t.Errorf("api_requests_total delta = %v, want 2", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec = %v, want %v", got, before)
	}
}

func TestRecordRecommend_Outcome(t *testing.T) {
	tests := []struct {
		name        string
		operation   string
		size        int
		wantOutcome string
	}{
		{"non-empty result", "test_recommend", 5, OutcomeHit},
		{"unknown user", "test_recommend", 0, OutcomeEmpty},
		{"nearby hit", "test_nearby", 1, OutcomeHit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := RecommendRequests.WithLabelValues(tt.operation, tt.wantOutcome)
			before := testutil.ToFloat64(counter)

			RecordRecommend(tt.operation, tt.size, time.Millisecond)

			if got := testutil.ToFloat64(counter) - before; got != 1 {
				t.Errorf("recommend_requests_total{outcome=%q} delta = %v, want 1", tt.wantOutcome, got)
			}
		})
	}
}

func TestSetResponseCacheStats(t *testing.T) {
	SetResponseCacheStats(7, 3, 2)

	for stat, want := range map[string]float64{"hits": 7, "misses": 3, "entries": 2} {
		if got := testutil.ToFloat64(APIResponseCache.WithLabelValues(stat)); got != want {
			t.Errorf("%s = %v, want %v", stat, got, want)
		}
	}
}

func TestSetBundleSizes(t *testing.T) {
	SetBundleSizes(300, 437, 437)

	if got := testutil.ToFloat64(ModelVocabularySize.WithLabelValues("users")); got != 300 {
		t.Errorf("users = %v, want 300", got)
	}
	if got := testutil.ToFloat64(ModelVocabularySize.WithLabelValues("places")); got != 437 {
		t.Errorf("places = %v, want 437", got)
	}
	if got := testutil.ToFloat64(ArtifactBundleLoaded); got <= 0 {
		t.Errorf("bundle loaded timestamp = %v, want > 0", got)
	}
}

func TestRecordArtifactLoad(t *testing.T) {
	RecordArtifactLoad("test_matrix", 1500*time.Millisecond)

	if got := testutil.ToFloat64(ArtifactLoadDuration.WithLabelValues("test_matrix")); got != 1.5 {
		t.Errorf("artifact_load_duration_seconds = %v, want 1.5", got)
	}
}

func TestRecordCircuitBreakerTransition(t *testing.T) {
	transitions := CircuitBreakerTransitions.WithLabelValues("test-breaker", "closed", "open")
	before := testutil.ToFloat64(transitions)

	RecordCircuitBreakerTransition("test-breaker", "closed", "open", 2)

	if got := testutil.ToFloat64(transitions) - before; got != 1 {
		t.Errorf("transitions delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("test-breaker")); got != 2 {
		t.Errorf("state = %v, want 2", got)
	}
}

func TestRecordRateLimitHit(t *testing.T) {
	counter := APIRateLimitHits.WithLabelValues("/api/v1/test-limit")
	before := testutil.ToFloat64(counter)

	RecordRateLimitHit("/api/v1/test-limit")

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("rate limit hits delta = %v, want 1", got)
	}
}
