// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

// Package metrics exposes Prometheus instrumentation for the Wisata service.
//
// Metric families:
//   - api_*: HTTP request counts, latency and in-flight requests
//   - recommend_*: per-operation outcomes, latency and result sizes
//   - artifact_*: bundle load durations and vocabulary sizes
//   - circuit_breaker_*: MLflow client breaker state
//
// All collectors register on the default registry through promauto and are
// served by promhttp.Handler at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommend outcomes.
const (
	OutcomeHit   = "hit"   // non-empty result
	OutcomeEmpty = "empty" // unknown user, no match, nothing in radius
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	APIResponseCache = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "api_response_cache",
			Help: "Response cache hits, misses and entries since startup",
		},
		[]string{"stat"},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of scoring operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Duration of scoring operations in seconds",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
		[]string{"operation"},
	)

	RecommendResultSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_result_size",
			Help:    "Number of places returned per scoring operation",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
		[]string{"operation"},
	)

	// Artifact Metrics
	ArtifactLoadDuration = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "artifact_load_duration_seconds",
			Help: "Time taken to load each model artifact at startup",
		},
		[]string{"artifact"},
	)

	ModelVocabularySize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "artifact_vocabulary_size",
			Help: "Number of users, places and catalog rows in the loaded bundle",
		},
		[]string{"dimension"},
	)

	ArtifactBundleLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "artifact_bundle_loaded_timestamp_seconds",
			Help: "Unix time at which the artifact bundle finished loading",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks in-flight API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a rejected request.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// SetResponseCacheStats publishes the response cache counters.
func SetResponseCacheStats(hits, misses int64, entries int) {
	APIResponseCache.WithLabelValues("hits").Set(float64(hits))
	APIResponseCache.WithLabelValues("misses").Set(float64(misses))
	APIResponseCache.WithLabelValues("entries").Set(float64(entries))
}

// RecordRecommend records one scoring operation.
func RecordRecommend(operation string, resultSize int, duration time.Duration) {
	outcome := OutcomeHit
	if resultSize == 0 {
		outcome = OutcomeEmpty
	}
	RecommendRequests.WithLabelValues(operation, outcome).Inc()
	RecommendDuration.WithLabelValues(operation).Observe(duration.Seconds())
	RecommendResultSize.WithLabelValues(operation).Observe(float64(resultSize))
}

// RecordArtifactLoad records how long one artifact took to load.
func RecordArtifactLoad(artifact string, duration time.Duration) {
	ArtifactLoadDuration.WithLabelValues(artifact).Set(duration.Seconds())
}

// SetBundleSizes publishes the dimensions of a loaded bundle.
func SetBundleSizes(users, places, catalogRows int) {
	ModelVocabularySize.WithLabelValues("users").Set(float64(users))
	ModelVocabularySize.WithLabelValues("places").Set(float64(places))
	ModelVocabularySize.WithLabelValues("catalog_rows").Set(float64(catalogRows))
	ArtifactBundleLoaded.Set(float64(time.Now().Unix()))
}

// RecordCircuitBreakerRequest counts a call through a named breaker.
func RecordCircuitBreakerRequest(name, result string) {
	CircuitBreakerRequests.WithLabelValues(name, result).Inc()
}

// RecordCircuitBreakerTransition records a state change. State values follow
// the circuit_breaker_state gauge encoding.
func RecordCircuitBreakerTransition(name, from, to string, toValue float64) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(toValue)
}
