// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/wisata/internal/cache"
	"github.com/tomtom215/wisata/internal/config"
	"github.com/tomtom215/wisata/internal/metrics"
	"github.com/tomtom215/wisata/internal/models"
	"github.com/tomtom215/wisata/internal/recommend"
)

// RootMessageText is served by GET /.
const RootMessageText = "Tourism recommendation API is up!"

// responseCacheSize bounds the /similar and /nearby response cache. Both
// scan every place per call; the bundle is immutable so entries never go
// stale.
const responseCacheSize = 2048

// Handler serves the HTTP endpoints.
type Handler struct {
	engine    *recommend.Engine
	parser    requestParser
	responses *cache.LRU[interface{}]
	version   string
	startTime time.Time
}

// NewHandler creates a handler over engine. A nil engine is allowed: every
// scoring endpoint then answers 503 NOT_READY and /health reports it.
func NewHandler(engine *recommend.Engine, limits config.RecommendConfig, version string) *Handler {
	return &Handler{
		engine:    engine,
		parser:    requestParser{limits: limits},
		responses: cache.NewLRU[interface{}](responseCacheSize),
		version:   version,
		startTime: time.Now(),
	}
}

// Root godoc
// @Summary Liveness message
// @Description Returns a fixed message when the API is serving
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.RootMessage}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, models.RootMessage{Message: RootMessageText}, time.Now())
}

// Health godoc
// @Summary Health check
// @Description Reports whether the model bundle is loaded, its dimensions and the process uptime
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Failure 503 {object} models.APIResponse{data=models.HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	health := models.HealthStatus{
		Status:  "healthy",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}

	if h.engine == nil {
		health.Status = "unavailable"
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status:   statusError,
			Data:     health,
			Metadata: models.Metadata{Timestamp: time.Now().UTC()},
			Error:    &models.APIError{Code: CodeNotReady, Message: "model bundle is not loaded"},
		})
		return
	}

	stats := h.engine.Store().Stats()
	health.ModelLoaded = true
	health.Users = stats.Users
	health.Places = stats.Places
	health.CatalogRows = stats.CatalogRows
	health.BundleVersion = stats.Version

	hits, misses, entries := h.responses.Stats()
	health.ResponseCache = &models.CacheStats{Entries: entries, Hits: hits, Misses: misses}

	respondSuccess(w, health, start)
}

// cachedResponse looks key up in the response cache and publishes the
// cache counters.
func (h *Handler) cachedResponse(key string) (interface{}, bool) {
	v, ok := h.responses.Get(key)
	hits, misses, entries := h.responses.Stats()
	metrics.SetResponseCacheStats(hits, misses, entries)
	return v, ok
}

// ready reports NOT_READY when no engine is loaded.
func (h *Handler) ready(w http.ResponseWriter) bool {
	if h.engine == nil {
		respondError(w, http.StatusServiceUnavailable, CodeNotReady, "model bundle is not loaded", nil)
		return false
	}
	return true
}

// notFound answers unmatched routes with the error envelope.
func notFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, CodeNotFound, "Resource not found", nil)
}

// methodNotAllowed answers non-GET requests to known routes.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "Method not allowed", nil)
}

func toPlace(rec recommend.Recommendation) models.Place {
	return models.Place{
		PlaceID:  rec.PlaceID,
		Name:     rec.Name,
		Category: rec.Category,
		City:     rec.City,
	}
}

func toPlaces(recs []recommend.Recommendation) []models.Place {
	places := make([]models.Place, len(recs))
	for i, rec := range recs {
		places[i] = toPlace(rec)
	}
	return places
}
