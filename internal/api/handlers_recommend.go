// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/wisata/internal/logging"
	"github.com/tomtom215/wisata/internal/metrics"
	"github.com/tomtom215/wisata/internal/models"
)

// Operation labels for metrics.RecordRecommend.
const (
	opRecommend = "recommend"
	opSimilar   = "similar"
	opProfile   = "profile"
	opHybrid    = "hybrid"
	opNearby    = "nearby"
)

// scoringContext attaches the request logger so the engine's debug logs
// carry request_id and correlation_id.
func scoringContext(r *http.Request) context.Context {
	ctx := r.Context()
	return logging.Ctx(ctx).WithContext(ctx)
}

// Recommend godoc
// @Summary Collaborative recommendations
// @Description Returns up to top_k places ranked by the user's predicted score. Unknown users get an empty list.
// @Tags Recommendations
// @Produce json
// @Param userID path int true "User ID"
// @Param top_k query int false "Number of places (default 5)"
// @Success 200 {object} models.APIResponse{data=models.RecommendResponse}
// @Failure 400 {object} models.APIResponse "INVALID_USER_ID or VALIDATION_ERROR"
// @Failure 503 {object} models.APIResponse "NOT_READY"
// @Router /api/v1/recommend/{userID} [get]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.ready(w) {
		return
	}

	userID, apiErr := h.parser.userID(r)
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	topK, apiErr := h.parser.count(r, "top_k")
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	recs := h.engine.Recommend(scoringContext(r), userID, topK)
	metrics.RecordRecommend(opRecommend, len(recs), time.Since(start))

	respondSuccess(w, models.RecommendResponse{
		UserID: userID,
		Count:  len(recs),
		Places: toPlaces(recs),
	}, start)
}

// Similar godoc
// @Summary Content-based similar places
// @Description Finds the first place whose name contains name (case-insensitive) and returns the top_n most similar other places.
// @Tags Recommendations
// @Produce json
// @Param name query string false "Place name fragment; blank matches nothing"
// @Param top_n query int false "Number of places (default 5)"
// @Success 200 {object} models.APIResponse{data=models.SimilarResponse}
// @Failure 400 {object} models.APIResponse "VALIDATION_ERROR"
// @Failure 503 {object} models.APIResponse "NOT_READY"
// @Router /api/v1/similar [get]
func (h *Handler) Similar(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.ready(w) {
		return
	}

	req, apiErr := h.parser.similar(r)
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	cacheKey := fmt.Sprintf("similar|%d|%s", req.TopN, req.Name)
	if cached, ok := h.cachedResponse(cacheKey); ok {
		resp := cached.(models.SimilarResponse)
		metrics.RecordRecommend(opSimilar, resp.Count, time.Since(start))
		respondData(w, resp, start, true)
		return
	}

	result := h.engine.Similar(scoringContext(r), req.Name, req.TopN)
	metrics.RecordRecommend(opSimilar, len(result.Places), time.Since(start))

	resp := models.SimilarResponse{
		Query:  req.Name,
		Count:  len(result.Places),
		Places: make([]models.SimilarPlace, len(result.Places)),
	}
	if result.Matched != nil {
		matched := toPlace(*result.Matched)
		resp.MatchedPlace = &matched
	}
	for i, p := range result.Places {
		resp.Places[i] = models.SimilarPlace{
			Place:           toPlace(p.Recommendation),
			SimilarityScore: p.Similarity,
		}
	}

	h.responses.Add(cacheKey, resp)
	respondSuccess(w, resp, start)
}

// Profile godoc
// @Summary User category profile
// @Description Counts the categories of the user's top-ranked places. Unknown users get an empty mapping.
// @Tags Recommendations
// @Produce json
// @Param userID path int true "User ID"
// @Success 200 {object} models.APIResponse{data=models.ProfileResponse}
// @Failure 400 {object} models.APIResponse "INVALID_USER_ID"
// @Failure 503 {object} models.APIResponse "NOT_READY"
// @Router /api/v1/users/{userID}/profile [get]
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.ready(w) {
		return
	}

	userID, apiErr := h.parser.userID(r)
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	categories := h.engine.Profile(scoringContext(r), userID)
	metrics.RecordRecommend(opProfile, len(categories), time.Since(start))

	respondSuccess(w, models.ProfileResponse{
		UserID:     userID,
		Categories: categories,
	}, start)
}

// Hybrid godoc
// @Summary Hybrid recommendations
// @Description Filters the user's collaborative top places to their favourite category, falling back to the unfiltered list when nothing matches.
// @Tags Recommendations
// @Produce json
// @Param userID path int true "User ID"
// @Param top_n query int false "Number of places (default 5)"
// @Success 200 {object} models.APIResponse{data=models.RecommendResponse}
// @Failure 400 {object} models.APIResponse "INVALID_USER_ID or VALIDATION_ERROR"
// @Failure 503 {object} models.APIResponse "NOT_READY"
// @Router /api/v1/hybrid/{userID} [get]
func (h *Handler) Hybrid(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.ready(w) {
		return
	}

	userID, apiErr := h.parser.userID(r)
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	topN, apiErr := h.parser.count(r, "top_n")
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	result := h.engine.Hybrid(scoringContext(r), userID, topN)
	metrics.RecordRecommend(opHybrid, len(result.Places), time.Since(start))

	respondSuccess(w, models.RecommendResponse{
		UserID:   userID,
		Count:    len(result.Places),
		Places:   toPlaces(result.Places),
		Category: result.Category,
	}, start)
}

// Nearby godoc
// @Summary Places near a point
// @Description Returns every place within radius_km of (lat, lon), nearest first, with geodesic distances.
// @Tags Recommendations
// @Produce json
// @Param lat query number true "Latitude (-90 to 90)"
// @Param lon query number true "Longitude (-180 to 180)"
// @Param radius_km query number false "Search radius in km (default 20)"
// @Success 200 {object} models.APIResponse{data=models.NearbyResponse}
// @Failure 400 {object} models.APIResponse "VALIDATION_ERROR"
// @Failure 503 {object} models.APIResponse "NOT_READY"
// @Router /api/v1/nearby [get]
func (h *Handler) Nearby(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.ready(w) {
		return
	}

	req, apiErr := h.parser.nearby(r)
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	cacheKey := fmt.Sprintf("nearby|%g|%g|%g", *req.Lat, *req.Lon, req.RadiusKm)
	if cached, ok := h.cachedResponse(cacheKey); ok {
		resp := cached.(models.NearbyResponse)
		metrics.RecordRecommend(opNearby, resp.Count, time.Since(start))
		respondData(w, resp, start, true)
		return
	}

	found := h.engine.Nearby(scoringContext(r), *req.Lat, *req.Lon, req.RadiusKm)
	metrics.RecordRecommend(opNearby, len(found), time.Since(start))

	resp := models.NearbyResponse{
		Lat:      *req.Lat,
		Lon:      *req.Lon,
		RadiusKm: req.RadiusKm,
		Count:    len(found),
		Places:   make([]models.NearbyPlace, len(found)),
	}
	for i, p := range found {
		resp.Places[i] = models.NearbyPlace{
			PlaceID:    p.PlaceID,
			Name:       p.Name,
			City:       p.City,
			DistanceKm: p.DistanceKm,
		}
	}

	h.responses.Add(cacheKey, resp)
	respondSuccess(w, resp, start)
}
