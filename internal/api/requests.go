// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/wisata/internal/config"
	"github.com/tomtom215/wisata/internal/models"
	"github.com/tomtom215/wisata/internal/validation"
)

// CountRequest holds a result count parameter (top_k or top_n).
type CountRequest struct {
	Count int `validate:"min=1"`
}

// SimilarRequest holds the /similar query parameters.
type SimilarRequest struct {
	Name string `query:"name" validate:"max=200,placequery"`
	TopN int    `query:"top_n" validate:"min=1"`
}

// NearbyRequest holds the /nearby query parameters.
type NearbyRequest struct {
	Lat      *float64 `query:"lat" validate:"required,latitude"`
	Lon      *float64 `query:"lon" validate:"required,longitude"`
	RadiusKm float64  `query:"radius_km" validate:"gt=0"`
}

// requestParser turns query strings into validated request values. Limits
// that depend on configuration are checked after the static validator tags.
type requestParser struct {
	limits config.RecommendConfig
}

// userID parses the {userID} path segment.
func (p requestParser) userID(r *http.Request) (int64, *models.APIError) {
	raw := chi.URLParam(r, "userID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &models.APIError{
			Code:    CodeInvalidUserID,
			Message: "user id must be an integer",
			Details: map[string]interface{}{"value": raw},
		}
	}
	return id, nil
}

// count parses a result count named key, applying the configured default
// when absent and the configured maximum.
func (p requestParser) count(r *http.Request, key string) (int, *models.APIError) {
	n, apiErr := intParam(r, key, p.limits.DefaultTopK)
	if apiErr != nil {
		return 0, apiErr
	}

	req := CountRequest{Count: n}
	if apiErr := validateRequest(&req); apiErr != nil {
		return 0, renameField(apiErr, "Count", key)
	}
	if n > p.limits.MaxTopK {
		return 0, maxExceeded(key, n, strconv.Itoa(p.limits.MaxTopK))
	}
	return n, nil
}

// similar parses and validates /similar parameters.
func (p requestParser) similar(r *http.Request) (SimilarRequest, *models.APIError) {
	topN, apiErr := p.count(r, "top_n")
	if apiErr != nil {
		return SimilarRequest{}, apiErr
	}

	// A blank name searches for nothing rather than for every spaced name.
	name := r.URL.Query().Get("name")
	if strings.TrimSpace(name) == "" {
		name = ""
	}
	req := SimilarRequest{Name: name, TopN: topN}
	if apiErr := validateRequest(&req); apiErr != nil {
		return SimilarRequest{}, apiErr
	}
	return req, nil
}

// nearby parses and validates /nearby parameters.
func (p requestParser) nearby(r *http.Request) (NearbyRequest, *models.APIError) {
	var req NearbyRequest

	lat, apiErr := optionalFloatParam(r, "lat")
	if apiErr != nil {
		return req, apiErr
	}
	lon, apiErr := optionalFloatParam(r, "lon")
	if apiErr != nil {
		return req, apiErr
	}
	req.Lat, req.Lon = lat, lon

	req.RadiusKm = p.limits.DefaultRadiusKm
	radius, apiErr := optionalFloatParam(r, "radius_km")
	if apiErr != nil {
		return req, apiErr
	}
	if radius != nil {
		req.RadiusKm = *radius
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		return req, apiErr
	}
	if req.RadiusKm > p.limits.MaxRadiusKm {
		return req, maxExceeded("radius_km", req.RadiusKm, strconv.FormatFloat(p.limits.MaxRadiusKm, 'g', -1, 64))
	}
	return req, nil
}

// validateRequest runs the shared validator and converts its failure into
// the API error shape.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// intParam reads an integer query parameter, returning def when absent.
func intParam(r *http.Request, key string, def int) (int, *models.APIError) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, notNumeric(key, raw, "an integer")
	}
	return n, nil
}

// optionalFloatParam reads a float query parameter, returning nil when absent.
func optionalFloatParam(r *http.Request, key string) (*float64, *models.APIError) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, notNumeric(key, raw, "a number")
	}
	return &f, nil
}

func notNumeric(key, raw, kind string) *models.APIError {
	return &models.APIError{
		Code:    CodeValidationError,
		Message: fmt.Sprintf("%s must be %s", key, kind),
		Details: map[string]interface{}{"field": key, "tag": "numeric", "value": raw},
	}
}

func maxExceeded(key string, value interface{}, limit string) *models.APIError {
	return &models.APIError{
		Code:    CodeValidationError,
		Message: fmt.Sprintf("%s must be at most %s", key, limit),
		Details: map[string]interface{}{"field": key, "tag": "max", "value": value},
	}
}

// renameField rewrites a single-field validation error produced for a
// shared request struct so that it names the query parameter.
func renameField(apiErr *models.APIError, from, to string) *models.APIError {
	apiErr.Message = strings.Replace(apiErr.Message, from, to, 1)
	if apiErr.Details != nil {
		apiErr.Details["field"] = to
	}
	return apiErr
}
