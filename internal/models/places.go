// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package models

// Place is one recommended place.
type Place struct {
	PlaceID  int64  `json:"place_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	City     string `json:"city"`
}

// SimilarPlace is a place ranked by content similarity to a query place.
type SimilarPlace struct {
	Place
	SimilarityScore float64 `json:"similarity_score"`
}

// NearbyPlace is a place within the search radius.
type NearbyPlace struct {
	PlaceID    int64   `json:"place_id"`
	Name       string  `json:"name"`
	City       string  `json:"city"`
	DistanceKm float64 `json:"distance_km"`
}

// RecommendResponse is served by the collaborative and hybrid endpoints.
type RecommendResponse struct {
	UserID int64   `json:"user_id"`
	Count  int     `json:"count"`
	Places []Place `json:"places"`

	// Category is the favourite category applied by the hybrid endpoint;
	// empty when the list is unfiltered.
	Category string `json:"category,omitempty"`
}

// SimilarResponse is served by GET /api/v1/similar.
type SimilarResponse struct {
	Query string `json:"query"`

	// MatchedPlace is the first place whose name contains Query, or nil.
	MatchedPlace *Place         `json:"matched_place"`
	Count        int            `json:"count"`
	Places       []SimilarPlace `json:"places"`
}

// ProfileResponse is served by GET /api/v1/users/{userID}/profile.
type ProfileResponse struct {
	UserID     int64          `json:"user_id"`
	Categories map[string]int `json:"categories"`
}

// NearbyResponse is served by GET /api/v1/nearby.
type NearbyResponse struct {
	Lat      float64       `json:"lat"`
	Lon      float64       `json:"lon"`
	RadiusKm float64       `json:"radius_km"`
	Count    int           `json:"count"`
	Places   []NearbyPlace `json:"places"`
}
