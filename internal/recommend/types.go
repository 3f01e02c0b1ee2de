// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package recommend

// Recommendation is a place returned by Recommend and Hybrid.
type Recommendation struct {
	PlaceID  int64
	Name     string
	Category string
	City     string
}

// SimilarPlace is a place returned by Similar.
type SimilarPlace struct {
	Recommendation

	// Similarity is the content similarity to the matched place, rounded to
	// Config.SimilarityPrecision decimals.
	Similarity float64
}

// SimilarResult is the outcome of Similar.
type SimilarResult struct {
	// Matched is the place whose name matched the query, or nil.
	Matched *Recommendation
	Places  []SimilarPlace
}

// HybridResult is the outcome of Hybrid.
type HybridResult struct {
	Places []Recommendation

	// Category is the favourite category the pool was filtered to. It is
	// empty when the profile was empty or no pooled place matched it, in
	// which case Places is the unfiltered pool.
	Category string
}

// NearbyPlace is a place returned by Nearby.
type NearbyPlace struct {
	PlaceID int64
	Name    string
	City    string

	// DistanceKm is rounded to Config.DistancePrecision decimals.
	DistanceKm float64
}

func recommendationFrom(p Place) Recommendation {
	return Recommendation{PlaceID: p.ID, Name: p.Name, Category: p.Category, City: p.City}
}
