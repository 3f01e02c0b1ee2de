// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"
)

// Engine answers scoring queries over a ModelStore. It is safe for
// concurrent use.
type Engine struct {
	store  *ModelStore
	config *Config
	logger zerolog.Logger
}

// NewEngine creates an engine over a loaded store. A nil cfg uses
// DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(store *ModelStore, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: model store", ErrNilArtifact)
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		store:  store,
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Store returns the model store the engine reads from.
func (e *Engine) Store() *ModelStore {
	return e.store
}

// loggerFor prefers a request logger attached to ctx with zerolog's
// Logger.WithContext, so that request ids follow scoring logs.
func (e *Engine) loggerFor(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		scoped := l.With().Str("component", "recommend").Logger()
		return &scoped
	}
	return &e.logger
}

// count applies the default and the cap to a requested result count.
func (e *Engine) count(k int) int {
	if k <= 0 {
		k = e.config.DefaultTopK
	}
	if k > e.config.MaxTopK {
		k = e.config.MaxTopK
	}
	return k
}

// userRow resolves a user id to its prediction row.
func (e *Engine) userRow(userID int64) ([]float64, bool) {
	idx, ok := e.store.users.Index(userID)
	if !ok {
		return nil, false
	}
	return e.store.predictions.Row(idx), true
}

// Recommend returns up to k places ranked by the user's predicted score.
// Columns without a metadata row are skipped and ranking continues. An
// unknown user yields an empty slice.
func (e *Engine) Recommend(ctx context.Context, userID int64, k int) []Recommendation {
	logger := e.loggerFor(ctx)

	row, ok := e.userRow(userID)
	if !ok {
		logger.Debug().Int64("user_id", userID).Msg("unknown user")
		return []Recommendation{}
	}

	return e.topPlaces(logger, userID, row, e.count(k))
}

// topPlaces walks the ranked columns of row, joining each to the catalog,
// until k places are collected.
func (e *Engine) topPlaces(logger *zerolog.Logger, userID int64, row []float64, k int) []Recommendation {
	out := make([]Recommendation, 0, k)
	skipped := 0

	for _, col := range rankDescending(row) {
		if len(out) >= k {
			break
		}
		place, ok := e.placeForColumn(col)
		if !ok {
			skipped++
			continue
		}
		out = append(out, recommendationFrom(place))
	}

	if skipped > 0 {
		logger.Debug().
			Int64("user_id", userID).
			Int("skipped", skipped).
			Msg("skipped ranked places without metadata")
	}
	if len(out) == 0 {
		logger.Debug().Int64("user_id", userID).Msg("no places recommended")
	}
	return out
}

// placeForColumn maps a prediction column to its catalog row.
func (e *Engine) placeForColumn(col int) (Place, bool) {
	placeID, ok := e.store.places.ID(col)
	if !ok {
		return Place{}, false
	}
	return e.store.catalog.Lookup(placeID)
}

// Similar finds the first place whose name contains fragment
// (case-insensitive) and returns up to n other places ranked by content
// similarity to it. The matched place itself is never returned, nor are
// places whose similarity is not a finite number.
func (e *Engine) Similar(ctx context.Context, fragment string, n int) SimilarResult {
	logger := e.loggerFor(ctx)
	result := SimilarResult{Places: []SimilarPlace{}}

	query, ok := e.store.catalog.FindByName(fragment)
	if !ok {
		logger.Debug().Str("query", fragment).Msg("no place name matched")
		return result
	}

	catalog := e.store.catalog
	matched := recommendationFrom(catalog.At(query))
	result.Matched = &matched

	n = e.count(n)
	row := e.store.similarity.Row(query)
	unscored := 0
	for _, idx := range rankDescending(row) {
		if len(result.Places) >= n {
			break
		}
		if idx == query {
			continue
		}
		// Missing cells decode as NaN; they carry no similarity to report.
		if math.IsNaN(row[idx]) || math.IsInf(row[idx], 0) {
			unscored++
			continue
		}
		result.Places = append(result.Places, SimilarPlace{
			Recommendation: recommendationFrom(catalog.At(idx)),
			Similarity:     roundTo(row[idx], e.config.SimilarityPrecision),
		})
	}

	if unscored > 0 {
		logger.Debug().
			Str("query", fragment).
			Int("skipped", unscored).
			Msg("skipped places without a finite similarity")
	}
	return result
}

// Profile counts categories among the user's ProfileDepth highest-scored
// places. Places without metadata are not counted. An unknown user yields an
// empty map.
func (e *Engine) Profile(ctx context.Context, userID int64) map[string]int {
	counts, _ := e.profile(e.loggerFor(ctx), userID)
	return counts
}

// profile also returns the categories in order of first appearance in the
// ranking, which breaks ties between equally frequent categories.
func (e *Engine) profile(logger *zerolog.Logger, userID int64) (map[string]int, []string) {
	counts := map[string]int{}

	row, ok := e.userRow(userID)
	if !ok {
		logger.Debug().Int64("user_id", userID).Msg("unknown user")
		return counts, nil
	}

	ranked := rankDescending(row)
	depth := e.config.ProfileDepth
	if depth > len(ranked) {
		depth = len(ranked)
	}

	var order []string
	for _, col := range ranked[:depth] {
		place, ok := e.placeForColumn(col)
		if !ok {
			continue
		}
		if _, seen := counts[place.Category]; !seen {
			order = append(order, place.Category)
		}
		counts[place.Category]++
	}
	return counts, order
}

// favouriteCategory returns the most frequent category; ties go to the one
// ranked first.
func favouriteCategory(counts map[string]int, order []string) string {
	best, bestCount := "", 0
	for _, category := range order {
		if c := counts[category]; c > bestCount {
			best, bestCount = category, c
		}
	}
	return best
}

// Hybrid narrows the user's top HybridPoolSize collaborative results to the
// favourite category of their profile and returns the first n. When no
// pooled place is in that category the unfiltered pool is used instead.
func (e *Engine) Hybrid(ctx context.Context, userID int64, n int) HybridResult {
	logger := e.loggerFor(ctx)
	result := HybridResult{Places: []Recommendation{}}

	row, ok := e.userRow(userID)
	if !ok {
		logger.Debug().Int64("user_id", userID).Msg("unknown user")
		return result
	}

	n = e.count(n)
	pool := e.topPlaces(logger, userID, row, e.config.HybridPoolSize)
	counts, order := e.profile(logger, userID)
	favourite := favouriteCategory(counts, order)

	filtered := make([]Recommendation, 0, len(pool))
	if favourite != "" {
		for _, rec := range pool {
			if rec.Category == favourite {
				filtered = append(filtered, rec)
			}
		}
	}

	chosen := filtered
	if len(filtered) == 0 {
		logger.Debug().
			Int64("user_id", userID).
			Str("category", favourite).
			Msg("no pooled place in favourite category, using unfiltered pool")
		chosen = pool
	} else {
		result.Category = favourite
	}

	if len(chosen) > n {
		chosen = chosen[:n]
	}
	result.Places = append(result.Places, chosen...)
	return result
}

// Nearby returns every place with coordinates whose geodesic distance from
// (lat, lon) is at most radiusKm, nearest first. A zero radius uses
// DefaultRadiusKm; an invalid point or a negative radius yields an empty
// slice.
func (e *Engine) Nearby(ctx context.Context, lat, lon, radiusKm float64) []NearbyPlace {
	logger := e.loggerFor(ctx)

	if radiusKm == 0 {
		radiusKm = e.config.DefaultRadiusKm
	}
	if !ValidCoordinate(lat, lon) || math.IsNaN(radiusKm) || radiusKm < 0 {
		logger.Debug().
			Float64("lat", lat).
			Float64("lon", lon).
			Float64("radius_km", radiusKm).
			Msg("invalid nearby query")
		return []NearbyPlace{}
	}

	catalog := e.store.catalog
	out := []NearbyPlace{}
	for i := 0; i < catalog.Len(); i++ {
		place := catalog.At(i)
		if !place.HasCoords {
			continue
		}
		d := GeodesicDistanceKm(lat, lon, place.Lat, place.Lon)
		if d > radiusKm {
			continue
		}
		out = append(out, NearbyPlace{
			PlaceID:    place.ID,
			Name:       place.Name,
			City:       place.City,
			DistanceKm: roundTo(d, e.config.DistancePrecision),
		})
	}

	// Sorting on the rounded distance keeps table order among places that
	// display the same distance.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})
	return out
}
