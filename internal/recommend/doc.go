// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

// Package recommend scores tourism places from a pre-trained model bundle.
//
// # Model
//
// A ModelStore holds five immutable artifacts:
//
//   - a user LabelEncoder mapping User_Id to a prediction row
//   - a place LabelEncoder mapping Place_Id to a prediction column
//   - the prediction Matrix (users x places) of collaborative scores
//   - the content similarity Matrix (catalog rows x catalog rows)
//   - the place Catalog (Place_Id, name, category, city, coordinates)
//
// Dimensions are validated once by NewModelStore; scoring never re-checks them.
//
// # Operations
//
// Engine exposes five read-only operations:
//
//   - Recommend: top-k places by predicted score for a user
//   - Similar: places most similar in content to a place found by name
//   - Profile: category counts among a user's top-ranked places
//   - Hybrid: collaborative results narrowed to the user's favourite category
//   - Nearby: places within a geodesic radius of a point
//
// Unknown users, unmatched names and places without metadata degrade to
// empty or shorter results. No operation returns an error.
//
// # Thread Safety
//
// The store and engine are never mutated after construction and are safe for
// concurrent use without locking.
//
// # Usage
//
//	store, err := recommend.NewModelStore(users, places, predictions, similarity, catalog)
//	engine, err := recommend.NewEngine(store, recommend.DefaultConfig(), logger)
//	recs := engine.Recommend(ctx, 42, 5)
//
// This package does not import any other internal package; loading lives in
// recommend/storage and transport in api.
package recommend
