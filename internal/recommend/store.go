// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package recommend

import "fmt"

// ModelStore holds a validated, immutable model bundle.
type ModelStore struct {
	users       *LabelEncoder
	places      *LabelEncoder
	predictions *Matrix
	similarity  *Matrix
	catalog     *Catalog
	version     string
}

// StoreStats summarizes a bundle.
type StoreStats struct {
	Users       int    `json:"users"`
	Places      int    `json:"places"`
	CatalogRows int    `json:"catalog_rows"`
	Version     string `json:"version,omitempty"`
}

// NewModelStore validates the artifacts against each other:
//
//   - predictions is len(users) x len(places)
//   - similarity is catalog.Len() x catalog.Len()
//
// Encoders are bijective by construction.
func NewModelStore(users, places *LabelEncoder, predictions, similarity *Matrix, catalog *Catalog) (*ModelStore, error) {
	switch {
	case users == nil:
		return nil, fmt.Errorf("%w: user encoder", ErrNilArtifact)
	case places == nil:
		return nil, fmt.Errorf("%w: place encoder", ErrNilArtifact)
	case predictions == nil:
		return nil, fmt.Errorf("%w: prediction matrix", ErrNilArtifact)
	case similarity == nil:
		return nil, fmt.Errorf("%w: similarity matrix", ErrNilArtifact)
	case catalog == nil:
		return nil, fmt.Errorf("%w: place catalog", ErrNilArtifact)
	}

	if predictions.Rows() != users.Len() {
		return nil, fmt.Errorf("%w: prediction matrix has %d rows, user encoder has %d ids",
			ErrDimensionMismatch, predictions.Rows(), users.Len())
	}
	if predictions.Cols() != places.Len() {
		return nil, fmt.Errorf("%w: prediction matrix has %d columns, place encoder has %d ids",
			ErrDimensionMismatch, predictions.Cols(), places.Len())
	}
	if similarity.Rows() != similarity.Cols() {
		return nil, fmt.Errorf("%w: similarity matrix is %dx%d, want square",
			ErrDimensionMismatch, similarity.Rows(), similarity.Cols())
	}
	if similarity.Rows() != catalog.Len() {
		return nil, fmt.Errorf("%w: similarity matrix has %d rows, catalog has %d",
			ErrDimensionMismatch, similarity.Rows(), catalog.Len())
	}

	return &ModelStore{
		users:       users,
		places:      places,
		predictions: predictions,
		similarity:  similarity,
		catalog:     catalog,
	}, nil
}

// WithVersion returns a copy of the store labelled with a bundle version.
func (s *ModelStore) WithVersion(version string) *ModelStore {
	cp := *s
	cp.version = version
	return &cp
}

// Stats returns the bundle dimensions.
func (s *ModelStore) Stats() StoreStats {
	return StoreStats{
		Users:       s.users.Len(),
		Places:      s.places.Len(),
		CatalogRows: s.catalog.Len(),
		Version:     s.version,
	}
}
