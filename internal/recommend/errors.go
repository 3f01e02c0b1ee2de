// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package recommend

import "errors"

var (
	// ErrDimensionMismatch is returned when matrix shapes disagree with the
	// encoder vocabularies or the catalog.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrDuplicateID is returned when an encoder vocabulary repeats an id.
	ErrDuplicateID = errors.New("duplicate identifier")

	// ErrInvalidMatrix is returned for negative shapes or a data length
	// that is not rows*cols.
	ErrInvalidMatrix = errors.New("invalid matrix")

	// ErrNilArtifact is returned when a required artifact is missing.
	ErrNilArtifact = errors.New("nil artifact")
)
