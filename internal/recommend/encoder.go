// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package recommend

import "fmt"

// LabelEncoder is a bijection between external integer ids and dense indices.
// Index i corresponds to the i-th entry of the vocabulary it was built from.
type LabelEncoder struct {
	classes []int64
	index   map[int64]int
}

// NewLabelEncoder builds an encoder from a vocabulary. The slice is copied.
func NewLabelEncoder(classes []int64) (*LabelEncoder, error) {
	enc := &LabelEncoder{
		classes: make([]int64, len(classes)),
		index:   make(map[int64]int, len(classes)),
	}
	copy(enc.classes, classes)

	for i, id := range enc.classes {
		if prev, ok := enc.index[id]; ok {
			return nil, fmt.Errorf("%w: id %d at positions %d and %d", ErrDuplicateID, id, prev, i)
		}
		enc.index[id] = i
	}
	return enc, nil
}

// Len returns the vocabulary size.
func (e *LabelEncoder) Len() int {
	return len(e.classes)
}

// Index maps an id to its dense index. ok is false for ids outside the
// vocabulary.
func (e *LabelEncoder) Index(id int64) (idx int, ok bool) {
	idx, ok = e.index[id]
	return idx, ok
}

// ID maps a dense index back to its id. ok is false for out-of-range indices.
func (e *LabelEncoder) ID(idx int) (id int64, ok bool) {
	if idx < 0 || idx >= len(e.classes) {
		return 0, false
	}
	return e.classes[idx], true
}
