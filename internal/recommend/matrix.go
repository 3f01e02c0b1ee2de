// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package recommend

import "fmt"

// Matrix is a dense row-major float64 matrix.
type Matrix struct {
	rows int
	cols int
	data []float64
}

// NewMatrix wraps data as a rows x cols matrix. data is not copied and must
// not be modified afterwards.
func NewMatrix(rows, cols int, data []float64) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: negative shape %dx%d", ErrInvalidMatrix, rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %dx%d needs %d values, got %d", ErrInvalidMatrix, rows, cols, rows*cols, len(data))
	}
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// Row returns row i as a slice into the backing array. Callers must treat it
// as read-only.
func (m *Matrix) Row(i int) []float64 {
	start := i * m.cols
	return m.data[start : start+m.cols : start+m.cols]
}
