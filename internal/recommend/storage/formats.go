// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package storage

import (
	"bufio"
	"fmt"
	"math"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wisata/internal/recommend"
)

// encoderFile is the on-disk format of a label encoder.
type encoderFile struct {
	Classes []int64 `json:"classes"`
}

// matrixFile is the on-disk format of a dense row-major matrix.
type matrixFile struct {
	Rows int           `json:"rows"`
	Cols int           `json:"cols"`
	Data []matrixValue `json:"data"`
}

// matrixValue decodes null as NaN.
type matrixValue float64

// UnmarshalJSON implements json.Unmarshaler.
func (v *matrixValue) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = matrixValue(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*v = matrixValue(f)
	return nil
}

// ReadEncoder decodes a label encoder file.
func ReadEncoder(path string) (*recommend.LabelEncoder, error) {
	var file encoderFile
	if err := decodeJSONFile(path, &file); err != nil {
		return nil, err
	}
	if file.Classes == nil {
		return nil, fmt.Errorf("%s: missing classes", path)
	}
	enc, err := recommend.NewLabelEncoder(file.Classes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return enc, nil
}

// ReadMatrix decodes a matrix file.
func ReadMatrix(path string) (*recommend.Matrix, error) {
	var file matrixFile
	if err := decodeJSONFile(path, &file); err != nil {
		return nil, err
	}

	data := make([]float64, len(file.Data))
	for i, v := range file.Data {
		data[i] = float64(v)
	}

	m, err := recommend.NewMatrix(file.Rows, file.Cols, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func decodeJSONFile(path string, v any) error {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }() //nolint:errcheck // read-only file

	if err := json.NewDecoder(bufio.NewReader(f)).Decode(v); err != nil {
		return fmt.Errorf("%s: decode: %w", path, err)
	}
	return nil
}
