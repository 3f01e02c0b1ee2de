// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/tomtom215/wisata/internal/logging"
	"github.com/tomtom215/wisata/internal/recommend"
)

// Metadata CSV columns.
const (
	ColumnPlaceID   = "Place_Id"
	ColumnPlaceName = "Place_Name"
	ColumnCategory  = "Category"
	ColumnCity      = "City"
	ColumnLat       = "Lat"
	ColumnLon       = "Long"
)

var requiredColumns = []string{ColumnPlaceID, ColumnPlaceName, ColumnCategory, ColumnCity, ColumnLat, ColumnLon}

// LoadPlaceMetadata reads the place metadata CSV at path and returns its rows
// in file order. Rows without a Place_Id are dropped. Missing or
// out-of-range coordinates leave HasCoords false.
func (db *DB) LoadPlaceMetadata(ctx context.Context, path string) ([]recommend.Place, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("place metadata: %w", err)
	}

	source := csvSource(path)
	columns, err := db.resolveColumns(ctx, source)
	if err != nil {
		return nil, err
	}

	// #nosec G201 -- source is a quoted literal and columns are quoted identifiers
	query := fmt.Sprintf(`
		SELECT
			TRY_CAST(%s AS BIGINT),
			COALESCE(CAST(%s AS VARCHAR), ''),
			COALESCE(CAST(%s AS VARCHAR), ''),
			COALESCE(CAST(%s AS VARCHAR), ''),
			TRY_CAST(%s AS DOUBLE),
			TRY_CAST(%s AS DOUBLE)
		FROM %s`,
		columns[ColumnPlaceID], columns[ColumnPlaceName], columns[ColumnCategory],
		columns[ColumnCity], columns[ColumnLat], columns[ColumnLon], source)

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query place metadata: %w", err)
	}
	defer closeWithLog(rows, "place metadata rows")

	places := make([]recommend.Place, 0, 512)
	skipped := 0
	for rows.Next() {
		var (
			id       sql.NullInt64
			p        recommend.Place
			lat, lon sql.NullFloat64
		)
		if err := rows.Scan(&id, &p.Name, &p.Category, &p.City, &lat, &lon); err != nil {
			return nil, fmt.Errorf("failed to scan place metadata: %w", err)
		}
		if !id.Valid {
			skipped++
			continue
		}
		p.ID = id.Int64
		if lat.Valid && lon.Valid && recommend.ValidCoordinate(lat.Float64, lon.Float64) {
			p.Lat, p.Lon, p.HasCoords = lat.Float64, lon.Float64, true
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating place metadata: %w", err)
	}

	if skipped > 0 {
		logging.Warn().Int("skipped", skipped).Str("path", path).Msg("Dropped metadata rows without a place id")
	}

	return places, nil
}

// resolveColumns maps each required column to the quoted identifier used in
// the file. Header matching is case-insensitive.
func (db *DB) resolveColumns(ctx context.Context, source string) (map[string]string, error) {
	rows, err := db.conn.QueryContext(ctx, "SELECT * FROM "+source+" LIMIT 0")
	if err != nil {
		return nil, fmt.Errorf("failed to read place metadata header: %w", err)
	}
	defer closeWithLog(rows, "place metadata header")

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read place metadata header: %w", err)
	}

	byLower := make(map[string]string, len(names))
	for _, name := range names {
		byLower[strings.ToLower(strings.TrimSpace(name))] = name
	}

	resolved := make(map[string]string, len(requiredColumns))
	for _, want := range requiredColumns {
		actual, ok := byLower[strings.ToLower(want)]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, want)
		}
		resolved[want] = quoteIdentifier(actual)
	}
	return resolved, nil
}

func csvSource(path string) string {
	return fmt.Sprintf("read_csv_auto('%s', header = true)", strings.ReplaceAll(path, "'", "''"))
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
