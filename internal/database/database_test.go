// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// testDBSemaphore serializes DuckDB usage across tests; concurrent CGO
// connections are slow to start under CI load.
var testDBSemaphore = make(chan struct{}, 1)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	db, err := Open(context.Background())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return db
}

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

// The cleanup registered by setupTestDB closes db a second time.
func TestOpen_Close(t *testing.T) {
	db := setupTestDB(t)
	if err := db.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestLoadPlaceMetadata(t *testing.T) {
	db := setupTestDB(t)

	path := writeCSV(t, "place_metadata.csv", `Place_Id,Place_Name,Category,City,Lat,Long
11,Monumen Nasional,Budaya,Jakarta,-6.1753924,106.8271528
10,"Taman Mini Indonesia Indah",Taman Hiburan,Jakarta,-6.3024459,106.8951559
14,Museum Fatahillah,Budaya,Jakarta,,
11,Monumen Nasional (copy),Budaya,Jakarta,-6.17,106.82
,No Id,Bahari,Bandung,-6.9,107.6
16,Far Away,Bahari,Nowhere,95.0,10.0
`)

	places, err := db.LoadPlaceMetadata(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadPlaceMetadata() error = %v", err)
	}

	wantIDs := []int64{11, 10, 14, 11, 16}
	if len(places) != len(wantIDs) {
		t.Fatalf("got %d places, want %d: %+v", len(places), len(wantIDs), places)
	}
	for i, id := range wantIDs {
		if places[i].ID != id {
			t.Errorf("places[%d].ID = %d, want %d", i, places[i].ID, id)
		}
	}

	first := places[0]
	if first.Name != "Monumen Nasional" || first.Category != "Budaya" || first.City != "Jakarta" {
		t.Errorf("first row = %+v", first)
	}
	if !first.HasCoords || first.Lat != -6.1753924 || first.Lon != 106.8271528 {
		t.Errorf("first row coordinates = %v, %v (has %v)", first.Lat, first.Lon, first.HasCoords)
	}
	if places[1].Name != "Taman Mini Indonesia Indah" {
		t.Errorf("quoted name = %q", places[1].Name)
	}
	if places[2].HasCoords {
		t.Error("row with empty coordinates has HasCoords = true")
	}
	if places[4].HasCoords {
		t.Error("row with out-of-range latitude has HasCoords = true")
	}
}

func TestLoadPlaceMetadata_CaseInsensitiveHeader(t *testing.T) {
	db := setupTestDB(t)

	path := writeCSV(t, "it's metadata.csv", `place_id,PLACE_NAME,category,city,lat,long,Rating
1,Pantai Kuta,Bahari,Denpasar,-8.7185,115.1686,4.5
`)

	places, err := db.LoadPlaceMetadata(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadPlaceMetadata() error = %v", err)
	}
	if len(places) != 1 || places[0].Name != "Pantai Kuta" || !places[0].HasCoords {
		t.Errorf("places = %+v", places)
	}
}

func TestLoadPlaceMetadata_Errors(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.LoadPlaceMetadata(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}

	path := writeCSV(t, "no_coords.csv", "Place_Id,Place_Name,Category,City\n1,A,B,C\n")
	_, err = db.LoadPlaceMetadata(context.Background(), path)
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("missing column error = %v, want ErrMissingColumn", err)
	}
}
