// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

// Package storage loads the trained artifact bundle from disk.
//
// # Bundle Layout
//
// A bundle is one directory holding five artifacts and an optional manifest:
//
//	user_encoder.json        {"classes": [int, ...]}
//	place_encoder.json       {"classes": [int, ...]}
//	prediction_matrix.json   {"rows": R, "cols": C, "data": [R*C floats]}
//	content_similarity.json  {"rows": N, "cols": N, "data": [N*N floats]}
//	place_metadata.csv       Place_Id,Place_Name,Category,City,Lat,Long
//	manifest.json            {"version", "created_at", "files": {name: {sha256, size_bytes}}}
//
// Matrices are row-major. A null entry decodes to NaN.
//
// # Integrity
//
// When manifest.json exists and checksum verification is enabled, every
// artifact must be listed in it and match its SHA-256 before anything is
// decoded. BuildManifest produces the manifest for a finished bundle.
//
// # Loading
//
// Load decodes the artifacts concurrently and assembles a
// recommend.ModelStore, which validates the dimensions across artifacts.
// The bundle is read once; there is no reload path.
package storage
