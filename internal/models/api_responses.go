// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package models

import "time"

// APIResponse is the envelope for every API response.
//
// Status is "success" (see Data) or "error" (see Error).
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata describes how the response was produced.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError is a machine-readable error.
//
// Codes used by the service:
//   - VALIDATION_ERROR: a query parameter is out of range
//   - INVALID_USER_ID: the user id path segment is not an integer
//   - METHOD_NOT_ALLOWED: only GET is served
//   - NOT_READY: artifacts are not loaded
//   - RATE_LIMIT_EXCEEDED: too many requests from one client
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RootMessage is served by GET /.
type RootMessage struct {
	Message string `json:"message"`
}

// HealthStatus is served by GET /health.
type HealthStatus struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	ModelLoaded   bool    `json:"model_loaded"`
	Users         int     `json:"users"`
	Places        int     `json:"places"`
	CatalogRows   int     `json:"catalog_rows"`
	BundleVersion string  `json:"bundle_version,omitempty"`
	Uptime        float64 `json:"uptime_seconds"`

	ResponseCache *CacheStats `json:"response_cache,omitempty"`
}

// CacheStats reports the API response cache.
type CacheStats struct {
	Entries int   `json:"entries"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}
