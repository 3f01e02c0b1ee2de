// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

// Package middleware provides chi-compatible HTTP middleware for the Wisata API:
// request id propagation into the logging context, access logging with slow
// request warnings, and Prometheus request instrumentation.
//
// Recommended order:
//
//	r.Use(middleware.RequestID)
//	r.Use(middleware.AccessLog(time.Second))
//	r.Use(middleware.PrometheusMetrics)
package middleware
