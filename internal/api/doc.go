// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

/*
Package api serves the recommendation engine over HTTP with the Chi router.

Every JSON response uses the models.APIResponse envelope:

	{"status": "success", "data": {...}, "metadata": {"timestamp": "...", "query_time_ms": 1}}
	{"status": "error", "data": null, "error": {"code": "INVALID_USER_ID", "message": "..."}}

Routes:

	GET /                                  liveness message
	GET /health                            bundle sizes and uptime
	GET /metrics                           Prometheus
	GET /swagger/*                         API documentation
	GET /recommend/{userID}?top_k=5        collaborative recommendations
	GET /api/v1/recommend/{userID}?top_k=5 same, rate limited
	GET /api/v1/similar?name=..&top_n=5    content-based similar places
	GET /api/v1/users/{userID}/profile     category counts of a user's top places
	GET /api/v1/hybrid/{userID}?top_n=5    recommendations filtered to the favourite category
	GET /api/v1/nearby?lat=..&lon=..       places within radius_km of a point

Unknown users and unmatched names are not errors: they return 200 with an
empty list. Only malformed parameters are rejected, with 400 and one of the
INVALID_USER_ID or VALIDATION_ERROR codes.
*/
package api
