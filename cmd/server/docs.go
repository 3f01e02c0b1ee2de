// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

// @title Wisata API
// @version 1.0
// @description Tourism place recommendations for Indonesia: collaborative, content-based, hybrid and location-based.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {"code": "INVALID_USER_ID", "message": "user id must be an integer"},
// @description   "metadata": {"timestamp": "2026-01-01T00:00:00Z"}
// @description }
// @description ```
// @description
// @description ## Rate Limiting
// @description
// @description Routes under /api/v1 are limited per client IP (default 100 requests per minute).
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/wisata/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description Liveness and health
//
// @tag.name Recommendations
// @tag.description Scoring endpoints over the loaded model bundle
package main
