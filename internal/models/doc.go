// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

/*
Package models defines the JSON shapes served by the Wisata HTTP API.

Every endpoint wraps its payload in APIResponse:

	{
	  "status": "success",
	  "data": {"user_id": 1, "count": 2, "places": [...]},
	  "metadata": {"timestamp": "2026-01-01T12:00:00Z", "query_time_ms": 1}
	}

Errors use the same envelope with Status "error" and a populated Error field.
The payload types mirror the recommend package results with JSON tags; the
api package converts between them so that recommend stays free of transport
concerns.
*/
package models
