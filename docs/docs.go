// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

// Package docs holds the OpenAPI document served at /swagger/doc.json.
// Regenerate with `swag init -g cmd/server/docs.go` after changing handler
// annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/wisata/issues"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Returns a fixed message when the API is serving",
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Liveness message",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Reports whether the model bundle is loaded, its dimensions and the process uptime",
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/api/v1/recommend/{userID}": {
            "get": {
                "description": "Returns up to top_k places ranked by the user's predicted score. Unknown users get an empty list.",
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Collaborative recommendations",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true},
                    {"type": "integer", "description": "Number of places (default 5)", "name": "top_k", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/models.APIResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.RecommendResponse"}}}]}},
                    "400": {"description": "INVALID_USER_ID or VALIDATION_ERROR", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "NOT_READY", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/api/v1/similar": {
            "get": {
                "description": "Finds the first place whose name contains name (case-insensitive) and returns the top_n most similar other places.",
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Content-based similar places",
                "parameters": [
                    {"type": "string", "description": "Place name fragment; blank matches nothing", "name": "name", "in": "query"},
                    {"type": "integer", "description": "Number of places (default 5)", "name": "top_n", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/models.APIResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.SimilarResponse"}}}]}},
                    "400": {"description": "VALIDATION_ERROR", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "NOT_READY", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/api/v1/users/{userID}/profile": {
            "get": {
                "description": "Counts the categories of the user's top-ranked places. Unknown users get an empty mapping.",
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "User category profile",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/models.APIResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.ProfileResponse"}}}]}},
                    "400": {"description": "INVALID_USER_ID", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "NOT_READY", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/api/v1/hybrid/{userID}": {
            "get": {
                "description": "Filters the user's collaborative top places to their favourite category, falling back to the unfiltered list when nothing matches.",
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Hybrid recommendations",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true},
                    {"type": "integer", "description": "Number of places (default 5)", "name": "top_n", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/models.APIResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.RecommendResponse"}}}]}},
                    "400": {"description": "INVALID_USER_ID or VALIDATION_ERROR", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "NOT_READY", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/api/v1/nearby": {
            "get": {
                "description": "Returns every place within radius_km of (lat, lon), nearest first, with geodesic distances.",
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Places near a point",
                "parameters": [
                    {"type": "number", "description": "Latitude (-90 to 90)", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "description": "Longitude (-180 to 180)", "name": "lon", "in": "query", "required": true},
                    {"type": "number", "description": "Search radius in km (default 20)", "name": "radius_km", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/models.APIResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.NearbyResponse"}}}]}},
                    "400": {"description": "VALIDATION_ERROR", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "NOT_READY", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true},
                "message": {"type": "string"}
            }
        },
        "models.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/models.APIError"},
                "metadata": {"$ref": "#/definitions/models.Metadata"},
                "status": {"type": "string"}
            }
        },
        "models.Metadata": {
            "type": "object",
            "properties": {
                "cached": {"type": "boolean"},
                "query_time_ms": {"type": "integer"},
                "timestamp": {"type": "string"}
            }
        },
        "models.Place": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "city": {"type": "string"},
                "name": {"type": "string"},
                "place_id": {"type": "integer"}
            }
        },
        "models.SimilarPlace": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "city": {"type": "string"},
                "name": {"type": "string"},
                "place_id": {"type": "integer"},
                "similarity_score": {"type": "number"}
            }
        },
        "models.NearbyPlace": {
            "type": "object",
            "properties": {
                "city": {"type": "string"},
                "distance_km": {"type": "number"},
                "name": {"type": "string"},
                "place_id": {"type": "integer"}
            }
        },
        "models.RecommendResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "count": {"type": "integer"},
                "places": {"type": "array", "items": {"$ref": "#/definitions/models.Place"}},
                "user_id": {"type": "integer"}
            }
        },
        "models.SimilarResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "matched_place": {"$ref": "#/definitions/models.Place"},
                "places": {"type": "array", "items": {"$ref": "#/definitions/models.SimilarPlace"}},
                "query": {"type": "string"}
            }
        },
        "models.ProfileResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "object", "additionalProperties": {"type": "integer"}},
                "user_id": {"type": "integer"}
            }
        },
        "models.NearbyResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "lat": {"type": "number"},
                "lon": {"type": "number"},
                "places": {"type": "array", "items": {"$ref": "#/definitions/models.NearbyPlace"}},
                "radius_km": {"type": "number"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Wisata API",
	Description:      "Tourism place recommendations for Indonesia: collaborative, content-based, hybrid and location-based.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
