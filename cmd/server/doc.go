// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

/*
Package main is the entry point for the Wisata recommendation server.

Wisata serves tourism-place recommendations for Indonesia from a pre-trained
model bundle: collaborative filtering predictions, a content similarity
matrix and a place metadata table.

# Application Architecture

	RootSupervisor ("wisata")
	├── RuntimeSupervisor ("runtime-layer")
	│   └── Uptime gauge
	└── APISupervisor ("api-layer")
	    └── HTTP Server (Chi router)

Startup order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Artifacts: encoders and matrices decoded in parallel, metadata read with DuckDB
 4. Engine: read-only scoring over the loaded bundle
 5. Supervisor Tree: Suture v4 process supervision
 6. HTTP Server: Chi router with middleware stack

A bundle that fails to load or verify stops the process: the server never
answers with a partial model.

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server stops
accepting connections and in-flight requests get SUPERVISOR_SHUTDOWN_TIMEOUT
to finish.

# Example Usage

	export ARTIFACT_DIR=/srv/models/model_tourism
	export HTTP_PORT=8000
	./wisata-server

	curl localhost:8000/api/v1/recommend/12?top_k=5
*/
package main
