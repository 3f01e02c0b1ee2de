// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

/*
Command register publishes a trained artifact bundle to an MLflow tracking
server and registers it as a new model version.

The bundle is loaded and cross-checked exactly as the server would load it,
so a bundle the server would refuse is never registered. Then:

 1. manifest.json is rebuilt with the SHA-256 of every artifact
 2. the experiment (MLFLOW_EXPERIMENT_NAME) is found or created
 3. a run records file names, vocabulary sizes and checksums
 4. artifacts are uploaded through the tracking server's artifact proxy
 5. a version of MLFLOW_REGISTERED_MODEL is created from the run

Configuration comes from the same sources as the server (config.yaml and
environment variables).

Usage:

	MLFLOW_TRACKING_URI=http://localhost:5001 ARTIFACT_DIR=models/model_tourism ./wisata-register
	./wisata-register -write-manifest=false
*/
package main
