// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

/*
Package mlflow registers artifact bundles with an MLflow tracking server.

It speaks MLflow's REST API 2.0 directly: experiments, runs, batch logging,
the artifact proxy (mlflow-artifacts) and the model registry. Every request
goes through a circuit breaker so an unreachable tracking server fails fast.
Client errors (4xx) are answers, not outages, and never trip the breaker.

Registration flow (Registrar.Register):
 1. get or create the experiment
 2. create a run named after the configured run name
 3. log params, metrics and tags in one batch
 4. upload each artifact under model/ when the run uses the artifact proxy
 5. get or create the registered model and create a version from the run
 6. mark the run FINISHED, or FAILED if any step failed
*/
package mlflow
