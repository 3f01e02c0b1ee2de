// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

/*
Package supervisor runs Wisata's long-lived services under a suture v4 tree.

The tree has two layers:

	wisata (root)
	├── runtime-layer   uptime gauge and other background tickers
	└── api-layer       HTTP server

A service that returns an error is restarted by its layer. Repeated
failures put the layer into backoff (FailureThreshold / FailureBackoff)
without touching the other layer, so a crashing ticker never takes the
API down. Supervisor events are logged through sutureslog, which writes to
the zerolog stream via logging.NewSlogLogger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: cfg.Supervisor.FailureThreshold,
		FailureBackoff:   cfg.Supervisor.FailureBackoff,
		ShutdownTimeout:  cfg.Supervisor.ShutdownTimeout,
	})
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Supervisor.ShutdownTimeout))
	tree.AddRuntimeService(services.NewUptimeService(startTime, 15*time.Second))
	errCh := tree.ServeBackground(ctx)
*/
package supervisor
