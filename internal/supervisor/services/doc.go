// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

// Package services adapts Wisata components to suture.Service.
//
// Each wrapper translates a component's own lifecycle into
// Serve(ctx) error: it runs until ctx is canceled and returns an error
// only when the supervisor should restart it.
package services
