// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// correlationIDLength is the UUID prefix kept for correlation ids.
const correlationIDLength = 8

// RequestScope identifies one inbound request in log output.
type RequestScope struct {
	RequestID     string
	CorrelationID string
}

type scopeKey struct{}

// NewRequestID returns a UUID for the X-Request-ID header.
func NewRequestID() string {
	return uuid.NewString()
}

// NewCorrelationID returns a short id shared by every log line of a request.
func NewCorrelationID() string {
	return uuid.NewString()[:correlationIDLength]
}

// WithScope stores scope in ctx. An empty CorrelationID is filled in.
func WithScope(ctx context.Context, scope RequestScope) context.Context {
	if scope.CorrelationID == "" {
		scope.CorrelationID = NewCorrelationID()
	}
	return context.WithValue(ctx, scopeKey{}, scope)
}

// ScopeFrom returns the scope stored in ctx, or the zero value.
func ScopeFrom(ctx context.Context) RequestScope {
	scope, _ := ctx.Value(scopeKey{}).(RequestScope)
	return scope
}

// Ctx returns the global logger tagged with the request scope in ctx.
//
//	logging.Ctx(ctx).Info().Msg("Serving recommendations")
func Ctx(ctx context.Context) *zerolog.Logger {
	scope := ScopeFrom(ctx)
	logCtx := Logger().With()
	if scope.CorrelationID != "" {
		logCtx = logCtx.Str("correlation_id", scope.CorrelationID)
	}
	if scope.RequestID != "" {
		logCtx = logCtx.Str("request_id", scope.RequestID)
	}
	logger := logCtx.Logger()
	return &logger
}
