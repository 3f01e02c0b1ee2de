// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/tomtom215/wisata/internal/logging"
)

const defaultDrainTimeout = 10 * time.Second

// HTTPServer is the part of *http.Server the service drives.
type HTTPServer interface {
	Serve(l net.Listener) error
	Shutdown(ctx context.Context) error
}

// HTTPServerService binds addr and serves the API on it under supervision.
// A bind or serve failure is returned so the supervisor backs off and
// retries; cancellation drains in-flight requests for at most drainTimeout.
type HTTPServerService struct {
	server       HTTPServer
	addr         string
	drainTimeout time.Duration
	listen       func(network, address string) (net.Listener, error)
	bound        atomic.Pointer[string]
}

// NewHTTPServerService serves server on addr. Non-positive drain timeouts
// use 10s.
func NewHTTPServerService(server HTTPServer, addr string, drainTimeout time.Duration) *HTTPServerService {
	if drainTimeout <= 0 {
		drainTimeout = defaultDrainTimeout
	}
	return &HTTPServerService{
		server:       server,
		addr:         addr,
		drainTimeout: drainTimeout,
		listen:       net.Listen,
	}
}

// Addr returns the address currently bound, or "" when not listening.
func (h *HTTPServerService) Addr() string {
	if p := h.bound.Load(); p != nil {
		return *p
	}
	return ""
}

// Serve implements suture.Service.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	ln, err := h.listen("tcp", h.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", h.addr, err)
	}
	bound := ln.Addr().String()
	h.bound.Store(&bound)
	defer h.bound.Store(nil)

	logging.Info().Str("addr", bound).Msg("Serving recommendation API")

	errCh := make(chan error, 1)
	go func() {
		err := h.server.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve %s: %w", bound, err)
		}
		return nil

	case <-ctx.Done():
		drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.drainTimeout)
		defer cancel()

		logging.Info().Str("addr", bound).Dur("drain_timeout", h.drainTimeout).Msg("Draining recommendation API")
		if err := h.server.Shutdown(drainCtx); err != nil {
			return fmt.Errorf("drain %s: %w", bound, err)
		}
		<-errCh
		return ctx.Err()
	}
}

// String names the service in suture event logs.
func (h *HTTPServerService) String() string {
	return "http-server"
}
