// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package services

import (
	"context"
	"time"

	"github.com/tomtom215/wisata/internal/metrics"
)

// UptimeService refreshes the process uptime gauge on a fixed interval.
type UptimeService struct {
	started  time.Time
	interval time.Duration
	set      func(seconds float64)
}

// NewUptimeService reports uptime since started every interval.
func NewUptimeService(started time.Time, interval time.Duration) *UptimeService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &UptimeService{
		started:  started,
		interval: interval,
		set:      metrics.AppUptime.Set,
	}
}

// Serve implements suture.Service.
func (u *UptimeService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	u.set(time.Since(u.started).Seconds())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			u.set(time.Since(u.started).Seconds())
		}
	}
}

// String implements fmt.Stringer.
func (u *UptimeService) String() string {
	return "uptime-reporter"
}
