// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package config

import (
	"fmt"
	"net/url"
)

// validateTrackingURI checks an MLflow tracking server address. A path
// prefix is allowed for servers mounted behind a reverse proxy; REST paths
// are appended to it verbatim, so query strings, fragments and embedded
// credentials are rejected.
func validateTrackingURI(raw, key string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", key)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}

	switch {
	case u.Scheme != "http" && u.Scheme != "https":
		return fmt.Errorf("%s must use http or https, got %q", key, u.Scheme)
	case u.Host == "":
		return fmt.Errorf("%s has no host", key)
	case u.User != nil:
		return fmt.Errorf("%s must not embed credentials", key)
	case u.RawQuery != "" || u.Fragment != "":
		return fmt.Errorf("%s must not carry a query or fragment", key)
	}
	return nil
}
