// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package mlflow

import (
	"errors"
	"fmt"
	"net/http"
)

// MLflow error codes.
const (
	ErrorCodeNotFound      = "RESOURCE_DOES_NOT_EXIST"
	ErrorCodeAlreadyExists = "RESOURCE_ALREADY_EXISTS"
)

// APIError is a non-2xx response from the tracking server.
type APIError struct {
	StatusCode int    `json:"-"`
	ErrorCode  string `json:"error_code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("mlflow: %d %s: %s", e.StatusCode, e.ErrorCode, e.Message)
	}
	return fmt.Sprintf("mlflow: status %d: %s", e.StatusCode, e.Message)
}

// IsClientError reports whether the server rejected the request itself.
func (e *APIError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// IsNotFound reports whether err is an MLflow "does not exist" error.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.ErrorCode == ErrorCodeNotFound || apiErr.StatusCode == http.StatusNotFound
}

// IsAlreadyExists reports whether err is an MLflow "already exists" error.
func IsAlreadyExists(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode == ErrorCodeAlreadyExists
}
