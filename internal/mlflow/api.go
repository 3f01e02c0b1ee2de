// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package mlflow

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	apiPrefix       = "/api/2.0/mlflow"
	artifactsPrefix = "/api/2.0/mlflow-artifacts/artifacts"

	// ArtifactProxyScheme marks artifact URIs served by the tracking server.
	ArtifactProxyScheme = "mlflow-artifacts:"
)

// GetExperimentByName looks an experiment up by name.
func (c *Client) GetExperimentByName(ctx context.Context, name string) (*Experiment, error) {
	var resp struct {
		Experiment Experiment `json:"experiment"`
	}
	query := url.Values{"experiment_name": {name}}
	if err := c.callJSON(ctx, http.MethodGet, apiPrefix+"/experiments/get-by-name", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Experiment, nil
}

// CreateExperiment creates an experiment and returns its id.
func (c *Client) CreateExperiment(ctx context.Context, name string) (string, error) {
	var resp struct {
		ExperimentID string `json:"experiment_id"`
	}
	req := map[string]string{"name": name}
	if err := c.callJSON(ctx, http.MethodPost, apiPrefix+"/experiments/create", nil, req, &resp); err != nil {
		return "", err
	}
	return resp.ExperimentID, nil
}

// CreateRun starts a run in the experiment.
func (c *Client) CreateRun(ctx context.Context, experimentID, runName string, tags []Tag) (*Run, error) {
	if runName != "" {
		tags = append(append([]Tag(nil), tags...), Tag{Key: TagRunName, Value: runName})
	}
	req := struct {
		ExperimentID string `json:"experiment_id"`
		RunName      string `json:"run_name,omitempty"`
		StartTime    int64  `json:"start_time"`
		Tags         []Tag  `json:"tags,omitempty"`
	}{experimentID, runName, time.Now().UnixMilli(), tags}

	var resp struct {
		Run Run `json:"run"`
	}
	if err := c.callJSON(ctx, http.MethodPost, apiPrefix+"/runs/create", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Run, nil
}

// LogBatch records params, metrics and tags on a run.
func (c *Client) LogBatch(ctx context.Context, runID string, params []Param, metrics []Metric, tags []Tag) error {
	req := struct {
		RunID   string   `json:"run_id"`
		Params  []Param  `json:"params,omitempty"`
		Metrics []Metric `json:"metrics,omitempty"`
		Tags    []Tag    `json:"tags,omitempty"`
	}{runID, params, metrics, tags}
	return c.callJSON(ctx, http.MethodPost, apiPrefix+"/runs/log-batch", nil, req, nil)
}

// UpdateRun sets a run's terminal status.
func (c *Client) UpdateRun(ctx context.Context, runID, status string) error {
	req := struct {
		RunID   string `json:"run_id"`
		Status  string `json:"status"`
		EndTime int64  `json:"end_time"`
	}{runID, status, time.Now().UnixMilli()}
	return c.callJSON(ctx, http.MethodPost, apiPrefix+"/runs/update", nil, req, nil)
}

// CreateRegisteredModel creates a model registry entry.
func (c *Client) CreateRegisteredModel(ctx context.Context, name string) (*RegisteredModel, error) {
	var resp struct {
		RegisteredModel RegisteredModel `json:"registered_model"`
	}
	req := map[string]string{"name": name}
	if err := c.callJSON(ctx, http.MethodPost, apiPrefix+"/registered-models/create", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp.RegisteredModel, nil
}

// CreateModelVersion registers source as a new version of the model.
func (c *Client) CreateModelVersion(ctx context.Context, name, source, runID string) (*ModelVersion, error) {
	req := struct {
		Name   string `json:"name"`
		Source string `json:"source"`
		RunID  string `json:"run_id,omitempty"`
	}{name, source, runID}

	var resp struct {
		ModelVersion ModelVersion `json:"model_version"`
	}
	if err := c.callJSON(ctx, http.MethodPost, apiPrefix+"/model-versions/create", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp.ModelVersion, nil
}

// UploadArtifact stores content at artifactPath below a run's proxied
// artifact URI.
func (c *Client) UploadArtifact(ctx context.Context, artifactURI, artifactPath string, content []byte) error {
	root, err := proxyPath(artifactURI)
	if err != nil {
		return err
	}
	path := artifactsPrefix + "/" + escapePath(root+"/"+strings.TrimPrefix(artifactPath, "/"))
	_, err = c.execute(ctx, http.MethodPut, path, nil, "application/octet-stream", content)
	return err
}

// IsProxiedArtifactURI reports whether uploads for uri go through the
// tracking server.
func IsProxiedArtifactURI(uri string) bool {
	return strings.HasPrefix(uri, ArtifactProxyScheme)
}

// proxyPath strips the scheme and optional authority from an
// mlflow-artifacts URI: "mlflow-artifacts:/1/abc/artifacts" and
// "mlflow-artifacts://host:5000/1/abc/artifacts" both yield "1/abc/artifacts".
func proxyPath(uri string) (string, error) {
	if !IsProxiedArtifactURI(uri) {
		return "", fmt.Errorf("mlflow: artifact URI %q is not served by the tracking server", uri)
	}
	rest := strings.TrimPrefix(uri, ArtifactProxyScheme)
	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			rest = rest[i:]
		} else {
			rest = ""
		}
	}
	rest = strings.Trim(rest, "/")
	if rest == "" {
		return "", fmt.Errorf("mlflow: artifact URI %q has no path", uri)
	}
	return rest, nil
}

func escapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
