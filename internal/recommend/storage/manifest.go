// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
)

var (
	// ErrChecksumMismatch is returned when an artifact differs from its manifest entry.
	ErrChecksumMismatch = errors.New("artifact checksum mismatch")

	// ErrNotInManifest is returned when an artifact has no manifest entry.
	ErrNotInManifest = errors.New("artifact not listed in manifest")
)

// manifestVersionLayout names bundles built without an explicit version.
const manifestVersionLayout = "20060102T150405Z"

// FileDigest identifies one artifact's content.
type FileDigest struct {
	SHA256    string `json:"sha256"`
	SizeBytes int64  `json:"size_bytes"`
}

// Manifest describes a bundle's contents.
type Manifest struct {
	Version   string                `json:"version"`
	CreatedAt time.Time             `json:"created_at"`
	Files     map[string]FileDigest `json:"files"`
}

// BuildManifest hashes each named file under dir.
func BuildManifest(dir string, files []string) (*Manifest, error) {
	now := time.Now().UTC()
	m := &Manifest{
		Version:   now.Format(manifestVersionLayout),
		CreatedAt: now,
		Files:     make(map[string]FileDigest, len(files)),
	}
	for _, name := range files {
		digest, err := digestFile(resolvePath(dir, name))
		if err != nil {
			return nil, fmt.Errorf("hash %s: %w", name, err)
		}
		m.Files[name] = digest
	}
	return m, nil
}

// ReadManifest decodes a manifest file.
func ReadManifest(path string) (*Manifest, error) {
	var m Manifest
	if err := decodeJSONFile(path, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Write stores the manifest as indented JSON.
func (m *Manifest) Write(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil { //nolint:gosec // bundle files are world-readable
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Verify checks every named file under dir against its manifest entry.
func (m *Manifest) Verify(dir string, files []string) error {
	for _, name := range files {
		want, ok := m.Files[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotInManifest, name)
		}
		got, err := digestFile(resolvePath(dir, name))
		if err != nil {
			return fmt.Errorf("hash %s: %w", name, err)
		}
		if got.SHA256 != want.SHA256 || got.SizeBytes != want.SizeBytes {
			return fmt.Errorf("%w: %s: expected %s, got %s", ErrChecksumMismatch, name, want.SHA256, got.SHA256)
		}
	}
	return nil
}

func digestFile(path string) (FileDigest, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return FileDigest{}, err
	}
	defer func() { _ = f.Close() }() //nolint:errcheck // read-only file

	h := sha256.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return FileDigest{}, err
	}
	return FileDigest{SHA256: hex.EncodeToString(h.Sum(nil)), SizeBytes: n}, nil
}

func resolvePath(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
