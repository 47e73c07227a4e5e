// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrArtifactLoad is matched by every error returned while loading artifacts.
	ErrArtifactLoad = errors.New("artifact load failed")

	// ErrDimensionMismatch indicates the similarity matrix does not align with the catalog.
	ErrDimensionMismatch = errors.New("similarity dimension mismatch")

	// ErrEmptyCatalog indicates a catalog artifact with no movies.
	ErrEmptyCatalog = errors.New("catalog has no movies")

	// ErrUnsupportedFormat indicates an artifact extension with no known decoder.
	ErrUnsupportedFormat = errors.New("unsupported artifact format")
)

// ArtifactError describes a failure to load one persisted artifact.
// It matches both ErrArtifactLoad and the underlying cause with errors.Is.
type ArtifactError struct {
	Path string
	Err  error
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("load artifact %s: %v", e.Path, e.Err)
}

// Unwrap exposes ErrArtifactLoad alongside the cause.
func (e *ArtifactError) Unwrap() []error {
	return []error{ErrArtifactLoad, e.Err}
}
