// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tomtom215/cinematch/internal/logging"
)

// Format identifies an artifact encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// FormatFromPath selects the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".msgpack", ".mpk":
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func decode(path string, v interface{}) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch format {
	case FormatMsgpack:
		return msgpack.Unmarshal(data, v)
	default:
		return json.Unmarshal(data, v)
	}
}

func encode(path string, v interface{}) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var data []byte
	switch format {
	case FormatMsgpack:
		data, err = msgpack.Marshal(v)
	default:
		data, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadCatalog reads a catalog artifact. An empty or null list is an error.
func LoadCatalog(path string) (*Catalog, error) {
	var movies []Movie
	if err := decode(path, &movies); err != nil {
		return nil, &ArtifactError{Path: path, Err: err}
	}
	if len(movies) == 0 {
		return nil, &ArtifactError{Path: path, Err: ErrEmptyCatalog}
	}
	return NewCatalog(movies), nil
}

// LoadSimilarity reads a similarity matrix artifact.
func LoadSimilarity(path string) (*Similarity, error) {
	var rows [][]float64
	if err := decode(path, &rows); err != nil {
		return nil, &ArtifactError{Path: path, Err: err}
	}
	sim, err := NewSimilarity(rows)
	if err != nil {
		return nil, &ArtifactError{Path: path, Err: err}
	}
	return sim, nil
}

// Load reads both artifacts and returns the aligned Index. Every error
// matches ErrArtifactLoad; a size disagreement also matches ErrDimensionMismatch.
func Load(catalogPath, similarityPath string) (*Index, error) {
	start := time.Now()
	logger := logging.WithComponent("catalog")

	cat, err := LoadCatalog(catalogPath)
	if err != nil {
		return nil, err
	}
	sim, err := LoadSimilarity(similarityPath)
	if err != nil {
		return nil, err
	}

	idx, err := NewIndex(cat, sim)
	if err != nil {
		return nil, &ArtifactError{Path: similarityPath, Err: err}
	}

	for _, d := range cat.Duplicates() {
		logger.Warn().
			Str("title", d.Title).
			Int("first_row", d.FirstRow).
			Int("row", d.Row).
			Msg("Duplicate title in catalog, keeping first occurrence")
	}

	logger.Info().
		Int("movies", cat.Len()).
		Int("duplicates", len(cat.Duplicates())).
		Dur("duration", time.Since(start)).
		Msg("Artifacts loaded")

	return idx, nil
}

// WriteCatalog persists movies in the format implied by path.
func WriteCatalog(path string, movies []Movie) error {
	if err := encode(path, movies); err != nil {
		return fmt.Errorf("write catalog %s: %w", path, err)
	}
	return nil
}

// WriteSimilarity persists a matrix in the format implied by path.
func WriteSimilarity(path string, rows [][]float64) error {
	if err := encode(path, rows); err != nil {
		return fmt.Errorf("write similarity %s: %w", path, err)
	}
	return nil
}
