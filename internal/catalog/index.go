// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"fmt"
)

// Index pairs a catalog with its aligned similarity matrix.
// It is immutable and safe for concurrent use.
type Index struct {
	catalog    *Catalog
	similarity *Similarity
}

// NewIndex returns an Index if the matrix dimension equals the catalog size.
func NewIndex(c *Catalog, s *Similarity) (*Index, error) {
	if c == nil || s == nil {
		return nil, fmt.Errorf("%w: catalog and similarity are both required", ErrDimensionMismatch)
	}
	if c.Len() != s.Dim() {
		return nil, fmt.Errorf("%w: catalog has %d movies, similarity is %dx%d",
			ErrDimensionMismatch, c.Len(), s.Dim(), s.Dim())
	}
	return &Index{catalog: c, similarity: s}, nil
}

// Catalog returns the movie catalog.
func (x *Index) Catalog() *Catalog {
	return x.catalog
}

// Similarity returns the similarity matrix.
func (x *Index) Similarity() *Similarity {
	return x.similarity
}

// Len returns the number of movies.
func (x *Index) Len() int {
	return x.catalog.Len()
}
