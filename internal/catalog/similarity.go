// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"fmt"
	"math"
)

// Similarity is a square matrix of pairwise similarity scores.
type Similarity struct {
	rows [][]float64
}

// NewSimilarity validates that rows form a square matrix of finite values.
// The slices are retained, not copied; callers must not modify them afterwards.
func NewSimilarity(rows [][]float64) (*Similarity, error) {
	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, i, len(row), n)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("similarity[%d][%d] is not finite", i, j)
			}
		}
	}
	return &Similarity{rows: rows}, nil
}

// Dim returns the matrix dimension.
func (s *Similarity) Dim() int {
	return len(s.rows)
}

// Row returns the scores of row i. The returned slice is shared and must be
// treated as read-only.
func (s *Similarity) Row(i int) []float64 {
	return s.rows[i]
}

// Score returns entry (i, j).
func (s *Similarity) Score(i, j int) float64 {
	return s.rows[i][j]
}

// Rows returns the underlying matrix for serialization. Read-only.
func (s *Similarity) Rows() [][]float64 {
	return s.rows
}
