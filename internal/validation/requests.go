// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package validation

// Query parameter bounds
const (
	MaxTitleLength  = 300
	MaxQueryLength  = 200
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// RecommendationRequest holds GET /api/v1/recommendations parameters.
type RecommendationRequest struct {
	Title string `query:"title" validate:"required,notblank,max=300"`
}

// MovieSearchRequest holds GET /api/v1/movies parameters.
type MovieSearchRequest struct {
	Query string `query:"q" validate:"max=200"`
	Limit int    `query:"limit" validate:"min=1,max=100"`
}

// PosterRequest holds the GET /api/v1/posters/{movieID} path parameter.
type PosterRequest struct {
	MovieID int64 `query:"movieID" validate:"min=1"`
}
