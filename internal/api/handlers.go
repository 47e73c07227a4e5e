// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/tomtom215/cinematch/internal/poster"
	"github.com/tomtom215/cinematch/internal/recommend"
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

// PosterFetcher is the poster pipeline used by the handlers.
type PosterFetcher interface {
	FetchPoster(ctx context.Context, movieID int64) poster.Poster
	FetchAll(ctx context.Context, ids []int64) []poster.Poster
	Enabled() bool
}

// Handler contains dependencies for HTTP handlers.
//
// Handler methods are split across files:
//   - handlers_page.go: HTML page
//   - handlers_movies.go: title search
//   - handlers_recommend.go: JSON recommendations
//   - handlers_poster.go: poster images
//   - handlers_health.go: health probes
type Handler struct {
	recommender *recommend.Recommender
	posters     PosterFetcher
	page        *template.Template
	startTime   time.Time
}

// NewHandler creates a Handler. Both dependencies are required.
func NewHandler(recommender *recommend.Recommender, posters PosterFetcher) (*Handler, error) {
	if recommender == nil {
		return nil, fmt.Errorf("api: recommender is required")
	}
	if posters == nil {
		return nil, fmt.Errorf("api: poster fetcher is required")
	}

	page, err := template.ParseFS(templateFS, "templates/page.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}

	return &Handler{
		recommender: recommender,
		posters:     posters,
		page:        page,
		startTime:   time.Now(),
	}, nil
}

// posterURL is the API path serving the poster for movieID.
func posterURL(movieID int64) string {
	return fmt.Sprintf("/api/v1/posters/%d", movieID)
}
