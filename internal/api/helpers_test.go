// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"image"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/poster"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// stubPosters returns a small solid image for every id except those listed
// in missing, which get the placeholder.
type stubPosters struct {
	mu      sync.Mutex
	missing map[int64]bool
	fetched []int64
	enabled bool
}

func (s *stubPosters) FetchPoster(_ context.Context, movieID int64) poster.Poster {
	s.mu.Lock()
	s.fetched = append(s.fetched, movieID)
	s.mu.Unlock()

	if s.missing[movieID] {
		return poster.Poster{MovieID: movieID, Image: poster.Placeholder(), Placeholder: true, Stage: poster.StageNoPosterPath}
	}
	return poster.Poster{MovieID: movieID, Image: image.NewRGBA(image.Rect(0, 0, 20, 30)), Stage: poster.StageOK}
}

func (s *stubPosters) FetchAll(ctx context.Context, ids []int64) []poster.Poster {
	out := make([]poster.Poster, len(ids))
	for i, id := range ids {
		out[i] = s.FetchPoster(ctx, id)
	}
	return out
}

func (s *stubPosters) Enabled() bool {
	return s.enabled
}

// testTitles and testRows form the A..F catalog. Movie ids are 100 + row.
var testTitles = []string{"A", "B", "C", "D", "E", "F"}

var testRows = [][]float64{
	{1.0, 0.9, 0.2, 0.8, 0.5, 0.1},
	{0.9, 1.0, 0.3, 0.4, 0.2, 0.1},
	{0.2, 0.3, 1.0, 0.6, 0.7, 0.2},
	{0.8, 0.4, 0.6, 1.0, 0.3, 0.5},
	{0.5, 0.2, 0.7, 0.3, 1.0, 0.4},
	{0.1, 0.1, 0.2, 0.5, 0.4, 1.0},
}

func newTestRecommender(t *testing.T) *recommend.Recommender {
	t.Helper()
	movies := make([]catalog.Movie, len(testTitles))
	for i, title := range testTitles {
		movies[i] = catalog.Movie{Title: title, MovieID: int64(100 + i)}
	}
	sim, err := catalog.NewSimilarity(testRows)
	if err != nil {
		t.Fatalf("NewSimilarity() error = %v", err)
	}
	idx, err := catalog.NewIndex(catalog.NewCatalog(movies), sim)
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}
	rec, err := recommend.NewRecommender(idx, recommend.DefaultK)
	if err != nil {
		t.Fatalf("NewRecommender() error = %v", err)
	}
	return rec
}

func newTestHandler(t *testing.T, posters *stubPosters) *Handler {
	t.Helper()
	h, err := NewHandler(newTestRecommender(t), posters)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h
}

// newTestServer returns the full router with rate limiting disabled.
func newTestServer(t *testing.T, posters *stubPosters) http.Handler {
	t.Helper()
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"*"}
	cfg.RateLimitDisabled = true
	return NewRouter(newTestHandler(t, posters), cfg).SetupChi()
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

// envelope decodes an APIResponse with a typed data payload.
type envelope[T any] struct {
	Success bool      `json:"success"`
	Data    T         `json:"data"`
	Error   *APIError `json:"error"`
	Meta    *APIMeta  `json:"meta"`
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
	return env
}
