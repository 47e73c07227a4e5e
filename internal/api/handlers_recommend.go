// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/validation"
)

// recommendationItem is one ranked recommendation.
type recommendationItem struct {
	Title     string  `json:"title"`
	MovieID   int64   `json:"movie_id"`
	Score     float64 `json:"score"`
	PosterURL string  `json:"poster_url"`
}

// recommendationsResponse is the data payload of GET /api/v1/recommendations.
type recommendationsResponse struct {
	Title string               `json:"title"`
	K     int                  `json:"k"`
	Items []recommendationItem `json:"items"`
}

// Recommendations handles GET /api/v1/recommendations?title=.
// Unknown titles respond 404 TITLE_NOT_FOUND with an empty item list.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := validation.RecommendationRequest{Title: r.URL.Query().Get("title")}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(verr)
		return
	}

	resp := recommendationsResponse{
		Title: req.Title,
		K:     h.recommender.K(),
		Items: []recommendationItem{},
	}

	result, err := h.recommender.Recommend(req.Title)
	if err != nil {
		if errors.Is(err, recommend.ErrTitleNotFound) {
			rw.ErrorWithData(http.StatusNotFound, ErrCodeTitleNotFound, "No movie with that exact title", nil, resp)
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Str("title", req.Title).Msg("Recommendation failed")
		rw.InternalError("Failed to compute recommendations")
		return
	}

	for _, item := range result.Items {
		resp.Items = append(resp.Items, recommendationItem{
			Title:     item.Title,
			MovieID:   item.MovieID,
			Score:     item.Score,
			PosterURL: posterURL(item.MovieID),
		})
	}

	rw.Success(resp)
}
