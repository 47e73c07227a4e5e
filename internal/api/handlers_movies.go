// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"strconv"

	"github.com/tomtom215/cinematch/internal/validation"
)

// movieEntry is one title in the movies listing.
type movieEntry struct {
	Title   string `json:"title"`
	MovieID int64  `json:"movie_id"`
}

// moviesResponse is the data payload of GET /api/v1/movies.
type moviesResponse struct {
	Query  string       `json:"query"`
	Count  int          `json:"count"`
	Total  int          `json:"total"`
	Movies []movieEntry `json:"movies"`
}

// Movies handles GET /api/v1/movies?q=&limit=, a case-insensitive substring
// search over catalog titles in catalog order.
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	query := r.URL.Query()

	req := validation.MovieSearchRequest{
		Query: query.Get("q"),
		Limit: validation.DefaultPageSize,
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			rw.BadRequest("limit must be an integer")
			return
		}
		req.Limit = limit
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(verr)
		return
	}

	matches := h.recommender.Search(req.Query, req.Limit)
	entries := make([]movieEntry, len(matches))
	for i, m := range matches {
		entries[i] = movieEntry{Title: m.Title, MovieID: m.MovieID}
	}

	rw.Success(moviesResponse{
		Query:  req.Query,
		Count:  len(entries),
		Total:  h.recommender.Index().Len(),
		Movies: entries,
	})
}
