// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/validation"
)

// Poster response headers
const (
	HeaderPosterPlaceholder = "X-Poster-Placeholder"
	HeaderPosterStage       = "X-Poster-Stage"
)

// Poster handles GET /api/v1/posters/{movieID}. It always answers with a
// JPEG; when the fetch degrades the body is the gray placeholder and
// X-Poster-Placeholder is "true".
func (h *Handler) Poster(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	movieID, err := strconv.ParseInt(chi.URLParam(r, "movieID"), 10, 64)
	if err != nil {
		rw.BadRequest("movieID must be an integer")
		return
	}

	req := validation.PosterRequest{MovieID: movieID}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(verr)
		return
	}

	p := h.posters.FetchPoster(r.Context(), req.MovieID)
	body, err := p.EncodeJPEG()
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Int64("movie_id", req.MovieID).Msg("Failed to encode poster")
		rw.InternalError("Failed to encode poster")
		return
	}

	header := w.Header()
	header.Set("Content-Type", "image/jpeg")
	header.Set("Content-Length", strconv.Itoa(len(body)))
	header.Set(HeaderPosterPlaceholder, strconv.FormatBool(p.Placeholder))
	header.Set(HeaderPosterStage, p.Stage)
	if p.Placeholder {
		header.Set("Cache-Control", "no-store")
	} else {
		header.Set("Cache-Control", "public, max-age=86400")
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
