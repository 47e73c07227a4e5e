// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// pageData is the view model for page.html.tmpl.
type pageData struct {
	Titles    []string
	Selected  string
	Submitted bool
	Cards     []pageCard
}

// pageCard is one recommended movie with its poster.
type pageCard struct {
	Title   string
	MovieID int64
	Src     template.URL
}

// Index renders the selection form.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, pageData{Titles: h.recommender.Index().Catalog().Titles()})
}

// RecommendPage renders the form plus the recommendations for ?title=.
// An unknown title renders the "no recommendations" message, not an error.
func (h *Handler) RecommendPage(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	data := pageData{
		Titles:    h.recommender.Index().Catalog().Titles(),
		Selected:  title,
		Submitted: title != "",
	}

	if title == "" {
		h.renderPage(w, r, data)
		return
	}

	result, err := h.recommender.Recommend(title)
	if err != nil {
		if !errors.Is(err, recommend.ErrTitleNotFound) {
			logging.Ctx(r.Context()).Error().Err(err).Str("title", title).Msg("Recommendation failed")
		}
		h.renderPage(w, r, data)
		return
	}

	posters := h.posters.FetchAll(r.Context(), result.MovieIDs())

	data.Cards = make([]pageCard, len(result.Items))
	for i, item := range result.Items {
		card := pageCard{Title: item.Title, MovieID: item.MovieID}

		uri, err := posters[i].DataURI()
		if err != nil {
			// Let the browser fetch it through the poster endpoint instead
			logging.Ctx(r.Context()).Warn().Err(err).Int64("movie_id", item.MovieID).Msg("Failed to embed poster")
			card.Src = template.URL(posterURL(item.MovieID))
		} else {
			card.Src = template.URL(uri) //nolint:gosec // generated JPEG data URI
		}
		data.Cards[i] = card
	}

	h.renderPage(w, r, data)
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, data pageData) {
	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to render page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
