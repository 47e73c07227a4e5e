// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package validation validates API query parameters using
// go-playground/validator v10.
//
// A singleton validator caches struct metadata. Field names in errors come
// from the `query` struct tag so messages name the parameter the client
// sent ("title is required", not "Title is required").
//
// Custom tags:
//   - notblank: string must contain a non-whitespace character
//
// Example:
//
//	req := validation.RecommendationRequest{Title: r.URL.Query().Get("title")}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    NewResponseWriter(w, r).Error(http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
package validation
