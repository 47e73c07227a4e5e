// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package catalog holds the movie catalog and the precomputed similarity
// matrix, both loaded once at startup and shared read-only afterwards.
//
// Row i of the similarity matrix corresponds to Catalog.At(i). The pair is
// bundled as an Index, which is only constructed when the dimensions agree.
//
// Artifacts are read from local files whose extension selects the format:
//   - .json: JSON (goccy/go-json)
//   - .msgpack, .mpk: MessagePack (vmihailenco/msgpack)
//
// The catalog file is an array of {"title": string, "movie_id": int}; the
// similarity file is an array of equal-length float arrays.
package catalog
