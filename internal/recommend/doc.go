// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package recommend ranks catalog movies by precomputed similarity.
//
// # Algorithm
//
// For a query title the Recommender looks up its row, pairs every column
// with its score, and stable-sorts the pairs by descending score so equal
// scores keep catalog order. The query's own row is removed (with a
// maximal self-similarity it is rank 0) and the next K entries are returned.
//
// # Usage
//
//	idx, err := catalog.Load(cfg.Artifacts.CatalogPath, cfg.Artifacts.SimilarityPath)
//	rec, err := recommend.NewRecommender(idx, cfg.Recommend.K)
//
//	res, err := rec.Recommend("Avatar")
//	if errors.Is(err, recommend.ErrTitleNotFound) {
//	    // render "no recommendations"
//	}
//
// # Thread Safety
//
// A Recommender holds only the immutable Index and is safe for concurrent use.
package recommend
