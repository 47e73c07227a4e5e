// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/metrics"
)

// DefaultK is the number of recommendations shown per query.
const DefaultK = 5

// ErrTitleNotFound is returned when the query title is not in the catalog.
var ErrTitleNotFound = errors.New("title not found")

// ScoredItem is one recommended movie with its similarity to the query.
type ScoredItem struct {
	Title   string  `json:"title"`
	MovieID int64   `json:"movie_id"`
	Score   float64 `json:"score"`
	Row     int     `json:"-"`
}

// Result is an ordered recommendation list, best match first.
type Result struct {
	Query string       `json:"title"`
	Items []ScoredItem `json:"items"`
}

// MovieIDs returns the external ids in ranking order.
func (r Result) MovieIDs() []int64 {
	ids := make([]int64, len(r.Items))
	for i, it := range r.Items {
		ids[i] = it.MovieID
	}
	return ids
}

// Titles returns the titles in ranking order.
func (r Result) Titles() []string {
	titles := make([]string, len(r.Items))
	for i, it := range r.Items {
		titles[i] = it.Title
	}
	return titles
}

// Recommender answers nearest-neighbour queries against an Index.
type Recommender struct {
	idx *catalog.Index
	k   int
}

// NewRecommender creates a Recommender returning up to k items per query.
func NewRecommender(idx *catalog.Index, k int) (*Recommender, error) {
	if idx == nil {
		return nil, fmt.Errorf("index is required")
	}
	if k < 1 {
		return nil, fmt.Errorf("k must be at least 1, got %d", k)
	}
	return &Recommender{idx: idx, k: k}, nil
}

// K returns the configured result size.
func (r *Recommender) K() int {
	return r.k
}

// Index returns the underlying catalog index.
func (r *Recommender) Index() *catalog.Index {
	return r.idx
}

// Recommend returns the movies most similar to title, excluding title
// itself and any later row that repeats it. The match is exact and
// case-sensitive. When fewer than k other movies exist, all of them are
// returned.
func (r *Recommender) Recommend(title string) (Result, error) {
	start := time.Now()
	res := Result{Query: title, Items: []ScoredItem{}}

	movie, ok := r.idx.Catalog().Lookup(title)
	if !ok {
		metrics.RecordRecommendation(false, time.Since(start))
		return res, fmt.Errorf("%w: %q", ErrTitleNotFound, title)
	}

	res.Items = r.rank(movie.Row)
	metrics.RecordRecommendation(true, time.Since(start))
	return res, nil
}

// rank orders the row's columns by descending score and keeps the top k
// entries whose title differs from the query row's.
func (r *Recommender) rank(row int) []ScoredItem {
	scores := r.idx.Similarity().Row(row)

	type pair struct {
		col   int
		score float64
	}
	pairs := make([]pair, len(scores))
	for j, s := range scores {
		pairs[j] = pair{col: j, score: s}
	}

	// Stable so equal scores stay in catalog order
	sort.SliceStable(pairs, func(a, b int) bool {
		return pairs[a].score > pairs[b].score
	})

	cat := r.idx.Catalog()
	query := cat.At(row).Title
	items := make([]ScoredItem, 0, r.k)
	for _, p := range pairs {
		if len(items) == r.k {
			break
		}
		// Covers the query row and any duplicate of its title
		m := cat.At(p.col)
		if m.Title == query {
			continue
		}
		items = append(items, ScoredItem{
			Title:   m.Title,
			MovieID: m.MovieID,
			Score:   p.score,
			Row:     p.col,
		})
	}
	return items
}

// Search lists catalog movies whose title contains q, case-insensitively.
func (r *Recommender) Search(q string, limit int) []catalog.Movie {
	return r.idx.Catalog().Search(q, limit)
}
