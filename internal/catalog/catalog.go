// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"strings"
)

// Movie is one catalog entry. Row is its position in the catalog and in the
// similarity matrix; it is assigned on construction and never persisted.
type Movie struct {
	Title   string `json:"title" msgpack:"title"`
	MovieID int64  `json:"movie_id" msgpack:"movie_id"`
	Row     int    `json:"-" msgpack:"-"`
}

// Duplicate records a title that appeared more than once. Only FirstRow is
// reachable by title lookup.
type Duplicate struct {
	Title    string
	FirstRow int
	Row      int
}

// Catalog is an ordered, immutable list of movies with a title index.
type Catalog struct {
	movies     []Movie
	byTitle    map[string]int
	duplicates []Duplicate
}

// NewCatalog builds a catalog from movies in row order. When a title
// repeats, the first occurrence keeps the title lookup and later rows are
// reported by Duplicates. All rows stay in place so the similarity matrix
// remains aligned.
func NewCatalog(movies []Movie) *Catalog {
	c := &Catalog{
		movies:  make([]Movie, len(movies)),
		byTitle: make(map[string]int, len(movies)),
	}
	for i, m := range movies {
		m.Row = i
		c.movies[i] = m
		if first, ok := c.byTitle[m.Title]; ok {
			c.duplicates = append(c.duplicates, Duplicate{Title: m.Title, FirstRow: first, Row: i})
			continue
		}
		c.byTitle[m.Title] = i
	}
	return c
}

// Len returns the number of rows.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// At returns the movie at row i. It panics if i is out of range.
func (c *Catalog) At(i int) Movie {
	return c.movies[i]
}

// Lookup finds a movie by exact, case-sensitive title.
func (c *Catalog) Lookup(title string) (Movie, bool) {
	i, ok := c.byTitle[title]
	if !ok {
		return Movie{}, false
	}
	return c.movies[i], true
}

// Movies returns a copy of all movies in row order.
func (c *Catalog) Movies() []Movie {
	out := make([]Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

// Titles returns every title in row order, duplicates included.
func (c *Catalog) Titles() []string {
	out := make([]string, len(c.movies))
	for i, m := range c.movies {
		out[i] = m.Title
	}
	return out
}

// Duplicates lists titles shadowed by an earlier row.
func (c *Catalog) Duplicates() []Duplicate {
	out := make([]Duplicate, len(c.duplicates))
	copy(out, c.duplicates)
	return out
}

// Search returns movies whose title contains q, case-insensitively, in row
// order. Shadowed duplicates are skipped. An empty q matches everything.
// limit <= 0 means no limit.
func (c *Catalog) Search(q string, limit int) []Movie {
	needle := strings.ToLower(strings.TrimSpace(q))
	var out []Movie
	for i, m := range c.movies {
		if c.byTitle[m.Title] != i {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(m.Title), needle) {
			continue
		}
		out = append(out, m)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
