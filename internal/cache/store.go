// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cache

import (
	"context"
	"errors"
	"strconv"
)

// ErrEmptyValue is returned when storing a zero-length image.
var ErrEmptyValue = errors.New("cache: empty poster value")

// PosterStore caches raw poster image bytes by movie id.
type PosterStore interface {
	// Get returns the cached bytes and true, or false on a miss or expiry.
	Get(ctx context.Context, movieID int64) ([]byte, bool, error)

	// Put stores image bytes using the store's TTL.
	Put(ctx context.Context, movieID int64, data []byte) error

	// Close releases resources held by the store.
	Close() error
}

const posterKeyPrefix = "poster:"

func posterKey(movieID int64) string {
	return posterKeyPrefix + strconv.FormatInt(movieID, 10)
}
