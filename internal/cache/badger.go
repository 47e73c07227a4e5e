// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// DefaultGCDiscardRatio is the value-log discard ratio used by RunGC.
const DefaultGCDiscardRatio = 0.5

// BadgerStore is a persistent PosterStore backed by BadgerDB.
// Entries expire through Badger's native TTL.
type BadgerStore struct {
	db  *badger.DB
	ttl time.Duration
}

// OpenBadgerStore opens (or creates) a poster cache at path.
func OpenBadgerStore(path string, ttl time.Duration) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Suppress BadgerDB logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for posters: %w", err)
	}
	return NewBadgerStore(db, ttl), nil
}

// NewBadgerStore wraps an already opened database. Close closes db.
func NewBadgerStore(db *badger.DB, ttl time.Duration) *BadgerStore {
	return &BadgerStore{db: db, ttl: ttl}
}

// Get retrieves poster bytes by movie id.
func (s *BadgerStore) Get(_ context.Context, movieID int64) ([]byte, bool, error) {
	var data []byte

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(posterKey(movieID)))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get poster %d: %w", movieID, err)
	}
	return data, true, nil
}

// Put stores poster bytes with the configured TTL.
func (s *BadgerStore) Put(_ context.Context, movieID int64, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyValue
	}

	return s.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(posterKey(movieID)), data)
		if s.ttl > 0 {
			e = e.WithTTL(s.ttl)
		}
		if err := txn.SetEntry(e); err != nil {
			return fmt.Errorf("set poster %d: %w", movieID, err)
		}
		return nil
	})
}

// RunGC runs value-log garbage collection until nothing is left to rewrite.
// It returns the number of rewritten files.
func (s *BadgerStore) RunGC(ctx context.Context) (int, error) {
	rewritten := 0
	for {
		if err := ctx.Err(); err != nil {
			return rewritten, err
		}
		err := s.db.RunValueLogGC(DefaultGCDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
			return rewritten, nil
		}
		if err != nil {
			return rewritten, fmt.Errorf("run GC: %w", err)
		}
		rewritten++
	}
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
