// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package poster

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	// Registered decoders for TMDB poster formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
)

// Fetcher resolves posters for movie ids. It never fails: every error is
// logged and replaced by the placeholder.
type Fetcher struct {
	source Source
	store  cache.PosterStore
}

// NewFetcher creates a Fetcher. A nil source disables remote fetching and
// every poster is the placeholder. A nil store disables caching.
func NewFetcher(source Source, store cache.PosterStore) *Fetcher {
	return &Fetcher{source: source, store: store}
}

// Enabled reports whether posters are fetched remotely.
func (f *Fetcher) Enabled() bool {
	return f.source != nil
}

// FetchPoster resolves the poster for one movie.
func (f *Fetcher) FetchPoster(ctx context.Context, movieID int64) Poster {
	start := time.Now()
	p := f.fetch(ctx, movieID)
	metrics.RecordPosterFetch(p.Stage, time.Since(start))
	return p
}

func (f *Fetcher) fetch(ctx context.Context, movieID int64) Poster {
	if f.source == nil {
		return placeholderFor(movieID, StageDisabled)
	}

	if img, ok := f.fromCache(ctx, movieID); ok {
		return Poster{MovieID: movieID, Image: img, Stage: StageCacheHit}
	}

	posterPath, err := f.source.PosterPath(ctx, movieID)
	if err != nil {
		stage := StageMetadata
		if errors.Is(err, ErrNoPosterPath) {
			stage = StageNoPosterPath
		}
		return f.degrade(ctx, movieID, stage, err)
	}

	data, err := f.source.Image(ctx, posterPath)
	if err != nil {
		return f.degrade(ctx, movieID, StageImage, err)
	}

	img, err := decodeImage(data)
	if err != nil {
		return f.degrade(ctx, movieID, StageDecode, err)
	}

	f.toCache(ctx, movieID, data)
	return Poster{MovieID: movieID, Image: img, Stage: StageOK}
}

// degrade logs the failure and returns the placeholder.
func (f *Fetcher) degrade(ctx context.Context, movieID int64, stage string, err error) Poster {
	if IsRejected(err) {
		stage = StageRejected
	}

	event := logging.Ctx(ctx).Warn()
	if stage == StageNoPosterPath {
		event = logging.Ctx(ctx).Debug()
	}
	event.
		Int64("movie_id", movieID).
		Str("stage", stage).
		Err(err).
		Msg("Poster fetch failed, using placeholder")

	return placeholderFor(movieID, stage)
}

func (f *Fetcher) fromCache(ctx context.Context, movieID int64) (image.Image, bool) {
	if f.store == nil {
		return nil, false
	}
	data, ok, err := f.store.Get(ctx, movieID)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Int64("movie_id", movieID).Msg("Poster cache read failed")
	}
	metrics.RecordPosterCacheLookup(ok)
	if !ok {
		return nil, false
	}
	img, err := decodeImage(data)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Int64("movie_id", movieID).Msg("Cached poster is corrupt, refetching")
		return nil, false
	}
	return img, true
}

func (f *Fetcher) toCache(ctx context.Context, movieID int64, data []byte) {
	if f.store == nil {
		return
	}
	if err := f.store.Put(ctx, movieID, data); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Int64("movie_id", movieID).Msg("Poster cache write failed")
	}
}

// decodeImage decodes JPEG, PNG or GIF bytes.
func decodeImage(data []byte) (image.Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image (%d bytes): %w", len(data), err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("decode image: empty %s image", format)
	}
	return img, nil
}

// FetchAll fetches posters for ids concurrently, one goroutine per id.
// The result has the same length and order as ids. Fetches are detached
// from ctx cancellation but keep its values (request id for logging);
// each remote call is bounded by the client's per-call timeout.
func (f *Fetcher) FetchAll(ctx context.Context, ids []int64) []Poster {
	results := make([]Poster, len(ids))
	if len(ids) == 0 {
		return results
	}
	metrics.RecordPosterBatch(len(ids))

	detached := context.WithoutCancel(ctx)

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(idx int, movieID int64) {
			defer wg.Done()
			results[idx] = f.FetchPoster(detached, movieID)
		}(i, id)
	}
	wg.Wait()

	return results
}
