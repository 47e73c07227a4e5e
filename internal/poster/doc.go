// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package poster resolves movie posters from TMDB with a local fallback.

# Pipeline

For one movie id the Fetcher:

 1. Checks the poster cache (if configured)
 2. GETs {api_base}/movie/{id}?language={lang} with a bearer token
 3. GETs {image_base}{poster_path} when a poster path is present
 4. Decodes the bytes as JPEG, PNG or GIF

Any missing poster path, transport error, timeout, non-2xx status, decode
failure or open circuit yields the placeholder: a 500x750 solid gray
(128,128,128) image. FetchPoster therefore never returns an error; the
failing stage is recorded on the Poster, logged at warn and counted in
poster_fetch_total.

# Concurrency

FetchAll starts one goroutine per id and writes each result into its own
slot, so the output has the same length and order as the input. Fetches run
on a context detached from the caller's cancellation: a dispatched fetch
finishes or times out on its own even if the client disconnects. Each remote
call is bounded by the configured per-call timeout.

# Resilience

TMDBClient paces outbound calls with a token bucket (golang.org/x/time/rate).
BreakerSource wraps any Source in a sony/gobreaker circuit breaker; 4xx
responses do not count toward tripping it.
*/
package poster
