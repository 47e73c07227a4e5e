// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package poster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

var (
	// ErrNoPosterPath means the metadata response has no usable poster_path.
	ErrNoPosterPath = errors.New("movie has no poster path")

	// ErrResponseTooLarge means a response body exceeded its size bound.
	ErrResponseTooLarge = errors.New("tmdb response too large")
)

// maxImageBytes bounds a single image download.
const maxImageBytes = 10 << 20

// StatusError reports a non-2xx response from TMDB.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb returned status %d for %s", e.StatusCode, e.URL)
}

// ClientError reports whether the status is a 4xx, which says nothing about
// upstream health.
func (e *StatusError) ClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// Source resolves poster paths and downloads poster images.
type Source interface {
	// PosterPath returns the poster_path for a movie, or ErrNoPosterPath.
	PosterPath(ctx context.Context, movieID int64) (string, error)

	// Image downloads the raw image bytes for a poster path.
	Image(ctx context.Context, posterPath string) ([]byte, error)
}

// tmdbMovie is the subset of the TMDB movie details response we read.
// PosterPath is a pointer because TMDB sends null for movies without art.
type tmdbMovie struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	PosterPath *string `json:"poster_path"`
}

// TMDBConfig configures a TMDBClient.
type TMDBConfig struct {
	APIBaseURL   string
	ImageBaseURL string
	BearerToken  string
	Language     string
	Timeout      time.Duration // per call
	RateLimit    float64       // requests per second, <= 0 disables pacing
	RateBurst    int
}

// TMDBClient talks to the TMDB metadata and image endpoints.
type TMDBClient struct {
	apiBase    string
	imageBase  string
	token      string
	language   string
	timeout    time.Duration
	limiter    *rate.Limiter
	httpClient *http.Client
}

// Ensure TMDBClient implements Source
var _ Source = (*TMDBClient)(nil)

// NewTMDBClient creates a TMDB client. The bearer token must come from
// configuration.
func NewTMDBClient(cfg TMDBConfig) *TMDBClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &TMDBClient{
		apiBase:   strings.TrimSuffix(cfg.APIBaseURL, "/"),
		imageBase: strings.TrimSuffix(cfg.ImageBaseURL, "/"),
		token:     cfg.BearerToken,
		language:  cfg.Language,
		timeout:   timeout,
		limiter:   limiter,
		httpClient: &http.Client{
			// Per-call deadlines come from the request context
			Timeout: 0,
		},
	}
}

// PosterPath fetches movie details and returns the poster_path.
func (c *TMDBClient) PosterPath(ctx context.Context, movieID int64) (string, error) {
	endpoint := c.apiBase + "/movie/" + strconv.FormatInt(movieID, 10)
	if c.language != "" {
		endpoint += "?language=" + url.QueryEscape(c.language)
	}

	body, err := c.get(ctx, endpoint, true, 1<<20)
	if err != nil {
		return "", fmt.Errorf("tmdb movie %d: %w", movieID, err)
	}

	var movie tmdbMovie
	if err := json.Unmarshal(body, &movie); err != nil {
		return "", fmt.Errorf("decode tmdb movie %d: %w", movieID, err)
	}

	if movie.PosterPath == nil || *movie.PosterPath == "" {
		return "", ErrNoPosterPath
	}
	return *movie.PosterPath, nil
}

// Image downloads the poster image for a poster path such as "/abc.jpg".
func (c *TMDBClient) Image(ctx context.Context, posterPath string) ([]byte, error) {
	if !strings.HasPrefix(posterPath, "/") {
		posterPath = "/" + posterPath
	}
	body, err := c.get(ctx, c.imageBase+posterPath, false, maxImageBytes)
	if err != nil {
		return nil, fmt.Errorf("tmdb image %s: %w", posterPath, err)
	}
	return body, nil
}

// get performs one bounded GET and returns the body of a 2xx response.
func (c *TMDBClient) get(ctx context.Context, endpoint string, authenticated bool, limit int64) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Accept", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{URL: redactQuery(endpoint), StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, ErrResponseTooLarge
	}
	return body, nil
}

// redactQuery strips the query string so URLs are safe to log.
func redactQuery(raw string) string {
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		return raw[:i]
	}
	return raw
}
