// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package poster

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

// stubSource returns a fixed error from every call.
type stubSource struct {
	err   error
	calls atomic.Int64
}

func (s *stubSource) PosterPath(context.Context, int64) (string, error) {
	s.calls.Add(1)
	if s.err != nil {
		return "", s.err
	}
	return "/p.jpg", nil
}

func (s *stubSource) Image(context.Context, string) ([]byte, error) {
	s.calls.Add(1)
	return nil, s.err
}

func TestBreakerSource_OpensOnFailures(t *testing.T) {
	stub := &stubSource{err: errors.New("connection refused")}
	b := NewBreakerSource(stub, BreakerConfig{Name: "tmdb_open_test", Interval: time.Minute, Timeout: time.Minute})
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		if _, err := b.PosterPath(ctx, 1); IsRejected(err) {
			t.Fatalf("call %d rejected before threshold", i)
		}
	}

	if b.State() != "open" {
		t.Fatalf("State() = %q, want open", b.State())
	}

	_, err := b.PosterPath(ctx, 1)
	if !IsRejected(err) {
		t.Errorf("error = %v, want rejection", err)
	}
	if stub.calls.Load() != 10 {
		t.Errorf("source called %d times, want 10", stub.calls.Load())
	}
}

func TestBreakerSource_ClientErrorsDoNotTrip(t *testing.T) {
	stub := &stubSource{err: &StatusError{URL: "x", StatusCode: http.StatusNotFound}}
	b := NewBreakerSource(stub, BreakerConfig{Name: "tmdb_404_test"})
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		_, _ = b.PosterPath(ctx, 1)
	}
	if b.State() != "closed" {
		t.Errorf("State() = %q after 404s, want closed", b.State())
	}
}

func TestBreakerSource_CanceledCallersDoNotTrip(t *testing.T) {
	stub := &stubSource{err: context.Canceled}
	b := NewBreakerSource(stub, BreakerConfig{Name: "tmdb_canceled_test", Interval: time.Minute, Timeout: time.Minute})
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		if _, err := b.PosterPath(ctx, 1); IsRejected(err) {
			t.Fatalf("call %d rejected after canceled callers", i)
		}
	}
	if b.State() != "closed" {
		t.Errorf("State() = %q after canceled calls, want closed", b.State())
	}
}

func TestIsBreakerSuccess(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, true},
		{"no poster path", ErrNoPosterPath, true},
		{"404", &StatusError{StatusCode: 404}, true},
		{"429", &StatusError{StatusCode: 429}, false},
		{"503", &StatusError{StatusCode: 503}, false},
		{"transport", errors.New("dial tcp: timeout"), false},
		{"caller canceled", &url.Error{Op: "Get", URL: "x", Err: context.Canceled}, true},
		{"deadline exceeded", &url.Error{Op: "Get", URL: "x", Err: context.DeadlineExceeded}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isBreakerSuccess(tt.err); got != tt.want {
				t.Errorf("isBreakerSuccess(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestFetcher_RejectedStage(t *testing.T) {
	stub := &stubSource{err: errors.New("boom")}
	b := NewBreakerSource(stub, BreakerConfig{Name: "tmdb_reject_test", Timeout: time.Minute})
	f := NewFetcher(b, nil)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		f.FetchPoster(ctx, int64(i))
	}
	p := f.FetchPoster(ctx, 99)
	if p.Stage != StageRejected {
		t.Errorf("Stage = %q, want %q", p.Stage, StageRejected)
	}
	assertPlaceholder(t, p)
}

func TestStateHelpers(t *testing.T) {
	if stateToString(gobreaker.StateHalfOpen) != "half-open" || stateToFloat(gobreaker.StateOpen) != 2 {
		t.Error("state helpers returned unexpected values")
	}
}
