// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package supervisor

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/tomtom215/cinematch/internal/logging"
)

// mockService implements suture.Service. It fails failFirst times and
// then runs until canceled.
type mockService struct {
	name       string
	failFirst  int32
	startCount atomic.Int32
	started    chan struct{}
}

func newMockService(name string, failFirst int32) *mockService {
	return &mockService{name: name, failFirst: failFirst, started: make(chan struct{}, 16)}
}

func (m *mockService) Serve(ctx context.Context) error {
	n := m.startCount.Add(1)
	select {
	case m.started <- struct{}{}:
	default:
	}
	if n <= m.failFirst {
		return errors.New("simulated failure")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (m *mockService) String() string {
	return m.name
}

// slogFrom returns an slog logger that writes zerolog JSON into buf.
func slogFrom(buf *bytes.Buffer) *slog.Logger {
	return slog.New(logging.NewSlogHandlerWithLogger(logging.NewTestLogger(buf)))
}
