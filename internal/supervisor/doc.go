// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package supervisor manages Cinematch's long-running services with a
Suture v4 supervisor tree.

Tree layout:

	cinematch (root)
	├── data-layer
	│   └── poster-cache-gc (when the badger poster cache is enabled)
	└── api-layer
	    └── http-server

Each layer is its own supervisor so a crash-looping cache GC never takes
down request serving. Supervisor events are logged through sutureslog,
which writes via the zerolog-backed slog handler from the logging package.

Shutdown:

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)
	<-sigChan
	cancel()
	<-errCh

Services that do not stop within ShutdownTimeout are listed by
UnstoppedServiceReport.
*/
package supervisor
