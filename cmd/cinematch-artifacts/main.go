// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package main provides the cinematch-artifacts CLI for working with the
// offline recommendation artifacts.
//
// Usage:
//
//	cinematch-artifacts [flags] <command> [args]
//
// Commands:
//
//	inspect    - Validate artifacts and print a summary
//	recommend  - Run a recommendation against local artifacts
//	convert    - Re-encode artifacts as JSON or MessagePack
//
// The --catalog and --similarity flags default to CATALOG_PATH and
// SIMILARITY_PATH.
package main

import (
	"fmt"
	"os"

	"github.com/tomtom215/cinematch/cmd/cinematch-artifacts/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
