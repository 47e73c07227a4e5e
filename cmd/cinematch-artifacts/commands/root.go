// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package commands implements the cinematch-artifacts subcommands.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/logging"
)

// options holds the global flags shared by every subcommand.
type options struct {
	catalogPath    string
	similarityPath string
	outputJSON     bool
	logLevel       string
}

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "cinematch-artifacts",
		Short: "Inspect and convert Cinematch recommendation artifacts",
		Long: `cinematch-artifacts works with the offline-built movie catalog and
similarity matrix that the Cinematch server loads at startup.

Examples:
  # Check that a catalog and matrix agree
  cinematch-artifacts inspect --catalog movies.json --similarity similarity.json

  # Try a recommendation without starting the server
  cinematch-artifacts recommend "Avatar" --k 10

  # Re-encode both artifacts as MessagePack
  cinematch-artifacts convert --to msgpack --out-dir ./artifacts
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !logging.ValidLevel(opts.logLevel) {
				return fmt.Errorf("invalid log level %q", opts.logLevel)
			}
			logging.Init(logging.Config{Level: opts.logLevel, Format: "console", Output: cmd.ErrOrStderr()})
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", os.Getenv("CATALOG_PATH"), "catalog artifact (.json or .msgpack)")
	rootCmd.PersistentFlags().StringVar(&opts.similarityPath, "similarity", os.Getenv("SIMILARITY_PATH"), "similarity artifact (.json or .msgpack)")
	rootCmd.PersistentFlags().BoolVar(&opts.outputJSON, "json", false, "output as JSON (for piping)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")

	rootCmd.AddCommand(newInspectCmd(opts))
	rootCmd.AddCommand(newRecommendCmd(opts))
	rootCmd.AddCommand(newConvertCmd(opts))

	return rootCmd
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

// requirePaths checks that both artifact paths are set.
func (o *options) requirePaths() error {
	if o.catalogPath == "" {
		return fmt.Errorf("catalog path is required, use --catalog or CATALOG_PATH")
	}
	if o.similarityPath == "" {
		return fmt.Errorf("similarity path is required, use --similarity or SIMILARITY_PATH")
	}
	return nil
}

// loadIndex loads and cross-validates both artifacts.
func (o *options) loadIndex() (*catalog.Index, error) {
	if err := o.requirePaths(); err != nil {
		return nil, err
	}
	return catalog.Load(o.catalogPath, o.similarityPath)
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
