// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cinematch/internal/catalog"
)

func newConvertCmd(opts *options) *cobra.Command {
	var (
		to     string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Re-encode artifacts as JSON or MessagePack",
		Long: `Load and validate both artifacts, then write them to --out-dir as
movies.<ext> and similarity.<ext>. MessagePack files load faster than JSON
for large catalogs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := catalog.Format(strings.ToLower(to))
			if format != catalog.FormatJSON && format != catalog.FormatMsgpack {
				return fmt.Errorf("unsupported target format %q (want json or msgpack)", to)
			}
			if outDir == "" {
				return fmt.Errorf("output directory is required, use --out-dir")
			}

			idx, err := opts.loadIndex()
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o750); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			catalogOut := filepath.Join(outDir, "movies."+string(format))
			similarityOut := filepath.Join(outDir, "similarity."+string(format))

			if err := catalog.WriteCatalog(catalogOut, idx.Catalog().Movies()); err != nil {
				return err
			}
			if err := catalog.WriteSimilarity(similarityOut, idx.Similarity().Rows()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.outputJSON {
				return printJSON(out, map[string]any{
					"catalog":    catalogOut,
					"similarity": similarityOut,
					"movies":     idx.Len(),
				})
			}
			fmt.Fprintf(out, "Wrote %s\n", catalogOut)
			fmt.Fprintf(out, "Wrote %s\n", similarityOut)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", string(catalog.FormatMsgpack), "target format: json or msgpack")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "directory for the converted files")
	return cmd
}
