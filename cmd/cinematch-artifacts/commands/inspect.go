// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cinematch/internal/catalog"
)

type inspectDuplicate struct {
	Title    string `json:"title"`
	FirstRow int    `json:"first_row"`
	Row      int    `json:"row"`
}

type inspectReport struct {
	Catalog          string             `json:"catalog"`
	CatalogFormat    catalog.Format     `json:"catalog_format"`
	Similarity       string             `json:"similarity"`
	SimilarityFormat catalog.Format     `json:"similarity_format"`
	Movies           int                `json:"movies"`
	Duplicates       []inspectDuplicate `json:"duplicates"`
}

func newInspectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Validate artifacts and print a summary",
		Long: `Load the catalog and similarity matrix with the same checks the server
applies at startup, then report row counts and duplicate titles.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			idx, err := opts.loadIndex()
			if err != nil {
				return err
			}

			// Both formats are known to be valid once Load succeeds.
			catFormat, _ := catalog.FormatFromPath(opts.catalogPath)
			simFormat, _ := catalog.FormatFromPath(opts.similarityPath)

			report := inspectReport{
				Catalog:          opts.catalogPath,
				CatalogFormat:    catFormat,
				Similarity:       opts.similarityPath,
				SimilarityFormat: simFormat,
				Movies:           idx.Len(),
				Duplicates:       []inspectDuplicate{},
			}
			for _, d := range idx.Catalog().Duplicates() {
				report.Duplicates = append(report.Duplicates, inspectDuplicate(d))
			}

			out := cmd.OutOrStdout()
			if opts.outputJSON {
				return printJSON(out, report)
			}

			fmt.Fprintf(out, "Catalog:    %s (%s)\n", report.Catalog, report.CatalogFormat)
			fmt.Fprintf(out, "Similarity: %s (%s)\n", report.Similarity, report.SimilarityFormat)
			fmt.Fprintf(out, "Movies:     %d\n", report.Movies)
			fmt.Fprintf(out, "Duplicates: %d\n", len(report.Duplicates))
			for _, d := range report.Duplicates {
				fmt.Fprintf(out, "  %q row %d shadowed by row %d\n", d.Title, d.Row, d.FirstRow)
			}
			return nil
		},
	}
}
