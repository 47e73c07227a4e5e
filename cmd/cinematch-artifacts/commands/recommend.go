// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cinematch/internal/recommend"
)

func newRecommendCmd(opts *options) *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "recommend <title>",
		Short: "Run a recommendation against local artifacts",
		Long: `Look up the title exactly as the server would and print the top K most
similar movies with their scores. Posters are not fetched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := opts.loadIndex()
			if err != nil {
				return err
			}

			rec, err := recommend.NewRecommender(idx, k)
			if err != nil {
				return err
			}

			result, err := rec.Recommend(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.outputJSON {
				return printJSON(out, result)
			}

			fmt.Fprintf(out, "Movies similar to %q:\n", result.Query)
			for i, item := range result.Items {
				fmt.Fprintf(out, "%2d. %s (id %d, score %.4f)\n", i+1, item.Title, item.MovieID, item.Score)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&k, "k", "k", recommend.DefaultK, "number of recommendations")
	return cmd
}
