package main

import (
	"strings"

	"command-center/market"

	"github.com/spf13/cobra"
)

func newTagsCommand(cmdCtx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "tags <query>",
		Short: "Show the most frequent tags across a market scan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}

			scanner, err := cmdCtx.newScanner(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			rs, err := scanner.Scan(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			topTags := market.TopTags(rs, limit)
			if len(topTags) == 0 {
				cmd.Println("No tags found for this query.")
				return nil
			}

			rows := make([][]string, 0, len(topTags))
			names := make([]string, 0, len(topTags))
			for _, tc := range topTags {
				rows = append(rows, []string{tc.Tag, formatCount(int64(tc.Count))})
				names = append(names, tc.Tag)
			}
			cmd.Println(renderTable(
				[]string{"Tag", "Count"},
				rows,
				[]columnAlignment{alignLeft, alignRight},
			))

			// Comma-separated list, ready to paste into a video's tag field.
			cmd.Printf("\n%s\n", strings.Join(names, ", "))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 30, "Number of tags to show")

	return cmd
}
