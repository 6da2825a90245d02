package main

import (
	"command-center/internal/models"
	"command-center/market"

	"github.com/spf13/cobra"
)

func newStrategyCommand(cmdCtx *commandContext) *cobra.Command {
	var (
		videoID string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "strategy <query>",
		Short: "Generate a content strategy for one video from a market scan",
		Long: `Scans the market for the query, selects a video (the top-scoring one
by default, or --video <id>), and generates a four-section content
strategy from its transcript, falling back to title and tags when no
captions are available.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}

			scanner, err := cmdCtx.newScanner(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			engine, err := cmdCtx.newEngine(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			rs, err := scanner.Scan(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			video, err := selectVideo(rs, videoID)
			if err != nil {
				return err
			}

			doc := engine.Generate(cmd.Context(), video.ID, video.Title, video.Tags)

			if jsonOut {
				return printJSON(cmd, doc)
			}

			cmd.Printf("Video: %s (%s)\n", video.Title, video.ID)
			cmd.Printf("Source: %s\n\n", doc.Source)
			if doc.IsError() {
				cmd.Printf("Strategy generation failed:\n%s\n", doc.Content)
				return nil
			}
			cmd.Println(doc.Content)
			return nil
		},
	}

	cmd.Flags().StringVar(&videoID, "video", "", "Video ID to analyze (default: top-scoring video)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the strategy document as JSON")

	return cmd
}

func selectVideo(rs *models.ResultSet, videoID string) (models.ScoredVideo, error) {
	if videoID == "" {
		return market.TopVideo(rs)
	}
	return market.FindVideo(rs, videoID)
}
