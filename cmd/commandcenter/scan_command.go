package main

import (
	"encoding/json"
	"fmt"
	"time"

	"command-center/internal/models"
	"command-center/market"
	"command-center/shared/config"
	"command-center/shared/email"

	"github.com/spf13/cobra"
)

func newScanCommand(cmdCtx *commandContext) *cobra.Command {
	var (
		jsonOut   bool
		sendEmail bool
		rpm       float64
		region    string
		limit     int64
		tagLimit  int
	)

	cmd := &cobra.Command{
		Use:   "scan <query>",
		Short: "Scan the market for a topic and score the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			applyMarketOverrides(cfg, rpm, region, limit)

			scanner, err := cmdCtx.newScanner(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			query := args[0]
			rs, err := scanner.Scan(cmd.Context(), query)
			if err != nil {
				return err
			}

			summary := market.Summarize(rs)
			topTags := market.TopTags(rs, tagLimit)

			if jsonOut {
				return printJSON(cmd, scanOutput{Query: query, Summary: summary, Videos: rs.Videos, TopTags: topTags})
			}

			printSummary(cmd, summary)
			cmd.Println(renderVideoTable(rs.Videos))
			printTopTags(cmd, topTags)

			if sendEmail {
				if !cfg.EmailEnabled() {
					return fmt.Errorf("email delivery is not configured")
				}
				report := &models.ScanReport{
					Query:   query,
					Date:    time.Now(),
					Summary: summary,
					Videos:  rs.Videos,
					TopTags: topTags,
				}
				if err := email.NewSender(&cfg.Email).SendScanReport(report); err != nil {
					return fmt.Errorf("failed to send scan report: %w", err)
				}
				cmd.Println("Scan report sent.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the result set as JSON")
	cmd.Flags().BoolVar(&sendEmail, "email", false, "Email the scan report")
	cmd.Flags().Float64Var(&rpm, "rpm", 0, "Override the configured RPM rate")
	cmd.Flags().StringVar(&region, "region", "", "Override the configured region code")
	cmd.Flags().Int64Var(&limit, "limit", 0, "Override the configured result count")
	cmd.Flags().IntVar(&tagLimit, "tags", 30, "Number of top tags to show")

	return cmd
}

type scanOutput struct {
	Query   string               `json:"query"`
	Summary models.ScanSummary   `json:"summary"`
	Videos  []models.ScoredVideo `json:"videos"`
	TopTags []models.TagCount    `json:"top_tags"`
}

func applyMarketOverrides(cfg *config.Config, rpm float64, region string, limit int64) {
	if rpm > 0 {
		cfg.Market.RPM = rpm
	}
	if region != "" {
		cfg.Market.Region = region
	}
	if limit > 0 {
		cfg.Market.MaxResults = limit
		if cfg.Market.MaxResults > 50 {
			cfg.Market.MaxResults = 50
		}
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(data))
	return nil
}

func printSummary(cmd *cobra.Command, summary models.ScanSummary) {
	cmd.Printf("Videos: %d  |  Total views: %s  |  Est. market value: $%.2f  |  Avg engagement: %.2f%%  |  Top score: %d/100\n\n",
		summary.VideoCount,
		formatCount(summary.TotalViews),
		summary.MarketValue,
		summary.AvgEngagementPct,
		summary.TopViralityScore,
	)
}

func printTopTags(cmd *cobra.Command, tags []models.TagCount) {
	if len(tags) == 0 {
		return
	}
	cmd.Println("\nTop tags:")
	for _, tc := range tags {
		cmd.Printf("  %s (%d)\n", tc.Tag, tc.Count)
	}
}
