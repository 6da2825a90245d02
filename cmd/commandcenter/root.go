package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	cmdCtx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "commandcenter",
		Short:         "YouTube market analysis and AI content strategy",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newScanCommand(cmdCtx))
	rootCmd.AddCommand(newStrategyCommand(cmdCtx))
	rootCmd.AddCommand(newTagsCommand(cmdCtx))
	rootCmd.AddCommand(newServeCommand(cmdCtx))

	return rootCmd
}
