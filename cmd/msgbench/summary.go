package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Xyedo/message-benchmark/internal/results"
	"github.com/Xyedo/message-benchmark/internal/ui"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <results-dir>",
	Short: "Print the per-workload comparison table to the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := results.LoadDir(args[0])
		if err != nil {
			return err
		}
		if len(loaded) == 0 {
			return fmt.Errorf("no results found in %s", args[0])
		}

		ui.RenderSummary(cmd.OutOrStdout(), results.GroupByWorkload(loaded))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
