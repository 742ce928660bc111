package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Xyedo/message-benchmark/internal/ui"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently imported benchmark runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := storeFactory()
		if err != nil {
			return fmt.Errorf("opening history store: %w", err)
		}
		defer s.Close()

		runs, err := s.RecentRuns(limit)
		if err != nil {
			return fmt.Errorf("querying history: %w", err)
		}

		ui.RenderHistory(cmd.OutOrStdout(), runs)
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of runs to list")
	rootCmd.AddCommand(historyCmd)
}
