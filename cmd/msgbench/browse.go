package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Xyedo/message-benchmark/internal/results"
	"github.com/Xyedo/message-benchmark/internal/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse <results-dir>",
	Short: "Explore workloads and per-driver metrics interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := results.LoadDir(args[0])
		if err != nil {
			return err
		}
		if len(loaded) == 0 {
			return fmt.Errorf("no results found in %s", args[0])
		}

		p := tea.NewProgram(ui.NewBrowser(results.GroupByWorkload(loaded)), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running browser: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
