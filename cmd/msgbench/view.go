package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Xyedo/message-benchmark/internal/report"
	"github.com/Xyedo/message-benchmark/internal/results"
	"github.com/Xyedo/message-benchmark/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view <results-dir>",
	Short: "Render the comparison report in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := results.LoadDir(args[0])
		if err != nil {
			return err
		}
		if len(loaded) == 0 {
			return fmt.Errorf("no results found in %s", args[0])
		}

		var buf bytes.Buffer
		if err := report.WriteMarkdown(&buf, results.GroupByWorkload(loaded), reportOptions()); err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.RenderMarkdown(buf.String()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
