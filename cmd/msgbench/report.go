package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Xyedo/message-benchmark/internal/report"
	"github.com/Xyedo/message-benchmark/internal/results"
)

var reportCmd = &cobra.Command{
	Use:   "report <results-dir>",
	Short: "Print the markdown comparison report",
	Long: `Builds the markdown comparison report from the result files and prints
it to stdout, or writes it to a file with --out.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := results.LoadDir(args[0])
		if err != nil {
			return err
		}
		if len(loaded) == 0 {
			return fmt.Errorf("no results found in %s", args[0])
		}
		groups := results.GroupByWorkload(loaded)

		out, _ := cmd.Flags().GetString("out")
		if out != "" {
			return report.WriteMarkdownFile(out, groups, reportOptions())
		}

		var buf bytes.Buffer
		if err := report.WriteMarkdown(&buf, groups, reportOptions()); err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), buf.String())
		return nil
	},
}

func init() {
	reportCmd.Flags().String("out", "", "Write the report to this file instead of stdout")
	rootCmd.AddCommand(reportCmd)
}
