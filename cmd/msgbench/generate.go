package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Xyedo/message-benchmark/internal/charts"
	"github.com/Xyedo/message-benchmark/internal/notify"
	"github.com/Xyedo/message-benchmark/internal/report"
	"github.com/Xyedo/message-benchmark/internal/results"
	"github.com/Xyedo/message-benchmark/internal/telemetry"
)

var generateCmd = &cobra.Command{
	Use:   "generate <results-dir>",
	Short: "Generate charts, summary table, and markdown report from benchmark results",
	Long: `Loads every JSON result file from the given directory, groups the runs
by workload, and writes per-workload comparison charts plus a summary table
and a markdown comparison report into <out>/charts/.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resultsDir := args[0]

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = viper.GetString("output_dir")
		}
		if out == "" {
			out = resultsDir
		}
		noCharts, _ := cmd.Flags().GetBool("no-charts")
		doNotify, _ := cmd.Flags().GetBool("notify")

		loaded, err := results.LoadDir(resultsDir)
		if err != nil {
			return err
		}
		if len(loaded) == 0 {
			return fmt.Errorf("no results found in %s", resultsDir)
		}

		groups := results.GroupByWorkload(loaded)
		chartsDir := filepath.Join(out, "charts")
		if err := os.MkdirAll(chartsDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		if !noCharts {
			for _, g := range groups {
				if err := charts.Generate(g, filepath.Join(chartsDir, g.Name)); err != nil {
					return fmt.Errorf("workload %s: %w", g.Name, err)
				}
			}
		}

		opts := reportOptions()
		summaryPath := filepath.Join(chartsDir, "summary.txt")
		reportPath := filepath.Join(chartsDir, "comparison_report.md")
		if err := report.WriteSummaryFile(summaryPath, groups, opts); err != nil {
			return err
		}
		if err := report.WriteMarkdownFile(reportPath, groups, opts); err != nil {
			return err
		}
		telemetry.ReportsGenerated.Inc()
		telemetry.LogInfof("Generated report for %d workload(s) in %s", len(groups), chartsDir)

		workloads := make([]string, len(groups))
		for i, g := range groups {
			workloads[i] = g.Name
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report complete: %d result(s), workloads: %s\n",
			len(loaded), strings.Join(workloads, ", "))
		fmt.Fprintf(cmd.OutOrStdout(), "Output written to %s\n", chartsDir)

		if doNotify || viper.GetBool("notifications.slack.enabled") {
			msg := fmt.Sprintf("Benchmark report ready: %d result(s) across %d workload(s), output in %s",
				len(loaded), len(groups), chartsDir)
			if err := notify.NewFromConfig().Notify(cmd.Context(), msg); err != nil {
				telemetry.LogError("Notification failed", err)
			}
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().String("out", "", "Output directory (default: the results directory)")
	generateCmd.Flags().Bool("no-charts", false, "Skip chart images, write only summary and report")
	generateCmd.Flags().Bool("notify", false, "Post a completion message to the configured Slack webhook")
	rootCmd.AddCommand(generateCmd)
}
