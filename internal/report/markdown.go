package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Xyedo/message-benchmark/internal/results"
)

type metricRow struct {
	label  string
	format func(results.Result) string
}

func rateCell(pick func(results.Result) results.Series) func(results.Result) string {
	return func(r results.Result) string {
		return humanize.CommafWithDigits(pick(r).Mean(), 0)
	}
}

func latencyCell(pick func(results.Result) results.Series) func(results.Result) string {
	return func(r results.Result) string {
		return fmt.Sprintf("%.2f", pick(r).Mean())
	}
}

var metricRows = []metricRow{
	{"**Publish Rate (msg/s)**", rateCell(func(r results.Result) results.Series { return r.PublishRate })},
	{"**Consume Rate (msg/s)**", rateCell(func(r results.Result) results.Series { return r.ConsumeRate })},
	{"**Publish P50 Latency (ms)**", latencyCell(func(r results.Result) results.Series { return r.PublishLatencyP50 })},
	{"**Publish P99 Latency (ms)**", latencyCell(func(r results.Result) results.Series { return r.PublishLatencyP99 })},
	{"**End-to-End Avg Latency (ms)**", latencyCell(func(r results.Result) results.Series { return r.EndToEndLatencyAvg })},
	{"**End-to-End P99 Latency (ms)**", latencyCell(func(r results.Result) results.Series { return r.EndToEndLatencyP99 })},
}

// WriteMarkdown writes the per-workload comparison report with a metric
// table per workload and a short analysis naming the winners.
func WriteMarkdown(w io.Writer, groups []results.WorkloadGroup, opts Options) error {
	fmt.Fprintf(w, "# %s\n\n", opts.title())
	fmt.Fprintln(w, "## Overview")
	fmt.Fprintln(w)
	fmt.Fprintln(w, opts.overview())
	fmt.Fprintln(w)

	for _, g := range groups {
		fmt.Fprintf(w, "## %s\n\n", g.Name)

		header := make([]string, len(g.Results))
		for i, r := range g.Results {
			header[i] = r.Driver
		}
		fmt.Fprintf(w, "| Metric | %s |\n", strings.Join(header, " | "))
		fmt.Fprintf(w, "|--------|%s|\n", strings.Repeat("--------|", len(g.Results)))

		for _, row := range metricRows {
			cells := make([]string, len(g.Results))
			for i, r := range g.Results {
				cells[i] = row.format(r)
			}
			fmt.Fprintf(w, "| %s | %s |\n", row.label, strings.Join(cells, " | "))
		}
		fmt.Fprintln(w)

		bestTP, rate := g.BestThroughput()
		bestLat, lat := g.LowestP99()

		fmt.Fprintln(w, "### Analysis")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "- **Best Throughput**: %s (%s msg/s)\n", bestTP.Driver, humanize.CommafWithDigits(rate, 0))
		fmt.Fprintf(w, "- **Lowest P99 Latency**: %s (%.2f ms)\n", bestLat.Driver, lat)
		fmt.Fprintln(w)
	}
	return nil
}

// WriteMarkdownFile writes the comparison report to path.
func WriteMarkdownFile(path string, groups []results.WorkloadGroup, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if err := WriteMarkdown(f, groups, opts); err != nil {
		return err
	}
	return f.Close()
}
