// Package report formats aggregated benchmark results as a plain-text
// summary table and a markdown comparison report.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Xyedo/message-benchmark/internal/results"
)

// Options carries the report headings. Zero values fall back to the
// defaults used by the benchmark harness this tool ships with.
type Options struct {
	Title    string
	Subtitle string
	Overview string
}

const (
	defaultTitle    = "Vehicle IoT Streaming Benchmark Results"
	defaultSubtitle = "Vehicle IoT Streaming - 100k Vehicles"
	defaultOverview = "This report compares **NATS**, **Apache Pulsar**, and **Pravega** " +
		"for a vehicle IoT streaming use case with 100,000 vehicles."
)

func (o Options) title() string {
	if o.Title != "" {
		return o.Title
	}
	return defaultTitle
}

func (o Options) subtitle() string {
	if o.Subtitle != "" {
		return o.Subtitle
	}
	return defaultSubtitle
}

func (o Options) overview() string {
	if o.Overview != "" {
		return o.Overview
	}
	return defaultOverview
}

// WriteSummary writes the fixed-width per-workload summary table.
func WriteSummary(w io.Writer, groups []results.WorkloadGroup, opts Options) error {
	rule := strings.Repeat("=", 100)
	thin := strings.Repeat("-", 100)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "BENCHMARK RESULTS SUMMARY")
	fmt.Fprintln(w, opts.subtitle())
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	for _, g := range groups {
		fmt.Fprintf(w, "\nWorkload: %s\n", g.Name)
		fmt.Fprintln(w, thin)
		fmt.Fprintf(w, "%-15s %-15s %-15s %-15s %-15s %-15s\n",
			"Driver", "Pub Rate", "Con Rate", "P50 Lat", "P99 Lat", "E2E Avg")
		fmt.Fprintln(w, thin)

		for _, r := range g.Results {
			fmt.Fprintf(w, "%-15s %-15.0f %-15.0f %-15.2f %-15.2f %-15.2f\n",
				r.Driver,
				r.PublishRate.Mean(),
				r.ConsumeRate.Mean(),
				r.PublishLatencyP50.Mean(),
				r.PublishLatencyP99.Mean(),
				r.EndToEndLatencyAvg.Mean(),
			)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// WriteSummaryFile writes the summary table to path.
func WriteSummaryFile(path string, groups []results.WorkloadGroup, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating summary file: %w", err)
	}
	defer f.Close()

	if err := WriteSummary(f, groups, opts); err != nil {
		return err
	}
	return f.Close()
}
