package ui

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/Xyedo/message-benchmark/internal/results"
	"github.com/Xyedo/message-benchmark/internal/store"
)

// RenderSummary prints the per-workload comparison tables with styled
// headers and a winner line per workload.
func RenderSummary(w io.Writer, groups []results.WorkloadGroup) {
	fmt.Fprintln(w, headerStyle.Render(" BENCHMARK RESULTS "))

	for _, g := range groups {
		fmt.Fprintln(w, workloadTitleStyle.Render("Workload: "+g.Name))

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, columnHeaderStyle.Render("Driver\tPub Rate\tCon Rate\tP50 Lat\tP99 Lat\tE2E Avg"))
		for _, r := range g.Results {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%.2f\t%.2f\n",
				r.Driver,
				humanize.CommafWithDigits(r.PublishRate.Mean(), 0),
				humanize.CommafWithDigits(r.ConsumeRate.Mean(), 0),
				r.PublishLatencyP50.Mean(),
				r.PublishLatencyP99.Mean(),
				r.EndToEndLatencyAvg.Mean(),
			)
		}
		tw.Flush()

		bestTP, rate := g.BestThroughput()
		bestLat, lat := g.LowestP99()
		fmt.Fprintf(w, "%s %s (%s msg/s)   %s %s (%.2f ms)\n",
			dimStyle.Render("best throughput:"),
			winnerStyle.Render(bestTP.Driver),
			humanize.CommafWithDigits(rate, 0),
			dimStyle.Render("lowest p99:"),
			winnerStyle.Render(bestLat.Driver),
			lat,
		)
	}
}

// RenderHistory prints stored runs, newest first.
func RenderHistory(w io.Writer, runs []store.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, dimStyle.Render("No runs imported yet."))
		return
	}

	fmt.Fprintln(w, headerStyle.Render(" RUN HISTORY "))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, columnHeaderStyle.Render("Imported\tWorkload\tDriver\tPub Rate\tP99 Lat\tE2E Avg"))
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.2f\t%.2f\n",
			r.ImportedAt.Format("2006-01-02 15:04"),
			r.Workload,
			r.Driver,
			humanize.CommafWithDigits(r.PublishRate, 0),
			r.PublishP99,
			r.E2EAvg,
		)
	}
	tw.Flush()
}
