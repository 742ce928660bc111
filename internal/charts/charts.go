// Package charts renders the per-workload comparison charts as PNG images
// using gonum/plot.
package charts

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/Xyedo/message-benchmark/internal/results"
	"github.com/Xyedo/message-benchmark/internal/telemetry"
)

var (
	green  = color.RGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff}
	blue   = color.RGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff}
	orange = color.RGBA{R: 0xf3, G: 0x9c, B: 0x12, A: 0xff}
	red    = color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}
)

type series struct {
	label  string
	color  color.Color
	values plotter.Values
}

// Generate writes the three comparison charts for one workload into dir,
// creating it if needed.
func Generate(group results.WorkloadGroup, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating chart directory %s: %w", dir, err)
	}

	drivers := make([]string, len(group.Results))
	for i, r := range group.Results {
		drivers[i] = r.Driver
	}

	collect := func(pick func(results.Result) results.Series) plotter.Values {
		values := make(plotter.Values, len(group.Results))
		for i, r := range group.Results {
			values[i] = pick(r).Mean()
		}
		return values
	}

	rateLabel := func(v float64) string { return humanize.CommafWithDigits(v, 0) }
	latencyLabel := func(v float64) string { return fmt.Sprintf("%.2f", v) }

	kinds := []struct {
		name   string
		title  string
		yLabel string
		file   string
		format func(float64) string
		series []series
	}{
		{
			name:   "throughput",
			title:  "Throughput Comparison",
			yLabel: "Messages per Second",
			file:   "throughput_comparison.png",
			format: rateLabel,
			series: []series{
				{"Publish Rate", green, collect(func(r results.Result) results.Series { return r.PublishRate })},
				{"Consume Rate", blue, collect(func(r results.Result) results.Series { return r.ConsumeRate })},
			},
		},
		{
			name:   "latency",
			title:  "Publish Latency Comparison",
			yLabel: "Latency (ms)",
			file:   "latency_comparison.png",
			format: latencyLabel,
			series: []series{
				{"P50", green, collect(func(r results.Result) results.Series { return r.PublishLatencyP50 })},
				{"P95", orange, collect(func(r results.Result) results.Series { return r.PublishLatencyP95 })},
				{"P99", red, collect(func(r results.Result) results.Series { return r.PublishLatencyP99 })},
			},
		},
		{
			name:   "e2e_latency",
			title:  "End-to-End Latency Comparison",
			yLabel: "Latency (ms)",
			file:   "end_to_end_latency_comparison.png",
			format: latencyLabel,
			series: []series{
				{"Average", blue, collect(func(r results.Result) results.Series { return r.EndToEndLatencyAvg })},
				{"P99", red, collect(func(r results.Result) results.Series { return r.EndToEndLatencyP99 })},
			},
		},
	}

	for _, k := range kinds {
		path := filepath.Join(dir, k.file)
		if err := renderGroupedBars(k.title, k.yLabel, drivers, k.series, k.format, path); err != nil {
			return fmt.Errorf("rendering %s chart: %w", k.name, err)
		}
		telemetry.ChartsRendered.WithLabelValues(k.name).Inc()
		telemetry.LogInfo("Created chart", "path", path)
	}
	return nil
}

// renderGroupedBars draws one clustered bar chart: one bar group per driver,
// one bar per series within the group, with the value printed above each bar.
func renderGroupedBars(title, yLabel string, drivers []string, ss []series, format func(float64) string, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Driver"
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	barWidth := vg.Points(20)
	barSpacing := vg.Points(3)
	// Total width of a bar cluster, center to center.
	groupWidth := (barWidth + barSpacing) * vg.Length(len(ss)-1)

	for i, s := range ss {
		bars, err := plotter.NewBarChart(s.values, barWidth)
		if err != nil {
			return err
		}
		bars.Color = s.color
		bars.LineStyle.Width = 0
		bars.Offset = (barWidth+barSpacing)*vg.Length(i) - groupWidth/2

		p.Add(bars)
		p.Legend.Add(s.label, bars)

		// Value annotations above each bar, shifted sideways by the same
		// canvas offset as the bars themselves.
		xys := make(plotter.XYs, len(s.values))
		texts := make([]string, len(s.values))
		for j, v := range s.values {
			xys[j] = plotter.XY{X: float64(j), Y: v}
			texts[j] = format(v)
		}
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
		if err != nil {
			return err
		}
		labels.Offset = vg.Point{X: bars.Offset, Y: vg.Points(3)}
		for j := range labels.TextStyle {
			labels.TextStyle[j].XAlign = text.XCenter
			labels.TextStyle[j].Font.Size = vg.Points(8)
		}
		p.Add(labels)
	}

	p.NominalX(drivers...)
	p.Legend.Top = true
	p.Y.Max *= 1.1

	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}
