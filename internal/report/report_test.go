package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Xyedo/message-benchmark/internal/results"
)

func testGroups() []results.WorkloadGroup {
	return results.GroupByWorkload([]results.Result{
		{
			Driver:             "NATS",
			Workload:           "steady",
			PublishRate:        results.Series{120000},
			ConsumeRate:        results.Series{118000},
			PublishLatencyP50:  results.Series{0.45},
			PublishLatencyP99:  results.Series{2.4},
			EndToEndLatencyAvg: results.Series{1.05},
			EndToEndLatencyP99: results.Series{3.2},
		},
		{
			Driver:             "Pulsar",
			Workload:           "steady",
			PublishRate:        results.Series{90000, 110000},
			ConsumeRate:        results.Series{99000},
			PublishLatencyP50:  results.Series{1.2},
			PublishLatencyP99:  results.Series{6.8},
			EndToEndLatencyAvg: results.Series{2.5},
			EndToEndLatencyP99: results.Series{8.1},
		},
	})
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSummary(&buf, testGroups(), Options{Subtitle: "Test Run"}); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"BENCHMARK RESULTS SUMMARY",
		"Test Run",
		"Workload: steady",
		"Driver",
		"Pub Rate",
		"NATS",
		"Pulsar",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary missing %q:\n%s", want, out)
		}
	}

	// Rates are rendered without decimals, latencies with two.
	if !strings.Contains(out, "120000") {
		t.Errorf("Expected rate 120000 in summary:\n%s", out)
	}
	if !strings.Contains(out, "2.40") {
		t.Errorf("Expected latency 2.40 in summary:\n%s", out)
	}
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, testGroups(), Options{}); err != nil {
		t.Fatalf("WriteMarkdown failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Vehicle IoT Streaming Benchmark Results",
		"## steady",
		"| Metric | NATS | Pulsar |",
		"| **Publish Rate (msg/s)** | 120,000 | 100,000 |",
		"| **Publish P99 Latency (ms)** | 2.40 | 6.80 |",
		"### Analysis",
		"- **Best Throughput**: NATS (120,000 msg/s)",
		"- **Lowest P99 Latency**: NATS (2.40 ms)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Report missing %q:\n%s", want, out)
		}
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	summaryPath := filepath.Join(dir, "summary.txt")
	reportPath := filepath.Join(dir, "comparison_report.md")

	if err := WriteSummaryFile(summaryPath, testGroups(), Options{}); err != nil {
		t.Fatalf("WriteSummaryFile failed: %v", err)
	}
	if err := WriteMarkdownFile(reportPath, testGroups(), Options{}); err != nil {
		t.Fatalf("WriteMarkdownFile failed: %v", err)
	}

	for _, p := range []string{summaryPath, reportPath} {
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatalf("Reading %s: %v", p, err)
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", p)
		}
	}
}
