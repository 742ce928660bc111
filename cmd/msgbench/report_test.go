package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportStdout(t *testing.T) {
	resultsDir := writeResultsDir(t)

	out, err := executeCommand(t, "report", resultsDir)
	require.NoError(t, err)

	assert.Contains(t, out, "# Vehicle IoT Streaming Benchmark Results")
	assert.Contains(t, out, "## steady")
	assert.Contains(t, out, "| Metric | NATS | Pulsar |")
	assert.Contains(t, out, "- **Best Throughput**: NATS")
}

func TestReportToFile(t *testing.T) {
	resultsDir := writeResultsDir(t)
	outPath := filepath.Join(t.TempDir(), "report.md")

	_, err := executeCommand(t, "report", resultsDir, "--out", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "### Analysis")
}

func TestSummaryCommand(t *testing.T) {
	resultsDir := writeResultsDir(t)

	out, err := executeCommand(t, "summary", resultsDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Workload: steady")
	assert.Contains(t, out, "NATS")
	// publishRate [120000, 118000] aggregates by mean.
	assert.Contains(t, out, "119,000")
}

func TestViewCommand(t *testing.T) {
	resultsDir := writeResultsDir(t)

	out, err := executeCommand(t, "view", resultsDir)
	require.NoError(t, err)
	// Glamour rewraps the markdown, but driver names survive.
	assert.Contains(t, out, "NATS")
	assert.Contains(t, out, "Pulsar")
}
