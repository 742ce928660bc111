package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Keep tests hermetic: no accidental notifications, no config file pickup.
	viper.Set("notifications.slack.enabled", false)
	t.Cleanup(func() { viper.Reset() })

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

// writeResultsDir creates a directory with two workloads across two drivers.
func writeResultsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"steady-nats.json": `{
			"driver": "NATS", "workload": "steady",
			"publishRate": [120000, 118000], "consumeRate": 119000,
			"publishLatency50pct": 0.45, "publishLatency95pct": 1.2, "publishLatency99pct": 2.4,
			"endToEndLatencyAvg": 1.05, "endToEndLatency99pct": 3.2
		}`,
		"steady-pulsar.json": `{
			"driver": "Pulsar", "workload": "steady",
			"publishRate": 100000, "consumeRate": 99000,
			"publishLatency50pct": 1.2, "publishLatency95pct": 3.3, "publishLatency99pct": 6.8,
			"endToEndLatencyAvg": 2.5, "endToEndLatency99pct": 8.1
		}`,
		"burst-nats.json": `{
			"driver": "NATS", "workload": "burst",
			"publishRate": 80000, "consumeRate": 79000,
			"publishLatency50pct": 0.9, "publishLatency95pct": 2.0, "publishLatency99pct": 4.1,
			"endToEndLatencyAvg": 1.8, "endToEndLatency99pct": 5.5
		}`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	return dir
}
