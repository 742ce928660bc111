package results

import (
	"os"
	"path/filepath"
	"testing"
)

func writeResult(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()

	writeResult(t, dir, "steady-nats.json", `{
		"driver": "NATS",
		"workload": "steady",
		"publishRate": [1000, 1200],
		"consumeRate": 1100,
		"publishLatency50pct": 0.8,
		"publishLatency99pct": [2.0, 3.0]
	}`)
	writeResult(t, dir, "steady-pulsar.json", `{
		"driver": "Pulsar",
		"workload": "steady",
		"publishRate": 900
	}`)
	// not a result file
	writeResult(t, dir, "notes.txt", "ignore me")

	rs, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if len(rs) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(rs))
	}

	// Sorted by filename, so NATS first
	if rs[0].Driver != "NATS" {
		t.Errorf("Expected NATS first, got %s", rs[0].Driver)
	}
	if got := rs[0].PublishRate.Mean(); got != 1100 {
		t.Errorf("Expected mean publish rate 1100, got %v", got)
	}
	if got := rs[0].PublishLatencyP99.Mean(); got != 2.5 {
		t.Errorf("Expected mean P99 2.5, got %v", got)
	}
}

func TestLoadDirDefaults(t *testing.T) {
	dir := t.TempDir()
	writeResult(t, dir, "burst-run1.json", `{"publishRate": 500}`)

	rs, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if len(rs) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(rs))
	}
	if rs[0].Driver != "unknown" {
		t.Errorf("Expected driver fallback 'unknown', got %q", rs[0].Driver)
	}
	if rs[0].Workload != "burst-run1" {
		t.Errorf("Expected workload from filename stem, got %q", rs[0].Workload)
	}
}

func TestLoadDirSkipsCorrupt(t *testing.T) {
	dir := t.TempDir()
	writeResult(t, dir, "bad.json", `{not json`)
	writeResult(t, dir, "good.json", `{"driver": "NATS", "workload": "w"}`)

	rs, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if len(rs) != 1 {
		t.Errorf("Expected corrupt file skipped, got %d results", len(rs))
	}
}

func TestLoadDirMissing(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Expected error for missing directory")
	}
}
