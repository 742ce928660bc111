package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Xyedo/message-benchmark/internal/telemetry"
)

// LoadDir reads every *.json file directly under dir and returns the parsed
// results. Files that fail to parse are logged and skipped so one corrupt
// result does not sink the whole report. The returned slice is ordered by
// filename so repeated runs produce identical output.
func LoadDir(dir string) ([]Result, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("results directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("results directory %s: not a directory", dir)
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	sort.Strings(paths)

	var loaded []Result
	for _, path := range paths {
		r, err := loadFile(path)
		if err != nil {
			telemetry.LogError("Skipping result file", err, "path", path)
			continue
		}
		telemetry.LogInfo("Loaded result", "path", path, "driver", r.Driver, "workload", r.Workload)
		telemetry.ResultsLoaded.Inc()
		loaded = append(loaded, r)
	}
	return loaded, nil
}

func loadFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return Result{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	if r.Driver == "" {
		r.Driver = "unknown"
	}
	if r.Workload == "" {
		// Fall back to the filename stem, same convention the harness uses
		// when it names files <workload>-<driver>.json.
		base := filepath.Base(path)
		r.Workload = strings.TrimSuffix(base, filepath.Ext(base))
	}
	r.SourceFile = path
	return r, nil
}
