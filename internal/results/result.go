package results

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Series is a metric value from the benchmark harness. Depending on the
// harness version a metric is reported either as a single number or as an
// array of per-interval samples, so both forms unmarshal into a Series.
type Series []float64

// UnmarshalJSON accepts a JSON number, an array of numbers, or null.
func (s *Series) UnmarshalJSON(data []byte) error {
	// null has to be handled up front: json.Unmarshal treats it as a no-op
	// for *float64, which would turn null into a one-element zero series.
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = nil
		return nil
	}

	var scalar float64
	if err := json.Unmarshal(data, &scalar); err == nil {
		*s = Series{scalar}
		return nil
	}

	var values []float64
	if err := json.Unmarshal(data, &values); err == nil {
		*s = Series(values)
		return nil
	}

	return fmt.Errorf("series: cannot unmarshal %s", string(data))
}

// Mean returns the arithmetic mean of the samples, or 0 for an empty series.
func (s Series) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s {
		sum += v
	}
	return sum / float64(len(s))
}

// Result is a single benchmark run for one driver and workload.
type Result struct {
	Driver   string `json:"driver"`
	Workload string `json:"workload"`

	PublishRate Series `json:"publishRate"`
	ConsumeRate Series `json:"consumeRate"`

	PublishLatencyP50 Series `json:"publishLatency50pct"`
	PublishLatencyP95 Series `json:"publishLatency95pct"`
	PublishLatencyP99 Series `json:"publishLatency99pct"`

	EndToEndLatencyAvg Series `json:"endToEndLatencyAvg"`
	EndToEndLatencyP99 Series `json:"endToEndLatency99pct"`

	// SourceFile is the result file this run was loaded from, for logging.
	SourceFile string `json:"-"`
}

// WorkloadGroup holds all runs that share a workload name.
type WorkloadGroup struct {
	Name    string
	Results []Result
}

// GroupByWorkload buckets results by workload, preserving the order in which
// workloads first appear so report output stays deterministic.
func GroupByWorkload(results []Result) []WorkloadGroup {
	indexes := make(map[string]int)
	var groups []WorkloadGroup

	for _, r := range results {
		i, ok := indexes[r.Workload]
		if !ok {
			i = len(groups)
			indexes[r.Workload] = i
			groups = append(groups, WorkloadGroup{Name: r.Workload})
		}
		groups[i].Results = append(groups[i].Results, r)
	}
	return groups
}

// BestThroughput returns the run with the highest mean publish rate.
func (g WorkloadGroup) BestThroughput() (Result, float64) {
	best := 0
	bestRate := g.Results[0].PublishRate.Mean()
	for i, r := range g.Results[1:] {
		if rate := r.PublishRate.Mean(); rate > bestRate {
			best = i + 1
			bestRate = rate
		}
	}
	return g.Results[best], bestRate
}

// LowestP99 returns the run with the lowest non-zero mean publish P99
// latency. A run that reported no latency at all never wins; if every run
// reported zero, the first run is returned.
func (g WorkloadGroup) LowestP99() (Result, float64) {
	best := -1
	bestLat := 0.0
	for i, r := range g.Results {
		lat := r.PublishLatencyP99.Mean()
		if lat <= 0 {
			continue
		}
		if best == -1 || lat < bestLat {
			best = i
			bestLat = lat
		}
	}
	if best == -1 {
		return g.Results[0], g.Results[0].PublishLatencyP99.Mean()
	}
	return g.Results[best], bestLat
}
