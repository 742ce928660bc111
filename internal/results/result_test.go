package results

import (
	"encoding/json"
	"math"
	"testing"
)

func TestSeriesUnmarshal(t *testing.T) {
	t.Run("Scalar", func(t *testing.T) {
		var s Series
		if err := json.Unmarshal([]byte(`42.5`), &s); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if len(s) != 1 || s[0] != 42.5 {
			t.Errorf("Expected [42.5], got %v", s)
		}
	})

	t.Run("Array", func(t *testing.T) {
		var s Series
		if err := json.Unmarshal([]byte(`[1, 2, 3]`), &s); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if len(s) != 3 {
			t.Errorf("Expected 3 samples, got %d", len(s))
		}
	})

	t.Run("Null", func(t *testing.T) {
		var s Series
		if err := json.Unmarshal([]byte(`null`), &s); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if len(s) != 0 {
			t.Errorf("Expected empty series, got %v", s)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		var s Series
		if err := json.Unmarshal([]byte(`"fast"`), &s); err == nil {
			t.Error("Expected error for string value")
		}
	})
}

func TestSeriesMean(t *testing.T) {
	cases := []struct {
		name   string
		series Series
		want   float64
	}{
		{"Empty", Series{}, 0},
		{"Nil", nil, 0},
		{"Single", Series{10}, 10},
		{"Multiple", Series{1, 2, 3, 4}, 2.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.series.Mean(); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Mean() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGroupByWorkload(t *testing.T) {
	rs := []Result{
		{Driver: "nats", Workload: "burst"},
		{Driver: "pulsar", Workload: "steady"},
		{Driver: "pulsar", Workload: "burst"},
		{Driver: "pravega", Workload: "steady"},
	}

	groups := GroupByWorkload(rs)
	if len(groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(groups))
	}

	// Insertion order must hold
	if groups[0].Name != "burst" || groups[1].Name != "steady" {
		t.Errorf("Unexpected group order: %s, %s", groups[0].Name, groups[1].Name)
	}
	if len(groups[0].Results) != 2 {
		t.Errorf("Expected 2 burst results, got %d", len(groups[0].Results))
	}
	if groups[0].Results[0].Driver != "nats" || groups[0].Results[1].Driver != "pulsar" {
		t.Errorf("Unexpected drivers in burst group: %+v", groups[0].Results)
	}
}

func TestBestThroughput(t *testing.T) {
	g := WorkloadGroup{
		Name: "steady",
		Results: []Result{
			{Driver: "nats", PublishRate: Series{1000, 2000}},
			{Driver: "pulsar", PublishRate: Series{1800}},
			{Driver: "pravega", PublishRate: Series{900}},
		},
	}

	r, rate := g.BestThroughput()
	if r.Driver != "pulsar" {
		t.Errorf("Expected pulsar, got %s", r.Driver)
	}
	if rate != 1800 {
		t.Errorf("Expected rate 1800, got %v", rate)
	}
}

func TestLowestP99(t *testing.T) {
	t.Run("SkipsZero", func(t *testing.T) {
		g := WorkloadGroup{
			Results: []Result{
				{Driver: "nats", PublishLatencyP99: Series{}},
				{Driver: "pulsar", PublishLatencyP99: Series{4.2}},
				{Driver: "pravega", PublishLatencyP99: Series{2.1}},
			},
		}
		r, lat := g.LowestP99()
		if r.Driver != "pravega" {
			t.Errorf("Expected pravega, got %s", r.Driver)
		}
		if lat != 2.1 {
			t.Errorf("Expected 2.1, got %v", lat)
		}
	})

	t.Run("AllZero", func(t *testing.T) {
		g := WorkloadGroup{
			Results: []Result{
				{Driver: "nats"},
				{Driver: "pulsar"},
			},
		}
		r, lat := g.LowestP99()
		if r.Driver != "nats" {
			t.Errorf("Expected first driver as fallback, got %s", r.Driver)
		}
		if lat != 0 {
			t.Errorf("Expected 0, got %v", lat)
		}
	})
}
