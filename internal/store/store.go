// Package store persists aggregated benchmark runs so past results can be
// compared across report generations.
package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/Xyedo/message-benchmark/internal/results"
)

// Run is one aggregated driver/workload measurement as imported from a
// results directory.
type Run struct {
	ID          int64     `json:"id"`
	Workload    string    `json:"workload"`
	Driver      string    `json:"driver"`
	PublishRate float64   `json:"publish_rate"`
	ConsumeRate float64   `json:"consume_rate"`
	PublishP50  float64   `json:"publish_p50"`
	PublishP99  float64   `json:"publish_p99"`
	E2EAvg      float64   `json:"e2e_avg"`
	E2EP99      float64   `json:"e2e_p99"`
	ImportedAt  time.Time `json:"imported_at"`
}

// FromResult flattens a parsed result into its stored aggregate form.
func FromResult(r results.Result) Run {
	return Run{
		Workload:    r.Workload,
		Driver:      r.Driver,
		PublishRate: r.PublishRate.Mean(),
		ConsumeRate: r.ConsumeRate.Mean(),
		PublishP50:  r.PublishLatencyP50.Mean(),
		PublishP99:  r.PublishLatencyP99.Mean(),
		E2EAvg:      r.EndToEndLatencyAvg.Mean(),
		E2EP99:      r.EndToEndLatencyP99.Mean(),
	}
}

// Store is the persistence interface for run history.
type Store interface {
	Close() error
	SaveRun(run Run) error
	RecentRuns(limit int) ([]Run, error)
}

// Config selects the history backend.
type Config struct {
	Driver string // "sqlite" or "postgres"
	Path   string // SQLite file path
	DSN    string // Postgres DSN
}

// New creates a Store for the configured backend, defaulting to SQLite.
func New(cfg Config) (Store, error) {
	switch strings.ToLower(cfg.Driver) {
	case "postgres", "postgresql":
		if cfg.DSN == "" {
			return nil, fmt.Errorf("postgres history requires a DSN")
		}
		return NewPostgresStore(cfg.DSN)
	case "sqlite", "sqlite3", "":
		path := cfg.Path
		if path == "" {
			path = "msgbench.db"
		}
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unsupported history driver: %s", cfg.Driver)
	}
}
