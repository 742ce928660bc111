package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// PostgresStore implements Store using PostgreSQL, for labs that share a
// central results database.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to the DSN and applies migrations.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PostgresStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

func (s *PostgresStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id SERIAL PRIMARY KEY,
		workload TEXT NOT NULL,
		driver TEXT NOT NULL,
		publish_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		consume_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		publish_p50 DOUBLE PRECISION NOT NULL DEFAULT 0,
		publish_p99 DOUBLE PRECISION NOT NULL DEFAULT 0,
		e2e_avg DOUBLE PRECISION NOT NULL DEFAULT 0,
		e2e_p99 DOUBLE PRECISION NOT NULL DEFAULT 0,
		imported_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`
	_, err := s.db.Exec(query)
	return err
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// SaveRun inserts one aggregated run.
func (s *PostgresStore) SaveRun(run Run) error {
	imported := run.ImportedAt
	if imported.IsZero() {
		imported = time.Now()
	}
	query := `INSERT INTO runs
		(workload, driver, publish_rate, consume_rate, publish_p50, publish_p99, e2e_avg, e2e_p99, imported_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := s.db.Exec(query,
		run.Workload, run.Driver,
		run.PublishRate, run.ConsumeRate,
		run.PublishP50, run.PublishP99,
		run.E2EAvg, run.E2EP99,
		imported,
	)
	return err
}

// RecentRuns returns the most recently imported runs, newest first.
func (s *PostgresStore) RecentRuns(limit int) ([]Run, error) {
	query := `SELECT id, workload, driver, publish_rate, consume_rate, publish_p50, publish_p99, e2e_avg, e2e_p99, imported_at
		FROM runs ORDER BY imported_at DESC, id DESC LIMIT $1`
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRuns(rows)
}
