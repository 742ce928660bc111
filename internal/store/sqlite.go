package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the history database at path and
// applies migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		workload TEXT NOT NULL,
		driver TEXT NOT NULL,
		publish_rate REAL NOT NULL DEFAULT 0,
		consume_rate REAL NOT NULL DEFAULT 0,
		publish_p50 REAL NOT NULL DEFAULT 0,
		publish_p99 REAL NOT NULL DEFAULT 0,
		e2e_avg REAL NOT NULL DEFAULT 0,
		e2e_p99 REAL NOT NULL DEFAULT 0,
		imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := s.db.Exec(query)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveRun inserts one aggregated run.
func (s *SQLiteStore) SaveRun(run Run) error {
	imported := run.ImportedAt
	if imported.IsZero() {
		imported = time.Now()
	}
	query := `INSERT INTO runs
		(workload, driver, publish_rate, consume_rate, publish_p50, publish_p99, e2e_avg, e2e_p99, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
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
func (s *SQLiteStore) RecentRuns(limit int) ([]Run, error) {
	query := `SELECT id, workload, driver, publish_rate, consume_rate, publish_p50, publish_p99, e2e_avg, e2e_p99, imported_at
		FROM runs ORDER BY imported_at DESC, id DESC LIMIT ?`
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Workload, &r.Driver,
			&r.PublishRate, &r.ConsumeRate,
			&r.PublishP50, &r.PublishP99,
			&r.E2EAvg, &r.E2EP99, &r.ImportedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
