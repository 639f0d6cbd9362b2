// Package storage persists run history locally so past generation runs and
// their per-step outcomes can be inspected.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db *sql.DB
}

// RunRecord is one pipeline run.
type RunRecord struct {
	ID          string
	Description string
	OutputDir   string
	Status      string
	StepCount   int
	Succeeded   int
	Failed      int
	CreatedAt   time.Time
}

// StepRecord is one step outcome within a run.
type StepRecord struct {
	RunID    string
	Name     string
	Path     string
	Status   string
	Attempts int
	Sidecar  string
	Error    string
}

// NewStore creates or opens a SQLite database.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id          TEXT PRIMARY KEY,
		description TEXT NOT NULL,
		output_dir  TEXT NOT NULL,
		status      TEXT NOT NULL,
		step_count  INTEGER NOT NULL,
		succeeded   INTEGER NOT NULL,
		failed      INTEGER NOT NULL,
		created_at  TIMESTAMP NOT NULL
	);
	CREATE TABLE IF NOT EXISTS run_steps (
		run_id   TEXT NOT NULL,
		name     TEXT NOT NULL,
		path     TEXT NOT NULL,
		status   TEXT NOT NULL,
		attempts INTEGER NOT NULL,
		sidecar  TEXT NOT NULL DEFAULT '',
		error    TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (run_id, name),
		FOREIGN KEY (run_id) REFERENCES runs(id)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveRun records a run and its step outcomes in one transaction.
func (s *Store) SaveRun(ctx context.Context, run RunRecord, steps []StepRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, description, output_dir, status, step_count, succeeded, failed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Description, run.OutputDir, run.Status, run.StepCount, run.Succeeded, run.Failed, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	for _, st := range steps {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO run_steps (run_id, name, path, status, attempts, sidecar, error)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			run.ID, st.Name, st.Path, st.Status, st.Attempts, st.Sidecar, st.Error)
		if err != nil {
			return fmt.Errorf("failed to insert step %s: %w", st.Name, err)
		}
	}

	return tx.Commit()
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, description, output_dir, status, step_count, succeeded, failed, created_at
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(&r.ID, &r.Description, &r.OutputDir, &r.Status, &r.StepCount, &r.Succeeded, &r.Failed, &r.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// ListSteps returns the step outcomes for one run, in insertion order.
func (s *Store) ListSteps(ctx context.Context, runID string) ([]StepRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, name, path, status, attempts, sidecar, error
		 FROM run_steps WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var steps []StepRecord
	for rows.Next() {
		var st StepRecord
		if err := rows.Scan(&st.RunID, &st.Name, &st.Path, &st.Status, &st.Attempts, &st.Sidecar, &st.Error); err != nil {
			return nil, err
		}
		steps = append(steps, st)
	}
	return steps, rows.Err()
}
