// Package sqlite implements the optional SQLite results store. When enabled,
// each scan invocation records a row in runs and bulk-inserts its discovered
// solutions, so exceptional hits can be queried across runs.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/factseek/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// Store persists scan runs and their solutions to a SQLite database.
// Unlike the CSV output, the database accumulates across invocations.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens (or creates) the database at path, creating parent directories
// as needed, and applies the schema. The schema is idempotent, so opening an
// existing database preserves its contents.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// RecordRun inserts the run row describing one scan invocation.
func (s *Store) RecordRun(run types.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, mode, n_max, include_trivial, include_pf_f3, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.RunID, string(run.Mode), run.NMax,
		boolToInt(run.IncludeTrivial), boolToInt(run.IncludePFF3),
		run.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// SavePF inserts all PF records for a run in one transaction.
func (s *Store) SavePF(runID string, rows []types.PFRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertSolutions("pf_solutions", runID, len(rows), func(i int) (int, int, int, string) {
		rec := rows[i]
		return rec.N, rec.R, rec.C, rec.Class
	})
}

// SaveBF inserts all BF records for a run in one transaction.
func (s *Store) SaveBF(runID string, rows []types.BFRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertSolutions("bf_solutions", runID, len(rows), func(i int) (int, int, int, string) {
		rec := rows[i]
		return rec.N, rec.R, rec.C, rec.Class
	})
}

// insertSolutions writes count rows into the named solutions table inside a
// single transaction. Caller holds the mutex.
func (s *Store) insertSolutions(table, runID string, count int, at func(int) (int, int, int, string)) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	stmt, err := tx.Prepare(
		fmt.Sprintf(`INSERT INTO %s (run_id, n, r, c, class) VALUES (?, ?, ?, ?, ?)`, table))
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < count; i++ {
		n, r, c, class := at(i)
		if _, err := stmt.Exec(runID, n, r, c, class); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert solution: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// CountPF returns the number of PF solutions stored for a run.
func (s *Store) CountPF(runID string) (int, error) {
	return s.countSolutions("pf_solutions", runID)
}

// CountBF returns the number of BF solutions stored for a run.
func (s *Store) CountBF(runID string) (int, error) {
	return s.countSolutions("bf_solutions", runID)
}

func (s *Store) countSolutions(table, runID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	err := s.db.QueryRow(
		fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE run_id = ?`, table), runID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count solutions: %w", err)
	}
	return count, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
