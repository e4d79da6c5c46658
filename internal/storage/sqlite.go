// Package storage provides SQLite-based persistence for recorded runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ErrRunNotFound is returned when a run ID does not exist.
var ErrRunNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for run journals.
type Store struct {
	db *sql.DB
}

// Run is a recorded run: its outcome and, when loaded with LoadRun,
// the journal needed to replay it.
type Run struct {
	ID        string
	GameID    string
	Seed      int64
	Score     int
	Ticks     int
	GameOver  bool
	CreatedAt time.Time
	Journal   core.Journal
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			game_over INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);

		CREATE TABLE IF NOT EXISTS run_inputs (
			run_id TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
			idx INTEGER NOT NULL,
			delta_ms REAL NOT NULL,
			jump INTEGER NOT NULL,
			now_ms REAL NOT NULL,
			PRIMARY KEY (run_id, idx)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a run and its journal in one transaction.
// An empty run.ID is replaced by a new UUID. Returns the run ID.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	run.Seed = run.Journal.Seed
	run.Ticks = len(run.Journal.Inputs)

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec(
		"INSERT INTO runs (run_id, game_id, seed, score, ticks, game_over) VALUES (?, ?, ?, ?, ?, ?)",
		run.ID, run.GameID, run.Seed, run.Score, run.Ticks, run.GameOver,
	); err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO run_inputs (run_id, idx, delta_ms, jump, now_ms) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return "", fmt.Errorf("storage: cannot prepare input insert: %w", err)
	}
	defer stmt.Close()

	for i, in := range run.Journal.Inputs {
		if _, err := stmt.Exec(run.ID, i, in.DeltaMs, in.Jump, in.NowMs); err != nil {
			return "", fmt.Errorf("storage: cannot save input %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return run.ID, nil
}

// LoadRun retrieves a run together with its journal.
// Returns ErrRunNotFound if the ID is unknown.
func (s *Store) LoadRun(id string) (*Run, error) {
	var run Run
	var createdAt any

	err := s.db.QueryRow(
		`SELECT run_id, game_id, seed, score, ticks, game_over, created_at
		 FROM runs
		 WHERE run_id = ?`,
		id,
	).Scan(&run.ID, &run.GameID, &run.Seed, &run.Score, &run.Ticks, &run.GameOver, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	run.CreatedAt = parseTime(createdAt)

	rows, err := s.db.Query(
		`SELECT delta_ms, jump, now_ms
		 FROM run_inputs
		 WHERE run_id = ?
		 ORDER BY idx`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query inputs: %w", err)
	}
	defer rows.Close()

	run.Journal = core.Journal{Seed: run.Seed, Inputs: make([]core.TickInput, 0, run.Ticks)}
	for rows.Next() {
		var in core.TickInput
		if err := rows.Scan(&in.DeltaMs, &in.Jump, &in.NowMs); err != nil {
			return nil, fmt.Errorf("storage: cannot scan input: %w", err)
		}
		run.Journal.Inputs = append(run.Journal.Inputs, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return &run, nil
}

// ListRuns returns the most recent runs, newest first, without journals.
// An empty gameID lists runs of every game.
func (s *Store) ListRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT run_id, game_id, seed, score, ticks, game_over, created_at
		 FROM runs
		 WHERE ? = '' OR game_id = ?
		 ORDER BY seq DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Seed, &r.Score, &r.Ticks, &r.GameOver, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// DeleteRun removes a run and its journal.
// Returns ErrRunNotFound if the ID is unknown.
func (s *Store) DeleteRun(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec("DELETE FROM run_inputs WHERE run_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete inputs: %w", err)
	}
	res, err := tx.Exec("DELETE FROM runs WHERE run_id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// parseTime handles both driver representations of a DATETIME column.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
