// Package history stores finished lock attempts in SQLite
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/lixenwraith/vi-lockpick/session"
)

// Attempt is one closed lock
type Attempt struct {
	ID             uuid.UUID
	Difficulty     int
	SolutionCenter float64
	Breaks         int
	Duration       time.Duration
	Unlocked       bool
	StartedAt      time.Time
}

// FromResult converts a session result; the ID is assigned on Record
func FromResult(r session.Result) Attempt {
	return Attempt{
		Difficulty:     r.Difficulty,
		SolutionCenter: r.SolutionCenter,
		Breaks:         r.Breaks,
		Duration:       r.Duration,
		Unlocked:       r.Unlocked,
		StartedAt:      r.StartedAt,
	}
}

// attemptRow is the storage shape; times are unix nanoseconds
type attemptRow struct {
	ID             uuid.UUID `db:"id"`
	Difficulty     int       `db:"difficulty"`
	SolutionCenter float64   `db:"solution_center"`
	Breaks         int       `db:"breaks"`
	DurationNs     int64     `db:"duration_ns"`
	Unlocked       bool      `db:"unlocked"`
	StartedAt      int64     `db:"started_at"`
}

func (r attemptRow) attempt() Attempt {
	return Attempt{
		ID:             r.ID,
		Difficulty:     r.Difficulty,
		SolutionCenter: r.SolutionCenter,
		Breaks:         r.Breaks,
		Duration:       time.Duration(r.DurationNs),
		Unlocked:       r.Unlocked,
		StartedAt:      time.Unix(0, r.StartedAt).UTC(),
	}
}

// Summary aggregates every stored attempt
type Summary struct {
	Attempts       int
	Unlocked       int
	Breaks         int
	MeanDifficulty float64
	Hardest        int           // Highest difficulty opened, -1 if none
	Fastest        time.Duration // Shortest opening, 0 if none
}

// Store wraps the attempts database
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates the database at path and applies the schema
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS attempts (
		id TEXT PRIMARY KEY,
		difficulty INTEGER NOT NULL,
		solution_center REAL NOT NULL,
		breaks INTEGER NOT NULL,
		duration_ns INTEGER NOT NULL,
		unlocked INTEGER NOT NULL,
		started_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_attempts_started ON attempts(started_at);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Record stores a, assigning a fresh ID when a.ID is zero, and returns the stored ID
func (s *Store) Record(ctx context.Context, a Attempt) (uuid.UUID, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	row := attemptRow{
		ID:             a.ID,
		Difficulty:     a.Difficulty,
		SolutionCenter: a.SolutionCenter,
		Breaks:         a.Breaks,
		DurationNs:     int64(a.Duration),
		Unlocked:       a.Unlocked,
		StartedAt:      a.StartedAt.UnixNano(),
	}
	_, err := s.conn.NamedExecContext(ctx, `INSERT INTO attempts
		(id, difficulty, solution_center, breaks, duration_ns, unlocked, started_at)
		VALUES (:id, :difficulty, :solution_center, :breaks, :duration_ns, :unlocked, :started_at)`,
		row,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("record attempt: %w", err)
	}
	return a.ID, nil
}

// Recent returns up to limit attempts, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	var rows []attemptRow
	err := s.conn.SelectContext(ctx, &rows,
		`SELECT id, difficulty, solution_center, breaks, duration_ns, unlocked, started_at
		FROM attempts ORDER BY started_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent attempts: %w", err)
	}

	out := make([]Attempt, len(rows))
	for i, r := range rows {
		out[i] = r.attempt()
	}
	return out, nil
}

// Get returns the attempt with id, or ErrNotFound
func (s *Store) Get(ctx context.Context, id uuid.UUID) (Attempt, error) {
	var r attemptRow
	err := s.conn.GetContext(ctx, &r,
		`SELECT id, difficulty, solution_center, breaks, duration_ns, unlocked, started_at
		FROM attempts WHERE id = ?`,
		id,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Attempt{}, fmt.Errorf("attempt %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Attempt{}, fmt.Errorf("attempt %s: %w", id, err)
	}
	return r.attempt(), nil
}

// ErrNotFound is returned by Get for an unknown ID
var ErrNotFound = errors.New("not found")

// Summary aggregates the whole table
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	var sum struct {
		Attempts       int     `db:"attempts"`
		Unlocked       int     `db:"unlocked"`
		Breaks         int     `db:"breaks"`
		MeanDifficulty float64 `db:"mean_difficulty"`
		Hardest        int     `db:"hardest"`
		FastestNs      int64   `db:"fastest_ns"`
	}
	err := s.conn.GetContext(ctx, &sum, `SELECT
		COUNT(*) AS attempts,
		COALESCE(SUM(unlocked), 0) AS unlocked,
		COALESCE(SUM(breaks), 0) AS breaks,
		COALESCE(AVG(difficulty), 0.0) AS mean_difficulty,
		COALESCE(MAX(CASE WHEN unlocked = 1 THEN difficulty END), -1) AS hardest,
		COALESCE(MIN(CASE WHEN unlocked = 1 THEN duration_ns END), 0) AS fastest_ns
		FROM attempts`)
	if err != nil {
		return Summary{}, fmt.Errorf("summary: %w", err)
	}
	return Summary{
		Attempts:       sum.Attempts,
		Unlocked:       sum.Unlocked,
		Breaks:         sum.Breaks,
		MeanDifficulty: sum.MeanDifficulty,
		Hardest:        sum.Hardest,
		Fastest:        time.Duration(sum.FastestNs),
	}, nil
}
