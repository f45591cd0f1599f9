// Package store handles SQLite persistence for the progression engine:
// progress and avatar snapshots, the drill session log, badge unlocks,
// and the daily challenge history.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the database handle and provides access to repositories.
type Store struct {
	db  *sql.DB
	seq *sequenceCounter
}

// Open creates a Store connected to the SQLite database at dsn. It
// applies recommended pragmas and runs migrations.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init sequence: %w", err)
	}

	return &Store{db: db, seq: seq}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ProgressRepo returns the player progress snapshot repository.
func (s *Store) ProgressRepo() *ProgressRepo {
	return &ProgressRepo{db: s.db}
}

// AvatarRepo returns the avatar snapshot repository.
func (s *Store) AvatarRepo() *AvatarRepo {
	return &AvatarRepo{db: s.db}
}

// SessionRepo returns the drill session log repository.
func (s *Store) SessionRepo() *SessionRepo {
	return &SessionRepo{db: s.db, seq: s.seq}
}

// ChallengeRepo returns the daily challenge repository.
func (s *Store) ChallengeRepo() *ChallengeRepo {
	return &ChallengeRepo{db: s.db}
}

// UnlockRepo returns the badge unlock repository.
func (s *Store) UnlockRepo() *UnlockRepo {
	return &UnlockRepo{db: s.db}
}

// Reset deletes all persisted state.
func (s *Store) Reset(ctx context.Context) error {
	stmts := []string{
		`DELETE FROM player_progress`,
		`DELETE FROM avatar`,
		`DELETE FROM drill_sessions`,
		`DELETE FROM badge_unlocks`,
		`DELETE FROM daily_challenges`,
		`UPDATE global_sequence SET next_val = 1 WHERE id = 1`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", stmt, err)
		}
	}
	return nil
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS player_progress (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			data TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS avatar (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			data TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS drill_sessions (
			id TEXT PRIMARY KEY,
			sequence INTEGER NOT NULL,
			drill_id TEXT NOT NULL,
			age_band TEXT NOT NULL,
			start_at TEXT NOT NULL,
			end_at TEXT NOT NULL,
			duration_sec REAL NOT NULL,
			score INTEGER NOT NULL,
			cones_collected INTEGER NOT NULL,
			scans_count INTEGER NOT NULL,
			touches_moved_count INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_drill_sessions_sequence ON drill_sessions(sequence)`,
		`CREATE INDEX IF NOT EXISTS idx_drill_sessions_drill_id ON drill_sessions(drill_id)`,
		`CREATE TABLE IF NOT EXISTS badge_unlocks (
			badge_id TEXT PRIMARY KEY,
			unlocked_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS daily_challenges (
			id TEXT PRIMARY KEY,
			date TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			data TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_daily_challenges_date ON daily_challenges(date)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. SPELSMART_DB environment variable
// 2. $XDG_DATA_HOME/spelsmart/spelsmart.db
// 3. ~/.local/share/spelsmart/spelsmart.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("SPELSMART_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "spelsmart", "spelsmart.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
