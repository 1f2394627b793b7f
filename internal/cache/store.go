package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/freeride/ticket"
)

// Entry is a cached solution.
type Entry struct {
	Cost       int
	LowerBound int
	Purchased  []ticket.Pair
	SolvedAt   time.Time
}

// Store is a SQLite-backed solution cache. It is safe for concurrent use.
type Store struct {
	db   *sql.DB
	path string
	mu   sync.RWMutex
}

// Open creates or opens the cache database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %s: %w", pragma, err)
		}
	}

	schema := `
	CREATE TABLE IF NOT EXISTS solutions (
		key TEXT PRIMARY KEY,
		cost INTEGER NOT NULL,
		lower_bound INTEGER NOT NULL,
		purchased TEXT NOT NULL,
		solved_at TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// Get returns the entry stored under key, or nil when there is none.
func (s *Store) Get(ctx context.Context, key Key) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		e         Entry
		purchased string
		solvedAt  string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT cost, lower_bound, purchased, solved_at FROM solutions WHERE key = ?`,
		key.String(),
	).Scan(&e.Cost, &e.LowerBound, &purchased, &solvedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cache entry: %w", err)
	}

	if err := json.Unmarshal([]byte(purchased), &e.Purchased); err != nil {
		return nil, fmt.Errorf("failed to decode cache entry: %w", err)
	}
	if e.SolvedAt, err = time.Parse(time.RFC3339Nano, solvedAt); err != nil {
		return nil, fmt.Errorf("failed to decode cache entry: %w", err)
	}

	return &e, nil
}

// Put stores e under key, replacing any previous entry.
func (s *Store) Put(ctx context.Context, key Key, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	purchased := e.Purchased
	if purchased == nil {
		purchased = []ticket.Pair{}
	}
	b, err := json.Marshal(purchased)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO solutions (key, cost, lower_bound, purchased, solved_at)
		 VALUES (?, ?, ?, ?, ?)`,
		key.String(), e.Cost, e.LowerBound, string(b), e.SolvedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to set cache entry: %w", err)
	}

	return nil
}

// Count returns the number of cached solutions.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM solutions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count cache entries: %w", err)
	}

	return n, nil
}

// Purge removes every cached solution and returns how many were removed.
func (s *Store) Purge(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM solutions`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge cache: %w", err)
	}

	return res.RowsAffected()
}
