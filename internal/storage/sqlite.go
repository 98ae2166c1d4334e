// Package storage provides SQLite-based persistence for finished runs and
// the goods crafted on the anvil.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry is one finished session and the money it ended with.
type RunEntry struct {
	ID        int64
	GameID    string
	Player    string
	Money     int
	Days      int
	Crafted   int
	CreatedAt time.Time
}

// CraftEntry is one anvil result.
type CraftEntry struct {
	ID        int64
	GameID    string
	Player    string
	Item      string // e.g. "Iron Sword"
	Points    int
	Value     int
	CreatedAt time.Time
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
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			money INTEGER NOT NULL,
			days INTEGER NOT NULL DEFAULT 0,
			crafted INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, money DESC);

		CREATE TABLE IF NOT EXISTS crafts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			item TEXT NOT NULL,
			points INTEGER NOT NULL,
			value INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_crafts_value ON crafts(value DESC);
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

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (game_id, player, money, days, crafted) VALUES (?, ?, ?, ?, ?)",
		r.GameID, r.Player, r.Money, r.Days, r.Crafted,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the richest N runs for the given game.
func (s *Store) TopRuns(gameID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, money, days, crafted, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY money DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Money, &e.Days, &e.Crafted, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestRun returns the most money any run of the game ended with.
// Returns 0 if no runs exist.
func (s *Store) BestRun(gameID string) (int, error) {
	var money sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(money) FROM runs WHERE game_id = ?",
		gameID,
	).Scan(&money)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best run: %w", err)
	}

	if !money.Valid {
		return 0, nil
	}

	return int(money.Int64), nil
}

// ClearRuns deletes all runs for the given game.
func (s *Store) ClearRuns(gameID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// SaveCraft records an anvil result.
func (s *Store) SaveCraft(c CraftEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO crafts (game_id, player, item, points, value) VALUES (?, ?, ?, ?, ?)",
		c.GameID, c.Player, c.Item, c.Points, c.Value,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save craft: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentCrafts retrieves the latest anvil results, newest first.
func (s *Store) RecentCrafts(limit int) ([]CraftEntry, error) {
	return s.queryCrafts("", "ORDER BY id DESC", limit)
}

// FinestCrafts retrieves the most valuable anvil results.
func (s *Store) FinestCrafts(limit int) ([]CraftEntry, error) {
	return s.queryCrafts("", "ORDER BY value DESC, id ASC", limit)
}

// CraftsOf retrieves the anvil results worked from one material, newest
// first. Item names start with the material name.
func (s *Store) CraftsOf(material string, limit int) ([]CraftEntry, error) {
	return s.queryCrafts("WHERE item LIKE ?", "ORDER BY id DESC", limit, material+" %")
}

func (s *Store) queryCrafts(where, order string, limit int, args ...any) ([]CraftEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, item, points, value, created_at
		 FROM crafts `+where+` `+order+`
		 LIMIT ?`,
		append(args, limit)...,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query crafts: %w", err)
	}
	defer rows.Close()

	var entries []CraftEntry
	for rows.Next() {
		var e CraftEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Item, &e.Points, &e.Value, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
