// Package storage provides SQLite-based persistence for level completions.
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

// Store manages the SQLite database connection for completion persistence.
type Store struct {
	db *sql.DB
}

// Completion represents a single level completion record.
type Completion struct {
	ID        int64
	LevelID   string
	Turns     int
	Duration  int // seconds from level load to win
	CreatedAt time.Time
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	LevelID    string
	Clears     int
	BestTurns  int
	AvgTurns   float64
	LastPlayed time.Time
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			turns INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_completions_level_id ON completions(level_id);
		CREATE INDEX IF NOT EXISTS idx_completions_best ON completions(level_id, turns ASC);
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

// SaveCompletion records a new completion for the given level.
// Returns the ID of the inserted record.
func (s *Store) SaveCompletion(levelID string, turns, durationSecs int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO completions (level_id, turns, duration_secs) VALUES (?, ?, ?)",
		levelID, turns, durationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save completion: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestCompletions retrieves the best N completions for the given level.
// Results are ordered by turn count ascending, fewest turns first.
func (s *Store) BestCompletions(levelID string, limit int) ([]Completion, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, turns, duration_secs, created_at
		 FROM completions
		 WHERE level_id = ?
		 ORDER BY turns ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	defer rows.Close()

	var entries []Completion
	for rows.Next() {
		var e Completion
		var createdAt any
		if err := rows.Scan(&e.ID, &e.LevelID, &e.Turns, &e.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestTurns returns the fewest turns for the given level.
// Returns 0 if no completions exist.
func (s *Store) BestTurns(levelID string) (int, error) {
	var turns sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(turns) FROM completions WHERE level_id = ?",
		levelID,
	).Scan(&turns)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best turns: %w", err)
	}

	if !turns.Valid {
		return 0, nil
	}

	return int(turns.Int64), nil
}

// ClearCompletions deletes all completions for the given level.
func (s *Store) ClearCompletions(levelID string) error {
	_, err := s.db.Exec("DELETE FROM completions WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear completions: %w", err)
	}
	return nil
}

// GetLevelStats retrieves aggregated statistics for a specific level.
func (s *Store) GetLevelStats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(turns), 0), COALESCE(AVG(turns), 0)
		 FROM completions WHERE level_id = ?`,
		levelID,
	).Scan(&stats.Clears, &stats.BestTurns, &stats.AvgTurns)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM completions WHERE level_id = ? ORDER BY created_at DESC LIMIT 1`,
		levelID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// GetAllLevelStats retrieves statistics for all levels that have been completed.
func (s *Store) GetAllLevelStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), MIN(turns), AVG(turns), MAX(created_at)
		 FROM completions
		 GROUP BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var ls LevelStats
		var lastPlayed any
		if err := rows.Scan(&ls.LevelID, &ls.Clears, &ls.BestTurns, &ls.AvgTurns, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.LastPlayed = parseTimestamp(lastPlayed)
		stats[ls.LevelID] = &ls
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTimestamp handles the datetime formats the driver may return.
func parseTimestamp(v any) time.Time {
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
