// Package storage provides SQLite-based persistence for finished games and
// saved games in progress.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// GameRecord represents one finished game.
type GameRecord struct {
	ID        int64
	Size      int
	Score     int
	MaxTile   int
	Moves     int
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
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
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			size INTEGER NOT NULL,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_top ON games(size, score DESC);

		CREATE TABLE IF NOT EXISTS saves (
			size INTEGER PRIMARY KEY,
			snapshot TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
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

// SaveGame records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveGame(rec GameRecord) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO games (size, score, max_tile, moves) VALUES (?, ?, ?, ?)",
		rec.Size, rec.Score, rec.MaxTile, rec.Moves,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopGames retrieves the best N games played on a board of the given size.
// Results are ordered by score descending.
func (s *Store) TopGames(size, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, size, score, max_tile, moves, created_at
		 FROM games
		 WHERE size = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		size, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var r GameRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Size, &r.Score, &r.MaxTile, &r.Moves, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// BestScore returns the highest score for the given board size.
// Returns 0 if no games exist.
func (s *Store) BestScore(size int) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM games WHERE size = ?",
		size,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearGames deletes all finished games for the given board size.
func (s *Store) ClearGames(size int) error {
	_, err := s.db.Exec("DELETE FROM games WHERE size = ?", size)
	if err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for one board size.
type GameStats struct {
	Size       int
	GamesCount int
	BestScore  int
	AvgScore   float64
	BestTile   int
	TotalMoves int64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics for the given board size.
func (s *Store) Stats(size int) (*GameStats, error) {
	stats := &GameStats{Size: size}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(max_tile), 0), COALESCE(SUM(moves), 0)
		 FROM games WHERE size = ?`,
		size,
	).Scan(&stats.GamesCount, &stats.BestScore, &stats.AvgScore, &stats.BestTile, &stats.TotalMoves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM games WHERE size = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		size,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime converts a DATETIME column, which the driver may return as
// either time.Time or text.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
