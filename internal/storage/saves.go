package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// SaveSnapshot stores the game in progress for its board size,
// replacing any previous save of that size.
func (s *Store) SaveSnapshot(snap t2048.Snapshot) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("storage: cannot encode snapshot: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO saves (size, snapshot, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(size) DO UPDATE SET snapshot = excluded.snapshot, updated_at = excluded.updated_at`,
		snap.Size, string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot returns the saved game for the given board size.
// Returns nil if nothing is saved.
func (s *Store) LoadSnapshot(size int) (*t2048.Snapshot, error) {
	var data string
	err := s.db.QueryRow("SELECT snapshot FROM saves WHERE size = ?", size).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query snapshot: %w", err)
	}

	var snap t2048.Snapshot
	if err := yaml.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("storage: cannot decode snapshot: %w", err)
	}
	return &snap, nil
}

// DeleteSnapshot removes the saved game for the given board size.
func (s *Store) DeleteSnapshot(size int) error {
	_, err := s.db.Exec("DELETE FROM saves WHERE size = ?", size)
	if err != nil {
		return fmt.Errorf("storage: cannot delete snapshot: %w", err)
	}
	return nil
}
