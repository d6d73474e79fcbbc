// Package t2048 implements the rules of the 2048 sliding-tile puzzle: tilting
// a square board toward one side, merging equal tiles once per tilt, keeping
// score and detecting the end of the game.
//
// The package is pure and synchronous. Spawning new tiles, rendering and
// persistence live in other packages and talk to a Model through AddTile,
// Tilt and the read accessors.
package t2048

// Snapshot captures the complete state of a model for saving and replay.
type Snapshot struct {
	Size     int     `yaml:"size"`
	Score    int     `yaml:"score"`
	MaxScore int     `yaml:"max_score"`
	GameOver bool    `yaml:"game_over"`
	Values   [][]int `yaml:"values"` // [row][col], row 0 at the bottom
}

// Snapshot returns the current state of the model.
func (m *Model) Snapshot() Snapshot {
	return Snapshot{
		Size:     m.Size(),
		Score:    m.score,
		MaxScore: m.maxScore,
		GameOver: m.gameOver,
		Values:   m.board.Values(),
	}
}

// FromSnapshot rebuilds a model from a snapshot.
func FromSnapshot(s Snapshot, opts ...Option) (*Model, error) {
	if s.Size != len(s.Values) {
		return nil, ErrInvalidGrid
	}
	return NewModelFromValues(s.Values, s.Score, s.MaxScore, s.GameOver, opts...)
}
