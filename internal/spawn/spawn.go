// Package spawn places new tiles on a 2048 board.
package spawn

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Spawner chooses an empty cell and a value for each new tile.
// A Spawner built from the same seed produces the same sequence on the same boards.
type Spawner struct {
	rng   *rand.Rand
	curve *config.SpawnCurve
}

// New creates a spawner seeded with seed whose four probability follows cfg.
func New(seed int64, cfg config.SpawnConfig) *Spawner {
	return &Spawner{
		rng:   rand.New(rand.NewSource(seed)),
		curve: config.NewSpawnCurve(cfg),
	}
}

// FourProbability returns the chance of spawning a 4 at the given score.
func (s *Spawner) FourProbability(score int) float64 {
	return s.curve.FourProbability(score)
}

// Next picks a tile for a uniformly random empty cell of g.
// It returns false when the grid is full.
func (s *Spawner) Next(g t2048.Grid, score int) (t2048.Tile, bool) {
	var empty []t2048.Coord
	size := g.Size()
	for row := range size {
		for col := range size {
			if _, ok := g.Tile(col, row); !ok {
				empty = append(empty, t2048.Coord{Col: col, Row: row})
			}
		}
	}
	if len(empty) == 0 {
		return t2048.Tile{}, false
	}

	cell := empty[s.rng.Intn(len(empty))]
	value := 2
	if s.rng.Float64() < s.curve.FourProbability(score) {
		value = 4
	}
	return t2048.NewTile(value, cell.Col, cell.Row), true
}

// Fill adds up to n tiles to m and returns how many were placed.
func (s *Spawner) Fill(m *t2048.Model, n int) int {
	placed := 0
	for range n {
		t, ok := s.Next(m, m.Score())
		if !ok {
			break
		}
		if err := m.AddTile(t); err != nil {
			break
		}
		placed++
	}
	return placed
}
