package spawn

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func fixedSpawn(four float64) config.SpawnConfig {
	return config.SpawnConfig{
		FourProbability: four,
		Progression:     config.ProgressionConfig{Type: "none"},
	}
}

func TestNextPicksEmptyCell(t *testing.T) {
	m, err := t2048.NewModelFromValues([][]int{
		{2, 4, 8},
		{16, 0, 32},
		{64, 128, 256},
	}, 0, 0, false)
	if err != nil {
		t.Fatalf("NewModelFromValues failed: %v", err)
	}

	s := New(1, fixedSpawn(0))
	tile, ok := s.Next(m, 0)
	if !ok {
		t.Fatal("Next should find the single empty cell")
	}
	if tile.Col != 1 || tile.Row != 1 || tile.Value != 2 {
		t.Errorf("tile = %v, want 2@(1,1)", tile)
	}
}

func TestNextOnFullBoard(t *testing.T) {
	m, err := t2048.NewModelFromValues([][]int{{2, 4}, {4, 2}}, 0, 0, false)
	if err != nil {
		t.Fatalf("NewModelFromValues failed: %v", err)
	}
	if _, ok := New(1, fixedSpawn(0.5)).Next(m, 0); ok {
		t.Error("Next should fail on a full board")
	}
}

func TestNextValues(t *testing.T) {
	tests := []struct {
		name string
		four float64
		want int
	}{
		{"always two", 0, 2},
		{"always four", 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(3, fixedSpawn(tt.four))
			for range 50 {
				tile, ok := s.Next(t2048.NewModel(4), 0)
				if !ok {
					t.Fatal("Next failed on an empty board")
				}
				if tile.Value != tt.want {
					t.Fatalf("value = %d, want %d", tile.Value, tt.want)
				}
			}
		})
	}
}

func TestSameSeedSameGame(t *testing.T) {
	play := func() [][]int {
		m := t2048.NewModel(4)
		s := New(2048, config.Default().Spawn)
		s.Fill(m, 2)
		for _, side := range []t2048.Side{t2048.North, t2048.West, t2048.South, t2048.East, t2048.North} {
			if m.Tilt(side) {
				s.Fill(m, 1)
			}
		}
		return m.Values()
	}

	if a, b := play(), play(); !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different boards:\n%v\n%v", a, b)
	}
}

func TestFill(t *testing.T) {
	m := t2048.NewModel(2)
	s := New(5, fixedSpawn(0.1))

	if got := s.Fill(m, 3); got != 3 {
		t.Errorf("Fill(3) placed %d tiles", got)
	}
	if got := len(m.EmptyCells()); got != 1 {
		t.Errorf("empty cells = %d, want 1", got)
	}
	// Only one cell is left.
	if got := s.Fill(m, 5); got != 1 {
		t.Errorf("Fill(5) on a nearly full board placed %d tiles", got)
	}
	if !m.Changed() {
		t.Error("Fill should raise the change flag")
	}
}

func TestFourProbabilityFollowsScore(t *testing.T) {
	s := New(1, config.SpawnConfig{
		FourProbability: 0.1,
		Progression:     config.ProgressionConfig{Type: "score", MaxAt: 100, FourMax: 0.5},
	})
	if low, high := s.FourProbability(0), s.FourProbability(100); low >= high {
		t.Errorf("four probability should grow with score: %v -> %v", low, high)
	}
}
