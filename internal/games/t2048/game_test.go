package t2048

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func mustModel(t *testing.T, values [][]int, score, maxScore int, gameOver bool, opts ...Option) *Model {
	t.Helper()
	m, err := NewModelFromValues(values, score, maxScore, gameOver, opts...)
	if err != nil {
		t.Fatalf("NewModelFromValues: %v", err)
	}
	return m
}

func TestNewModelIsEmpty(t *testing.T) {
	m := NewModel(4)

	if m.Size() != 4 {
		t.Errorf("Size() = %d, want 4", m.Size())
	}
	if m.Score() != 0 || m.MaxScore() != 0 {
		t.Errorf("score/max = %d/%d, want 0/0", m.Score(), m.MaxScore())
	}
	if len(m.EmptyCells()) != 16 {
		t.Errorf("EmptyCells() = %d, want 16", len(m.EmptyCells()))
	}
	if m.GameOver() {
		t.Error("empty board should not be game over")
	}
}

func TestNewModelFromValuesOrientation(t *testing.T) {
	values := [][]int{
		{2, 0, 0}, // bottom row
		{0, 4, 0},
		{0, 0, 8}, // top row
	}
	m := mustModel(t, values, 0, 0, false)

	tests := []struct {
		col, row, value int
	}{
		{0, 0, 2},
		{1, 1, 4},
		{2, 2, 8},
	}
	for _, tt := range tests {
		tile, ok := m.Tile(tt.col, tt.row)
		if !ok || tile.Value != tt.value || tile.Col != tt.col || tile.Row != tt.row {
			t.Errorf("Tile(%d,%d) = %v (ok=%v), want value %d", tt.col, tt.row, tile, ok, tt.value)
		}
	}
	if _, ok := m.Tile(2, 0); ok {
		t.Error("Tile(2,0) should be empty")
	}
}

func TestNewModelFromValuesRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		values [][]int
		want   error
	}{
		{"empty", nil, ErrInvalidGrid},
		{"ragged", [][]int{{2, 0}, {0}}, ErrInvalidGrid},
		{"not square", [][]int{{2, 0, 0}, {0, 0, 0}}, ErrInvalidGrid},
		{"odd value", [][]int{{3, 0}, {0, 0}}, ErrInvalidValue},
		{"one", [][]int{{1, 0}, {0, 0}}, ErrInvalidValue},
		{"negative", [][]int{{-2, 0}, {0, 0}}, ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewModelFromValues(tt.values, 0, 0, false)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTileOutOfBoundsPanics(t *testing.T) {
	m := NewModel(4)
	coords := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}}

	for _, c := range coords {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Tile(%d,%d) did not panic", c[0], c[1])
				}
			}()
			m.Tile(c[0], c[1])
		}()
	}
}

func TestModelTiltUpdatesScore(t *testing.T) {
	m := mustModel(t, topDown(
		[]int{0, 0, 0, 0},
		[]int{2, 0, 0, 0},
		[]int{2, 0, 0, 0},
		[]int{2, 0, 0, 0},
	), 10, 0, false)

	if !m.Tilt(North) {
		t.Fatal("Tilt(North) should change the board")
	}
	if m.Score() != 14 {
		t.Errorf("Score() = %d, want 14", m.Score())
	}

	want := topDown(
		[]int{4, 0, 0, 0},
		[]int{2, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	)
	if !reflect.DeepEqual(m.Values(), want) {
		t.Errorf("Values() = %v, want %v", m.Values(), want)
	}
}

func TestModelTiltReportsStationarySlides(t *testing.T) {
	values := topDown(
		[]int{4, 0},
		[]int{2, 0},
	)

	strict := mustModel(t, values, 0, 0, false)
	if strict.Tilt(North) {
		t.Error("default model should ignore tiles that stay put")
	}

	legacy := mustModel(t, values, 0, 0, false, WithStationarySlides(true))
	if !legacy.Tilt(North) {
		t.Error("WithStationarySlides(true) should count the blocked tile as a change")
	}
}

func TestAddTileOccupiedLeavesStateAlone(t *testing.T) {
	m := mustModel(t, topDown(
		[]int{0, 0},
		[]int{2, 0},
	), 8, 16, false)
	m.Changed()
	before := m.String()

	err := m.AddTile(NewTile(4, 0, 0))
	if !errors.Is(err, ErrCellOccupied) {
		t.Fatalf("AddTile on occupied cell: error = %v, want ErrCellOccupied", err)
	}
	if m.String() != before {
		t.Errorf("state changed:\n%s\nwant\n%s", m.String(), before)
	}
	if m.Changed() {
		t.Error("failed AddTile should not raise the change flag")
	}
}

func TestAddTileRejectsInvalidPlacement(t *testing.T) {
	m := NewModel(3)

	tests := []struct {
		name string
		tile Tile
		want error
	}{
		{"column too large", NewTile(2, 3, 0), ErrOutOfBounds},
		{"negative row", NewTile(2, 0, -1), ErrOutOfBounds},
		{"zero value", NewTile(0, 1, 1), ErrInvalidValue},
		{"not a power of two", NewTile(6, 1, 1), ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := m.AddTile(tt.tile); !errors.Is(err, tt.want) {
				t.Errorf("AddTile(%v) error = %v, want %v", tt.tile, err, tt.want)
			}
		})
	}
	if len(m.EmptyCells()) != 9 {
		t.Errorf("board should still be empty, %d cells free", len(m.EmptyCells()))
	}
}

func TestAddTileReevaluatesGameOver(t *testing.T) {
	// One free cell; filling it with a value that has no equal neighbour ends the game.
	m := mustModel(t, topDown(
		[]int{2, 4},
		[]int{4, 0},
	), 0, 0, false)

	if err := m.AddTile(NewTile(8, 1, 0)); err != nil {
		t.Fatalf("AddTile: %v", err)
	}
	if !strings.Contains(m.String(), "game is over") {
		t.Errorf("cached game-over flag not refreshed:\n%s", m)
	}
}

func TestGameOverMaxTile(t *testing.T) {
	m := mustModel(t, topDown(
		[]int{0, 0, 0, 0},
		[]int{0, 2048, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{2, 0, 0, 0},
	), 0, 0, false)

	if !m.GameOver() {
		t.Error("a 2048 tile should end the game")
	}

	endless := mustModel(t, m.Values(), 0, 0, false, WithMaxPiece(0))
	if endless.GameOver() {
		t.Error("endless mode should ignore the winning tile")
	}
}

func TestGameOverStuckBoard(t *testing.T) {
	stuck := topDown(
		[]int{2, 4, 2, 4},
		[]int{4, 2, 4, 2},
		[]int{2, 4, 2, 4},
		[]int{4, 2, 4, 2},
	)
	m := mustModel(t, stuck, 0, 0, false)
	if !m.GameOver() {
		t.Error("full board without equal neighbours should be game over")
	}

	// The same board with one vertically adjacent pair can still move.
	pair := topDown(
		[]int{2, 4, 2, 4},
		[]int{4, 2, 4, 2},
		[]int{2, 4, 2, 4},
		[]int{2, 8, 4, 2},
	)
	m = mustModel(t, pair, 0, 0, false)
	if m.GameOver() {
		t.Error("board with an equal vertical pair should not be game over")
	}

	// And one horizontally adjacent pair in the top row.
	pair = topDown(
		[]int{2, 2, 8, 4},
		[]int{4, 8, 4, 2},
		[]int{2, 4, 2, 4},
		[]int{4, 2, 4, 2},
	)
	m = mustModel(t, pair, 0, 0, false)
	if m.GameOver() {
		t.Error("board with an equal horizontal pair should not be game over")
	}
}

func TestGameOverRaisesMaxScoreLazily(t *testing.T) {
	stuck := topDown(
		[]int{2, 4},
		[]int{4, 2},
	)
	m := mustModel(t, stuck, 100, 50, false)

	if m.MaxScore() != 50 {
		t.Errorf("MaxScore() before query = %d, want 50", m.MaxScore())
	}
	if !m.GameOver() {
		t.Fatal("stuck board should be game over")
	}
	if m.MaxScore() != 100 {
		t.Errorf("MaxScore() after GameOver = %d, want 100", m.MaxScore())
	}

	high := mustModel(t, stuck, 100, 500, false)
	high.GameOver()
	if high.MaxScore() != 500 {
		t.Errorf("MaxScore() = %d, want 500 to be kept", high.MaxScore())
	}
}

func TestClearKeepsMaxScore(t *testing.T) {
	m := mustModel(t, topDown(
		[]int{2, 4},
		[]int{4, 2},
	), 40, 10, true)
	m.GameOver()
	m.Changed()

	m.Clear()

	if m.Score() != 0 {
		t.Errorf("Score() = %d, want 0", m.Score())
	}
	if m.MaxScore() != 40 {
		t.Errorf("MaxScore() = %d, want 40", m.MaxScore())
	}
	if len(m.EmptyCells()) != 4 {
		t.Errorf("board not cleared: %v", m.Values())
	}
	if !m.Changed() {
		t.Error("Clear should raise the change flag")
	}
	if strings.Contains(m.String(), "game is over") {
		t.Error("Clear should reset the game-over flag")
	}
}

func TestChangedPollsAndClears(t *testing.T) {
	m := NewModel(4)
	if m.Changed() {
		t.Error("new model should not report a change")
	}

	if err := m.AddTile(NewTile(2, 0, 3)); err != nil {
		t.Fatalf("AddTile: %v", err)
	}
	if !m.Changed() {
		t.Error("AddTile should raise the change flag")
	}
	if m.Changed() {
		t.Error("Changed should reset the flag")
	}

	if m.Tilt(North) {
		t.Error("tile in the top row cannot move north")
	}
	if m.Changed() {
		t.Error("unchanged tilt should not raise the flag")
	}

	if !m.Tilt(South) {
		t.Error("tile should slide south")
	}
	if !m.Changed() {
		t.Error("changing tilt should raise the flag")
	}
}

func TestChangeHandler(t *testing.T) {
	var events []ChangeEvent
	m := NewModel(2, WithChangeHandler(func(e ChangeEvent) {
		events = append(events, e)
	}))

	if err := m.AddTile(NewTile(2, 0, 0)); err != nil {
		t.Fatalf("AddTile: %v", err)
	}
	if err := m.AddTile(NewTile(2, 0, 1)); err != nil {
		t.Fatalf("AddTile: %v", err)
	}
	m.Tilt(North)
	m.Tilt(North)
	m.Clear()

	want := []ChangeEvent{
		{Kind: ChangeAddTile, Score: 0},
		{Kind: ChangeAddTile, Score: 0},
		{Kind: ChangeTilt, Score: 4},
		{Kind: ChangeClear, Score: 0},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %+v, want %+v", events, want)
	}
}

func TestStringFormat(t *testing.T) {
	m := mustModel(t, topDown(
		[]int{0, 2},
		[]int{1024, 0},
	), 12, 30, false)

	want := "\n[\n" +
		"|    |   2|\n" +
		"|1024|    |\n" +
		"] 12 (max: 30) (game is not over) \n"
	if got := m.String(); got != want {
		t.Errorf("String() =\n%q\nwant\n%q", got, want)
	}
}

func TestEqualityAndHash(t *testing.T) {
	values := topDown(
		[]int{2, 0, 0},
		[]int{0, 4, 0},
		[]int{0, 0, 8},
	)
	a := mustModel(t, values, 12, 40, false)
	b := mustModel(t, values, 12, 40, false)

	if !a.Equal(b) {
		t.Fatal("models built from the same input should be equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal models should hash equally")
	}

	changedGrid := topDown(
		[]int{2, 0, 0},
		[]int{0, 4, 0},
		[]int{0, 0, 16},
	)
	variants := map[string]*Model{
		"grid":      mustModel(t, changedGrid, 12, 40, false),
		"score":     mustModel(t, values, 14, 40, false),
		"max score": mustModel(t, values, 12, 44, false),
		"game over": mustModel(t, values, 12, 40, true),
	}
	for name, other := range variants {
		if a.Equal(other) {
			t.Errorf("models differing in %s compared equal", name)
		}
	}
}

func TestSnapshotRestores(t *testing.T) {
	m := mustModel(t, topDown(
		[]int{0, 2, 0},
		[]int{4, 0, 0},
		[]int{0, 0, 2},
	), 20, 64, false)

	restored, err := FromSnapshot(m.Snapshot())
	if err != nil {
		t.Fatalf("FromSnapshot: %v", err)
	}
	if !restored.Equal(m) {
		t.Errorf("restored model differs:\n%s\nwant\n%s", restored, m)
	}

	bad := m.Snapshot()
	bad.Size = 5
	if _, err := FromSnapshot(bad); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("mismatched size: error = %v, want ErrInvalidGrid", err)
	}
}

func TestWithMaxScoreSeedsNewModel(t *testing.T) {
	m := NewModel(4, WithMaxScore(512))
	if m.MaxScore() != 512 {
		t.Errorf("MaxScore() = %d, want 512", m.MaxScore())
	}
}
