package t2048

import (
	"fmt"
)

// ChangeKind identifies the operation that changed a model.
type ChangeKind int

const (
	ChangeAddTile ChangeKind = iota
	ChangeTilt
	ChangeClear
)

// String returns the name of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeAddTile:
		return "add_tile"
	case ChangeTilt:
		return "tilt"
	case ChangeClear:
		return "clear"
	default:
		return "unknown"
	}
}

// ChangeEvent is delivered to a change handler after an operation changed the model.
type ChangeEvent struct {
	Kind     ChangeKind
	Score    int
	GameOver bool
}

// Option configures a Model.
type Option func(*options)

type options struct {
	maxPiece        int
	countStationary bool
	onChange        func(ChangeEvent)
	maxScore        int
}

func defaultOptions() options {
	return options{maxPiece: MaxPiece}
}

// WithMaxPiece sets the tile value that ends the game. Zero disables the
// winning tile so only a stuck board ends the game (endless mode).
func WithMaxPiece(v int) Option {
	return func(o *options) { o.maxPiece = v }
}

// WithStationarySlides makes a tile that is examined by a tilt but does not
// move count as a change, like the classic reference implementation.
func WithStationarySlides(enabled bool) Option {
	return func(o *options) { o.countStationary = enabled }
}

// WithChangeHandler registers fn to be called synchronously at the end of
// every operation that changed the model.
func WithChangeHandler(fn func(ChangeEvent)) Option {
	return func(o *options) { o.onChange = fn }
}

// WithMaxScore seeds the high-water mark, e.g. with a best score loaded from storage.
// Only applies to NewModel; NewModelFromValues takes an explicit max score.
func WithMaxScore(score int) Option {
	return func(o *options) { o.maxScore = score }
}

// Model is the state of one 2048 game: the board, the score, the best score
// and whether the game is over. It is not safe for concurrent use.
type Model struct {
	board    *Board
	score    int
	maxScore int
	gameOver bool
	pending  bool
	opts     options
}

// NewModel creates an empty game on a size x size board with score 0.
func NewModel(size int, opts ...Option) *Model {
	m := &Model{
		board: NewBoard(size),
		opts:  defaultOptions(),
	}
	for _, opt := range opts {
		opt(&m.opts)
	}
	m.maxScore = m.opts.maxScore
	return m
}

// NewModelFromValues creates a game from raw tile values indexed [row][col],
// with (0, 0) the bottom-left cell and 0 meaning empty. The game-over flag is
// taken as given, so fixtures can describe any state.
func NewModelFromValues(values [][]int, score, maxScore int, gameOver bool, opts ...Option) (*Model, error) {
	size := len(values)
	if size == 0 {
		return nil, ErrInvalidGrid
	}
	for row, line := range values {
		if len(line) != size {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", row, len(line), size, ErrInvalidGrid)
		}
	}

	m := NewModel(size, opts...)
	for row, line := range values {
		for col, v := range line {
			if v == 0 {
				continue
			}
			if err := m.board.Add(NewTile(v, col, row)); err != nil {
				return nil, err
			}
		}
	}
	m.score = score
	m.maxScore = maxScore
	m.gameOver = gameOver
	return m, nil
}

// Tile returns the tile at (col, row), where (0, 0) is the bottom-left cell.
// Panics if the coordinate is off the board.
func (m *Model) Tile(col, row int) (Tile, bool) {
	return m.board.Tile(col, row)
}

// Size returns the side length of the board.
func (m *Model) Size() int {
	return m.board.Size()
}

// Score returns the current score.
func (m *Model) Score() int {
	return m.score
}

// MaxScore returns the best score seen so far. It is only raised when a
// call to GameOver observes the end of a game.
func (m *Model) MaxScore() int {
	return m.maxScore
}

// MaxPiece returns the winning tile value, or 0 in endless mode.
func (m *Model) MaxPiece() int {
	return m.opts.maxPiece
}

// GameOver re-evaluates the board and reports whether the game has ended.
// When it has, the best score is raised to the current score if needed.
func (m *Model) GameOver() bool {
	m.checkGameOver()
	if m.gameOver {
		m.maxScore = max(m.score, m.maxScore)
	}
	return m.gameOver
}

// Clear empties the board and resets the score. The best score is kept.
func (m *Model) Clear() {
	m.board.Clear()
	m.score = 0
	m.gameOver = false
	m.notify(ChangeClear)
}

// AddTile places t on the board. The target cell must be empty; on error
// the model is left untouched.
func (m *Model) AddTile(t Tile) error {
	if err := m.board.Add(t); err != nil {
		return err
	}
	m.checkGameOver()
	m.notify(ChangeAddTile)
	return nil
}

// Tilt slides all tiles toward side and reports whether the board changed.
func (m *Model) Tilt(side Side) bool {
	return m.TiltDetailed(side).Changed
}

// TiltDetailed is Tilt, returning every move and the score gained.
func (m *Model) TiltDetailed(side Side) TiltResult {
	res := Tilt(m.board, side, m.opts.countStationary)
	m.score += res.Score
	m.checkGameOver()
	if res.Changed {
		m.notify(ChangeTilt)
	}
	return res
}

// Changed reports whether the model changed since the last call, and resets the flag.
func (m *Model) Changed() bool {
	changed := m.pending
	m.pending = false
	return changed
}

// Values returns the tile values indexed [row][col], row 0 at the bottom.
func (m *Model) Values() [][]int {
	return m.board.Values()
}

// EmptyCells returns the coordinates of all unoccupied cells.
func (m *Model) EmptyCells() []Coord {
	return m.board.EmptyCells()
}

func (m *Model) checkGameOver() {
	m.gameOver = IsGameOver(m.board, m.opts.maxPiece)
}

func (m *Model) notify(kind ChangeKind) {
	m.pending = true
	if m.opts.onChange != nil {
		m.opts.onChange(ChangeEvent{Kind: kind, Score: m.score, GameOver: m.gameOver})
	}
}
