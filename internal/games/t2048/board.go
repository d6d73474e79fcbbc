package t2048

import "fmt"

// Grid is read-only access to a square board in absolute coordinates.
type Grid interface {
	Size() int
	Tile(col, row int) (Tile, bool)
}

// Board stores tiles by absolute coordinates in row-major order.
// A zero Tile marks an empty cell.
type Board struct {
	size  int
	cells []Tile
}

// NewBoard creates an empty board with the given side length.
func NewBoard(size int) *Board {
	if size < 1 {
		panic(fmt.Sprintf("t2048: invalid board size %d", size))
	}
	return &Board{
		size:  size,
		cells: make([]Tile, size*size),
	}
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether (col, row) lies on the board.
func (b *Board) InBounds(col, row int) bool {
	return col >= 0 && col < b.size && row >= 0 && row < b.size
}

func (b *Board) index(col, row int) int {
	if !b.InBounds(col, row) {
		panic(fmt.Sprintf("t2048: cell (%d,%d) out of bounds for size %d", col, row, b.size))
	}
	return row*b.size + col
}

// Tile returns the tile at (col, row), if any.
// Panics if the coordinate is off the board.
func (b *Board) Tile(col, row int) (Tile, bool) {
	t := b.cells[b.index(col, row)]
	return t, t.Value != 0
}

// Add places t at its own coordinates.
func (b *Board) Add(t Tile) error {
	if !b.InBounds(t.Col, t.Row) {
		return fmt.Errorf("add %v to %dx%d board: %w", t, b.size, b.size, ErrOutOfBounds)
	}
	if !IsValidValue(t.Value) {
		return fmt.Errorf("add %v: %w", t, ErrInvalidValue)
	}
	i := b.index(t.Col, t.Row)
	if b.cells[i].Value != 0 {
		return fmt.Errorf("add %v over %v: %w", t, b.cells[i], ErrCellOccupied)
	}
	b.cells[i] = t
	return nil
}

// Clear removes every tile.
func (b *Board) Clear() {
	clear(b.cells)
}

// EmptyCells returns the coordinates of all unoccupied cells, bottom row first.
func (b *Board) EmptyCells() []Coord {
	var cells []Coord
	for row := range b.size {
		for col := range b.size {
			if b.cells[row*b.size+col].Value == 0 {
				cells = append(cells, Coord{Col: col, Row: row})
			}
		}
	}
	return cells
}

// Values returns the tile values indexed [row][col], row 0 at the bottom, 0 for empty.
func (b *Board) Values() [][]int {
	values := make([][]int, b.size)
	for row := range b.size {
		values[row] = make([]int, b.size)
		for col := range b.size {
			values[row][col] = b.cells[row*b.size+col].Value
		}
	}
	return values
}

// View returns an accessor that addresses b through the perspective of side.
// A view lives for the duration of a single tilt.
func (b *Board) View(side Side) View {
	return View{board: b, persp: side.Perspective(b.size)}
}

// View reads and moves tiles of a board in logical coordinates.
type View struct {
	board *Board
	persp Perspective
}

// Tile returns the tile at logical (col, row).
func (v View) Tile(col, row int) (Tile, bool) {
	return v.board.Tile(v.persp.Absolute(col, row))
}

// Move relocates t to logical (col, row). If that cell already holds a tile,
// the two merge into a new tile of double value at the destination and Move
// reports true. t is always removed from its previous cell.
func (v View) Move(col, row int, t Tile) bool {
	ac, ar := v.persp.Absolute(col, row)
	dst := v.board.index(ac, ar)
	src := v.board.index(t.Col, t.Row)
	if dst == src {
		return false
	}

	v.board.cells[src] = Tile{}
	if existing := v.board.cells[dst]; existing.Value != 0 {
		v.board.cells[dst] = existing.doubled()
		return true
	}
	v.board.cells[dst] = t.at(ac, ar)
	return false
}
