package t2048

import (
	"errors"
	"fmt"
)

// MaxPiece is the tile value that ends a classic game.
const MaxPiece = 2048

// Errors returned when a caller hands the game an invalid placement or grid.
var (
	ErrCellOccupied = errors.New("t2048: cell already occupied")
	ErrOutOfBounds  = errors.New("t2048: coordinate out of bounds")
	ErrInvalidValue = errors.New("t2048: tile value must be a power of two >= 2")
	ErrInvalidGrid  = errors.New("t2048: grid must be square and non-empty")
)

// Tile is an immutable tile: a value and its absolute position.
// Col grows to the east, Row grows to the north; (0, 0) is the bottom-left cell.
type Tile struct {
	Value int
	Col   int
	Row   int
}

// NewTile returns a tile with the given value at (col, row).
func NewTile(value, col, row int) Tile {
	return Tile{Value: value, Col: col, Row: row}
}

// IsValidValue reports whether v is a power of two no smaller than 2.
func IsValidValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// at returns a copy of t relocated to (col, row).
func (t Tile) at(col, row int) Tile {
	return Tile{Value: t.Value, Col: col, Row: row}
}

// doubled returns the tile produced by merging t with an equal tile.
func (t Tile) doubled() Tile {
	return Tile{Value: t.Value * 2, Col: t.Col, Row: t.Row}
}

// String returns a compact representation such as "4@(1,2)".
func (t Tile) String() string {
	return fmt.Sprintf("%d@(%d,%d)", t.Value, t.Col, t.Row)
}

// Coord is an absolute board position.
type Coord struct {
	Col int
	Row int
}
