package t2048

// MaxTileExists reports whether any tile has reached maxPiece.
// A maxPiece of zero or less never matches, which is how endless games run.
func MaxTileExists(g Grid, maxPiece int) bool {
	if maxPiece <= 0 {
		return false
	}
	size := g.Size()
	for row := range size {
		for col := range size {
			if t, ok := g.Tile(col, row); ok && t.Value == maxPiece {
				return true
			}
		}
	}
	return false
}

// EmptySpaceExists reports whether at least one cell is unoccupied.
func EmptySpaceExists(g Grid) bool {
	size := g.Size()
	for row := range size {
		for col := range size {
			if _, ok := g.Tile(col, row); !ok {
				return true
			}
		}
	}
	return false
}

// neighbours are the four orthogonal offsets (col, row).
var neighbours = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// AtLeastOneMoveExists reports whether some tilt could change the board:
// there is an empty cell, or two orthogonally adjacent tiles share a value.
func AtLeastOneMoveExists(g Grid) bool {
	if EmptySpaceExists(g) {
		return true
	}
	size := g.Size()
	for row := range size {
		for col := range size {
			t, _ := g.Tile(col, row)
			for _, d := range neighbours {
				nc, nr := col+d[0], row+d[1]
				if nc < 0 || nc >= size || nr < 0 || nr >= size {
					continue
				}
				if n, _ := g.Tile(nc, nr); n.Value == t.Value {
					return true
				}
			}
		}
	}
	return false
}

// IsGameOver reports whether the game has ended, either by reaching
// maxPiece or by running out of moves.
func IsGameOver(g Grid, maxPiece int) bool {
	return MaxTileExists(g, maxPiece) || !AtLeastOneMoveExists(g)
}

// HighestTile returns the largest tile value on the board, or 0 if it is empty.
func HighestTile(g Grid) int {
	best := 0
	size := g.Size()
	for row := range size {
		for col := range size {
			if t, ok := g.Tile(col, row); ok && t.Value > best {
				best = t.Value
			}
		}
	}
	return best
}
