package t2048

// TileMove records a tile that changed position during a tilt.
// Merged moves end on a tile of equal value, which becomes one tile of double Value.
type TileMove struct {
	FromCol int
	FromRow int
	ToCol   int
	ToRow   int
	Value   int  // Value of the moving tile before any merge
	Merged  bool // Whether the tile merged at its destination
}

// TiltResult describes the outcome of tilting a board toward one side.
type TiltResult struct {
	Side    Side
	Changed bool
	Score   int // Sum of the values of all tiles created by merges
	Moves   []TileMove
}

// Merges returns the number of merges performed by the tilt.
func (r TiltResult) Merges() int {
	n := 0
	for _, m := range r.Moves {
		if m.Merged {
			n++
		}
	}
	return n
}

// Tilt slides every tile of b toward side, merging equal neighbours once each.
//
// When countStationary is set, a tile that is examined but ends where it
// started still marks its column as changed.
func Tilt(b *Board, side Side, countStationary bool) TiltResult {
	res := TiltResult{Side: side}
	v := b.View(side)
	for col := range b.size {
		if tiltColumn(v, col, countStationary, &res) {
			res.Changed = true
		}
	}
	return res
}

// tiltColumn resolves one logical column, moving tiles toward the top row.
func tiltColumn(v View, col int, countStationary bool, res *TiltResult) bool {
	size := v.board.size
	changed := false

	// Rows that already received a merge during this tilt.
	locked := make([]bool, size)

	for row := size - 2; row >= 0; row-- {
		cur, ok := v.Tile(col, row)
		if !ok {
			continue
		}

		// First occupied row above, or size if the way to the edge is clear.
		k := row + 1
		for k < size {
			if _, occupied := v.Tile(col, k); occupied {
				break
			}
			k++
		}

		if k < size && !locked[k] {
			if above, _ := v.Tile(col, k); above.Value == cur.Value {
				v.Move(col, k, cur)
				locked[k] = true
				merged, _ := v.Tile(col, k)
				res.Score += merged.Value
				res.Moves = append(res.Moves, TileMove{
					FromCol: cur.Col,
					FromRow: cur.Row,
					ToCol:   merged.Col,
					ToRow:   merged.Row,
					Value:   cur.Value,
					Merged:  true,
				})
				changed = true
				continue
			}
		}

		dest := k - 1
		if dest == row {
			if countStationary {
				changed = true
			}
			continue
		}
		v.Move(col, dest, cur)
		moved, _ := v.Tile(col, dest)
		res.Moves = append(res.Moves, TileMove{
			FromCol: cur.Col,
			FromRow: cur.Row,
			ToCol:   moved.Col,
			ToRow:   moved.Row,
			Value:   cur.Value,
		})
		changed = true
	}

	return changed
}
