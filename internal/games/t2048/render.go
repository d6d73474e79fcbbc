package t2048

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// String renders the model canonically: rows from top to bottom, each cell a
// blank or a right-aligned value in four columns between bars, followed by
// the score line. It reads the cached game-over flag and has no side effects.
func (m *Model) String() string {
	var sb strings.Builder
	size := m.Size()

	sb.WriteString("\n[\n")
	for row := size - 1; row >= 0; row-- {
		for col := range size {
			if t, ok := m.Tile(col, row); ok {
				fmt.Fprintf(&sb, "|%4d", t.Value)
			} else {
				sb.WriteString("|    ")
			}
		}
		sb.WriteString("|\n")
	}

	over := "not over"
	if m.gameOver {
		over = "over"
	}
	fmt.Fprintf(&sb, "] %d (max: %d) (game is %s) \n", m.score, m.maxScore, over)
	return sb.String()
}

// Equal reports whether two models render identically: same board, score,
// best score and game-over flag.
func (m *Model) Equal(other *Model) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.String() == other.String()
}

// Hash returns the FNV-1a hash of the canonical rendering, so equal models hash equally.
func (m *Model) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(m.String()))
	return h.Sum64()
}
