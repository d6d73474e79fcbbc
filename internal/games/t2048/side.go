package t2048

import (
	"fmt"
	"strings"
)

// Side is one of the four directions a board can be tilted toward.
type Side int

const (
	North Side = iota
	East
	South
	West
)

// Sides returns all four sides in clockwise order starting at North.
func Sides() []Side {
	return []Side{North, East, South, West}
}

// String returns the lowercase name of the side.
func (s Side) String() string {
	switch s {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// ParseSide converts a side name to a Side.
// Accepts compass names, their initials and screen directions (up, down, left, right).
func ParseSide(name string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "north", "n", "up":
		return North, nil
	case "east", "e", "right":
		return East, nil
	case "south", "s", "down":
		return South, nil
	case "west", "w", "left":
		return West, nil
	}
	return North, fmt.Errorf("t2048: unknown side %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(text []byte) error {
	side, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = side
	return nil
}

// Perspective maps logical coordinates, in which the tilt always moves
// tiles toward increasing row, to absolute board coordinates.
type Perspective struct {
	side Side
	size int
}

// Perspective returns the coordinate mapping that makes s look like North
// on a board with the given side length.
func (s Side) Perspective(size int) Perspective {
	return Perspective{side: s, size: size}
}

// Side returns the side this perspective looks toward.
func (p Perspective) Side() Side {
	return p.side
}

// Absolute converts a logical (col, row) into absolute board coordinates.
func (p Perspective) Absolute(col, row int) (int, int) {
	last := p.size - 1
	switch p.side {
	case South:
		return col, last - row
	case East:
		return row, col
	case West:
		return last - row, col
	default:
		return col, row
	}
}

// Logical is the inverse of Absolute.
func (p Perspective) Logical(col, row int) (int, int) {
	last := p.size - 1
	switch p.side {
	case South:
		return col, last - row
	case East:
		return row, col
	case West:
		return row, last - col
	default:
		return col, row
	}
}
