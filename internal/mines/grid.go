package mines

import (
	"strconv"
	"strings"
)

type CellState int8

const (
	Closed CellState = iota
	Open
	Flagged
)

func (s CellState) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case Flagged:
		return "flagged"
	default:
		return "CellState(" + strconv.Itoa(int(s)) + ")"
	}
}

type Cell struct {
	IsMine    bool
	Neighbors int
	State     CellState
}

// Glyph is the character a player sees for the cell:
//
//   - '.' closed
//   - 'F' flagged
//   - '*' an open mine
//   - ' ' open with no neighbouring mines
//   - '1'..'8' open with that many neighbouring mines
func (c Cell) Glyph() rune {
	switch c.State {
	case Flagged:
		return 'F'
	case Open:
		if c.IsMine {
			return '*'
		}
		if c.Neighbors == 0 {
			return ' '
		}
		return rune('0' + c.Neighbors)
	default:
		return '.'
	}
}

// Grid is the row-major cell storage of a [Field], indexed by x + y*width.
type Grid []Cell

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			b.WriteRune(g[y*width+x].Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
