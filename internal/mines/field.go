package mines

import (
	"fmt"
	"iter"
	"math"
)

// MaxCells bounds the grid size Resize will allocate.
const MaxCells = 1 << 24

// Field owns a width x height grid of cells. All coordinates passed to its
// mutating methods must be inside the grid; the input layer clamps the cursor
// before calling in.
type Field struct {
	width, height int
	mineCount     int
	cells         Grid
}

// offsets of the 8 neighbours, row by row from the top left.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func NewField() *Field {
	return &Field{}
}

// Resize discards all cells and allocates a fresh grid. The mine count is
// re-clamped to the new cell count.
func (f *Field) Resize(width, height int) error {
	if width <= 0 || height <= 0 || width > math.MaxInt/height {
		return AllocationError{Width: width, Height: height}
	}
	if width*height > MaxCells {
		return AllocationError{
			Width: width, Height: height,
			Err: fmt.Errorf("more than %d cells", MaxCells),
		}
	}

	f.width, f.height = width, height
	f.cells = make(Grid, width*height)
	f.SetMineCount(f.mineCount)

	return nil
}

// Clear makes every cell a closed non-mine. Neighbour counts are left as they
// are; [Field.Generate] recomputes them.
func (f *Field) Clear() {
	for i := range f.cells {
		f.cells[i].IsMine = false
		f.cells[i].State = Closed
	}
}

func (f *Field) Width() int     { return f.width }
func (f *Field) Height() int    { return f.height }
func (f *Field) Size() int      { return len(f.cells) }
func (f *Field) MineCount() int { return f.mineCount }

// SetMineCount clamps n to [0, width*height].
func (f *Field) SetMineCount(n int) {
	f.mineCount = max(0, min(n, len(f.cells)))
}

func (f *Field) InBounds(x, y int) bool {
	return 0 <= x && 0 <= y && x < f.width && y < f.height
}

// Cell returns a copy of the cell at x, y. ok is false outside the grid.
func (f *Field) Cell(x, y int) (cell Cell, ok bool) {
	if !f.InBounds(x, y) {
		return Cell{}, false
	}
	return f.cells[x+y*f.width], true
}

// panics [AssertionError]
func (f *Field) index(x, y int) int {
	if !f.InBounds(x, y) {
		panic(AssertionError{fmt.Sprintf(
			"cell %d:%d is outside the %dx%d field", x, y, f.width, f.height,
		)})
	}
	return x + y*f.width
}

// panics [AssertionError]
func (f *Field) at(x, y int) *Cell {
	return &f.cells[f.index(x, y)]
}

// neighbors yields the in-bounds neighbours of x, y in row order.
func (f *Field) neighbors(x, y int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for _, d := range neighborOffsets {
			xx, yy := x+d[0], y+d[1]
			if !f.InBounds(xx, yy) {
				continue
			}
			if !yield(xx, yy) {
				return
			}
		}
	}
}

func (f *Field) mineNeighborCount(x, y int) (count int) {
	for xx, yy := range f.neighbors(x, y) {
		if f.cells[xx+yy*f.width].IsMine {
			count++
		}
	}
	return
}

func (f *Field) flaggedNeighborCount(x, y int) (count int) {
	for xx, yy := range f.neighbors(x, y) {
		if f.cells[xx+yy*f.width].State == Flagged {
			count++
		}
	}
	return
}

func (f *Field) calculateNeighbors() {
	for y := range f.height {
		for x := range f.width {
			f.cells[x+y*f.width].Neighbors = f.mineNeighborCount(x, y)
		}
	}
}

// ToggleFlag flips a closed cell to flagged and back. It returns the change
// the caller should apply to its flag counter; open cells are left alone.
//
// panics [AssertionError]
func (f *Field) ToggleFlag(x, y int) int {
	cell := f.at(x, y)
	switch cell.State {
	case Closed:
		cell.State = Flagged
		return +1
	case Flagged:
		cell.State = Closed
		return -1
	default:
		return 0
	}
}

func (f *Field) CountCells(state CellState) (count int) {
	for _, cell := range f.cells {
		if cell.State == state {
			count++
		}
	}
	return
}

// RevealAllMines opens every mine and unflags every non-mine.
func (f *Field) RevealAllMines() {
	for i := range f.cells {
		if f.cells[i].IsMine {
			f.cells[i].State = Open
		} else if f.cells[i].State == Flagged {
			f.cells[i].State = Closed
		}
	}
}

// Field implements [fmt.Stringer]
func (f *Field) String() string {
	if f.width == 0 {
		return ""
	}
	return f.cells.ToString(f.width)
}
