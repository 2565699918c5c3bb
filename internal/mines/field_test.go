package mines

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Log.SetLevel(logrus.DebugLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	Log.SetOutput(io.Discard)
	m.Run()
}

// layoutField builds a field from rows of:
//
//	'.' closed empty   '*' closed mine
//	'f' flagged empty  'x' flagged mine
//	'o' open empty
func layoutField(t *testing.T, rows ...string) *Field {
	t.Helper()

	f := NewField()
	require.NoError(t, f.Resize(len(rows[0]), len(rows)))
	f.Clear()

	mines := 0
	for y, row := range rows {
		require.Len(t, row, f.Width())
		for x, c := range row {
			cell := f.at(x, y)
			switch c {
			case '*':
				cell.IsMine = true
			case 'f':
				cell.State = Flagged
			case 'x':
				cell.IsMine = true
				cell.State = Flagged
			case 'o':
				cell.State = Open
			}
			if cell.IsMine {
				mines++
			}
		}
	}
	f.SetMineCount(mines)
	f.calculateNeighbors()
	return f
}

func rows(f *Field) []string {
	var out []string
	for y := range f.Height() {
		row := make([]rune, f.Width())
		for x := range f.Width() {
			cell, _ := f.Cell(x, y)
			row[x] = cell.Glyph()
		}
		out = append(out, string(row))
	}
	return out
}

func TestResize(t *testing.T) {
	f := NewField()
	f.SetMineCount(10)
	require.NoError(t, f.Resize(4, 3))

	assert.Equal(t, 4, f.Width())
	assert.Equal(t, 3, f.Height())
	assert.Equal(t, 12, f.Size())
	assert.Equal(t, 0, f.MineCount(), "mine count is clamped against the empty grid first")

	f.SetMineCount(100)
	assert.Equal(t, 12, f.MineCount())

	f.at(1, 1).IsMine = true
	require.NoError(t, f.Resize(2, 2))
	for y := range 2 {
		for x := range 2 {
			cell, ok := f.Cell(x, y)
			require.True(t, ok)
			assert.Equal(t, Cell{}, cell)
		}
	}
	assert.Equal(t, 4, f.MineCount())
}

func TestResizeErrors(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative", -1, -1},
		{"overflow", math.MaxInt / 2, 3},
		{"too many cells", MaxCells, 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := NewField().Resize(test.width, test.height)
			var ae AllocationError
			require.True(t, errors.As(err, &ae), "got %v", err)
			assert.Equal(t, test.width, ae.Width)
			assert.Equal(t, test.height, ae.Height)
		})
	}
}

func TestResizeErrorKeepsGrid(t *testing.T) {
	f := NewField()
	require.NoError(t, f.Resize(4, 3))
	f.SetMineCount(5)

	var ae AllocationError
	require.True(t, errors.As(f.Resize(MaxCells, 2), &ae))
	assert.ErrorContains(t, ae, "more than")

	assert.Equal(t, 4, f.Width())
	assert.Equal(t, 3, f.Height())
	assert.Equal(t, 12, f.Size())
	assert.Equal(t, 5, f.MineCount())
}

func TestClear(t *testing.T) {
	f := layoutField(t,
		"*f",
		"ox",
	)
	f.Clear()

	for i, cell := range f.cells {
		assert.False(t, cell.IsMine, "cell %d", i)
		assert.Equal(t, Closed, cell.State, "cell %d", i)
	}
	assert.Equal(t, 2, f.cells[1].Neighbors, "neighbour counts are left alone")
}

func TestCellOutOfBounds(t *testing.T) {
	f := layoutField(t, "...")

	_, ok := f.Cell(3, 0)
	assert.False(t, ok)
	_, ok = f.Cell(-1, 0)
	assert.False(t, ok)
	_, ok = f.Cell(0, 1)
	assert.False(t, ok)

	assert.PanicsWithValue(t, AssertionError{"cell 3:0 is outside the 3x1 field"}, func() {
		f.Reveal(3, 0)
	})
	assert.Panics(t, func() { f.ToggleFlag(0, -1) })
}

func TestToggleFlag(t *testing.T) {
	f := layoutField(t, ".o")

	assert.Equal(t, +1, f.ToggleFlag(0, 0))
	cell, _ := f.Cell(0, 0)
	assert.Equal(t, Flagged, cell.State)

	assert.Equal(t, -1, f.ToggleFlag(0, 0))
	cell, _ = f.Cell(0, 0)
	assert.Equal(t, Closed, cell.State)

	assert.Equal(t, 0, f.ToggleFlag(1, 0), "open cells cannot be flagged")
	cell, _ = f.Cell(1, 0)
	assert.Equal(t, Open, cell.State)
}

func TestCountCells(t *testing.T) {
	f := layoutField(t,
		"o.f",
		"x*o",
	)
	assert.Equal(t, 2, f.CountCells(Open))
	assert.Equal(t, 2, f.CountCells(Closed))
	assert.Equal(t, 2, f.CountCells(Flagged))
}

func TestRevealAllMines(t *testing.T) {
	f := layoutField(t,
		"*fx",
		"o..",
	)
	f.RevealAllMines()

	assert.Equal(t, []string{
		"*.*",
		"1..",
	}, rows(f))
}

func TestFieldString(t *testing.T) {
	f := layoutField(t,
		"*fo",
		"o..",
	)
	assert.Equal(t, ".F \n1..\n", f.String())
	assert.Equal(t, "", NewField().String())

	column := layoutField(t, "f", "o", "*")
	assert.Equal(t, "F\n1\n.\n", column.String())
}
