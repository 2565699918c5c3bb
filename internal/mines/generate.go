package mines

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// Generate lays out the field's mines at random and recomputes neighbour
// counts. It must run once per game, on the first reveal, with that reveal's
// coordinates.
//
// Mines are kept off the start cell and, while enough room is left on the
// board, off all eight of its neighbours too, so the first reveal opens a
// zero region whenever the density allows one.
//
// panics [AssertionError]
func (f *Field) Generate(startX, startY int, r *rand.Rand) {
	f.index(startX, startY)

	size := len(f.cells)

	/*
	 * No non-mine can exist, so skip the sampling altogether.
	 */
	if f.mineCount >= size {
		for i := range f.cells {
			f.cells[i].IsMine = true
		}
		f.calculateNeighbors()
		Log.WithFields(logrus.Fields{
			"width": f.width, "height": f.height, "mines": f.mineCount,
		}).Debug("generated all-mine field")
		return
	}

	for i := range f.cells {
		f.cells[i].IsMine = false
	}

	var (
		minesLeft = f.mineCount
		rejected  int
	)
	for minesLeft > 0 {
		x := r.IntN(f.width)
		y := r.IntN(f.height)
		cell := &f.cells[x+y*f.width]

		var (
			crowded   = f.mineCount-minesLeft >= size-9
			isStart   = x == startX && y == startY
			nearStart = absDiff(startX, x) <= 1 && absDiff(startY, y) <= 1
		)

		if cell.IsMine || isStart || (nearStart && !crowded) {
			rejected++
			continue
		}

		cell.IsMine = true
		minesLeft--
	}

	f.calculateNeighbors()

	Log.WithFields(logrus.Fields{
		"width":    f.width,
		"height":   f.height,
		"mines":    f.mineCount,
		"start":    [2]int{startX, startY},
		"rejected": rejected,
	}).Debug("generated field")
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
