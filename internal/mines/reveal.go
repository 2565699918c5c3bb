package mines

// revealFrame is one pending cell of a reveal cascade. Frames sit on an
// explicit stack so a flood fill across a large zero region does not grow the
// goroutine stack with the region size.
type revealFrame struct {
	x, y    int
	cascade bool
	next    int // next index into neighborOffsets
	hit     bool
}

// Reveal opens the cell at x, y and reports whether a mine was hit.
//
// Flagged cells are ignored. A mine is opened and reported. Any other cell is
// opened, and its closed neighbours are revealed in turn when it has no
// neighbouring mines, or when it was already open and exactly as many
// neighbours are flagged as it has mines around it (a chord).
//
// Neighbours are visited depth first in row order, each one checked for being
// closed only when its turn comes, so an earlier sibling's cascade can open a
// later sibling first. When a mine is hit somewhere below a cell, every
// neighbour of that cell is opened regardless of flags.
//
// panics [AssertionError]
func (f *Field) Reveal(x, y int) bool {
	cell := f.at(x, y)
	if cell.State == Flagged {
		return false
	}

	frame, hit, ok := f.enter(x, y)
	if !ok {
		return hit
	}

	stack := []revealFrame{frame}
	for {
		top := &stack[len(stack)-1]

		if top.cascade && top.next < len(neighborOffsets) {
			d := neighborOffsets[top.next]
			top.next++

			xx, yy := top.x+d[0], top.y+d[1]
			if !f.InBounds(xx, yy) || f.cells[xx+yy*f.width].State != Closed {
				continue
			}

			if frame, hit, ok := f.enter(xx, yy); ok {
				stack = append(stack, frame)
			} else {
				top.hit = top.hit || hit
			}
			continue
		}

		/*
		 * All neighbours are done. Expose the blast radius if
		 * anything below us went off, then hand the result up.
		 */
		done := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if done.hit {
			f.cells[done.x+done.y*f.width].State = Open
			for xx, yy := range f.neighbors(done.x, done.y) {
				f.cells[xx+yy*f.width].State = Open
			}
		}

		if len(stack) == 0 {
			return done.hit
		}

		parent := &stack[len(stack)-1]
		parent.hit = parent.hit || done.hit
	}
}

// enter opens a single non-flagged cell. For a mine it returns hit and no
// frame; otherwise it returns the frame that will walk the cell's neighbours.
func (f *Field) enter(x, y int) (frame revealFrame, hit bool, ok bool) {
	cell := &f.cells[x+y*f.width]

	if cell.IsMine {
		cell.State = Open
		return revealFrame{}, true, false
	}

	cascade := cell.Neighbors == 0 ||
		(cell.State == Open && cell.Neighbors == f.flaggedNeighborCount(x, y))
	cell.State = Open

	return revealFrame{x: x, y: y, cascade: cascade}, false, true
}
