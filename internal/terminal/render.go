package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/vancomm/minesweeper-tui/internal/mines"
)

var (
	styleDefault = tcell.StyleDefault
	styleClosed  = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x909090))
	styleFlag    = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xF23607))
	styleMine    = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xFF0000))

	styleNumbers = [8]tcell.Style{
		tcell.StyleDefault.Foreground(tcell.NewHexColor(0x1B77D1)),
		tcell.StyleDefault.Foreground(tcell.NewHexColor(0x388E3C)),
		tcell.StyleDefault.Foreground(tcell.NewHexColor(0xFF6702)),
		tcell.StyleDefault.Foreground(tcell.NewHexColor(0x7B1FA2)),
		tcell.StyleDefault.Foreground(tcell.NewHexColor(0xFF8F00)),
		tcell.StyleDefault.Foreground(tcell.NewHexColor(0x0097A7)),
		tcell.StyleDefault.Foreground(tcell.NewHexColor(0x525252)),
		tcell.StyleDefault.Foreground(tcell.NewHexColor(0xA29B93)),
	}
)

// Frame is everything drawn in one refresh.
type Frame struct {
	Field            *mines.Field
	CursorX, CursorY int
	MinesLeft        int
	Elapsed          time.Duration
	State            mines.GameState
}

type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// CellStyle is the colour a cell is drawn in.
func CellStyle(cell mines.Cell) tcell.Style {
	switch cell.State {
	case mines.Flagged:
		return styleFlag
	case mines.Open:
		if cell.IsMine {
			return styleMine
		}
		if cell.Neighbors > 0 {
			return styleNumbers[cell.Neighbors-1]
		}
		return styleDefault
	default:
		return styleClosed
	}
}

// Draw redraws the whole screen. Cell x, y sits at column 2x+1 of row y, with
// the cursor's brackets on either side of it; the status lines are to the
// right of the field.
func (r *Renderer) Draw(frame Frame) {
	r.screen.Clear()

	field := frame.Field
	for y := range field.Height() {
		for x := range field.Width() {
			cell, _ := field.Cell(x, y)
			r.screen.SetContent(2*x+1, y, cell.Glyph(), nil, CellStyle(cell))
		}
	}

	if !frame.State.Over() {
		r.screen.SetContent(2*frame.CursorX, frame.CursorY, '[', nil, styleDefault)
		r.screen.SetContent(2*frame.CursorX+2, frame.CursorY, ']', nil, styleDefault)
	}

	status := (field.Width() + 1) * 2
	r.text(status, 0, fmt.Sprintf("Mines left: %d", frame.MinesLeft))
	r.text(status, 1, fmt.Sprintf("Time taken: %ds", int(frame.Elapsed/time.Second)))
	switch frame.State {
	case mines.Won:
		r.text(status, 3, "Game Won!")
	case mines.Lost:
		r.text(status, 3, "Game Lost!")
	}

	r.screen.Show()
}

func (r *Renderer) text(x, y int, s string) {
	for i, c := range []rune(s) {
		r.screen.SetContent(x+i, y, c, nil, styleDefault)
	}
}

// Summary is the line printed once the screen is gone.
func Summary(state mines.GameState, elapsed time.Duration) string {
	verb := "Won"
	if state == mines.Lost {
		verb = "Lost"
	}
	return fmt.Sprintf("%s a game of minesweeper in %d seconds", verb, int(elapsed/time.Second))
}
