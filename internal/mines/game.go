package mines

import (
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type GameState int

const (
	Playing GameState = iota
	Won
	Lost
)

func (s GameState) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

func (s GameState) Over() bool {
	return s != Playing
}

// Game is one round on a single field. The mine layout is generated lazily on
// the first [Game.Open], centred on the opened cell.
type Game struct {
	field   *Field
	rand    *rand.Rand
	now     func() time.Time
	flags   int
	started bool

	// state memoizes deriveState; it is refreshed after every Open, the only
	// call that changes which cells are open.
	state GameState

	startedAt, endedAt time.Time
}

type GameOption func(*Game)

// WithClock replaces [time.Now] as the source of the game's timestamps.
func WithClock(now func() time.Time) GameOption {
	return func(g *Game) {
		g.now = now
	}
}

func NewGame(params GameParams, r *rand.Rand, opts ...GameOption) (*Game, error) {
	width, height, mineCount := params.Unpack()

	field := NewField()
	if err := field.Resize(width, height); err != nil {
		return nil, err
	}
	field.Clear()
	field.SetMineCount(mineCount)

	g := &Game{
		field: field,
		rand:  r,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Field gives read access to the board for rendering. Callers must not
// mutate it.
func (g *Game) Field() *Field {
	return g.field
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) Started() bool {
	return g.started
}

func (g *Game) Flags() int {
	return g.flags
}

// MinesLeft is the mine count minus the flags placed. It goes negative when
// the player over-flags.
func (g *Game) MinesLeft() int {
	return g.field.MineCount() - g.flags
}

// Elapsed is zero until the first reveal and stops once the game is over.
func (g *Game) Elapsed() time.Duration {
	switch {
	case !g.started:
		return 0
	case g.state.Over():
		return g.endedAt.Sub(g.startedAt)
	default:
		return g.now().Sub(g.startedAt)
	}
}

// Open reveals the cell at x, y and returns the resulting state. The first
// call generates the mine layout around x, y. Calls after the game is over
// do nothing.
//
// panics [AssertionError]
func (g *Game) Open(x, y int) GameState {
	if g.state.Over() {
		return g.state
	}

	if !g.started {
		g.field.Generate(x, y, g.rand)
		g.started = true
		g.startedAt = g.now()
	}

	if g.field.Reveal(x, y) {
		g.field.RevealAllMines()
	}
	g.state = g.deriveState()

	if g.state.Over() {
		g.endedAt = g.now()
		Log.WithFields(logrus.Fields{
			"state":   g.state.String(),
			"elapsed": g.Elapsed().String(),
			"flags":   g.flags,
		}).Info("game over")
	}

	return g.state
}

// ToggleFlag flags or unflags the cell at x, y. Calls after the game is over
// do nothing.
//
// panics [AssertionError]
func (g *Game) ToggleFlag(x, y int) {
	if g.state.Over() {
		return
	}
	g.flags += g.field.ToggleFlag(x, y)
}

/*
The state is never stored alongside the cells: an open mine means the game is
lost, and all non-mines open means it is won.
*/
func (g *Game) deriveState() GameState {
	if !g.started {
		return Playing
	}
	for _, cell := range g.field.cells {
		if cell.IsMine && cell.State == Open {
			return Lost
		}
	}
	if g.field.CountCells(Open) == g.field.Size()-g.field.MineCount() {
		return Won
	}
	return Playing
}
